package domain

type ArtifactSet struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	TwoPieceBonus  string         `json:"twoPieceBonus" yaml:"twoPieceBonus"`
	FourPieceBonus string         `json:"fourPieceBonus" yaml:"fourPieceBonus"`
	Domain         string         `json:"domain" yaml:"domain"`                 // farming location
	RecommendedFor []string       `json:"recommendedFor" yaml:"recommendedFor"` // character names, not ids
	Types          []ArtifactSlot `json:"types" yaml:"types"`
	ImageURL       string         `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

type ArtifactSlot string

const (
	SlotFlower  ArtifactSlot = "Flower"
	SlotFeather ArtifactSlot = "Feather"
	SlotSands   ArtifactSlot = "Sands"
	SlotGoblet  ArtifactSlot = "Goblet"
	SlotCirclet ArtifactSlot = "Circlet"
)

// IsValid checks if an artifact slot is valid
func (s ArtifactSlot) IsValid() bool {
	switch s {
	case SlotFlower, SlotFeather, SlotSands, SlotGoblet, SlotCirclet:
		return true
	}
	return false
}
