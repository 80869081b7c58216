package domain

type Character struct {
	ID                   string     `json:"id" yaml:"id"`
	Name                 string     `json:"name" yaml:"name"`
	Element              Element    `json:"element" yaml:"element"`
	Weapon               WeaponType `json:"weapon" yaml:"weapon"`
	Rarity               int        `json:"rarity" yaml:"rarity"` // 4 or 5
	Region               Region     `json:"region" yaml:"region"`
	Role                 Role       `json:"role" yaml:"role"`
	Description          string     `json:"description" yaml:"description"`
	Lore                 string     `json:"lore" yaml:"lore"`
	Talents              string     `json:"talents" yaml:"talents"`
	RecommendedArtifacts []string   `json:"recommendedArtifacts" yaml:"recommendedArtifacts"`
	RecommendedWeapons   []string   `json:"recommendedWeapons" yaml:"recommendedWeapons"`
	BuildPriority        string     `json:"buildPriority" yaml:"buildPriority"`
	Constellations       string     `json:"constellations" yaml:"constellations"`
	ImageURL             string     `json:"imageUrl,omitempty" yaml:"imageUrl"`
}

type WeaponType string

const (
	WeaponSword    WeaponType = "Sword"
	WeaponClaymore WeaponType = "Claymore"
	WeaponPolearm  WeaponType = "Polearm"
	WeaponBow      WeaponType = "Bow"
	WeaponCatalyst WeaponType = "Catalyst"
)

// IsValid checks if a weapon type is valid
func (w WeaponType) IsValid() bool {
	switch w {
	case WeaponSword, WeaponClaymore, WeaponPolearm, WeaponBow, WeaponCatalyst:
		return true
	}
	return false
}

type Region string

const (
	RegionMondstadt Region = "Mondstadt"
	RegionLiyue     Region = "Liyue"
	RegionInazuma   Region = "Inazuma"
	RegionSumeru    Region = "Sumeru"
	RegionFontaine  Region = "Fontaine"
	RegionNatlan    Region = "Natlan"
	RegionSnezhnaya Region = "Snezhnaya"
)

// IsValid checks if a region is valid
func (r Region) IsValid() bool {
	switch r {
	case RegionMondstadt, RegionLiyue, RegionInazuma, RegionSumeru, RegionFontaine, RegionNatlan, RegionSnezhnaya:
		return true
	}
	return false
}

// Validate checks that every enumerated field holds a known value
func (c *Character) Validate() error {
	if c.ID == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if !c.Element.IsValid() {
		return &ValidationError{Field: "element", Reason: "unknown element " + string(c.Element)}
	}
	if !c.Weapon.IsValid() {
		return &ValidationError{Field: "weapon", Reason: "unknown weapon " + string(c.Weapon)}
	}
	if !c.Region.IsValid() {
		return &ValidationError{Field: "region", Reason: "unknown region " + string(c.Region)}
	}
	if !c.Role.IsValid() {
		return &ValidationError{Field: "role", Reason: "unknown role " + string(c.Role)}
	}
	if c.Rarity != 4 && c.Rarity != 5 {
		return &ValidationError{Field: "rarity", Reason: "must be 4 or 5"}
	}
	return nil
}
