package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/repository"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/google/uuid"
)

// CharacterBuilder creates catalog characters with a builder pattern
type CharacterBuilder struct {
	character domain.Character
}

// NewCharacterBuilder starts from a valid 4-star Pyro DPS
func NewCharacterBuilder(id string) *CharacterBuilder {
	return &CharacterBuilder{character: domain.Character{
		ID:                   id,
		Name:                 id,
		Element:              domain.ElementPyro,
		Weapon:               domain.WeaponSword,
		Rarity:               4,
		Region:               domain.RegionMondstadt,
		Role:                 domain.RoleDPS,
		RecommendedArtifacts: []string{},
		RecommendedWeapons:   []string{},
	}}
}

func (b *CharacterBuilder) WithElement(e domain.Element) *CharacterBuilder {
	b.character.Element = e
	return b
}

func (b *CharacterBuilder) WithRole(r domain.Role) *CharacterBuilder {
	b.character.Role = r
	return b
}

func (b *CharacterBuilder) WithWeapon(w domain.WeaponType) *CharacterBuilder {
	b.character.Weapon = w
	return b
}

func (b *CharacterBuilder) WithRegion(r domain.Region) *CharacterBuilder {
	b.character.Region = r
	return b
}

func (b *CharacterBuilder) WithRarity(rarity int) *CharacterBuilder {
	b.character.Rarity = rarity
	return b
}

// Build returns a fresh copy so one builder can stamp out several characters
func (b *CharacterBuilder) Build() *domain.Character {
	c := b.character
	return &c
}

// TeamInputBuilder creates valid team creation payloads
type TeamInputBuilder struct {
	input service.CreateTeamInput
}

// NewTeamInputBuilder creates a builder with a unique name and one member
func NewTeamInputBuilder() *TeamInputBuilder {
	description := ""
	return &TeamInputBuilder{input: service.CreateTeamInput{
		Name:         fmt.Sprintf("team_%s", uuid.New().String()[:8]),
		CharacterIDs: []string{"bennett"},
		Description:  &description,
		Synergies:    []string{},
	}}
}

func (b *TeamInputBuilder) WithName(name string) *TeamInputBuilder {
	b.input.Name = name
	return b
}

func (b *TeamInputBuilder) WithCharacters(ids ...string) *TeamInputBuilder {
	b.input.CharacterIDs = ids
	return b
}

func (b *TeamInputBuilder) WithDescription(description string) *TeamInputBuilder {
	b.input.Description = &description
	return b
}

func (b *TeamInputBuilder) WithSynergies(synergies ...string) *TeamInputBuilder {
	b.input.Synergies = synergies
	return b
}

func (b *TeamInputBuilder) Input() service.CreateTeamInput {
	return b.input
}

// Build saves the team through the service layer
func (b *TeamInputBuilder) Build(t *testing.T, teams *service.TeamService) *domain.Team {
	t.Helper()

	team, err := teams.CreateTeam(context.Background(), b.input)
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}

// BuildViaAPI saves the team through POST /api/teams
func (b *TeamInputBuilder) BuildViaAPI(t *testing.T, ts *TestServer) *domain.Team {
	t.Helper()

	body, err := json.Marshal(b.input)
	if err != nil {
		t.Fatalf("failed to encode team: %v", err)
	}

	resp, err := http.Post(ts.APIURL("/teams"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var team domain.Team
	if err := json.NewDecoder(resp.Body).Decode(&team); err != nil {
		t.Fatalf("failed to decode team: %v", err)
	}
	return &team
}

// MustCharacters looks up catalog characters by id, failing on any miss
func MustCharacters(t *testing.T, repo repository.CharacterRepository, ids ...string) []*domain.Character {
	t.Helper()

	characters := make([]*domain.Character, 0, len(ids))
	for _, id := range ids {
		c, err := repo.GetByID(context.Background(), id)
		if err != nil || c == nil {
			t.Fatalf("character %q not in catalog: %v", id, err)
		}
		characters = append(characters, c)
	}
	return characters
}
