package memory

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/dom/teyvat-archive/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFS embed.FS

// Seed holds the static catalog loaded at startup
type Seed struct {
	Characters     []*domain.Character
	Artifacts      []*domain.ArtifactSet
	FarmingDomains []*domain.FarmingDomain
}

// LoadSeed decodes and validates the embedded catalog
func LoadSeed() (*Seed, error) {
	seed := &Seed{}
	if err := decodeSeedFile("seed/characters.yaml", &seed.Characters); err != nil {
		return nil, err
	}
	if err := decodeSeedFile("seed/artifacts.yaml", &seed.Artifacts); err != nil {
		return nil, err
	}
	if err := decodeSeedFile("seed/domains.yaml", &seed.FarmingDomains); err != nil {
		return nil, err
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return seed, nil
}

func decodeSeedFile(name string, out interface{}) error {
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

func (s *Seed) validate() error {
	seen := make(map[string]bool, len(s.Characters))
	for _, c := range s.Characters {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("character %q: %w", c.ID, err)
		}
		if seen[c.ID] {
			return fmt.Errorf("character %q: duplicate id", c.ID)
		}
		seen[c.ID] = true
	}

	seen = make(map[string]bool, len(s.Artifacts))
	for _, a := range s.Artifacts {
		if a.ID == "" || seen[a.ID] {
			return fmt.Errorf("artifact set %q: missing or duplicate id", a.ID)
		}
		seen[a.ID] = true
		for _, slot := range a.Types {
			if !slot.IsValid() {
				return fmt.Errorf("artifact set %q: unknown slot %q", a.ID, slot)
			}
		}
	}

	seen = make(map[string]bool, len(s.FarmingDomains))
	for _, d := range s.FarmingDomains {
		if d.ID == "" || seen[d.ID] {
			return fmt.Errorf("domain %q: missing or duplicate id", d.ID)
		}
		seen[d.ID] = true
		if !d.Region.IsValid() {
			return fmt.Errorf("domain %q: unknown region %q", d.ID, d.Region)
		}
		for _, day := range d.WeekDays {
			if _, err := domain.ParseWeekday(day); err != nil {
				return fmt.Errorf("domain %q: %w", d.ID, err)
			}
		}
	}
	return nil
}
