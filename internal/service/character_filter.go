package service

import "github.com/dom/teyvat-archive/internal/domain"

// CharacterFilter narrows a character list. Zero-valued fields match anything.
type CharacterFilter struct {
	Element domain.Element
	Weapon  domain.WeaponType
	Region  domain.Region
	Rarity  int
}

func (f CharacterFilter) Matches(c *domain.Character) bool {
	if f.Element != "" && c.Element != f.Element {
		return false
	}
	if f.Weapon != "" && c.Weapon != f.Weapon {
		return false
	}
	if f.Region != "" && c.Region != f.Region {
		return false
	}
	if f.Rarity != 0 && c.Rarity != f.Rarity {
		return false
	}
	return true
}

// Apply returns the matching characters, preserving input order
func (f CharacterFilter) Apply(characters []*domain.Character) []*domain.Character {
	out := make([]*domain.Character, 0, len(characters))
	for _, c := range characters {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
