package memory

import (
	"context"

	"github.com/dom/teyvat-archive/internal/domain"
)

type characterRepository struct {
	characters []*domain.Character
	byID       map[string]*domain.Character
}

func NewCharacterRepository(characters []*domain.Character) *characterRepository {
	byID := make(map[string]*domain.Character, len(characters))
	for _, c := range characters {
		byID[c.ID] = c
	}
	return &characterRepository{characters: characters, byID: byID}
}

func (r *characterRepository) GetAll(ctx context.Context) ([]*domain.Character, error) {
	out := make([]*domain.Character, len(r.characters))
	copy(out, r.characters)
	return out, nil
}

func (r *characterRepository) GetByID(ctx context.Context, id string) (*domain.Character, error) {
	return r.byID[id], nil
}

type artifactRepository struct {
	artifacts []*domain.ArtifactSet
}

func NewArtifactRepository(artifacts []*domain.ArtifactSet) *artifactRepository {
	return &artifactRepository{artifacts: artifacts}
}

func (r *artifactRepository) GetAll(ctx context.Context) ([]*domain.ArtifactSet, error) {
	out := make([]*domain.ArtifactSet, len(r.artifacts))
	copy(out, r.artifacts)
	return out, nil
}

type farmingDomainRepository struct {
	domains []*domain.FarmingDomain
}

func NewFarmingDomainRepository(domains []*domain.FarmingDomain) *farmingDomainRepository {
	return &farmingDomainRepository{domains: domains}
}

func (r *farmingDomainRepository) GetAll(ctx context.Context) ([]*domain.FarmingDomain, error) {
	out := make([]*domain.FarmingDomain, len(r.domains))
	copy(out, r.domains)
	return out, nil
}
