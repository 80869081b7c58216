package repository

import (
	"context"

	"github.com/dom/teyvat-archive/internal/domain"
)

// CharacterRepository reads the seeded character catalog.
// GetByID returns (nil, nil) when the id is unknown.
type CharacterRepository interface {
	GetAll(ctx context.Context) ([]*domain.Character, error)
	GetByID(ctx context.Context, id string) (*domain.Character, error)
}

type ArtifactRepository interface {
	GetAll(ctx context.Context) ([]*domain.ArtifactSet, error)
}

type FarmingDomainRepository interface {
	GetAll(ctx context.Context) ([]*domain.FarmingDomain, error)
}

// TeamRepository stores saved teams. Delete of an unknown id is not an error.
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetAll(ctx context.Context) ([]*domain.Team, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	Delete(ctx context.Context, id string) error
}

type Repositories struct {
	Character     CharacterRepository
	Artifact      ArtifactRepository
	FarmingDomain FarmingDomainRepository
	Team          TeamRepository
}
