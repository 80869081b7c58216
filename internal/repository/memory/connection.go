package memory

import (
	"fmt"

	"github.com/dom/teyvat-archive/internal/repository"
)

// NewRepositories loads the embedded seed and wires every repository in memory
func NewRepositories() (*repository.Repositories, error) {
	seed, err := LoadSeed()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	return NewRepositoriesFromSeed(seed), nil
}

// NewRepositoriesFromSeed wires repositories around an already loaded seed
func NewRepositoriesFromSeed(seed *Seed) *repository.Repositories {
	return &repository.Repositories{
		Character:     NewCharacterRepository(seed.Characters),
		Artifact:      NewArtifactRepository(seed.Artifacts),
		FarmingDomain: NewFarmingDomainRepository(seed.FarmingDomains),
		Team:          NewTeamRepository(),
	}
}
