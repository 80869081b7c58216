package service

import (
	"context"
	"sort"
	"time"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/repository"
)

type CatalogService struct {
	characterRepo repository.CharacterRepository
	artifactRepo  repository.ArtifactRepository
	domainRepo    repository.FarmingDomainRepository
}

func NewCatalogService(characterRepo repository.CharacterRepository, artifactRepo repository.ArtifactRepository, domainRepo repository.FarmingDomainRepository) *CatalogService {
	return &CatalogService{
		characterRepo: characterRepo,
		artifactRepo:  artifactRepo,
		domainRepo:    domainRepo,
	}
}

func (s *CatalogService) ListCharacters(ctx context.Context) ([]*domain.Character, error) {
	return s.characterRepo.GetAll(ctx)
}

// GetCharacter returns nil without an error when the id is unknown
func (s *CatalogService) GetCharacter(ctx context.Context, id string) (*domain.Character, error) {
	return s.characterRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListArtifactSets(ctx context.Context) ([]*domain.ArtifactSet, error) {
	return s.artifactRepo.GetAll(ctx)
}

// ListFarmingDomains returns every domain sorted by region, or, when day is
// set, only the domains open that day ordered by where the day falls in
// their schedule.
func (s *CatalogService) ListFarmingDomains(ctx context.Context, day *time.Weekday) ([]*domain.FarmingDomain, error) {
	domains, err := s.domainRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if day == nil {
		sort.SliceStable(domains, func(i, j int) bool {
			return domains[i].Region < domains[j].Region
		})
		return domains, nil
	}

	open := make([]*domain.FarmingDomain, 0, len(domains))
	for _, d := range domains {
		if d.OpenOn(*day) {
			open = append(open, d)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].DayIndex(*day) < open[j].DayIndex(*day)
	})
	return open, nil
}

// ResolveSelection maps a team-builder selection to characters. Unknown or
// repeated ids and selections larger than a team are rejected.
func (s *CatalogService) ResolveSelection(ctx context.Context, ids []string) ([]*domain.Character, error) {
	if len(ids) > domain.MaxTeamSize {
		return nil, &domain.ValidationError{Field: "characterIds", Reason: domain.ErrTeamTooLarge.Error(), Err: domain.ErrTeamTooLarge}
	}

	seen := make(map[string]bool, len(ids))
	characters := make([]*domain.Character, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, &domain.ValidationError{Field: "characterIds", Reason: "duplicate character " + id, Err: domain.ErrDuplicateCharacter}
		}
		seen[id] = true

		c, err := s.characterRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, &domain.ValidationError{Field: "characterIds", Reason: "unknown character " + id, Err: domain.ErrUnknownCharacter}
		}
		characters = append(characters, c)
	}
	return characters, nil
}

// LookupCharacters resolves the ids that exist and skips the rest, since
// saved teams are not checked against the catalog.
func (s *CatalogService) LookupCharacters(ctx context.Context, ids []string) ([]*domain.Character, error) {
	seen := make(map[string]bool, len(ids))
	characters := make([]*domain.Character, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		c, err := s.characterRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c != nil {
			characters = append(characters, c)
		}
	}
	return characters, nil
}
