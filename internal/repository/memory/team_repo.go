package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dom/teyvat-archive/internal/domain"
)

// teamRepository keeps teams in process memory; they reset on restart.
// The mutex guards against concurrent HTTP handlers.
type teamRepository struct {
	mu    sync.RWMutex
	order []string
	teams map[string]*domain.Team
}

func NewTeamRepository() *teamRepository {
	return &teamRepository{teams: make(map[string]*domain.Team)}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[team.ID]; exists {
		return fmt.Errorf("team %s already exists", team.ID)
	}
	r.teams[team.ID] = cloneTeam(team)
	r.order = append(r.order, team.ID)
	return nil
}

func (r *teamRepository) GetAll(ctx context.Context) ([]*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := make([]*domain.Team, 0, len(r.order))
	for _, id := range r.order {
		teams = append(teams, cloneTeam(r.teams[id]))
	}
	return teams, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	team, ok := r.teams[id]
	if !ok {
		return nil, nil
	}
	return cloneTeam(team), nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.teams[id]; !ok {
		return nil
	}
	delete(r.teams, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneTeam(t *domain.Team) *domain.Team {
	c := *t
	c.CharacterIDs = append(make([]string, 0, len(t.CharacterIDs)), t.CharacterIDs...)
	c.Synergies = append(make([]string, 0, len(t.Synergies)), t.Synergies...)
	return &c
}
