package service

import (
	"context"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/metrics"
)

// TeamAnalysis combines the reaction and synergy reports for one party
type TeamAnalysis struct {
	Characters []*domain.Character       `json:"characters"`
	Reactions  []domain.ElementalReaction `json:"reactions"`
	Synergy    SynergyReport             `json:"synergy"`
}

type TeamBuilderService struct {
	catalog  *CatalogService
	teams    *TeamService
	resolver *ReactionResolver
	analyzer *SynergyAnalyzer
	metrics  *metrics.Manager
}

func NewTeamBuilderService(catalog *CatalogService, teams *TeamService, resolver *ReactionResolver, analyzer *SynergyAnalyzer, m *metrics.Manager) *TeamBuilderService {
	return &TeamBuilderService{
		catalog:  catalog,
		teams:    teams,
		resolver: resolver,
		analyzer: analyzer,
		metrics:  m,
	}
}

// Analyze runs both reports over the same party
func (s *TeamBuilderService) Analyze(characters []*domain.Character) *TeamAnalysis {
	if characters == nil {
		characters = []*domain.Character{}
	}
	analysis := &TeamAnalysis{
		Characters: characters,
		Reactions:  s.resolver.Resolve(characters),
		Synergy:    s.analyzer.Analyze(characters),
	}
	s.metrics.TeamAnalyzed(len(analysis.Reactions))
	return analysis
}

// AnalyzeSelection analyzes a team-builder selection of 0-4 character ids
func (s *TeamBuilderService) AnalyzeSelection(ctx context.Context, ids []string) (*TeamAnalysis, error) {
	characters, err := s.catalog.ResolveSelection(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.Analyze(characters), nil
}

// AnalyzeTeam analyzes a saved team, skipping ids that are not in the
// catalog. It returns nil when the team does not exist.
func (s *TeamBuilderService) AnalyzeTeam(ctx context.Context, teamID string) (*TeamAnalysis, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, nil
	}

	characters, err := s.catalog.LookupCharacters(ctx, team.CharacterIDs)
	if err != nil {
		return nil, err
	}
	return s.Analyze(characters), nil
}

// Reactions returns the full reaction reference table
func (s *TeamBuilderService) Reactions() []domain.ElementalReaction {
	return s.resolver.table.All()
}
