package service

import (
	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/repository"
)

type Services struct {
	Catalog     *CatalogService
	Team        *TeamService
	TeamBuilder *TeamBuilderService
}

func NewServices(repos *repository.Repositories, m *metrics.Manager) *Services {
	catalog := NewCatalogService(repos.Character, repos.Artifact, repos.FarmingDomain)
	teams := NewTeamService(repos.Team, m)
	resolver := NewReactionResolver(domain.StandardReactionTable())
	analyzer := NewSynergyAnalyzer(resolver)

	return &Services{
		Catalog:     catalog,
		Team:        teams,
		TeamBuilder: NewTeamBuilderService(catalog, teams, resolver, analyzer, m),
	}
}
