package service_test

import (
	"testing"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/repository/memory"
	"github.com/dom/teyvat-archive/internal/service"
	"github.com/dom/teyvat-archive/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer() *service.SynergyAnalyzer {
	return service.NewSynergyAnalyzer(service.NewReactionResolver(domain.StandardReactionTable()))
}

func TestCoverageScore(t *testing.T) {
	tests := []struct {
		distinct int
		expected int
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{4, 4},
		{5, 5},
		{6, 5},
		{7, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, service.CoverageScore(tt.distinct), "distinct=%d", tt.distinct)
	}
}

func TestSynergyAnalyzer_Empty(t *testing.T) {
	report := newAnalyzer().Analyze(nil)

	assert.Equal(t, 0, report.Coverage)
	assert.NotNil(t, report.RoleBalance)
	assert.Empty(t, report.RoleBalance)
	assert.Equal(t, []string{}, report.Warnings)
	assert.Equal(t, []string{}, report.Recommendations)
	assert.Equal(t, []service.PairSynergy{}, report.Pairs)
}

func TestSynergyAnalyzer_Analyze(t *testing.T) {
	repos, err := memory.NewRepositories()
	require.NoError(t, err)
	analyzer := newAnalyzer()

	tests := []struct {
		name            string
		ids             []string
		coverage        int
		roles           map[domain.Role]int
		warnings        []string
		recommendations []string
	}{
		{
			name:            "national team",
			ids:             []string{"xiangling", "bennett", "furina", "kazuha"},
			coverage:        3,
			roles:           map[domain.Role]int{domain.RoleSubDPS: 1, domain.RoleSupport: 3},
			warnings:        []string{},
			recommendations: []string{service.RecommendHealer, service.NoteGoodElementalSpread},
		},
		{
			name:            "four elements",
			ids:             []string{"ganyu", "raiden-shogun", "nahida", "zhongli"},
			coverage:        4,
			roles:           map[domain.Role]int{domain.RoleDPS: 1, domain.RoleSubDPS: 1, domain.RoleSupport: 2},
			warnings:        []string{},
			recommendations: []string{service.RecommendHealer, service.NoteGoodElementalSpread},
		},
		{
			name:            "supports only",
			ids:             []string{"nahida", "zhongli", "kazuha"},
			coverage:        3,
			roles:           map[domain.Role]int{domain.RoleSupport: 3},
			warnings:        []string{service.WarningNoDamageDealer},
			recommendations: []string{service.RecommendHealer, service.NoteGoodElementalSpread},
		},
		{
			name:            "mono pyro carries",
			ids:             []string{"diluc", "hu-tao"},
			coverage:        1,
			roles:           map[domain.Role]int{domain.RoleDPS: 2},
			warnings:        []string{},
			recommendations: []string{service.RecommendDiversify},
		},
		{
			name:            "three damage dealers",
			ids:             []string{"diluc", "fischl", "ayaka"},
			coverage:        3,
			roles:           map[domain.Role]int{domain.RoleDPS: 2, domain.RoleSubDPS: 1},
			warnings:        []string{},
			recommendations: []string{service.RecommendHealer, service.RecommendSupport, service.NoteGoodElementalSpread},
		},
		{
			name:            "two elements",
			ids:             []string{"ganyu", "furina"},
			coverage:        2,
			roles:           map[domain.Role]int{domain.RoleDPS: 1, domain.RoleSupport: 1},
			warnings:        []string{},
			recommendations: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			party := testutil.MustCharacters(t, repos.Character, tt.ids...)
			report := analyzer.Analyze(party)

			assert.Equal(t, tt.coverage, report.Coverage)
			assert.Equal(t, tt.roles, report.RoleBalance)
			assert.Equal(t, tt.warnings, report.Warnings)
			assert.Equal(t, tt.recommendations, report.Recommendations)
		})
	}
}

func TestSynergyAnalyzer_CoverageIsCapped(t *testing.T) {
	party := make([]*domain.Character, 0, len(domain.AllElements))
	for _, e := range domain.AllElements {
		party = append(party, testutil.NewCharacterBuilder(string(e)).WithElement(e).Build())
	}

	report := newAnalyzer().Analyze(party)
	assert.Equal(t, service.MaxCoverage, report.Coverage)
}

func TestSynergyAnalyzer_PairRatings(t *testing.T) {
	repos, err := memory.NewRepositories()
	require.NoError(t, err)
	party := testutil.MustCharacters(t, repos.Character, "xiangling", "bennett", "furina", "kazuha")

	report := newAnalyzer().Analyze(party)

	expected := []service.PairSynergy{
		{First: "xiangling", Second: "bennett", Rating: service.RatingGood, FavorableRoles: true},
		{First: "xiangling", Second: "furina", Rating: service.RatingExcellent, Reaction: "Vaporize", FavorableRoles: true},
		{First: "xiangling", Second: "kazuha", Rating: service.RatingExcellent, Reaction: "Swirl", FavorableRoles: true},
		{First: "bennett", Second: "furina", Rating: service.RatingGood, Reaction: "Vaporize"},
		{First: "bennett", Second: "kazuha", Rating: service.RatingGood, Reaction: "Swirl"},
		{First: "furina", Second: "kazuha", Rating: service.RatingGood, Reaction: "Swirl"},
	}
	assert.Equal(t, expected, report.Pairs)
}

func TestSynergyAnalyzer_UnratedPairsOmitted(t *testing.T) {
	repos, err := memory.NewRepositories()
	require.NoError(t, err)
	party := testutil.MustCharacters(t, repos.Character, "diluc", "hu-tao")

	report := newAnalyzer().Analyze(party)
	assert.Empty(t, report.Pairs)
}

func TestSynergyAnalyzer_SkipsNil(t *testing.T) {
	party := []*domain.Character{
		nil,
		testutil.NewCharacterBuilder("a").WithElement(domain.ElementHydro).WithRole(domain.RoleHealer).Build(),
	}

	report := newAnalyzer().Analyze(party)
	assert.Equal(t, 1, report.Coverage)
	assert.Equal(t, map[domain.Role]int{domain.RoleHealer: 1}, report.RoleBalance)
	assert.Equal(t, []string{service.WarningNoDamageDealer}, report.Warnings)
	assert.Equal(t, []string{service.RecommendDiversify}, report.Recommendations)
}

func TestSynergyAnalyzer_DamageDealerWarning(t *testing.T) {
	tests := []struct {
		name  string
		roles []domain.Role
		warns bool
	}{
		{name: "sub-dps is enough", roles: []domain.Role{domain.RoleSubDPS, domain.RoleSupport}},
		{name: "dps is enough", roles: []domain.Role{domain.RoleDPS, domain.RoleHealer}},
		{name: "support and healer", roles: []domain.Role{domain.RoleSupport, domain.RoleHealer}, warns: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			party := make([]*domain.Character, 0, len(tt.roles))
			for i, role := range tt.roles {
				party = append(party, testutil.NewCharacterBuilder(string(rune('a'+i))).WithRole(role).Build())
			}

			report := newAnalyzer().Analyze(party)
			if tt.warns {
				assert.Equal(t, []string{service.WarningNoDamageDealer}, report.Warnings)
			} else {
				assert.Empty(t, report.Warnings)
			}
		})
	}
}
