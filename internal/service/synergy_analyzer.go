package service

import "github.com/dom/teyvat-archive/internal/domain"

// MaxCoverage is the top of the element coverage scale
const MaxCoverage = 5

type PairRating string

const (
	RatingExcellent PairRating = "Excellent"
	RatingGood      PairRating = "Good"
)

// Heuristic messages shown by the team planner
const (
	WarningNoDamageDealer   = "Team lacks a DPS character for damage output"
	RecommendHealer         = "Consider adding a Healer for sustainability"
	RecommendSupport        = "Consider adding a Support to buff your damage dealers"
	RecommendDiversify      = "Consider diversifying elements to enable elemental reactions"
	NoteGoodElementalSpread = "Good elemental diversity enables multiple reactions"
)

// PairSynergy rates one unordered pair of party members
type PairSynergy struct {
	First          string     `json:"first"`
	Second         string     `json:"second"`
	Rating         PairRating `json:"rating"`
	Reaction       string     `json:"reaction,omitempty"`
	FavorableRoles bool       `json:"favorableRoles"`
}

type SynergyReport struct {
	Coverage        int                 `json:"coverage"`
	RoleBalance     map[domain.Role]int `json:"roleBalance"`
	Warnings        []string            `json:"warnings"`
	Recommendations []string            `json:"recommendations"`
	Pairs           []PairSynergy       `json:"pairs"`
}

// SynergyAnalyzer scores party composition. The scoring is a display
// heuristic, not game logic, and never fails.
type SynergyAnalyzer struct {
	resolver *ReactionResolver
}

func NewSynergyAnalyzer(resolver *ReactionResolver) *SynergyAnalyzer {
	return &SynergyAnalyzer{resolver: resolver}
}

// CoverageScore clamps a distinct element count to the coverage scale
func CoverageScore(distinctElements int) int {
	if distinctElements > MaxCoverage {
		return MaxCoverage
	}
	if distinctElements < 0 {
		return 0
	}
	return distinctElements
}

func (a *SynergyAnalyzer) Analyze(characters []*domain.Character) SynergyReport {
	party := make([]*domain.Character, 0, len(characters))
	for _, c := range characters {
		if c != nil {
			party = append(party, c)
		}
	}

	report := SynergyReport{
		RoleBalance:     make(map[domain.Role]int),
		Warnings:        []string{},
		Recommendations: []string{},
		Pairs:           []PairSynergy{},
	}
	if len(party) == 0 {
		return report
	}

	distinct := len(domain.DistinctElements(party))
	report.Coverage = CoverageScore(distinct)

	hasDamage := false
	for _, c := range party {
		report.RoleBalance[c.Role]++
		if c.Role.DealsDamage() {
			hasDamage = true
		}
	}

	if !hasDamage {
		report.Warnings = append(report.Warnings, WarningNoDamageDealer)
	}

	if len(party) >= 3 && report.RoleBalance[domain.RoleHealer] == 0 {
		report.Recommendations = append(report.Recommendations, RecommendHealer)
	}
	if len(party) >= 3 && report.RoleBalance[domain.RoleSupport] == 0 {
		report.Recommendations = append(report.Recommendations, RecommendSupport)
	}
	if distinct == 1 {
		report.Recommendations = append(report.Recommendations, RecommendDiversify)
	} else if distinct >= 3 {
		report.Recommendations = append(report.Recommendations, NoteGoodElementalSpread)
	}

	for i := 0; i < len(party); i++ {
		for j := i + 1; j < len(party); j++ {
			if pair, ok := a.ratePair(party[i], party[j]); ok {
				report.Pairs = append(report.Pairs, pair)
			}
		}
	}

	return report
}

// ratePair is Excellent when the pair both reacts and has favorable roles,
// Good when only one holds. Pairs with neither are not reported.
func (a *SynergyAnalyzer) ratePair(x, y *domain.Character) (PairSynergy, bool) {
	reaction, reacts := a.resolver.Reacts(x, y)
	favorable := domain.IsFavorableRolePair(x.Role, y.Role)

	pair := PairSynergy{
		First:          x.ID,
		Second:         y.ID,
		FavorableRoles: favorable,
	}
	if reacts {
		pair.Reaction = reaction.Name
	}

	switch {
	case reacts && favorable:
		pair.Rating = RatingExcellent
	case reacts || favorable:
		pair.Rating = RatingGood
	default:
		return PairSynergy{}, false
	}
	return pair, true
}
