package service

import "github.com/dom/teyvat-archive/internal/domain"

// ReactionResolver lists the elemental reactions a party can trigger
type ReactionResolver struct {
	table *domain.ReactionTable
}

func NewReactionResolver(table *domain.ReactionTable) *ReactionResolver {
	return &ReactionResolver{table: table}
}

// reactionKey identifies a reaction by name and element pair. Several
// reactions share a name (Swirl, Crystallize), so the name alone is not enough.
type reactionKey struct {
	name string
	pair domain.ElementPair
}

// Resolve returns the distinct reactions available between the characters'
// elements, in the order they are discovered.
func (r *ReactionResolver) Resolve(characters []*domain.Character) []domain.ElementalReaction {
	return r.resolveDistinct(domain.DistinctElements(characters))
}

// ResolveElements scans every unordered pair of distinct elements.
// Repeated elements are collapsed first.
func (r *ReactionResolver) ResolveElements(elements []domain.Element) []domain.ElementalReaction {
	return r.resolveDistinct(domain.UniqueElements(elements))
}

func (r *ReactionResolver) resolveDistinct(distinct []domain.Element) []domain.ElementalReaction {
	reactions := []domain.ElementalReaction{}
	if len(distinct) < 2 {
		return reactions
	}

	seen := make(map[reactionKey]bool)
	for i := 0; i < len(distinct); i++ {
		for j := i + 1; j < len(distinct); j++ {
			reaction, ok := r.table.Find(distinct[i], distinct[j])
			if !ok {
				continue
			}
			key := reactionKey{name: reaction.Name, pair: reaction.Pair()}
			if seen[key] {
				continue
			}
			seen[key] = true
			reactions = append(reactions, reaction)
		}
	}
	return reactions
}

// Reacts reports whether two characters' elements trigger a reaction
func (r *ReactionResolver) Reacts(a, b *domain.Character) (domain.ElementalReaction, bool) {
	return r.table.Find(a.Element, b.Element)
}
