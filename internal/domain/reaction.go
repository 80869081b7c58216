package domain

import "fmt"

type DamageType string

const (
	DamageMultiplicative DamageType = "multiplicative"
	DamageAdditive       DamageType = "additive"
	DamageTransformative DamageType = "transformative"
)

type ElementalReaction struct {
	Name       string     `json:"name"`
	Elements   [2]Element `json:"elements"`
	Effect     string     `json:"effect"`
	DamageType DamageType `json:"damageType,omitempty"`
}

// Pair returns the unordered element pair that triggers the reaction
func (r ElementalReaction) Pair() ElementPair {
	return NewElementPair(r.Elements[0], r.Elements[1])
}

// ElementPair is an unordered pair of elements stored in canonical order,
// so (A, B) and (B, A) produce the same value.
type ElementPair struct {
	First  Element
	Second Element
}

// NewElementPair builds the canonical pair for a and b
func NewElementPair(a, b Element) ElementPair {
	if elementRank(b) < elementRank(a) {
		a, b = b, a
	}
	return ElementPair{First: a, Second: b}
}

func (p ElementPair) String() string {
	return fmt.Sprintf("%s+%s", p.First, p.Second)
}

func elementRank(e Element) int {
	for i, el := range AllElements {
		if el == e {
			return i
		}
	}
	return len(AllElements)
}

// ReactionTable maps unordered element pairs to the reaction they trigger.
// It is immutable once built.
type ReactionTable struct {
	reactions []ElementalReaction
	byPair    map[ElementPair]int
}

// NewReactionTable builds a table, rejecting self-pairs, unknown elements
// and pairs that appear twice.
func NewReactionTable(reactions []ElementalReaction) (*ReactionTable, error) {
	t := &ReactionTable{
		reactions: make([]ElementalReaction, 0, len(reactions)),
		byPair:    make(map[ElementPair]int, len(reactions)),
	}
	for _, r := range reactions {
		a, b := r.Elements[0], r.Elements[1]
		if !a.IsValid() || !b.IsValid() {
			return nil, fmt.Errorf("reaction %s: unknown element in %s/%s", r.Name, a, b)
		}
		if a == b {
			return nil, fmt.Errorf("reaction %s: an element cannot react with itself", r.Name)
		}
		pair := r.Pair()
		if _, exists := t.byPair[pair]; exists {
			return nil, fmt.Errorf("reaction %s: pair %s already registered", r.Name, pair)
		}
		t.byPair[pair] = len(t.reactions)
		t.reactions = append(t.reactions, r)
	}
	return t, nil
}

// Find returns the reaction triggered by a and b. Argument order does not matter.
func (t *ReactionTable) Find(a, b Element) (ElementalReaction, bool) {
	if a == b {
		return ElementalReaction{}, false
	}
	idx, ok := t.byPair[NewElementPair(a, b)]
	if !ok {
		return ElementalReaction{}, false
	}
	return t.reactions[idx], true
}

// All returns every reaction in registration order
func (t *ReactionTable) All() []ElementalReaction {
	out := make([]ElementalReaction, len(t.reactions))
	copy(out, t.reactions)
	return out
}

// Len returns the number of registered reactions
func (t *ReactionTable) Len() int {
	return len(t.reactions)
}

// StandardReactions is the reference list of reactions between element pairs
var StandardReactions = []ElementalReaction{
	{Name: "Vaporize", Elements: [2]Element{ElementPyro, ElementHydro}, Effect: "1.5x-2x DMG based on trigger", DamageType: DamageMultiplicative},
	{Name: "Melt", Elements: [2]Element{ElementPyro, ElementCryo}, Effect: "1.5x-2x DMG based on trigger", DamageType: DamageMultiplicative},
	{Name: "Overloaded", Elements: [2]Element{ElementPyro, ElementElectro}, Effect: "Explosion DMG, knockback enemies", DamageType: DamageTransformative},
	{Name: "Superconduct", Elements: [2]Element{ElementCryo, ElementElectro}, Effect: "Cryo DMG, reduces Physical RES", DamageType: DamageTransformative},
	{Name: "Electro-Charged", Elements: [2]Element{ElementHydro, ElementElectro}, Effect: "Continuous Electro DMG over time", DamageType: DamageTransformative},
	{Name: "Frozen", Elements: [2]Element{ElementHydro, ElementCryo}, Effect: "Immobilizes enemies", DamageType: DamageTransformative},
	{Name: "Swirl", Elements: [2]Element{ElementAnemo, ElementPyro}, Effect: "Spreads element and deals DMG", DamageType: DamageTransformative},
	{Name: "Swirl", Elements: [2]Element{ElementAnemo, ElementHydro}, Effect: "Spreads element and deals DMG", DamageType: DamageTransformative},
	{Name: "Swirl", Elements: [2]Element{ElementAnemo, ElementCryo}, Effect: "Spreads element and deals DMG", DamageType: DamageTransformative},
	{Name: "Swirl", Elements: [2]Element{ElementAnemo, ElementElectro}, Effect: "Spreads element and deals DMG", DamageType: DamageTransformative},
	{Name: "Crystallize", Elements: [2]Element{ElementGeo, ElementPyro}, Effect: "Creates shield", DamageType: DamageAdditive},
	{Name: "Crystallize", Elements: [2]Element{ElementGeo, ElementHydro}, Effect: "Creates shield", DamageType: DamageAdditive},
	{Name: "Crystallize", Elements: [2]Element{ElementGeo, ElementCryo}, Effect: "Creates shield", DamageType: DamageAdditive},
	{Name: "Crystallize", Elements: [2]Element{ElementGeo, ElementElectro}, Effect: "Creates shield", DamageType: DamageAdditive},
	{Name: "Bloom", Elements: [2]Element{ElementHydro, ElementDendro}, Effect: "Creates Dendro Core", DamageType: DamageTransformative},
	{Name: "Burning", Elements: [2]Element{ElementPyro, ElementDendro}, Effect: "Continuous Pyro DMG", DamageType: DamageTransformative},
	{Name: "Quicken", Elements: [2]Element{ElementElectro, ElementDendro}, Effect: "Enables Aggravate/Spread", DamageType: DamageAdditive},
}

var standardTable = mustReactionTable(StandardReactions)

// StandardReactionTable returns the shared table built from StandardReactions
func StandardReactionTable() *ReactionTable {
	return standardTable
}

func mustReactionTable(reactions []ElementalReaction) *ReactionTable {
	t, err := NewReactionTable(reactions)
	if err != nil {
		panic(err)
	}
	return t
}
