package domain

// Element represents one of the seven elements in Teyvat
type Element string

const (
	ElementPyro    Element = "Pyro"
	ElementHydro   Element = "Hydro"
	ElementCryo    Element = "Cryo"
	ElementElectro Element = "Electro"
	ElementAnemo   Element = "Anemo"
	ElementGeo     Element = "Geo"
	ElementDendro  Element = "Dendro"
)

// AllElements contains all valid elements in display order
var AllElements = []Element{
	ElementPyro, ElementHydro, ElementCryo, ElementElectro,
	ElementAnemo, ElementGeo, ElementDendro,
}

// IsValid checks if an element is valid
func (e Element) IsValid() bool {
	switch e {
	case ElementPyro, ElementHydro, ElementCryo, ElementElectro, ElementAnemo, ElementGeo, ElementDendro:
		return true
	}
	return false
}

// String returns the string representation of the element
func (e Element) String() string {
	return string(e)
}

// DistinctElements projects characters to their elements, keeping first-seen order
func DistinctElements(characters []*Character) []Element {
	elements := make([]Element, 0, len(characters))
	for _, c := range characters {
		if c != nil {
			elements = append(elements, c.Element)
		}
	}
	return UniqueElements(elements)
}

// UniqueElements drops repeated elements, keeping first-seen order
func UniqueElements(elements []Element) []Element {
	seen := make(map[Element]bool, len(elements))
	unique := make([]Element, 0, len(elements))
	for _, e := range elements {
		if seen[e] {
			continue
		}
		seen[e] = true
		unique = append(unique, e)
	}
	return unique
}
