// Package finiteset implements the finite enumerated set algebra: a simple
// element is a single index into a shared, ordered universe of labels; a
// composite set is a collection of such indices backed by a bitset.
package finiteset

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/random-events/sigma-algebra/algebra"
	"github.com/random-events/sigma-algebra/render"
)

// Universe is an ordered, immutable list of labels shared by reference
// across every SetElement and Set drawn from it. Two universes are equal
// only if they are the same pointer; value-equal but distinct Universes are
// treated as different universes by every operation in this package.
type Universe struct {
	labels []string
}

// NewUniverse builds a Universe from an ordered list of distinct labels.
// Callers that need a stable universe across a program's lifetime should
// construct it once and share the pointer.
func NewUniverse(labels ...string) *Universe {
	cp := append([]string{}, labels...)
	return &Universe{labels: cp}
}

// Len returns the number of labels in the universe.
func (u *Universe) Len() int { return len(u.labels) }

// Label returns the label at index i.
func (u *Universe) Label(i int) string { return u.labels[i] }

// IndexOf returns the index of label, or -1 if it is not in the universe.
func (u *Universe) IndexOf(label string) int {
	for i, l := range u.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func requireSameUniverse(a, b *Universe, op string) {
	if a != b {
		panic(&algebra.UniverseMismatchError{Op: op})
	}
}

// SetElement is a single index into a shared universe. Index -1 denotes the
// empty element.
type SetElement struct {
	Index    int
	Universe *Universe
}

// Element constructs a SetElement by label.
func Element(universe *Universe, label string) SetElement {
	return SetElement{Index: universe.IndexOf(label), Universe: universe}
}

// ElementAt constructs a SetElement by index.
func ElementAt(universe *Universe, index int) SetElement {
	return SetElement{Index: index, Universe: universe}
}

// EmptyElement returns the canonical empty element over universe.
func EmptyElement(universe *Universe) SetElement {
	return SetElement{Index: -1, Universe: universe}
}

// IsEmpty reports whether e is the empty element.
func (e SetElement) IsEmpty() bool { return e.Index == -1 }

// Label returns the label this element points to, panicking if e is empty.
func (e SetElement) Label() string { return e.Universe.Label(e.Index) }

// Equal reports whether e and other denote the same index in the same
// universe.
func (e SetElement) Equal(other SetElement) bool {
	requireSameUniverse(e.Universe, other.Universe, "SetElement.Equal")
	return e.Index == other.Index
}

// Compare orders elements by index, empty (-1) sorting first.
func (e SetElement) Compare(other SetElement) int {
	requireSameUniverse(e.Universe, other.Universe, "SetElement.Compare")
	switch {
	case e.Index < other.Index:
		return -1
	case e.Index > other.Index:
		return 1
	default:
		return 0
	}
}

// IntersectionWith returns self if both elements share an index, else the
// empty element.
func (e SetElement) IntersectionWith(other SetElement) SetElement {
	requireSameUniverse(e.Universe, other.Universe, "SetElement.IntersectionWith")
	if e.Index == other.Index {
		return e
	}
	return EmptyElement(e.Universe)
}

// Complement returns every other element of the universe.
func (e SetElement) Complement() Set {
	bits := bitset.New(uint(e.Universe.Len()))
	for i := 0; i < e.Universe.Len(); i++ {
		if i != e.Index {
			bits.Set(uint(i))
		}
	}
	return Set{bits: bits, universe: e.Universe}
}

// Contains reports whether e denotes label.
func (e SetElement) Contains(label string) bool {
	return !e.IsEmpty() && e.Universe.Label(e.Index) == label
}

// String renders the element's label, or ∅ if empty.
func (e SetElement) String() string {
	if e.IsEmpty() {
		return render.EmptySet
	}
	return e.Label()
}

// DifferenceWith implements the generic simple-set difference, specialized
// for set elements.
func (e SetElement) DifferenceWith(other SetElement) Set {
	return algebra.DifferenceWith[SetElement, Set](e, other)
}

// Set is a finite-set composite: a dense bitset of indices into a shared
// universe.
type Set struct {
	bits     *bitset.BitSet
	universe *Universe
}

// NewSet constructs a composite set from zero or more elements, ignoring
// empty ones.
func NewSet(universe *Universe, elements ...SetElement) Set {
	bits := bitset.New(uint(universe.Len()))
	for _, e := range elements {
		requireSameUniverse(e.Universe, universe, "NewSet")
		if !e.IsEmpty() {
			bits.Set(uint(e.Index))
		}
	}
	return Set{bits: bits, universe: universe}
}

// EmptySet returns the empty composite set over universe.
func EmptySet(universe *Universe) Set {
	return Set{bits: bitset.New(uint(universe.Len())), universe: universe}
}

// FullSet returns the composite set containing every index of universe.
func FullSet(universe *Universe) Set {
	bits := bitset.New(uint(universe.Len()))
	for i := 0; i < universe.Len(); i++ {
		bits.Set(uint(i))
	}
	return Set{bits: bits, universe: universe}
}

// Members returns this set's elements in index order (algebra.Composite).
func (s Set) Members() []SetElement {
	members := make([]SetElement, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		members = append(members, ElementAt(s.universe, int(i)))
	}
	return members
}

// FromMembers constructs a new Set from a slice of elements, preserving
// this set's universe (algebra.Composite).
func (s Set) FromMembers(members []SetElement) Set {
	return NewSet(s.universe, members...)
}

// IsEmpty reports whether this set has no members.
func (s Set) IsEmpty() bool { return s.bits.Count() == 0 }

// Universe returns the shared universe this set is drawn from.
func (s Set) Universe() *Universe { return s.universe }

// Contains reports whether label is a member.
func (s Set) Contains(label string) bool {
	idx := s.universe.IndexOf(label)
	return idx != -1 && s.bits.Test(uint(idx))
}

// IsDisjoint reports whether every unique pair of members has empty
// intersection. For Set this always holds by construction (each member is
// a single bit) unless called with an explicitly malformed composite.
func (s Set) IsDisjoint() bool {
	return algebra.IsDisjoint[SetElement, Set](s)
}

// IntersectionWith returns the bitwise AND of the two underlying bitsets.
func (s Set) IntersectionWith(other Set) Set {
	requireSameUniverse(s.universe, other.universe, "Set.IntersectionWith")
	return Set{bits: s.bits.Intersection(other.bits), universe: s.universe}
}

// UnionWith returns the bitwise OR of the two underlying bitsets.
func (s Set) UnionWith(other Set) Set {
	requireSameUniverse(s.universe, other.universe, "Set.UnionWith")
	return Set{bits: s.bits.Union(other.bits), universe: s.universe}
}

// DifferenceWith returns the bitwise AND-NOT of the two underlying bitsets.
func (s Set) DifferenceWith(other Set) Set {
	requireSameUniverse(s.universe, other.universe, "Set.DifferenceWith")
	return Set{bits: s.bits.Difference(other.bits), universe: s.universe}
}

// Complement flips every bit against the full-universe mask.
func (s Set) Complement() Set {
	full := FullSet(s.universe)
	return Set{bits: full.bits.Difference(s.bits), universe: s.universe}
}

// AddSimpleSet returns a new composite with e inserted.
func (s Set) AddSimpleSet(e SetElement) Set {
	requireSameUniverse(s.universe, e.Universe, "Set.AddSimpleSet")
	if e.IsEmpty() {
		return s
	}
	next := s.bits.Clone()
	next.Set(uint(e.Index))
	return Set{bits: next, universe: s.universe}
}

// MakeDisjoint is the identity for Set: members are already singleton and
// therefore pairwise disjoint by construction.
func (s Set) MakeDisjoint() Set { return s }

// Simplify removes any (normally impossible) empty members; members are
// already singleton-disjoint by construction, so this is otherwise the
// identity.
func (s Set) Simplify() Set { return s }

// String renders the ∅ / s1 u s2 u ... textual form, labels in index order.
func (s Set) String() string {
	members := s.Members()
	labels := make([]string, len(members))
	for i, m := range members {
		labels[i] = m.String()
	}
	return render.Union(labels)
}
