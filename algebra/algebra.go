// Package algebra provides the generic engine shared by every set algebra in
// this module: interval sets, finite-element sets, and product-space events.
// It defines the capability traits a concrete algebra must implement
// (Simple/Composite) and the generic operations that can be written purely in
// terms of those traits, so a new algebra gains union, intersection,
// difference, complement, and disjointification for free.
package algebra

import "fmt"

// Simple is an atomic, connected member of an algebra: one interval, one
// finite-set element, one axis-aligned rectangle in product space. S is the
// concrete simple-set type; C is its associated composite type.
type Simple[S any, C any] interface {
	// IntersectionWith returns the intersection of this simple set with
	// another simple set of the same algebra.
	IntersectionWith(other S) S
	// Complement returns the complement of this simple set as a composite
	// set within the algebra's universe.
	Complement() C
	// IsEmpty reports whether this simple set has no members.
	IsEmpty() bool
	// Equal reports whether this simple set equals another exactly.
	Equal(other S) bool
	// Compare returns a negative, zero, or positive number establishing a
	// total order over simple sets of this algebra.
	Compare(other S) int
	// String renders a minimal textual form of this simple set.
	String() string
}

// Composite is a finite, possibly non-disjoint union of simple sets from one
// algebra. It closes the algebra: every operation on composites can be
// expressed through Members and FromMembers plus the algebra's Simple
// operations.
type Composite[S Simple[S, C], C any] interface {
	// Members returns the simple sets that make up this composite.
	Members() []S
	// FromMembers constructs a new composite from a slice of simple sets,
	// in the same algebra as the receiver. Implementations should drop
	// empty members.
	FromMembers(members []S) C
	// IsEmpty reports whether this composite has no non-empty members.
	IsEmpty() bool
	// String renders a minimal textual form of this composite.
	String() string
}

// InvariantViolationError reports that an algebra invariant was broken by
// code that constructed or combined sets incorrectly — for example, a
// composite event containing two simple events that compare equal. It is
// raised via panic, treating the violation as an unrecoverable logic error
// rather than a value callers are expected to check for.
type InvariantViolationError struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("invariant violated (%s): %s", e.Invariant, e.Detail)
}

// UniverseMismatchError reports that two values were combined despite being
// drawn from different shared universes (different *finiteset.Universe or
// *variable.Universe instances). The algebra does not attempt to reconcile
// mismatched universes; callers must ensure consistency.
type UniverseMismatchError struct {
	Op string
}

func (e *UniverseMismatchError) Error() string {
	return fmt.Sprintf("operation %s attempted across mismatched universes", e.Op)
}

// UniquePairs returns every unordered pair (xs[i], xs[j]) with i > j, i.e.
// excluding symmetric pairs (a, a) and any pair already produced in the
// opposite order.
func UniquePairs[T any](xs []T) [][2]T {
	var pairs [][2]T
	for i := 0; i < len(xs); i++ {
		for j := 0; j < i; j++ {
			pairs = append(pairs, [2]T{xs[i], xs[j]})
		}
	}
	return pairs
}

// DifferenceWith implements the generic simple-set difference: if self and
// other do not intersect, the difference is just self; otherwise it is the
// complement of the intersection, restricted to self.
//
// The empty-intersection branch has no composite value in hand to call
// FromMembers on, so it borrows other.Complement() as a proxy purely to
// reach a composite carrying the algebra's shared identity (universe,
// bounds); its members are discarded immediately.
func DifferenceWith[S Simple[S, C], C Composite[S, C]](self S, other S) C {
	intersection := self.IntersectionWith(other)
	if intersection.IsEmpty() {
		proxy := other.Complement()
		return proxy.FromMembers([]S{self})
	}

	complementOfIntersection := intersection.Complement()

	var diff []S
	for _, piece := range complementOfIntersection.Members() {
		restricted := self.IntersectionWith(piece)
		if !restricted.IsEmpty() {
			diff = append(diff, restricted)
		}
	}
	return complementOfIntersection.FromMembers(diff)
}

// IntersectionOf implements the generic composite intersection: the
// pairwise intersection of every member of a with every member of b,
// dropping empty results.
func IntersectionOf[S Simple[S, C], C Composite[S, C]](a, b C) C {
	var result []S
	for _, x := range a.Members() {
		for _, y := range b.Members() {
			piece := x.IntersectionWith(y)
			if !piece.IsEmpty() {
				result = append(result, piece)
			}
		}
	}
	return a.FromMembers(result)
}

// UnionOf implements the generic composite union: insert every member of b
// into a, then make the result disjoint.
func UnionOf[S Simple[S, C], C Composite[S, C]](a, b C) C {
	members := append(append([]S{}, a.Members()...), b.Members()...)
	combined := a.FromMembers(members)
	return MakeDisjoint[S, C](combined)
}

// DifferenceOf implements the generic composite difference: every member of
// b is subtracted in turn from each member of a, and the remainders are
// unioned.
func DifferenceOf[S Simple[S, C], C Composite[S, C]](a, b C) C {
	result := a.FromMembers(nil)
	for _, x := range a.Members() {
		remaining := a.FromMembers([]S{x})
		for _, y := range b.Members() {
			var next []S
			for _, piece := range remaining.Members() {
				d := DifferenceWith[S, C](piece, y)
				next = append(next, d.Members()...)
			}
			remaining = a.FromMembers(next)
		}
		result = UnionOf[S, C](result, remaining)
	}
	return MakeDisjoint[S, C](result)
}

// ComplementOf implements the generic composite complement: the universe
// minus the composite, computed as the intersection over all members of
// their per-simple complements.
func ComplementOf[S Simple[S, C], C Composite[S, C]](c C, universe C) C {
	members := c.Members()
	if len(members) == 0 {
		return universe
	}
	result := members[0].Complement()
	for _, m := range members[1:] {
		result = IntersectionOf[S, C](result, m.Complement())
	}
	return result
}

// IsDisjoint reports whether every unique unordered pair of members has an
// empty intersection.
func IsDisjoint[S Simple[S, C], C Composite[S, C]](c C) bool {
	for _, pair := range UniquePairs(c.Members()) {
		if !pair[0].IntersectionWith(pair[1]).IsEmpty() {
			return false
		}
	}
	return true
}

// splitDisjointIntersecting performs one step of the generic disjointifying
// split: each member first has every earlier member subtracted from it, then
// every later member; the remainder lies in no other member. The overlaps
// with later members removed in the second pass form the intersecting half:
// a point covered by several members lands in exactly one overlap fragment,
// so the fragments are disjoint from each other and from every remainder.
func splitDisjointIntersecting[S Simple[S, C], C Composite[S, C]](c C) (disjoint, intersecting C) {
	members := c.Members()
	var disjointMembers, intersectingMembers []S

	for i, current := range members {
		remainder := c.FromMembers([]S{current})
		for _, earlier := range members[:i] {
			var next []S
			for _, piece := range remainder.Members() {
				next = append(next, DifferenceWith[S, C](piece, earlier).Members()...)
			}
			remainder = c.FromMembers(next)
		}

		for _, later := range members[i+1:] {
			var next []S
			for _, piece := range remainder.Members() {
				d := DifferenceWith[S, C](piece, later)
				next = append(next, d.Members()...)
				overlap := piece.IntersectionWith(later)
				if !overlap.IsEmpty() {
					intersectingMembers = append(intersectingMembers, overlap)
				}
			}
			remainder = c.FromMembers(next)
		}
		disjointMembers = append(disjointMembers, remainder.Members()...)
	}

	return c.FromMembers(disjointMembers), c.FromMembers(intersectingMembers)
}

// MakeDisjoint splits a composite into pairwise-disjoint and
// still-intersecting fragments, recursing on the intersecting half until it
// is empty.
//
// Simplify is supplied through the Simplifier interface when a concrete
// algebra wants a reduced canonical form; algebras that don't implement it
// (none currently) would just skip that step. See interval.Interval and
// finiteset.Set and event.Event for concrete Simplify implementations.
func MakeDisjoint[S Simple[S, C], C Composite[S, C]](c C) C {
	disjoint, intersecting := splitDisjointIntersecting[S, C](c)
	for !intersecting.IsEmpty() {
		var nextDisjoint C
		nextDisjoint, intersecting = splitDisjointIntersecting[S, C](intersecting)
		disjoint = UnionOfDisjoint[S, C](disjoint, nextDisjoint)
	}
	if s, ok := any(disjoint).(Simplifier[C]); ok {
		return s.Simplify()
	}
	return disjoint
}

// UnionOfDisjoint merges two composites that are already known to be
// pairwise disjoint from one another, without re-running disjointification.
// It is a helper used internally by MakeDisjoint.
func UnionOfDisjoint[S Simple[S, C], C Composite[S, C]](a, b C) C {
	return a.FromMembers(append(append([]S{}, a.Members()...), b.Members()...))
}

// Simplifier is implemented by composite types that have a domain-specific
// canonical reduced form: adjacent-interval merging, Set's index-removal
// normalization, and the pairwise-merge-on-one-axis algorithm for Event.
type Simplifier[C any] interface {
	Simplify() C
}
