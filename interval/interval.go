// Package interval implements the interval algebra over an ordered numeric
// element type: SimpleInterval, a single [lower, upper] span with open or
// closed endpoints, and Interval, the disjoint-union-of-intervals composite
// it forms under union, intersection, complement, and difference.
package interval

import (
	"cmp"
	"fmt"
	"math"
	"sort"

	"github.com/random-events/sigma-algebra/algebra"
	"github.com/random-events/sigma-algebra/render"
)

// BorderType indicates whether an interval endpoint includes its boundary
// value.
type BorderType int

const (
	Open BorderType = iota
	Closed
)

func (b BorderType) String() string {
	if b == Closed {
		return "closed"
	}
	return "open"
}

// Bounds supplies the per-element-type extrema used when computing
// complements. NegativeInfinity and PositiveInfinity must be values no real
// interval endpoint can equal or cross.
type Bounds[T cmp.Ordered] struct {
	NegativeInfinity T
	PositiveInfinity T
}

// infinities returns the library-specified extrema for T: IEEE infinities
// for floating point, saturating min/max for integer types. Panics for any
// T this package does not know how to bound; callers needing a different
// element type should use ClosedWithBounds and friends directly.
func infinities[T cmp.Ordered]() (T, T) {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.Inf(-1))).(T), any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(-1)).(T), any(math.Inf(1)).(T)
	case int:
		return any(int(math.MinInt)).(T), any(int(math.MaxInt)).(T)
	case int8:
		return any(int8(math.MinInt8)).(T), any(int8(math.MaxInt8)).(T)
	case int16:
		return any(int16(math.MinInt16)).(T), any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T), any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T), any(int64(math.MaxInt64)).(T)
	case uint:
		return any(uint(0)).(T), any(uint(math.MaxUint)).(T)
	case uint8:
		return any(uint8(0)).(T), any(uint8(math.MaxUint8)).(T)
	case uint16:
		return any(uint16(0)).(T), any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(0)).(T), any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(0)).(T), any(uint64(math.MaxUint64)).(T)
	default:
		panic(fmt.Sprintf("interval: no default Bounds for %T; use ClosedWithBounds and friends", zero))
	}
}

// DefaultBounds returns the library-specified extrema for a known numeric T.
func DefaultBounds[T cmp.Ordered]() Bounds[T] {
	neg, pos := infinities[T]()
	return Bounds[T]{NegativeInfinity: neg, PositiveInfinity: pos}
}

// SimpleInterval is a single interval [lower, upper] with independently open
// or closed endpoints.
type SimpleInterval[T cmp.Ordered] struct {
	Lower T
	Upper T
	Left  BorderType
	Right BorderType

	bounds Bounds[T]
}

// normalize enforces the canonical-emptiness invariant: any interval with
// lower > upper, or lower == upper with an open endpoint, is rewritten to
// the canonical empty form (the zero value of T on both ends, both borders
// open).
func normalize[T cmp.Ordered](lower, upper T, left, right BorderType, bounds Bounds[T]) SimpleInterval[T] {
	iv := SimpleInterval[T]{Lower: lower, Upper: upper, Left: left, Right: right, bounds: bounds}
	if iv.isEmptyRaw() {
		var zero T
		return SimpleInterval[T]{Lower: zero, Upper: zero, Left: Open, Right: Open, bounds: bounds}
	}
	return iv
}

func (iv SimpleInterval[T]) isEmptyRaw() bool {
	if iv.Upper < iv.Lower {
		return true
	}
	if iv.Lower == iv.Upper && (iv.Left == Open || iv.Right == Open) {
		return true
	}
	return false
}

// ClosedWithBounds returns the closed interval [a, b] under explicit bounds,
// for element types DefaultBounds cannot infer.
func ClosedWithBounds[T cmp.Ordered](a, b T, bounds Bounds[T]) SimpleInterval[T] {
	return normalize(a, b, Closed, Closed, bounds)
}

// ClosedInterval returns the closed interval [a, b].
func ClosedInterval[T cmp.Ordered](a, b T) SimpleInterval[T] {
	return ClosedWithBounds(a, b, DefaultBounds[T]())
}

// OpenWithBounds returns the open interval (a, b) under explicit bounds.
func OpenWithBounds[T cmp.Ordered](a, b T, bounds Bounds[T]) SimpleInterval[T] {
	return normalize(a, b, Open, Open, bounds)
}

// OpenInterval returns the open interval (a, b).
func OpenInterval[T cmp.Ordered](a, b T) SimpleInterval[T] {
	return OpenWithBounds(a, b, DefaultBounds[T]())
}

// ClosedOpenWithBounds returns the half-open interval [a, b) under explicit
// bounds.
func ClosedOpenWithBounds[T cmp.Ordered](a, b T, bounds Bounds[T]) SimpleInterval[T] {
	return normalize(a, b, Closed, Open, bounds)
}

// ClosedOpen returns the half-open interval [a, b).
func ClosedOpen[T cmp.Ordered](a, b T) SimpleInterval[T] {
	return ClosedOpenWithBounds(a, b, DefaultBounds[T]())
}

// OpenClosedWithBounds returns the half-open interval (a, b] under explicit
// bounds.
func OpenClosedWithBounds[T cmp.Ordered](a, b T, bounds Bounds[T]) SimpleInterval[T] {
	return normalize(a, b, Open, Closed, bounds)
}

// OpenClosed returns the half-open interval (a, b].
func OpenClosed[T cmp.Ordered](a, b T) SimpleInterval[T] {
	return OpenClosedWithBounds(a, b, DefaultBounds[T]())
}

// Singleton returns the degenerate closed interval [a, a].
func Singleton[T cmp.Ordered](a T) SimpleInterval[T] {
	return ClosedInterval(a, a)
}

// EmptySimple returns the canonical empty simple interval.
func EmptySimple[T cmp.Ordered]() SimpleInterval[T] {
	var zero T
	return SimpleInterval[T]{Lower: zero, Upper: zero, Left: Open, Right: Open, bounds: DefaultBounds[T]()}
}

// RealsSimple returns the simple interval spanning the entire domain.
func RealsSimple[T cmp.Ordered]() SimpleInterval[T] {
	bounds := DefaultBounds[T]()
	return ClosedWithBounds(bounds.NegativeInfinity, bounds.PositiveInfinity, bounds)
}

// IsEmpty reports whether iv is the canonical empty interval.
func (iv SimpleInterval[T]) IsEmpty() bool {
	return iv.isEmptyRaw()
}

// Equal reports whether iv and other have identical fields.
func (iv SimpleInterval[T]) Equal(other SimpleInterval[T]) bool {
	return iv.Lower == other.Lower && iv.Upper == other.Upper &&
		iv.Left == other.Left && iv.Right == other.Right
}

// Compare provides a deterministic total order: lexicographic on (lower,
// upper, left, right), with OPEN < CLOSED at the left endpoint and CLOSED <
// OPEN at the right endpoint.
func (iv SimpleInterval[T]) Compare(other SimpleInterval[T]) int {
	if iv.Lower != other.Lower {
		if iv.Lower < other.Lower {
			return -1
		}
		return 1
	}
	if iv.Upper != other.Upper {
		if iv.Upper < other.Upper {
			return -1
		}
		return 1
	}
	if iv.Left != other.Left {
		if iv.Left == Open {
			return -1
		}
		return 1
	}
	if iv.Right != other.Right {
		if iv.Right == Closed {
			return -1
		}
		return 1
	}
	return 0
}

// IntersectionWith returns the elementwise max/min of endpoints, taking the
// stricter border when endpoints coincide.
func (iv SimpleInterval[T]) IntersectionWith(other SimpleInterval[T]) SimpleInterval[T] {
	lower, left := iv.Lower, iv.Left
	if lower < other.Lower {
		lower, left = other.Lower, other.Left
	} else if lower == other.Lower && other.Left == Open {
		left = Open
	}

	upper, right := iv.Upper, iv.Right
	if other.Upper < upper {
		upper, right = other.Upper, other.Right
	} else if upper == other.Upper && other.Right == Open {
		right = Open
	}

	return normalize(lower, upper, left, right, iv.bounds)
}

// Complement returns up to two pieces, one from -inf up to lower and one
// from upper up to +inf, each only included if non-empty. The border at
// lower and at upper is the flip of iv's own border there; the ends at the
// bounds' infinities are closed. The complement of an empty interval is the
// whole domain.
func (iv SimpleInterval[T]) Complement() Interval[T] {
	if iv.IsEmpty() {
		return Interval[T]{members: []SimpleInterval[T]{RealsSimple[T]()}, bounds: iv.bounds}
	}

	var pieces []SimpleInterval[T]

	left := flip(iv.Left)
	lowerPiece := normalize(iv.bounds.NegativeInfinity, iv.Lower, Closed, left, iv.bounds)
	if !lowerPiece.IsEmpty() {
		pieces = append(pieces, lowerPiece)
	}

	right := flip(iv.Right)
	upperPiece := normalize(iv.Upper, iv.bounds.PositiveInfinity, right, Closed, iv.bounds)
	if !upperPiece.IsEmpty() {
		pieces = append(pieces, upperPiece)
	}

	return Interval[T]{members: pieces, bounds: iv.bounds}
}

func flip(b BorderType) BorderType {
	if b == Open {
		return Closed
	}
	return Open
}

// Contains reports elementary membership.
func (iv SimpleInterval[T]) Contains(x T) bool {
	lowerOK := iv.Lower < x || (x == iv.Lower && iv.Left == Closed)
	upperOK := x < iv.Upper || (x == iv.Upper && iv.Right == Closed)
	return lowerOK && upperOK
}

// String renders standard []/() bracket notation.
func (iv SimpleInterval[T]) String() string {
	if iv.IsEmpty() {
		return render.EmptySet
	}
	return render.IntervalBrackets(iv.Left == Closed, fmt.Sprintf("%v", iv.Lower), fmt.Sprintf("%v", iv.Upper), iv.Right == Closed)
}

// DifferenceWith implements the generic simple-set difference, specialized
// for intervals.
func (iv SimpleInterval[T]) DifferenceWith(other SimpleInterval[T]) Interval[T] {
	return algebra.DifferenceWith[SimpleInterval[T], Interval[T]](iv, other)
}

// Interval is a disjoint union of SimpleIntervals.
type Interval[T cmp.Ordered] struct {
	members []SimpleInterval[T]
	bounds  Bounds[T]
}

// NewInterval constructs a composite interval from a (possibly overlapping,
// possibly non-canonical) slice of simple intervals, dropping empty
// members. Use MakeDisjoint/Simplify to canonicalize.
func NewInterval[T cmp.Ordered](members ...SimpleInterval[T]) Interval[T] {
	bounds := DefaultBounds[T]()
	if len(members) > 0 {
		bounds = members[0].bounds
	}
	return newIntervalWithBounds(bounds, members...)
}

func newIntervalWithBounds[T cmp.Ordered](bounds Bounds[T], members ...SimpleInterval[T]) Interval[T] {
	var nonEmpty []SimpleInterval[T]
	for _, m := range members {
		if !m.IsEmpty() {
			nonEmpty = append(nonEmpty, m)
		}
	}
	return Interval[T]{members: nonEmpty, bounds: bounds}
}

// EmptyInterval returns the empty composite interval.
func EmptyInterval[T cmp.Ordered]() Interval[T] {
	return Interval[T]{bounds: DefaultBounds[T]()}
}

// Reals returns the composite interval spanning the entire domain of T.
func Reals[T cmp.Ordered]() Interval[T] {
	return NewInterval(RealsSimple[T]())
}

// Members returns this composite's simple intervals (algebra.Composite).
func (iv Interval[T]) Members() []SimpleInterval[T] { return iv.members }

// FromMembers constructs a new Interval from a slice of simple intervals
// (algebra.Composite). Bounds come from the members themselves, not from
// the receiver, since algebra's generic engine calls FromMembers on
// zero-valued composites whose own bounds field was never set.
func (iv Interval[T]) FromMembers(members []SimpleInterval[T]) Interval[T] {
	return NewInterval(members...)
}

// IsEmpty reports whether this composite has no non-empty members.
func (iv Interval[T]) IsEmpty() bool { return len(iv.members) == 0 }

// IsDisjoint reports whether every unique pair of members has empty
// intersection.
func (iv Interval[T]) IsDisjoint() bool {
	return algebra.IsDisjoint[SimpleInterval[T], Interval[T]](iv)
}

// MakeDisjoint returns an equivalent interval whose members are pairwise
// disjoint, followed by Simplify.
func (iv Interval[T]) MakeDisjoint() Interval[T] {
	return algebra.MakeDisjoint[SimpleInterval[T], Interval[T]](iv).Simplify()
}

// IntersectionWith implements the generic composite intersection.
func (iv Interval[T]) IntersectionWith(other Interval[T]) Interval[T] {
	return algebra.IntersectionOf[SimpleInterval[T], Interval[T]](iv, other)
}

// UnionWith implements the generic composite union.
func (iv Interval[T]) UnionWith(other Interval[T]) Interval[T] {
	return algebra.UnionOf[SimpleInterval[T], Interval[T]](iv, other)
}

// DifferenceWith implements the generic composite difference.
func (iv Interval[T]) DifferenceWith(other Interval[T]) Interval[T] {
	return algebra.DifferenceOf[SimpleInterval[T], Interval[T]](iv, other)
}

// Complement implements the generic composite complement relative to the
// full-domain interval.
func (iv Interval[T]) Complement() Interval[T] {
	return algebra.ComplementOf[SimpleInterval[T], Interval[T]](iv, Reals[T]())
}

// AddSimpleSet returns a new composite with s inserted. Empty members are
// dropped; the result is not automatically made disjoint.
func (iv Interval[T]) AddSimpleSet(s SimpleInterval[T]) Interval[T] {
	if s.IsEmpty() {
		return iv
	}
	return iv.FromMembers(append(append([]SimpleInterval[T]{}, iv.members...), s))
}

// Simplify sorts by lower bound, then merges adjacent or overlapping
// members into the minimal canonical representation.
func (iv Interval[T]) Simplify() Interval[T] {
	if len(iv.members) <= 1 {
		return iv
	}

	sorted := append([]SimpleInterval[T]{}, iv.members...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Compare(sorted[j]) < 0 })

	result := []SimpleInterval[T]{sorted[0]}
	for _, next := range sorted[1:] {
		last := result[len(result)-1]

		touching := last.Upper == next.Lower && (last.Right == Closed || next.Left == Closed)
		overlapping := next.Lower < last.Upper

		if touching || overlapping {
			left := last.Left
			if next.Lower == last.Lower && next.Left == Closed {
				left = Closed
			}
			upper, right := last.Upper, last.Right
			if upper < next.Upper {
				upper, right = next.Upper, next.Right
			} else if upper == next.Upper && next.Right == Closed {
				right = Closed
			}
			result[len(result)-1] = normalize(last.Lower, upper, left, right, iv.bounds)
		} else {
			result = append(result, next)
		}
	}

	return Interval[T]{members: result, bounds: iv.bounds}
}

// String renders the ∅ / s1 u s2 u ... textual form.
func (iv Interval[T]) String() string {
	parts := make([]string, len(iv.members))
	for i, m := range iv.members {
		parts[i] = m.String()
	}
	return render.Union(parts)
}
