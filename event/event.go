// Package event implements the product-space algebra: SimpleEvent, the
// axis-aligned rectangle over a set of variables, and Event, the disjoint
// union of such rectangles that forms a sigma-algebra over the product of
// every variable's domain.
package event

import (
	"sort"

	"github.com/random-events/sigma-algebra/algebra"
	"github.com/random-events/sigma-algebra/render"
	"github.com/random-events/sigma-algebra/variable"
)

type axis struct {
	v    *variable.Variable
	comp variable.AnyComposite
}

// SimpleEvent is the axis-aligned rectangle in product space: an ordered
// list of (variable, assignment) pairs sorted by variable id. Variables
// absent from the list are universally quantified — their assignment is
// implicitly the variable's full domain.
type SimpleEvent struct {
	axes []axis
}

// NewSimpleEvent builds a SimpleEvent from an explicit assignment map,
// sorting axes by variable id for deterministic iteration.
func NewSimpleEvent(assignments map[*variable.Variable]variable.AnyComposite) SimpleEvent {
	axes := make([]axis, 0, len(assignments))
	for v, c := range assignments {
		axes = append(axes, axis{v: v, comp: c})
	}
	sort.Slice(axes, func(i, j int) bool { return axes[i].v.Less(axes[j].v) })
	return SimpleEvent{axes: axes}
}

// EmptySimpleEvent returns a SimpleEvent with no explicit assignments, i.e.
// the full product domain (not to be confused with IsEmpty, which is false
// for this value).
func EmptySimpleEvent() SimpleEvent {
	return SimpleEvent{}
}

// Keys returns this event's explicitly assigned variables in id order.
func (e SimpleEvent) Keys() []*variable.Variable {
	keys := make([]*variable.Variable, len(e.axes))
	for i, a := range e.axes {
		keys[i] = a.v
	}
	return keys
}

// Get returns the assignment for v, falling back to v's full domain if v
// is not explicitly assigned in e.
func (e SimpleEvent) Get(v *variable.Variable) variable.AnyComposite {
	for _, a := range e.axes {
		if a.v.Equal(v) {
			return a.comp
		}
	}
	return v.Domain()
}

func (e SimpleEvent) has(v *variable.Variable) (variable.AnyComposite, bool) {
	for _, a := range e.axes {
		if a.v.Equal(v) {
			return a.comp, true
		}
	}
	return variable.AnyComposite{}, false
}

// IntersectionWith implements axis-wise intersection over the union of both
// events' keysets: a variable present in only one side is copied as-is,
// since the other side implicitly assigns it the full domain.
func (e SimpleEvent) IntersectionWith(other SimpleEvent) SimpleEvent {
	seen := map[*variable.Variable]bool{}
	var vars []*variable.Variable
	for _, a := range e.axes {
		if !seen[a.v] {
			seen[a.v] = true
			vars = append(vars, a.v)
		}
	}
	for _, a := range other.axes {
		if !seen[a.v] {
			seen[a.v] = true
			vars = append(vars, a.v)
		}
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Less(vars[j]) })

	axes := make([]axis, 0, len(vars))
	for _, v := range vars {
		selfComp, selfHas := e.has(v)
		otherComp, otherHas := other.has(v)
		switch {
		case selfHas && otherHas:
			axes = append(axes, axis{v: v, comp: selfComp.IntersectionWith(otherComp)})
		case selfHas:
			axes = append(axes, axis{v: v, comp: selfComp})
		default:
			axes = append(axes, axis{v: v, comp: otherComp})
		}
	}
	return SimpleEvent{axes: axes}
}

// Complement produces the staircase decomposition: a disjoint union of at
// most len(Keys()) simple events. For the i-th assigned variable v_i, the
// i-th piece assigns v_i to its complement, constrains every
// already-processed variable v_j (j < i) to e's original assignment, and
// leaves every not-yet-processed variable (j > i, plus every variable
// outside e's keyset) unconstrained. Pieces that turn out empty are
// dropped.
func (e SimpleEvent) Complement() Event {
	var pieces []SimpleEvent

	for i, target := range e.axes {
		axes := make([]axis, 0, i+1)
		for j := 0; j < i; j++ {
			axes = append(axes, e.axes[j])
		}
		axes = append(axes, axis{v: target.v, comp: target.comp.Complement()})

		piece := SimpleEvent{axes: axes}
		if !piece.IsEmpty() {
			pieces = append(pieces, piece)
		}
	}

	return NewEvent(pieces...)
}

// IsEmpty reports whether any explicit axis assignment is empty. A
// SimpleEvent with no explicit assignments represents the full product
// domain and is never empty.
func (e SimpleEvent) IsEmpty() bool {
	for _, a := range e.axes {
		if a.comp.IsEmpty() {
			return true
		}
	}
	return false
}

// Equal reports whether e and other assign the same variables to equal
// composites.
func (e SimpleEvent) Equal(other SimpleEvent) bool {
	if len(e.axes) != len(other.axes) {
		return false
	}
	for i, a := range e.axes {
		b := other.axes[i]
		if !a.v.Equal(b.v) || !a.comp.Equal(b.comp) {
			return false
		}
	}
	return true
}

// Compare provides a total order: first by keyset size, then by keys in id
// order, then by per-key assignment comparison. This fixes the source's
// non-total order, which returned false whenever keyset sizes differed.
func (e SimpleEvent) Compare(other SimpleEvent) int {
	if len(e.axes) != len(other.axes) {
		if len(e.axes) < len(other.axes) {
			return -1
		}
		return 1
	}
	for i, a := range e.axes {
		b := other.axes[i]
		if a.v.ID() != b.v.ID() {
			if a.v.ID() < b.v.ID() {
				return -1
			}
			return 1
		}
		if c := a.comp.Compare(b.comp); c != 0 {
			return c
		}
	}
	return 0
}

// Point is an elementary point in product space: one value per variable,
// typed according to the variable's kind (float64 for Continuous, int64
// for Integer, a label string for Symbolic).
type Point map[*variable.Variable]any

// Contains reports elementary membership, evaluated per axis. Variables
// absent from e are implicitly satisfied by any value (they stand for the
// variable's full domain); variables absent from point fail membership if
// e constrains them.
func (e SimpleEvent) Contains(point Point) bool {
	for _, a := range e.axes {
		value, ok := point[a.v]
		if !ok {
			return false
		}
		if !axisContains(a.comp, value) {
			return false
		}
	}
	return true
}

func axisContains(c variable.AnyComposite, value any) bool {
	switch c.Kind {
	case variable.Continuous:
		x, ok := value.(float64)
		if !ok {
			return false
		}
		for _, m := range c.Continuous.Members() {
			if m.Contains(x) {
				return true
			}
		}
		return false
	case variable.Integer:
		x, ok := value.(int64)
		if !ok {
			return false
		}
		for _, m := range c.Integer.Members() {
			if m.Contains(x) {
				return true
			}
		}
		return false
	case variable.Symbolic:
		label, ok := value.(string)
		return ok && c.Symbolic.Contains(label)
	default:
		return false
	}
}

// DifferenceWith implements the generic simple-set difference, specialized
// for simple events.
func (e SimpleEvent) DifferenceWith(other SimpleEvent) Event {
	return algebra.DifferenceWith[SimpleEvent, Event](e, other)
}

// String renders the "{name: assignment, ...}" minimal textual form.
func (e SimpleEvent) String() string {
	pairs := make([][2]string, len(e.axes))
	for i, a := range e.axes {
		pairs[i] = [2]string{a.v.Name(), a.comp.String()}
	}
	return render.Assignment(pairs)
}

// Event is a disjoint union of SimpleEvents over a shared universe of
// variables.
type Event struct {
	members  []SimpleEvent
	universe *variable.Universe
}

// NewEvent constructs an Event from zero or more simple events, caching the
// union of every variable mentioned across them as the event's universe.
func NewEvent(members ...SimpleEvent) Event {
	var vars []*variable.Variable
	for _, m := range members {
		vars = append(vars, m.Keys()...)
	}
	return Event{members: nonEmpty(members), universe: variable.NewUniverse(vars...)}
}

// NewEventOverUniverse constructs an Event carrying universe and the
// non-empty ones among members (an empty Event when none are given), for
// callers that need the universe fixed independently of any member (e.g.
// MakeNewEmpty).
func NewEventOverUniverse(universe *variable.Universe, members ...SimpleEvent) Event {
	return Event{members: nonEmpty(members), universe: universe}
}

// FromSimpleEvent constructs a single-member Event.
func FromSimpleEvent(simple SimpleEvent) Event {
	return NewEvent(simple)
}

func nonEmpty(members []SimpleEvent) []SimpleEvent {
	var result []SimpleEvent
	for _, m := range members {
		if !m.IsEmpty() {
			result = append(result, m)
		}
	}
	return result
}

// Members returns this event's simple events (algebra.Composite).
func (e Event) Members() []SimpleEvent { return e.members }

// FromMembers constructs a new Event from a slice of simple events
// (algebra.Composite). The universe is the receiver's own universe unioned
// with every variable mentioned in members, so a borrowed or narrower
// receiver (as algebra's generic engine sometimes passes) never drops
// variables the new event actually needs for simplification.
func (e Event) FromMembers(members []SimpleEvent) Event {
	universe := e.Universe()
	for _, m := range members {
		universe = universe.Union(variable.NewUniverse(m.Keys()...))
	}
	return NewEventOverUniverse(universe, members...)
}

// IsEmpty reports whether this event has no members.
func (e Event) IsEmpty() bool { return len(e.members) == 0 }

// Universe returns the set of every variable mentioned across this event's
// construction, falling back to an empty universe if none was ever set.
func (e Event) Universe() *variable.Universe {
	if e.universe == nil {
		return variable.NewUniverse()
	}
	return e.universe
}

// MakeNewEmpty returns an empty Event carrying the same universe as e.
func (e Event) MakeNewEmpty() Event {
	return NewEventOverUniverse(e.Universe())
}

// IsDisjoint reports whether every unique pair of members has empty
// intersection.
func (e Event) IsDisjoint() bool {
	return algebra.IsDisjoint[SimpleEvent, Event](e)
}

// IntersectionWith implements the generic composite intersection.
func (e Event) IntersectionWith(other Event) Event {
	return algebra.IntersectionOf[SimpleEvent, Event](e, other)
}

// UnionWith implements the generic composite union.
func (e Event) UnionWith(other Event) Event {
	return algebra.UnionOf[SimpleEvent, Event](e, other)
}

// DifferenceWith implements the generic composite difference.
func (e Event) DifferenceWith(other Event) Event {
	return algebra.DifferenceOf[SimpleEvent, Event](e, other)
}

// Complement implements the generic composite complement relative to an
// Event spanning e's full universe (a single simple event with no explicit
// assignments, i.e. the whole product domain).
func (e Event) Complement() Event {
	fullDomain := NewEventOverUniverse(e.Universe(), EmptySimpleEvent())
	return algebra.ComplementOf[SimpleEvent, Event](e, fullDomain)
}

// AddSimpleSet returns a new composite with s inserted.
func (e Event) AddSimpleSet(s SimpleEvent) Event {
	if s.IsEmpty() {
		return e
	}
	return e.FromMembers(append(append([]SimpleEvent{}, e.members...), s))
}

// MakeDisjoint returns an equivalent event whose members are pairwise
// disjoint, followed by Simplify.
func (e Event) MakeDisjoint() Event {
	return algebra.MakeDisjoint[SimpleEvent, Event](e).Simplify()
}

// SimplifyOnce scans every unique pair of members for one whose assignments
// differ on exactly one variable of the event's universe; if found, it
// merges that pair into a single simple event (copying the first member but
// unioning the differing axis) and returns the updated event with changed
// set to true. If every pair differs on two or more variables, it returns a
// copy of e unchanged with changed set to false. Two members that do not
// differ on any variable violate the no-duplicate-members invariant and
// cause a panic.
func (e Event) SimplifyOnce() (Event, bool) {
	vars := e.Universe().Variables()

	for _, pair := range algebra.UniquePairs(e.members) {
		a, b := pair[0], pair[1]
		diffCount := 0
		var diffVar *variable.Variable
		for _, v := range vars {
			if !a.Get(v).Equal(b.Get(v)) {
				diffCount++
				diffVar = v
				if diffCount > 1 {
					break
				}
			}
		}

		switch diffCount {
		case 0:
			panic(&algebra.InvariantViolationError{
				Invariant: "simplify_once",
				Detail:    "duplicate member " + a.String() + " in " + e.String(),
			})
		case 1:
			merged := mergeOnAxis(a, b, diffVar)
			var rest []SimpleEvent
			for _, m := range e.members {
				if !m.Equal(a) && !m.Equal(b) {
					rest = append(rest, m)
				}
			}
			rest = append(rest, merged)
			return e.FromMembers(rest), true
		}
	}

	return e, false
}

func mergeOnAxis(a, b SimpleEvent, v *variable.Variable) SimpleEvent {
	axes := make([]axis, len(a.axes))
	copy(axes, a.axes)
	merged := a.Get(v).UnionWith(b.Get(v))

	found := false
	for i, ax := range axes {
		if ax.v.Equal(v) {
			axes[i] = axis{v: v, comp: merged}
			found = true
			break
		}
	}
	if !found {
		axes = append(axes, axis{v: v, comp: merged})
		sort.Slice(axes, func(i, j int) bool { return axes[i].v.Less(axes[j].v) })
	}
	return SimpleEvent{axes: axes}
}

// Simplify iterates SimplifyOnce to a fixpoint. Termination is guaranteed:
// each successful merge strictly reduces the member count by one.
func (e Event) Simplify() Event {
	current := e
	for {
		next, changed := current.SimplifyOnce()
		if !changed {
			return current
		}
		current = next
	}
}

// String renders the ∅ / s1 u s2 u ... textual form.
func (e Event) String() string {
	parts := make([]string, len(e.members))
	for i, m := range e.members {
		parts[i] = m.String()
	}
	return render.Union(parts)
}
