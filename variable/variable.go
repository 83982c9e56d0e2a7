// Package variable implements the opaque, identity-compared axis handles
// that index a SimpleEvent: continuous, integer, and symbolic variables,
// each carrying a full-domain composite set of its own concrete type.
package variable

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/random-events/sigma-algebra/finiteset"
	"github.com/random-events/sigma-algebra/interval"
)

// Kind identifies which concrete domain type a Variable carries.
type Kind int

const (
	Continuous Kind = iota
	Integer
	Symbolic
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Symbolic:
		return "symbolic"
	default:
		return "unknown"
	}
}

// AnyComposite is a tagged union over the three concrete composite-set types
// an axis assignment can hold. Exactly one of the Continuous/Integer/
// Symbolic fields is meaningful, selected by Kind.
type AnyComposite struct {
	Kind       Kind
	Continuous interval.Interval[float64]
	Integer    interval.Interval[int64]
	Symbolic   finiteset.Set
}

// IsEmpty reports whether the composite held by a is empty, dispatching on
// its kind.
func (a AnyComposite) IsEmpty() bool {
	switch a.Kind {
	case Continuous:
		return a.Continuous.IsEmpty()
	case Integer:
		return a.Integer.IsEmpty()
	case Symbolic:
		return a.Symbolic.IsEmpty()
	default:
		return true
	}
}

// IntersectionWith intersects two AnyComposite values of the same kind.
// Mismatched kinds panic; SimpleEvent never constructs a mismatch because
// each key is always resolved through its owning Variable.
func (a AnyComposite) IntersectionWith(other AnyComposite) AnyComposite {
	if a.Kind != other.Kind {
		panic(fmt.Sprintf("variable: AnyComposite kind mismatch (%s vs %s)", a.Kind, other.Kind))
	}
	switch a.Kind {
	case Continuous:
		return AnyComposite{Kind: Continuous, Continuous: a.Continuous.IntersectionWith(other.Continuous)}
	case Integer:
		return AnyComposite{Kind: Integer, Integer: a.Integer.IntersectionWith(other.Integer)}
	case Symbolic:
		return AnyComposite{Kind: Symbolic, Symbolic: a.Symbolic.IntersectionWith(other.Symbolic)}
	default:
		panic("variable: AnyComposite has no kind")
	}
}

// UnionWith unions two AnyComposite values of the same kind. Mismatched
// kinds panic.
func (a AnyComposite) UnionWith(other AnyComposite) AnyComposite {
	if a.Kind != other.Kind {
		panic(fmt.Sprintf("variable: AnyComposite kind mismatch (%s vs %s)", a.Kind, other.Kind))
	}
	switch a.Kind {
	case Continuous:
		return AnyComposite{Kind: Continuous, Continuous: a.Continuous.UnionWith(other.Continuous)}
	case Integer:
		return AnyComposite{Kind: Integer, Integer: a.Integer.UnionWith(other.Integer)}
	case Symbolic:
		return AnyComposite{Kind: Symbolic, Symbolic: a.Symbolic.UnionWith(other.Symbolic)}
	default:
		panic("variable: AnyComposite has no kind")
	}
}

// Complement returns the complement of a within its own domain type.
func (a AnyComposite) Complement() AnyComposite {
	switch a.Kind {
	case Continuous:
		return AnyComposite{Kind: Continuous, Continuous: a.Continuous.Complement()}
	case Integer:
		return AnyComposite{Kind: Integer, Integer: a.Integer.Complement()}
	case Symbolic:
		return AnyComposite{Kind: Symbolic, Symbolic: a.Symbolic.Complement()}
	default:
		panic("variable: AnyComposite has no kind")
	}
}

// Equal reports whether a and other hold equal composites of the same kind.
func (a AnyComposite) Equal(other AnyComposite) bool {
	if a.Kind != other.Kind {
		return false
	}
	switch a.Kind {
	case Continuous:
		return sameMembers(a.Continuous.Members(), other.Continuous.Members(), func(x, y interval.SimpleInterval[float64]) bool { return x.Equal(y) })
	case Integer:
		return sameMembers(a.Integer.Members(), other.Integer.Members(), func(x, y interval.SimpleInterval[int64]) bool { return x.Equal(y) })
	case Symbolic:
		return sameMembers(a.Symbolic.Members(), other.Symbolic.Members(), func(x, y finiteset.SetElement) bool { return x.Equal(y) })
	default:
		return true
	}
}

func sameMembers[S any](a, b []S, eq func(S, S) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Compare orders two AnyComposite values, first by kind, then
// lexicographically by rendered form. It is only meaningful
// when comparing assignments on the same variable, so kind always matches
// in practice.
func (a AnyComposite) Compare(other AnyComposite) int {
	if a.Kind != other.Kind {
		if a.Kind < other.Kind {
			return -1
		}
		return 1
	}
	as, bs := a.String(), other.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

// String renders the underlying composite's textual form.
func (a AnyComposite) String() string {
	switch a.Kind {
	case Continuous:
		return a.Continuous.String()
	case Integer:
		return a.Integer.String()
	case Symbolic:
		return a.Symbolic.String()
	default:
		return "∅"
	}
}

// FromContinuous wraps a float64 interval composite.
func FromContinuous(c interval.Interval[float64]) AnyComposite {
	return AnyComposite{Kind: Continuous, Continuous: c}
}

// FromInteger wraps an int64 interval composite.
func FromInteger(c interval.Interval[int64]) AnyComposite {
	return AnyComposite{Kind: Integer, Integer: c}
}

// FromSymbolic wraps a finite-set composite.
func FromSymbolic(c finiteset.Set) AnyComposite {
	return AnyComposite{Kind: Symbolic, Symbolic: c}
}

var nextID uint64

// Variable is an opaque, identity-compared axis handle. Variables are never
// compared by name — only by the monotonic id assigned at construction.
type Variable struct {
	id     uint64
	name   string
	kind   Kind
	domain func() AnyComposite
}

func newVariable(name string, kind Kind, domain func() AnyComposite) *Variable {
	return &Variable{
		id:     atomic.AddUint64(&nextID, 1),
		name:   name,
		kind:   kind,
		domain: domain,
	}
}

// NewContinuous creates a continuous variable whose domain is all of
// float64's real line.
func NewContinuous(name string) *Variable {
	return newVariable(name, Continuous, func() AnyComposite {
		return FromContinuous(interval.Reals[float64]())
	})
}

// NewInteger creates an integer variable whose domain is all of int64.
func NewInteger(name string) *Variable {
	return newVariable(name, Integer, func() AnyComposite {
		return FromInteger(interval.Reals[int64]())
	})
}

// NewSymbolic creates a symbolic variable whose domain is every index of
// universe.
func NewSymbolic(name string, universe *finiteset.Universe) *Variable {
	return newVariable(name, Symbolic, func() AnyComposite {
		return FromSymbolic(finiteset.FullSet(universe))
	})
}

// ID returns the process-local monotonic identity used for comparison and
// ordering.
func (v *Variable) ID() uint64 { return v.id }

// Name returns the variable's display name. Never used for comparison.
func (v *Variable) Name() string { return v.name }

// Kind reports which concrete domain type this variable carries.
func (v *Variable) Kind() Kind { return v.kind }

// Domain returns the variable's full-domain composite set.
func (v *Variable) Domain() AnyComposite { return v.domain() }

// Equal reports whether v and other are the same variable, by identity.
func (v *Variable) Equal(other *Variable) bool { return v.id == other.id }

// Less orders variables by id, giving SimpleEvent's variable map a
// deterministic iteration order.
func (v *Variable) Less(other *Variable) bool { return v.id < other.id }

// String renders the variable's name for diagnostics; it plays no role in
// equality or ordering.
func (v *Variable) String() string { return v.name }

// Universe is the set of all variables mentioned anywhere in an Event,
// kept sorted by id and de-duplicated so iteration order is deterministic.
type Universe struct {
	variables []*Variable
}

// NewUniverse builds a Universe from a set of variables, sorting by id and
// dropping duplicates.
func NewUniverse(vars ...*Variable) *Universe {
	sorted := append([]*Variable{}, vars...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var deduped []*Variable
	for _, v := range sorted {
		if len(deduped) == 0 || !deduped[len(deduped)-1].Equal(v) {
			deduped = append(deduped, v)
		}
	}
	return &Universe{variables: deduped}
}

// Union returns a new Universe containing every variable in u and other.
func (u *Universe) Union(other *Universe) *Universe {
	return NewUniverse(append(append([]*Variable{}, u.variables...), other.variables...)...)
}

// Variables returns the universe's variables in id order.
func (u *Universe) Variables() []*Variable { return u.variables }

// Contains reports whether v is a member of this universe.
func (u *Universe) Contains(v *Variable) bool {
	for _, w := range u.variables {
		if w.Equal(v) {
			return true
		}
	}
	return false
}
