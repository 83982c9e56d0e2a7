package event_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/random-events/sigma-algebra/event"
	"github.com/random-events/sigma-algebra/finiteset"
	"github.com/random-events/sigma-algebra/interval"
	"github.com/random-events/sigma-algebra/variable"
)

func randClosedFloat(r *rand.Rand) variable.AnyComposite {
	lower := r.Float64()*100 - 50
	upper := lower + r.Float64()*20
	return variable.FromContinuous(interval.NewInterval(interval.ClosedInterval(lower, upper)))
}

func samplePointsOnX(r *rand.Rand, x *variable.Variable, n int) []event.Point {
	points := make([]event.Point, n)
	for i := range points {
		points[i] = event.Point{x: r.Float64()*140 - 60}
	}
	return points
}

func containsPointInEvent(e event.Event, point event.Point) bool {
	for _, m := range e.Members() {
		if m.Contains(point) {
			return true
		}
	}
	return false
}

func TestPropertySimpleEventSelfIntersectionAndComplement(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	x := variable.NewContinuous("x")

	for i := 0; i < 100; i++ {
		s := event.NewSimpleEvent(map[*variable.Variable]variable.AnyComposite{x: randClosedFloat(r)})

		assert.True(t, s.IntersectionWith(s).Equal(s))

		whole := event.FromSimpleEvent(s)
		complement := s.Complement()
		assert.True(t, whole.IntersectionWith(complement).IsEmpty())

		union := whole.UnionWith(complement)
		for _, p := range samplePointsOnX(r, x, 30) {
			assert.True(t, containsPointInEvent(union, p))
		}
	}
}

func TestPropertyEventMakeDisjointPreservesMembership(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	x := variable.NewContinuous("x")

	for i := 0; i < 50; i++ {
		var members []event.SimpleEvent
		for j := 0; j < 4; j++ {
			members = append(members, event.NewSimpleEvent(map[*variable.Variable]variable.AnyComposite{x: randClosedFloat(r)}))
		}
		original := event.NewEvent(members...)
		disjointed := original.MakeDisjoint()

		assert.True(t, disjointed.IsDisjoint())
		for _, p := range samplePointsOnX(r, x, 30) {
			assert.Equal(t, containsPointInEvent(original, p), containsPointInEvent(disjointed, p))
		}
	}
}

func TestPropertyEventSimplifyShrinksOrPreservesAndKeepsMembership(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	x := variable.NewContinuous("x")

	for i := 0; i < 50; i++ {
		var members []event.SimpleEvent
		for j := 0; j < 5; j++ {
			members = append(members, event.NewSimpleEvent(map[*variable.Variable]variable.AnyComposite{x: randClosedFloat(r)}))
		}
		original := event.NewEvent(members...)
		simplified := original.Simplify()

		assert.LessOrEqual(t, len(simplified.Members()), len(original.Members()))
		for _, p := range samplePointsOnX(r, x, 30) {
			assert.Equal(t, containsPointInEvent(original, p), containsPointInEvent(simplified, p))
		}
	}
}

func TestPropertySimpleEventComplementIsBoundedDisjointPartition(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	u := finiteset.NewUniverse("a", "b", "c")

	for i := 0; i < 50; i++ {
		x := variable.NewContinuous("x")
		color := variable.NewSymbolic("color", u)

		s := event.NewSimpleEvent(map[*variable.Variable]variable.AnyComposite{
			x:     randClosedFloat(r),
			color: variable.FromSymbolic(finiteset.NewSet(u, finiteset.ElementAt(u, r.Intn(u.Len())))),
		})

		complement := s.Complement()
		assert.LessOrEqual(t, len(complement.Members()), 2)
		assert.True(t, complement.IsDisjoint())

		for _, p := range samplePointsOnX(r, x, 10) {
			for labelIdx := 0; labelIdx < u.Len(); labelIdx++ {
				point := event.Point{x: p[x], color: u.Label(labelIdx)}
				inOriginal := s.Contains(point)
				inComplement := false
				for _, m := range complement.Members() {
					if m.Contains(point) {
						inComplement = true
						break
					}
				}
				assert.NotEqual(t, inOriginal, inComplement)
			}
		}
	}
}

func TestPropertyEventDoubleComplementIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(24))
	x := variable.NewContinuous("x")

	for i := 0; i < 50; i++ {
		var members []event.SimpleEvent
		for j := 0; j < 3; j++ {
			members = append(members, event.NewSimpleEvent(map[*variable.Variable]variable.AnyComposite{x: randClosedFloat(r)}))
		}
		original := event.NewEvent(members...).Simplify()
		roundTripped := original.Complement().Complement().Simplify()

		for _, p := range samplePointsOnX(r, x, 30) {
			assert.Equal(t, containsPointInEvent(original, p), containsPointInEvent(roundTripped, p))
		}
	}
}
