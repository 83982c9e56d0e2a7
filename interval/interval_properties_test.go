package interval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/random-events/sigma-algebra/interval"
)

func randBorder(r *rand.Rand) interval.BorderType {
	if r.Intn(2) == 0 {
		return interval.Open
	}
	return interval.Closed
}

func randSimple(r *rand.Rand) interval.SimpleInterval[float64] {
	lower := r.Float64()*100 - 50
	upper := lower + r.Float64()*20
	switch r.Intn(4) {
	case 0:
		return interval.ClosedOpenWithBounds(lower, upper, interval.DefaultBounds[float64]())
	case 1:
		return interval.OpenClosedWithBounds(lower, upper, interval.DefaultBounds[float64]())
	case 2:
		return interval.ClosedWithBounds(lower, upper, interval.DefaultBounds[float64]())
	default:
		return interval.OpenWithBounds(lower, upper, interval.DefaultBounds[float64]())
	}
}

func randComposite(r *rand.Rand, n int) interval.Interval[float64] {
	members := make([]interval.SimpleInterval[float64], n)
	for i := range members {
		members[i] = randSimple(r)
	}
	return interval.NewInterval(members...)
}

func containsAny(iv interval.Interval[float64], x float64) bool {
	for _, m := range iv.Members() {
		if m.Contains(x) {
			return true
		}
	}
	return false
}

func samplePoints(r *rand.Rand, n int) []float64 {
	points := make([]float64, n)
	for i := range points {
		points[i] = r.Float64()*140 - 60
	}
	return points
}

func TestPropertySelfIntersectionAndComplement(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := randSimple(r)

		assert.True(t, s.IntersectionWith(s).Equal(s))

		wrapped := interval.NewInterval(s)
		complement := s.Complement()
		assert.True(t, wrapped.IntersectionWith(complement).IsEmpty())

		union := wrapped.UnionWith(complement).Simplify()
		assert.Len(t, union.Members(), 1)
		assert.True(t, union.Members()[0].Equal(interval.RealsSimple[float64]()))
	}
}

func TestPropertyMakeDisjointPreservesMembership(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		original := randComposite(r, 5)
		disjointed := original.MakeDisjoint()

		assert.True(t, disjointed.IsDisjoint())

		for _, x := range samplePoints(r, 30) {
			assert.Equal(t, containsAny(original, x), containsAny(disjointed, x))
		}
	}
}

func TestPropertySimplifyShrinksOrPreservesAndKeepsMembership(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		original := randComposite(r, 6)
		simplified := original.Simplify()

		assert.LessOrEqual(t, len(simplified.Members()), len(original.Members()))

		for _, x := range samplePoints(r, 30) {
			assert.Equal(t, containsAny(original, x), containsAny(simplified, x))
		}
	}
}

func TestPropertyUnionThenDifferenceMatchesPlainDifference(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		a := randComposite(r, 3)
		b := randComposite(r, 3)

		left := a.UnionWith(b).DifferenceWith(a)
		right := b.DifferenceWith(a)

		for _, x := range samplePoints(r, 30) {
			assert.Equal(t, containsAny(left, x), containsAny(right, x))
		}
	}
}

func TestPropertyDoubleComplementIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		original := randComposite(r, 4).Simplify()
		roundTripped := original.Complement().Complement().Simplify()

		for _, x := range samplePoints(r, 30) {
			assert.Equal(t, containsAny(original, x), containsAny(roundTripped, x))
		}
	}
}
