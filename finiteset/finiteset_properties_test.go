package finiteset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/random-events/sigma-algebra/finiteset"
)

func propertyUniverse() *finiteset.Universe {
	return finiteset.NewUniverse("0", "1", "2", "3", "4", "5", "6")
}

func randSet(r *rand.Rand, u *finiteset.Universe) finiteset.Set {
	var elements []finiteset.SetElement
	for i := 0; i < u.Len(); i++ {
		if r.Intn(2) == 0 {
			elements = append(elements, finiteset.ElementAt(u, i))
		}
	}
	return finiteset.NewSet(u, elements...)
}

func coversEveryLabel(u *finiteset.Universe, contains func(string) bool) bool {
	for i := 0; i < u.Len(); i++ {
		if !contains(u.Label(i)) {
			return false
		}
	}
	return true
}

func TestPropertyElementSelfIntersectionAndComplement(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	u := propertyUniverse()

	for i := 0; i < 50; i++ {
		e := finiteset.ElementAt(u, r.Intn(u.Len()))

		assert.Equal(t, e.Index, e.IntersectionWith(e).Index)

		wrapped := finiteset.NewSet(u, e)
		complement := e.Complement()
		assert.True(t, wrapped.IntersectionWith(complement).IsEmpty())

		union := wrapped.UnionWith(complement)
		assert.True(t, coversEveryLabel(u, union.Contains))
	}
}

func TestPropertySetMakeDisjointPreservesMembership(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	u := propertyUniverse()

	for i := 0; i < 50; i++ {
		s := randSet(r, u)
		disjointed := s.MakeDisjoint()

		assert.True(t, disjointed.IsDisjoint())
		for j := 0; j < u.Len(); j++ {
			label := u.Label(j)
			assert.Equal(t, s.Contains(label), disjointed.Contains(label))
		}
	}
}

func TestPropertySetSimplifyShrinksOrPreservesAndKeepsMembership(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	u := propertyUniverse()

	for i := 0; i < 50; i++ {
		s := randSet(r, u)
		simplified := s.Simplify()

		assert.LessOrEqual(t, len(simplified.Members()), len(s.Members()))
		for j := 0; j < u.Len(); j++ {
			label := u.Label(j)
			assert.Equal(t, s.Contains(label), simplified.Contains(label))
		}
	}
}

func TestPropertySetDoubleComplementIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	u := propertyUniverse()

	for i := 0; i < 50; i++ {
		s := randSet(r, u)
		roundTripped := s.Complement().Complement()

		for j := 0; j < u.Len(); j++ {
			label := u.Label(j)
			assert.Equal(t, s.Contains(label), roundTripped.Contains(label))
		}
	}
}
