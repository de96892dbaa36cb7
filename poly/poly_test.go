package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestPoly builds a polynomial from a power => coefficient map,
// failing the test on invalid powers.
func newTestPoly(t *testing.T, terms map[int]float64) Polynomial {
	t.Helper()
	p := NewPolynomial()
	for power, coeff := range terms {
		require.NoError(t, p.Insert(power, coeff))
	}
	return p
}

func TestDegree(t *testing.T) {
	for _, tc := range []struct {
		terms  map[int]float64
		degree int
	}{
		{map[int]float64{200: 0, 100: 1, 0: 5}, 100},
		{map[int]float64{1: 1, 2: 5, 0: 5, 3: -2, 4: -1, 5: 1}, 5},
		{map[int]float64{3: -1, 2: -10, 1: 10, 0: 15}, 3},
		{map[int]float64{1: 10, 0: 15}, 1},
		{map[int]float64{0: 15}, 0},
	} {
		degree, ok := newTestPoly(t, tc.terms).Degree()
		require.True(t, ok)
		require.Equal(t, tc.degree, degree)
	}

	_, ok := NewPolynomial().Degree()
	require.False(t, ok)
}

func TestInsert(t *testing.T) {
	t.Run("NegativePower", func(t *testing.T) {
		p := NewPolynomial()
		require.ErrorIs(t, p.Insert(-1, 1), ErrInvalidPower)
		require.True(t, p.IsZero())
	})

	t.Run("ZeroCoeffRemoves", func(t *testing.T) {
		p := NewPolynomial()
		require.NoError(t, p.Insert(3, 5))
		require.NoError(t, p.Insert(3, 0))
		require.True(t, p.IsZero())
		require.True(t, p.Equal(NewPolynomial()))
	})

	t.Run("Overwrite", func(t *testing.T) {
		p := NewPolynomial()
		require.NoError(t, p.Insert(2, 5))
		require.NoError(t, p.Insert(2, -7))
		require.Equal(t, -7.0, p.Coeff(2))
	})
}

func TestNewFromTerms(t *testing.T) {
	p, err := NewFromTerms([]Term{{Power: 2, Coeff: 1}, {Power: 1, Coeff: -5}, {Power: 0, Coeff: 6}})
	require.NoError(t, err)
	require.True(t, p.Equal(newTestPoly(t, map[int]float64{2: 1, 1: -5, 0: 6})))

	_, err = NewFromTerms([]Term{{Power: 1, Coeff: 1}, {Power: -2, Coeff: 3}})
	require.ErrorIs(t, err, ErrInvalidPower)
}

func TestAt(t *testing.T) {
	p := newTestPoly(t, map[int]float64{1: 1, 2: 5, 0: 5, 3: -2, 4: -1, 5: 1})
	require.Equal(t, 161.0, p.At(3.0))
	require.Equal(t, 5.0, p.At(0.0))
	require.Equal(t, 0.0, NewPolynomial().At(3.0))
}

func TestAtBig(t *testing.T) {
	p := newTestPoly(t, map[int]float64{1: 1, 2: 5, 0: 5, 3: -2, 4: -1, 5: 1})

	for _, x := range []float64{3, 0, -2, 0.5, -0.25} {
		y, _ := p.AtBig(new(big.Float).SetPrec(128).SetFloat64(x)).Float64()
		require.InDelta(t, p.At(x), y, 1e-9)
	}
}

func TestIgnoreZeroCoeff(t *testing.T) {
	zeros := newTestPoly(t, map[int]float64{4: 0, 3: 0, 2: 0, 1: 0})
	require.True(t, zeros.Equal(NewPolynomial()))
	require.True(t, NewPolynomial().Equal(zeros))

	p := newTestPoly(t, map[int]float64{4: 1, 2: -3})
	q := newTestPoly(t, map[int]float64{4: 1, 3: 0, 2: -3, 1: 0})
	require.True(t, p.Equal(q))
	require.True(t, q.Equal(p))
}

func TestEqual(t *testing.T) {
	p := newTestPoly(t, map[int]float64{2: 1, 0: -1})
	require.False(t, p.Equal(newTestPoly(t, map[int]float64{2: 1})))
	require.False(t, newTestPoly(t, map[int]float64{2: 1}).Equal(p))
	require.False(t, p.Equal(newTestPoly(t, map[int]float64{2: 1, 0: 1})))

	// A stale zero entry bypassing Insert must not break equality in
	// either direction.
	q := Polynomial{coeffs: map[int]float64{2: 1, 0: -1, 5: 0}}
	require.True(t, p.Equal(q))
	require.True(t, q.Equal(p))
}

func TestClone(t *testing.T) {
	p := newTestPoly(t, map[int]float64{2: 1, 0: -1})
	q := p.Clone()
	require.NoError(t, q.Insert(2, 7))
	require.Equal(t, 1.0, p.Coeff(2))
	require.Equal(t, 7.0, q.Coeff(2))
}

func TestString(t *testing.T) {
	require.Equal(t, "0", NewPolynomial().String())
	require.Equal(t, "1x^2 -5x^1 6x^0", newTestPoly(t, map[int]float64{1: -5, 0: 6, 2: 1}).String())
	require.Equal(t, "-0.5x^3 10x^0", newTestPoly(t, map[int]float64{0: 10, 3: -0.5}).String())
}
