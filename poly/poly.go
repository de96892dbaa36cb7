// Package poly implements sparse univariate polynomials over float64
// coefficients, with ring arithmetic, Euclidean division, calculus
// operators and numerical real-root isolation.
package poly

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ALTree/bigfloat"

	"github.com/numlib/polyreal/utils"
)

// Term is a single power => coefficient pair.
type Term struct {
	Power int
	Coeff float64
}

// Polynomial is a sparse polynomial sum(coeff * x^power) stored as a
// power => coefficient map. The map never holds a zero coefficient:
// Insert elides entries that cancel to zero, keeping the representation
// canonical. The zero polynomial is the empty map.
//
// Polynomial values are safe to share between goroutines for read-only
// operations (At, Degree, Equal, ...); Insert mutates the receiver and
// must not race with readers of the same value.
type Polynomial struct {
	coeffs map[int]float64
}

// NewPolynomial returns the zero polynomial.
func NewPolynomial() Polynomial {
	return Polynomial{coeffs: map[int]float64{}}
}

// NewFromTerms builds a polynomial from power => coefficient pairs via
// repeated Insert. Zero coefficients are elided, later pairs overwrite
// earlier ones at the same power. Returns ErrInvalidPower if any pair
// carries a negative power.
func NewFromTerms(terms []Term) (Polynomial, error) {
	p := NewPolynomial()
	for _, term := range terms {
		if err := p.Insert(term.Power, term.Coeff); err != nil {
			return Polynomial{}, fmt.Errorf("cannot NewFromTerms: %w", err)
		}
	}
	return p, nil
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	q := Polynomial{coeffs: make(map[int]float64, len(p.coeffs))}
	for power, coeff := range p.coeffs {
		q.coeffs[power] = coeff
	}
	return q
}

// Insert sets the coefficient at the given power. A zero coefficient
// removes any stored entry for that power, preserving the canonical
// sparse form. Returns ErrInvalidPower if power is negative.
func (p *Polynomial) Insert(power int, coeff float64) error {
	if power < 0 {
		return fmt.Errorf("cannot Insert power %d: %w", power, ErrInvalidPower)
	}
	p.insert(power, coeff)
	return nil
}

// insert is Insert without the power check, for callers whose powers
// come from an already validated polynomial.
func (p *Polynomial) insert(power int, coeff float64) {
	if p.coeffs == nil {
		p.coeffs = map[int]float64{}
	}
	if coeff == 0 {
		delete(p.coeffs, power)
		return
	}
	p.coeffs[power] = coeff
}

// Coeff returns the coefficient at the given power, 0 if absent.
func (p Polynomial) Coeff(power int) float64 {
	return p.coeffs[power]
}

// Degree returns the maximum power with a non-zero coefficient. The
// second return value is false for the zero polynomial, whose degree
// is undefined.
func (p Polynomial) Degree() (degree int, ok bool) {
	for power := range p.coeffs {
		if !ok || power > degree {
			degree, ok = power, true
		}
	}
	return
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// At evaluates p at x. NaN and infinity propagate as usual for float64
// arithmetic; no overflow handling is performed.
func (p Polynomial) At(x float64) (y float64) {
	for power, coeff := range p.coeffs {
		y += coeff * math.Pow(x, float64(power))
	}
	return
}

// AtBig evaluates p at x with the precision of x, for checking the
// float64 round-off of At. Coefficients remain float64; only the
// evaluation is carried out in extended precision.
func (p Polynomial) AtBig(x *big.Float) (y *big.Float) {
	prec := x.Prec()
	y = new(big.Float).SetPrec(prec)

	// bigfloat.Pow is only defined for positive bases, so powers are
	// taken on |x| and the sign restored for odd powers.
	sign := x.Sign()
	abs := new(big.Float).SetPrec(prec).Abs(x)

	term := new(big.Float).SetPrec(prec)
	for power, coeff := range p.coeffs {
		term.SetFloat64(coeff)
		switch {
		case power == 0:
		case sign == 0:
			continue
		default:
			xp := bigfloat.Pow(abs, new(big.Float).SetPrec(prec).SetInt64(int64(power)))
			if sign < 0 && power&1 == 1 {
				xp.Neg(xp)
			}
			term.Mul(term, xp)
		}
		y.Add(y, term)
	}
	return
}

// Equal reports whether p and q represent the same polynomial. The
// comparison is bidirectional and skips zero coefficients on both
// sides, so a stale zero entry produced outside of Insert cannot break
// equality.
func (p Polynomial) Equal(q Polynomial) bool {
	for power, coeff := range p.coeffs {
		if coeff != 0 && q.Coeff(power) != coeff {
			return false
		}
	}
	for power, coeff := range q.coeffs {
		if coeff != 0 && p.Coeff(power) != coeff {
			return false
		}
	}
	return true
}

// Terms returns the non-zero terms of p sorted by descending power.
func (p Polynomial) Terms() []Term {
	powers := utils.GetSortedKeys(p.coeffs)
	terms := make([]Term, 0, len(powers))
	for i := len(powers) - 1; i >= 0; i-- {
		terms = append(terms, Term{Power: powers[i], Coeff: p.coeffs[powers[i]]})
	}
	return terms
}

// String renders p with terms in descending power order. The zero
// polynomial renders as "0".
func (p Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, term := range p.Terms() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%gx^%d", term.Coeff, term.Power)
	}
	return sb.String()
}
