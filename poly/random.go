package poly

import (
	"io"

	"github.com/numlib/polyreal/utils/sampling"
)

// NewRandom returns a polynomial of exactly the given degree with
// coefficients drawn uniformly from [-bound, bound] using prng. The
// leading coefficient is redrawn until non-zero; other coefficients
// that draw zero are simply elided. A negative degree yields the zero
// polynomial.
func NewRandom(prng io.Reader, degree int, bound float64) Polynomial {
	p := NewPolynomial()
	if degree < 0 {
		return p
	}
	for power := 0; power <= degree; power++ {
		p.insert(power, sampling.RandFloat64(prng, -bound, bound))
	}
	for p.Coeff(degree) == 0 {
		p.insert(degree, sampling.RandFloat64(prng, -bound, bound))
	}
	return p
}
