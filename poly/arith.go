package poly

import "fmt"

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	out := p.Clone()
	for power, coeff := range q.coeffs {
		out.insert(power, out.Coeff(power)+coeff)
	}
	return out
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	out := p.Clone()
	for power, coeff := range q.coeffs {
		out.insert(power, out.Coeff(power)-coeff)
	}
	return out
}

// Mul returns p * q. Cross terms from distinct left terms can land at
// the same power, so contributions accumulate instead of overwriting.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	out := NewPolynomial()
	for pa, ca := range p.coeffs {
		for pb, cb := range q.coeffs {
			out.insert(pa+pb, out.Coeff(pa+pb)+ca*cb)
		}
	}
	return out
}

// Div returns the quotient of the Euclidean division p / q, computed by
// long division over the float64 coefficients. The quotient is the zero
// polynomial when p is zero or deg(p) < deg(q). Returns
// ErrDivisionByZeroPolynomial when q is the zero polynomial.
func (p Polynomial) Div(q Polynomial) (Polynomial, error) {
	divisorDeg, ok := q.Degree()
	if !ok {
		return Polynomial{}, fmt.Errorf("cannot Div: %w", ErrDivisionByZeroPolynomial)
	}
	divisorLead := q.Coeff(divisorDeg)

	quotient := NewPolynomial()
	rem := p.Clone()
	for {
		remDeg, ok := rem.Degree()
		if !ok || remDeg < divisorDeg {
			return quotient, nil
		}

		shift := remDeg - divisorDeg
		factor := rem.Coeff(remDeg) / divisorLead
		quotient.insert(shift, factor)

		for power, coeff := range q.coeffs {
			rem.insert(power+shift, rem.Coeff(power+shift)-factor*coeff)
		}
		// The leading terms cancel algebraically but float64
		// subtraction of near-equal values may leave a residue; the
		// entry is removed outright so the degree strictly decreases
		// and the loop terminates.
		delete(rem.coeffs, remDeg)
	}
}

// Rem returns the remainder of the Euclidean division, p - (p/q)*q.
// Returns ErrDivisionByZeroPolynomial when q is the zero polynomial.
func (p Polynomial) Rem(q Polynomial) (Polynomial, error) {
	quotient, err := p.Div(q)
	if err != nil {
		return Polynomial{}, fmt.Errorf("cannot Rem: %w", err)
	}
	return p.Sub(quotient.Mul(q)), nil
}
