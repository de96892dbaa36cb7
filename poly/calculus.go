package poly

// Derivative returns dp/dx: every term (power => coeff) with power > 0
// maps to (power-1 => power*coeff), constant terms vanish. The
// derivative of the zero or a constant polynomial is the zero
// polynomial.
func (p Polynomial) Derivative() Polynomial {
	out := NewPolynomial()
	for power, coeff := range p.coeffs {
		if power == 0 {
			continue
		}
		out.insert(power-1, float64(power)*coeff)
	}
	return out
}

// Integral returns the indefinite integral of p with integration
// constant c: every term (power => coeff) maps to
// (power+1 => coeff/(power+1)), then the constant term is set to c.
// No input term can land at power 0, so setting c never clobbers an
// integrated term.
func (p Polynomial) Integral(c float64) Polynomial {
	out := NewPolynomial()
	for power, coeff := range p.coeffs {
		out.insert(power+1, coeff/float64(power+1))
	}
	out.insert(0, c)
	return out
}
