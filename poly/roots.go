package poly

import "fmt"

// Reflect returns p reflected about the y-axis, i.e. the polynomial
// x => p(-x): coefficients of odd powers are negated, even powers are
// unchanged.
func (p Polynomial) Reflect() Polynomial {
	out := NewPolynomial()
	for power, coeff := range p.coeffs {
		if power&1 == 1 {
			coeff = -coeff
		}
		out.insert(power, coeff)
	}
	return out
}

// RealRoots approximates the real roots of p to the step resolution dx,
// returning them as zero root first (if any), then positive roots in
// increasing order, then negative roots in increasing magnitude order.
// Duplicates are not removed and multiple roots are not guaranteed a
// fixed report count: this is a best-effort finite-difference sweep,
// not an algebraic solver. Returns ErrInvalidStep when dx <= 0.
func (p Polynomial) RealRoots(dx float64) ([]float64, error) {
	if dx <= 0 {
		return nil, fmt.Errorf("cannot RealRoots with step %v: %w", dx, ErrInvalidStep)
	}

	roots := []float64{}
	switch len(p.coeffs) {
	case 0:
		// The zero polynomial: every x is a root, none is reported.
		return roots, nil
	case 1:
		// A single term c*x^n has 0 as only real root when n > 0, and
		// none when n == 0.
		for power := range p.coeffs {
			if power > 0 {
				roots = append(roots, 0)
			}
		}
		return roots, nil
	}

	if p.At(0) == 0 {
		roots = append(roots, 0)
	}
	roots = append(roots, p.positiveRoots(dx)...)
	for _, root := range p.Reflect().positiveRoots(dx) {
		roots = append(roots, -root)
	}
	return roots, nil
}

// positiveRoots sweeps x forward from dx in steps of dx and records a
// root at every sample where the sign of p changed since the previous
// sample. The sweep stops as soon as p and its whole derivative chain
// share a strict sign at the current sample: past that point the
// leading term dominates and p is certifiably monotone and unbounded,
// so no further crossing occurs. The stopping rule is a heuristic, not
// a proven bound; very flat multiple roots right past the stopping
// sample can be missed for small dx.
func (p Polynomial) positiveRoots(dx float64) (roots []float64) {
	degree, ok := p.Degree()
	if !ok || degree == 0 {
		return nil
	}

	// p', p'', ..., p^(degree); the last one is a non-zero constant.
	chain := make([]Polynomial, 0, degree)
	d := p
	for i := 0; i < degree; i++ {
		d = d.Derivative()
		chain = append(chain, d)
	}

	// The detector seeds at the origin so a crossing strictly inside
	// the first step is still caught at x = dx. When p(0) == 0 this
	// re-reports the origin zero at dx; duplicates are allowed.
	prev := p.At(0)
	for x := dx; ; x += dx {
		y := p.At(x)
		if prev*y <= 0 {
			roots = append(roots, x)
		}
		if monotoneBeyond(y, chain, x) {
			return roots
		}
		prev = y
	}
}

// monotoneBeyond reports whether y and every derivative in chain share
// a strict sign at x.
func monotoneBeyond(y float64, chain []Polynomial, x float64) bool {
	increasing := y > 0
	decreasing := y < 0
	for _, d := range chain {
		if !increasing && !decreasing {
			return false
		}
		v := d.At(x)
		increasing = increasing && v > 0
		decreasing = decreasing && v < 0
	}
	return increasing || decreasing
}
