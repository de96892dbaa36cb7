package poly

import "errors"

var (
	// ErrInvalidPower is returned by Insert and NewFromTerms when a
	// negative power is supplied.
	ErrInvalidPower = errors.New("poly: negative power")

	// ErrDivisionByZeroPolynomial is returned by Div and Rem when the
	// divisor is the zero polynomial.
	ErrDivisionByZeroPolynomial = errors.New("poly: division by the zero polynomial")

	// ErrInvalidStep is returned by RealRoots when the step is not
	// strictly positive.
	ErrInvalidStep = errors.New("poly: step must be strictly positive")
)
