/*
Package polyreal is a sparse univariate polynomial algebra library over
float64 coefficients. It provides ring arithmetic (addition, subtraction,
multiplication, Euclidean division and remainder), calculus operators
(derivative and indefinite integral) and a numerical real-root isolation
algorithm based on derivative-chain monotonicity bracketing, together
with a gnuplot rendering adapter for sampled polynomial families.
*/
package polyreal
