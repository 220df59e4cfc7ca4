package calc

import (
	"errors"
	"fmt"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

// EuclideanGCD computes the greatest common divisor of two quadratic
// integers by the division algorithm, valid in the 21 rings known to be
// norm-Euclidean. Operands from different rings are reconciled only when one
// has a zero surd part. The result is sign-normalized: purely imaginary
// Gaussian results are rotated real, and a negative regular part is negated.
// The operation is symmetric in its arguments.
func (c *Calculator) EuclideanGCD(a, b quad.Integer) (quad.Integer, error) {
	if a.Ring() != b.Ring() {
		switch {
		case a.SurdPart() == 0:
			a = quad.NewWholeNumber(a.RegPart(), b.Ring())
		case b.SurdPart() == 0:
			b = quad.NewWholeNumber(b.RegPart(), a.Ring())
		default:
			return quad.Integer{}, fmt.Errorf("gcd of %v and %v: %w", a, b, quad.ErrAlgebraicDegreeOverflow)
		}
	}
	r := a.Ring()
	if r == (quad.Ring{}) {
		return quad.Integer{}, ErrNilRing
	}
	if !IsNormEuclidean(r) {
		return quad.Integer{}, &NonEuclideanDomainError{A: a, B: b}
	}

	if a.BigNorm().CmpAbs(b.BigNorm()) < 0 {
		a, b = b, a
	}
	for !b.IsZero() {
		rem, err := euclideanStep(a, b)
		if err != nil {
			return quad.Integer{}, err
		}
		a, b = b, rem
	}

	if r.Radicand() == -1 && a.RegPart() == 0 {
		rot, _ := quad.NewInteger(0, -1, r, 1)
		var err error
		if a, err = a.Times(rot); err != nil {
			return quad.Integer{}, err
		}
	}
	if a.RegPart() < 0 {
		a = a.Negate()
	}
	return a, nil
}

// euclideanStep returns a remainder of a modulo b with strictly smaller
// |norm|. When the exact quotient does not exist, the bounding candidates
// from the division failure are searched linearly: division in a quadratic
// ring has no single canonical rounded quotient.
func euclideanStep(a, b quad.Integer) (quad.Integer, error) {
	_, err := a.DividedBy(b)
	if err == nil {
		return quad.NewWholeNumber(0, a.Ring()), nil
	}
	var nd *quad.NotDivisibleError
	if !errors.As(err, &nd) {
		return quad.Integer{}, err
	}
	nb := b.BigNorm()
	for _, q := range nd.Bounding {
		prod, err := q.Times(b)
		if err != nil {
			continue
		}
		rem, err := a.Minus(prod)
		if err != nil {
			continue
		}
		if rem.BigNorm().CmpAbs(nb) < 0 {
			return rem, nil
		}
	}
	return quad.Integer{}, fmt.Errorf("no bounding quotient of %v / %v reduces the remainder norm", a, b)
}

// EuclideanGCD64 wraps two ordinary integers as zero-surd-part Gaussian
// integers and delegates to EuclideanGCD.
func (c *Calculator) EuclideanGCD64(a, b int64) (quad.Integer, error) {
	gaussian, err := quad.NewRing(-1)
	if err != nil {
		return quad.Integer{}, err
	}
	return c.EuclideanGCD(quad.NewWholeNumber(a, gaussian), quad.NewWholeNumber(b, gaussian))
}
