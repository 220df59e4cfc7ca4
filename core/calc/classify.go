package calc

import (
	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

// heegnerNumbers are the nine radicands whose imaginary quadratic rings are
// unique factorization domains.
var heegnerNumbers = map[int64]bool{
	-1: true, -2: true, -3: true, -7: true, -11: true,
	-19: true, -43: true, -67: true, -163: true,
}

// normEuclideanImaginary are the radicands of the five imaginary quadratic
// rings where |N| is a Euclidean function.
var normEuclideanImaginary = map[int64]bool{
	-1: true, -2: true, -3: true, -7: true, -11: true,
}

// normEuclideanReal are the sixteen real radicands known to give
// norm-Euclidean rings.
var normEuclideanReal = map[int64]bool{
	2: true, 3: true, 5: true, 6: true, 7: true, 11: true, 13: true,
	17: true, 19: true, 21: true, 29: true, 33: true, 37: true, 41: true,
	57: true, 73: true,
}

// IsNormEuclidean reports whether |N| is known to serve as a Euclidean
// function for the ring.
func IsNormEuclidean(r quad.Ring) bool {
	if r.IsImaginary() {
		return normEuclideanImaginary[r.Radicand()]
	}
	return normEuclideanReal[r.Radicand()]
}

// IsUFD reports whether the ring has unique factorization: membership in the
// Heegner set for imaginary rings, a known norm-Euclidean radicand or class
// number 1 for real rings.
func (c *Calculator) IsUFD(r quad.Ring) (bool, error) {
	if r == (quad.Ring{}) {
		return false, ErrNilRing
	}
	if r.IsImaginary() {
		return heegnerNumbers[r.Radicand()], nil
	}
	if normEuclideanReal[r.Radicand()] {
		return true, nil
	}
	h, err := c.FieldClassNumber(r)
	if err != nil {
		return false, err
	}
	return h == 1, nil
}
