package quad

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidRadicand is returned by NewRing for radicands that are not
	// squarefree or are 0 or 1.
	ErrInvalidRadicand = errors.New("quad: radicand must be a squarefree integer other than 0 and 1")

	// ErrNotInRing is returned by NewInteger when the given numerators and
	// denominator do not describe an algebraic integer of the ring.
	ErrNotInRing = errors.New("quad: not an algebraic integer of this ring")

	// ErrAlgebraicDegreeOverflow is returned when arithmetic would combine
	// two quadratic integers from different rings, neither of which has a
	// zero surd part.
	ErrAlgebraicDegreeOverflow = errors.New("quad: operands from different rings give algebraic degree 4")

	// ErrDivisionByZero is returned by DividedBy for a zero divisor.
	ErrDivisionByZero = errors.New("quad: division by zero")

	// ErrOverflow indicates a norm or coefficient exceeded the representable
	// integer range. It is fatal: callers must not retry with the same width.
	ErrOverflow = errors.New("quad: arithmetic overflow")
)

// NotDivisibleError reports that an exact quotient does not exist. It carries
// the rational components of the would-be quotient and the ring elements
// bounding it, so callers can continue a remainder-based search.
type NotDivisibleError struct {
	Dividend, Divisor Integer
	RegQuotient       *big.Rat
	SurdQuotient      *big.Rat
	Bounding          []Integer
}

func (e *NotDivisibleError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "quad: %v is not divisible by %v (quotient %v + %v√%d)",
		e.Dividend, e.Divisor, e.RegQuotient, e.SurdQuotient, e.Dividend.ring.d)
	return sb.String()
}
