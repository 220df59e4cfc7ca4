package calc

import (
	"errors"
	"fmt"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

var (
	// ErrNilRing is returned when a ring-dependent function receives the
	// zero Ring value.
	ErrNilRing = errors.New("calc: ring is the zero value")

	// ErrNotRealRing is returned by FundamentalUnit for imaginary rings,
	// whose unit group is finite and has no fundamental unit.
	ErrNotRealRing = errors.New("calc: fundamental unit requires a real quadratic ring")

	// ErrSearchBudgetExceeded is returned when a brute-force search gives up
	// before converging. Raising the budget may help; overflow will not.
	ErrSearchBudgetExceeded = errors.New("calc: search budget exceeded")
)

// NonEuclideanDomainError reports a GCD request on a ring not known to be
// norm-Euclidean. It carries both operands: the obstruction is a missing
// proof, not a proven impossibility, so a caller may still retry by hand.
type NonEuclideanDomainError struct {
	A, B quad.Integer
}

func (e *NonEuclideanDomainError) Error() string {
	return fmt.Sprintf("calc: gcd(%v, %v): %v is not known to be norm-Euclidean",
		e.A, e.B, e.A.Ring())
}

// NonUFDError reports a prime factorization request on a ring proven not to
// have unique factorization.
type NonUFDError struct {
	Ring quad.Ring
}

func (e *NonUFDError) Error() string {
	return fmt.Sprintf("calc: %v is not a unique factorization domain", e.Ring)
}
