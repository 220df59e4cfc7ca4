package quad

import (
	"errors"
	"math"
	"testing"
)

func mustRing(t *testing.T, d int64) Ring {
	t.Helper()
	r, err := NewRing(d)
	if err != nil {
		t.Fatalf("NewRing(%d) failed: %v", d, err)
	}
	return r
}

func mustInteger(t *testing.T, a, b int64, r Ring, denom int64) Integer {
	t.Helper()
	z, err := NewInteger(a, b, r, denom)
	if err != nil {
		t.Fatalf("NewInteger(%d, %d, %v, %d) failed: %v", a, b, r, denom, err)
	}
	return z
}

func TestNewIntegerValidation(t *testing.T) {
	gaussian := mustRing(t, -1)
	golden := mustRing(t, 5)

	if _, err := NewInteger(1, 1, gaussian, 2); !errors.Is(err, ErrNotInRing) {
		t.Fatalf("half-integers are not valid in Z[i], got %v", err)
	}
	if _, err := NewInteger(1, 2, golden, 2); !errors.Is(err, ErrNotInRing) {
		t.Fatalf("mixed parity over 2 is not a ring element, got %v", err)
	}
	if _, err := NewInteger(1, 1, golden, 3); !errors.Is(err, ErrNotInRing) {
		t.Fatalf("denominator 3 is never valid, got %v", err)
	}
	if _, err := NewInteger(1, 1, Ring{}, 1); err == nil {
		t.Fatalf("the zero ring must be rejected")
	}

	phi := mustInteger(t, 1, 1, golden, 2)
	if phi.Denom() != 2 {
		t.Fatalf("(1+√5)/2 should keep denominator 2")
	}
	reduced := mustInteger(t, 4, 2, golden, 2)
	if reduced.Denom() != 1 || reduced.RegPart() != 2 || reduced.SurdPart() != 1 {
		t.Fatalf("(4+2√5)/2 should normalize to 2+√5, got %v", reduced)
	}
}

func TestNormAndTrace(t *testing.T) {
	gaussian := mustRing(t, -1)
	z := mustInteger(t, 1, 1, gaussian, 1)
	n, err := z.Norm()
	if err != nil {
		t.Fatalf("Norm(1+i) failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("Norm(1+i) = %d, want 2", n)
	}
	tr, err := z.Trace()
	if err != nil {
		t.Fatalf("Trace(1+i) failed: %v", err)
	}
	if tr != 2 {
		t.Fatalf("Trace(1+i) = %d, want 2", tr)
	}

	golden := mustRing(t, 5)
	phi := mustInteger(t, 1, 1, golden, 2)
	n, err = phi.Norm()
	if err != nil {
		t.Fatalf("Norm(φ) failed: %v", err)
	}
	if n != -1 {
		t.Fatalf("Norm(φ) = %d, want -1", n)
	}
	tr, _ = phi.Trace()
	if tr != 1 {
		t.Fatalf("Trace(φ) = %d, want 1", tr)
	}
	if !phi.IsUnitValue() {
		t.Fatalf("φ should have unit norm")
	}
}

func TestArithmetic(t *testing.T) {
	gaussian := mustRing(t, -1)
	onePlusI := mustInteger(t, 1, 1, gaussian, 1)
	oneMinusI := mustInteger(t, 1, -1, gaussian, 1)

	prod, err := onePlusI.Times(oneMinusI)
	if err != nil {
		t.Fatalf("(1+i)(1-i) failed: %v", err)
	}
	if !prod.Equal(NewWholeNumber(2, gaussian)) {
		t.Fatalf("(1+i)(1-i) = %v, want 2", prod)
	}

	sum, err := onePlusI.Plus(oneMinusI)
	if err != nil {
		t.Fatalf("(1+i)+(1-i) failed: %v", err)
	}
	if !sum.Equal(NewWholeNumber(2, gaussian)) {
		t.Fatalf("(1+i)+(1-i) = %v, want 2", sum)
	}

	diff, err := onePlusI.Minus(oneMinusI)
	if err != nil {
		t.Fatalf("(1+i)-(1-i) failed: %v", err)
	}
	if diff.RegPart() != 0 || diff.SurdPart() != 2 {
		t.Fatalf("(1+i)-(1-i) = %v, want 2i", diff)
	}

	if !onePlusI.Conjugate().Equal(oneMinusI) {
		t.Fatalf("conjugate of 1+i should be 1-i")
	}
}

func TestGoldenRatioArithmetic(t *testing.T) {
	golden := mustRing(t, 5)
	phi := mustInteger(t, 1, 1, golden, 2)

	squared, err := phi.Times(phi)
	if err != nil {
		t.Fatalf("φ² failed: %v", err)
	}
	plusOne, err := phi.Plus(NewWholeNumber(1, golden))
	if err != nil {
		t.Fatalf("φ+1 failed: %v", err)
	}
	if !squared.Equal(plusOne) {
		t.Fatalf("φ² = %v should equal φ+1 = %v", squared, plusOne)
	}
}

func TestCrossRingArithmetic(t *testing.T) {
	gaussian := mustRing(t, -1)
	eisenstein := mustRing(t, -3)

	three := NewWholeNumber(3, gaussian)
	omega := mustInteger(t, 1, 1, eisenstein, 2)

	// A zero surd part lets the operand be reinterpreted.
	prod, err := three.Times(omega)
	if err != nil {
		t.Fatalf("3 × ω failed: %v", err)
	}
	if prod.Ring() != eisenstein {
		t.Fatalf("3 × ω should land in Z[ω], got %v", prod.Ring())
	}

	i := mustInteger(t, 0, 1, gaussian, 1)
	if _, err := i.Times(omega); !errors.Is(err, ErrAlgebraicDegreeOverflow) {
		t.Fatalf("i × ω should overflow the algebraic degree, got %v", err)
	}
}

func TestNumericApproximations(t *testing.T) {
	gaussian := mustRing(t, -1)
	z := mustInteger(t, 1, 1, gaussian, 1)
	if math.Abs(z.Abs()-math.Sqrt2) > 1e-12 {
		t.Fatalf("|1+i| = %v, want √2", z.Abs())
	}
	if math.Abs(z.Angle()-math.Pi/4) > 1e-12 {
		t.Fatalf("arg(1+i) = %v, want π/4", z.Angle())
	}

	pell := mustRing(t, 2)
	u := mustInteger(t, 1, 1, pell, 1)
	v, _ := u.BigFloat(128).Float64()
	if math.Abs(v-(1+math.Sqrt2)) > 1e-12 {
		t.Fatalf("numeric value of 1+√2 = %v", v)
	}
}

func TestStringAndMinPolynomial(t *testing.T) {
	gaussian := mustRing(t, -1)
	golden := mustRing(t, 5)

	cases := []struct {
		z        Integer
		str, pol string
	}{
		{mustInteger(t, 1, 1, gaussian, 1), "1 + i", "x^2 - 2x + 2"},
		{mustInteger(t, 0, -1, gaussian, 1), "-i", "x^2 + 1"},
		{mustInteger(t, 1, 1, golden, 2), "(1 + √5)/2", "x^2 - x - 1"},
		{NewWholeNumber(-7, gaussian), "-7", "x + 7"},
	}
	for _, tc := range cases {
		if got := tc.z.String(); got != tc.str {
			t.Fatalf("String() = %q, want %q", got, tc.str)
		}
		if got := tc.z.MinPolynomialString(); got != tc.pol {
			t.Fatalf("MinPolynomialString(%v) = %q, want %q", tc.z, got, tc.pol)
		}
	}
}

func TestNormOverflow(t *testing.T) {
	gaussian := mustRing(t, -1)
	z := mustInteger(t, math.MaxInt64, 1, gaussian, 1)

	if _, err := z.Norm(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Norm of %v should overflow int64, got %v", z, err)
	}
	if _, err := z.Trace(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("Trace of %v should overflow int64, got %v", z, err)
	}
	// The exact norm is still available.
	if z.BigNorm().IsInt64() {
		t.Fatalf("BigNorm of %v should exceed the int64 range", z)
	}
}
