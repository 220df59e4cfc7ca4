package quad

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/utils/bignum"
)

// Integer is a quadratic integer (a + b√d)/denom with denom in {1, 2}. The
// denominator 2 is legal only in half-integer rings, with a and b both odd.
// Values are immutable and compared structurally.
type Integer struct {
	a, b  int64
	denom int64
	ring  Ring
}

// NewInteger constructs (a + b√d)/denom in the given ring, normalizing a
// denominator of 2 with both numerators even down to a denominator of 1.
func NewInteger(a, b int64, r Ring, denom int64) (Integer, error) {
	if r == (Ring{}) {
		return Integer{}, ErrInvalidRadicand
	}
	switch denom {
	case 1:
	case 2:
		if a%2 == 0 && b%2 == 0 {
			a /= 2
			b /= 2
			denom = 1
			break
		}
		if !r.HasHalfIntegers() || a%2 == 0 || b%2 == 0 {
			return Integer{}, fmt.Errorf("%w: (%d + %d√%d)/2", ErrNotInRing, a, b, r.d)
		}
	default:
		return Integer{}, fmt.Errorf("%w: denominator %d", ErrNotInRing, denom)
	}
	return Integer{a: a, b: b, denom: denom, ring: r}, nil
}

// NewWholeNumber wraps the ordinary integer n as n + 0√d in the given ring.
func NewWholeNumber(n int64, r Ring) Integer {
	return Integer{a: n, denom: 1, ring: r}
}

// RegPart returns the numerator of the regular part.
func (z Integer) RegPart() int64 { return z.a }

// SurdPart returns the numerator of the surd part.
func (z Integer) SurdPart() int64 { return z.b }

// Denom returns the denominator, 1 or 2.
func (z Integer) Denom() int64 { return z.denom }

// Ring returns the ring the integer belongs to.
func (z Integer) Ring() Ring { return z.ring }

// IsZero reports whether z is 0.
func (z Integer) IsZero() bool { return z.a == 0 && z.b == 0 }

// Equal reports structural equality.
func (z Integer) Equal(other Integer) bool { return z == other }

// BigNorm returns a² - db² over denom², exactly.
func (z Integer) BigNorm() *big.Int {
	a := new(big.Int).SetInt64(z.a)
	a.Mul(a, a)
	b := new(big.Int).SetInt64(z.b)
	b.Mul(b, b)
	b.Mul(b, new(big.Int).SetInt64(z.ring.d))
	a.Sub(a, b)
	if z.denom == 2 {
		a.Quo(a, big.NewInt(4))
	}
	return a
}

// Norm returns the norm of z, or ErrOverflow when it exceeds the int64 range.
func (z Integer) Norm() (int64, error) {
	n := z.BigNorm()
	if !n.IsInt64() {
		return 0, fmt.Errorf("norm of %v: %w", z, ErrOverflow)
	}
	return n.Int64(), nil
}

// Trace returns 2a/denom, or ErrOverflow when it exceeds the int64 range.
func (z Integer) Trace() (int64, error) {
	if z.denom == 2 {
		return z.a, nil
	}
	if z.a > math.MaxInt64/2 || z.a < math.MinInt64/2 {
		return 0, fmt.Errorf("trace of %v: %w", z, ErrOverflow)
	}
	return 2 * z.a, nil
}

// IsUnitValue reports whether the norm of z is 1 or -1.
func (z Integer) IsUnitValue() bool {
	return z.BigNorm().CmpAbs(big.NewInt(1)) == 0
}

// Conjugate returns (a - b√d)/denom.
func (z Integer) Conjugate() Integer {
	return Integer{a: z.a, b: -z.b, denom: z.denom, ring: z.ring}
}

// Negate returns -z.
func (z Integer) Negate() Integer {
	return Integer{a: -z.a, b: -z.b, denom: z.denom, ring: z.ring}
}

// reconcile brings two operands into a common ring. An operand with zero surd
// part is reinterpreted into the other's ring; otherwise the operation would
// leave the quadratic domain.
func reconcile(x, y Integer) (Integer, Integer, error) {
	if x.ring == y.ring {
		return x, y, nil
	}
	if x.b == 0 {
		return Integer{a: x.a, denom: 1, ring: y.ring}, y, nil
	}
	if y.b == 0 {
		return x, Integer{a: y.a, denom: 1, ring: x.ring}, nil
	}
	return Integer{}, Integer{}, fmt.Errorf("%v and %v: %w", x, y, ErrAlgebraicDegreeOverflow)
}

// fromBigParts builds (a + b√d)/den from exact big numerators, reducing the
// denominator and checking the int64 range.
func fromBigParts(a, b *big.Int, den int64, r Ring) (Integer, error) {
	two := big.NewInt(2)
	for den%2 == 0 && a.Bit(0) == 0 && b.Bit(0) == 0 {
		a.Quo(a, two)
		b.Quo(b, two)
		den /= 2
	}
	if den == 4 {
		// A product of two half-integers always has even numerators at
		// denominator 4, so this cannot be reached for valid operands.
		return Integer{}, fmt.Errorf("(%v + %v√%d)/4: %w", a, b, r.d, ErrNotInRing)
	}
	if !a.IsInt64() || !b.IsInt64() {
		return Integer{}, fmt.Errorf("(%v + %v√%d)/%d: %w", a, b, r.d, den, ErrOverflow)
	}
	return NewInteger(a.Int64(), b.Int64(), r, den)
}

// Plus returns x + y. Operands from different rings are admitted only when
// one of them has a zero surd part.
func (z Integer) Plus(other Integer) (Integer, error) {
	x, y, err := reconcile(z, other)
	if err != nil {
		return Integer{}, err
	}
	// Scale both operands to a common denominator of 2.
	a := new(big.Int).SetInt64(x.a)
	a.Mul(a, big.NewInt(2/x.denom))
	a.Add(a, new(big.Int).Mul(big.NewInt(y.a), big.NewInt(2/y.denom)))
	b := new(big.Int).SetInt64(x.b)
	b.Mul(b, big.NewInt(2/x.denom))
	b.Add(b, new(big.Int).Mul(big.NewInt(y.b), big.NewInt(2/y.denom)))
	return fromBigParts(a, b, 2, x.ring)
}

// Minus returns x - y.
func (z Integer) Minus(other Integer) (Integer, error) {
	return z.Plus(other.Negate())
}

// Times returns x × y.
func (z Integer) Times(other Integer) (Integer, error) {
	x, y, err := reconcile(z, other)
	if err != nil {
		return Integer{}, err
	}
	xa := new(big.Int).SetInt64(x.a)
	xb := new(big.Int).SetInt64(x.b)
	ya := new(big.Int).SetInt64(y.a)
	yb := new(big.Int).SetInt64(y.b)
	d := new(big.Int).SetInt64(x.ring.d)

	reg := new(big.Int).Mul(xa, ya)
	reg.Add(reg, new(big.Int).Mul(new(big.Int).Mul(xb, yb), d))
	surd := new(big.Int).Mul(xa, yb)
	surd.Add(surd, new(big.Int).Mul(xb, ya))

	return fromBigParts(reg, surd, x.denom*y.denom, x.ring)
}

// Re returns the real part as a float64 approximation.
func (z Integer) Re() float64 {
	if z.ring.IsImaginary() {
		return float64(z.a) / float64(z.denom)
	}
	return (float64(z.a) + float64(z.b)*math.Sqrt(float64(z.ring.d))) / float64(z.denom)
}

// Im returns the imaginary part as a float64 approximation; 0 in real rings.
func (z Integer) Im() float64 {
	if z.ring.IsImaginary() {
		return float64(z.b) * math.Sqrt(float64(-z.ring.d)) / float64(z.denom)
	}
	return 0
}

// Abs returns the absolute value of the numeric approximation.
func (z Integer) Abs() float64 {
	return math.Hypot(z.Re(), z.Im())
}

// Angle returns the argument of the numeric approximation, in radians.
func (z Integer) Angle() float64 {
	return math.Atan2(z.Im(), z.Re())
}

// BigFloat returns the numeric value (a + b√d)/denom at the given precision.
// For imaginary rings it returns the real part only.
func (z Integer) BigFloat(prec uint) *big.Float {
	v := bignum.NewFloat(float64(0), prec)
	v.SetInt64(z.a)
	if z.ring.IsReal() {
		surd := bignum.NewFloat(float64(0), prec)
		surd.SetInt64(z.ring.d)
		surd.Sqrt(surd)
		surd.Mul(surd, bignum.NewFloat(float64(0), prec).SetInt64(z.b))
		v.Add(v, surd)
	}
	if z.denom == 2 {
		v.Quo(v, bignum.NewFloat(float64(2), prec))
	}
	return v
}

func surdString(b, d int64) string {
	var coeff string
	switch b {
	case 1:
		coeff = ""
	case -1:
		coeff = "-"
	default:
		coeff = fmt.Sprintf("%d", b)
	}
	if d == -1 {
		return coeff + "i"
	}
	return fmt.Sprintf("%s√%d", coeff, d)
}

func (z Integer) String() string {
	if z.b == 0 {
		return fmt.Sprintf("%d", z.a)
	}
	var s string
	switch {
	case z.a == 0:
		s = surdString(z.b, z.ring.d)
	case z.b < 0:
		s = fmt.Sprintf("%d - %s", z.a, surdString(-z.b, z.ring.d))
	default:
		s = fmt.Sprintf("%d + %s", z.a, surdString(z.b, z.ring.d))
	}
	if z.denom == 2 {
		return "(" + s + ")/2"
	}
	return s
}

// MinPolynomialString renders the minimal polynomial of z over the rationals:
// x - a for rational integers, x² - Tx + N otherwise.
func (z Integer) MinPolynomialString() string {
	if z.b == 0 {
		if z.a < 0 {
			return fmt.Sprintf("x + %d", -z.a)
		}
		return fmt.Sprintf("x - %d", z.a)
	}
	trace := new(big.Int).SetInt64(z.a)
	trace.Mul(trace, big.NewInt(2))
	trace.Quo(trace, big.NewInt(z.denom))
	norm := z.BigNorm()
	s := "x^2"
	abs := new(big.Int).Abs(trace)
	coeff := abs.String() + "x"
	if abs.Cmp(big.NewInt(1)) == 0 {
		coeff = "x"
	}
	switch trace.Sign() {
	case 1:
		s += " - " + coeff
	case -1:
		s += " + " + coeff
	}
	switch norm.Sign() {
	case 1:
		s += fmt.Sprintf(" + %v", norm)
	case -1:
		s += fmt.Sprintf(" - %v", new(big.Int).Neg(norm))
	}
	return s
}
