package calc

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/utils"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/arith"
	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

// IsPrime reports whether the quadratic integer z is prime in its ring. An
// element whose norm is a rational prime is always prime; purely real
// elements are classified by how the rational prime splits, via the
// Kronecker symbol of the discriminant at 2 and the Legendre symbol at odd
// primes. The Gaussian and Eisenstein rings get their unit-rotation special
// cases. A negative norm in an imaginary ring is mathematically impossible
// and is surfaced as an overflow, never silently corrected.
func (c *Calculator) IsPrime(z quad.Integer) (bool, error) {
	r := z.Ring()
	if r == (quad.Ring{}) {
		return false, ErrNilRing
	}
	n, err := z.Norm()
	if err != nil {
		return false, err
	}
	if r.IsImaginary() && n < 0 {
		return false, fmt.Errorf("norm %d negative in imaginary ring %v: %w", n, r, quad.ErrOverflow)
	}
	if arith.IsPrime64(n) {
		return true, nil
	}
	d := r.Radicand()

	if d == -1 && z.RegPart() == 0 {
		b := z.SurdPart()
		if b < 0 {
			b = -b
		}
		m, _ := arith.Mod(b, 4)
		return arith.IsPrime64(b) && m == 3, nil
	}

	if d == -3 {
		// Rotate through the six Eisenstein units looking for a purely real
		// associate.
		rot, _ := quad.NewInteger(1, 1, r, 2)
		w := z
		for i := 0; i < 6; i++ {
			if w.SurdPart() == 0 {
				p := w.RegPart()
				if p < 0 {
					p = -p
				}
				m, _ := arith.Mod(p, 3)
				return arith.IsPrime64(p) && m == 2, nil
			}
			if w, err = w.Times(rot); err != nil {
				return false, err
			}
		}
		return false, nil
	}

	if z.SurdPart() == 0 {
		p := z.RegPart()
		if p < 0 {
			p = -p
		}
		if !arith.IsPrime64(p) {
			return false, nil
		}
		if p == 2 {
			k, err := arith.SymbolKronecker(r.Discriminant(), 2)
			return k == -1, err
		}
		dm, _ := arith.Mod(d, p)
		if dm == 0 {
			// p divides the radicand, so p ramifies.
			return false, nil
		}
		l, err := arith.SymbolLegendre(d, p)
		if err != nil {
			return false, err
		}
		return l == -1, nil
	}
	return false, nil
}

// IsIrreducible reports whether z has no proper divisors. In norm-Euclidean
// rings irreducibility coincides with primality; elsewhere a bounded
// trial-division search over candidate divisors decides.
func (c *Calculator) IsIrreducible(z quad.Integer) (bool, error) {
	r := z.Ring()
	if r == (quad.Ring{}) {
		return false, ErrNilRing
	}
	n, err := z.Norm()
	if err != nil {
		return false, err
	}
	if n < 0 {
		n = -n
	}
	if n < 2 || arith.IsPrime64(n) {
		return true, nil
	}
	if IsNormEuclidean(r) {
		return c.IsPrime(z)
	}
	_, found, err := c.properDivisor(z)
	if err != nil {
		return false, err
	}
	return !found, nil
}

// properDivisor searches for a divisor of z that is neither a unit nor an
// associate of z. The candidate norms are the proper divisors of |N(z)|.
func (c *Calculator) properDivisor(z quad.Integer) (quad.Integer, bool, error) {
	n, err := z.Norm()
	if err != nil {
		return quad.Integer{}, false, err
	}
	if n < 0 {
		n = -n
	}
	if n < 4 {
		return quad.Integer{}, false, nil
	}
	r := z.Ring()
	eps, err := c.realUnitValue(r)
	if err != nil {
		return quad.Integer{}, false, err
	}
	for m := int64(2); m <= n/2; m++ {
		if n%m != 0 {
			continue
		}
		for _, cand := range candidatesOfNorm(r, m, eps) {
			if _, err := z.DividedBy(cand); err == nil {
				return cand, true, nil
			}
		}
	}
	return quad.Integer{}, false, nil
}

// realUnitValue returns the numeric value of the fundamental unit for real
// rings, used to bound candidate search windows, and 0 for imaginary rings.
func (c *Calculator) realUnitValue(r quad.Ring) (float64, error) {
	if !r.IsReal() {
		return 0, nil
	}
	u, err := c.FundamentalUnit(r)
	if err != nil {
		return 0, err
	}
	v, _ := u.BigFloat(unitFloatPrec).Float64()
	return v, nil
}

// candidatesOfNorm enumerates the elements of r with |norm| == m, up to the
// sign of the whole element. For real rings the surd part is bounded by the
// fundamental unit window eps, which guarantees every divisor has an
// associate inside the box.
func candidatesOfNorm(r quad.Ring, m int64, eps float64) []quad.Integer {
	var out []quad.Integer
	seen := make(map[quad.Integer]struct{})
	add := func(a, b, denom int64) {
		if z, err := quad.NewInteger(a, b, r, denom); err == nil {
			if _, ok := seen[z]; !ok {
				seen[z] = struct{}{}
				out = append(out, z)
			}
		}
	}
	d := r.Radicand()
	denoms := []int64{1}
	if r.HasHalfIntegers() {
		denoms = append(denoms, 2)
	}
	for _, denom := range denoms {
		if r.IsImaginary() {
			absD := -d
			target := m * denom * denom
			for b := int64(0); absD*b*b <= target; b++ {
				rem := target - absD*b*b
				a, ok := exactSqrt(rem)
				if !ok {
					continue
				}
				add(a, b, denom)
				add(a, -b, denom)
			}
			continue
		}
		bMax := utils.Max(int64(math.Ceil(float64(denom)*math.Sqrt(float64(m)/float64(d))*eps)), 1)
		for b := int64(0); b <= bMax; b++ {
			base := new(big.Int).SetInt64(d)
			base.Mul(base, big.NewInt(b*b))
			for _, sign := range []int64{1, -1} {
				rhs := new(big.Int).Add(base, big.NewInt(sign*m*denom*denom))
				if rhs.Sign() < 0 || !rhs.IsInt64() {
					continue
				}
				a, ok := exactSqrt(rhs.Int64())
				if !ok {
					continue
				}
				add(a, b, denom)
				add(a, -b, denom)
			}
		}
	}
	return out
}

// exactSqrt returns the integer square root of n when n is a perfect square.
func exactSqrt(n int64) (int64, bool) {
	if n < 0 {
		return 0, false
	}
	s := new(big.Int).Sqrt(new(big.Int).SetInt64(n))
	root := s.Int64()
	if root*root == n {
		return root, true
	}
	return 0, false
}
