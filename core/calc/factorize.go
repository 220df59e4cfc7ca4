package calc

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/arith"
	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

// Factorize decomposes z into a leading unit followed by primes in ascending
// order of |norm|, each placed in the canonical primary sector. The product
// of the returned factors is exactly z. A trivial leading unit of 1 is
// elided. The ring must be a unique factorization domain; otherwise a
// *NonUFDError is returned.
func (c *Calculator) Factorize(z quad.Integer) ([]quad.Integer, error) {
	r := z.Ring()
	if r == (quad.Ring{}) {
		return nil, ErrNilRing
	}
	ufd, err := c.IsUFD(r)
	if err != nil {
		return nil, err
	}
	if !ufd {
		return nil, &NonUFDError{Ring: r}
	}

	n, err := z.Norm()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	if n < 2 {
		return []quad.Integer{z}, nil
	}

	var factors []quad.Integer
	rem := z
	for {
		n, err := rem.Norm()
		if err != nil {
			return nil, err
		}
		if n < 0 {
			n = -n
		}
		if n < 2 {
			break
		}
		p := arith.PrimeFactors(n)[0]
		div, err := c.primeDivisorAbove(rem, p)
		if err != nil {
			return nil, err
		}
		factors = append(factors, div)
		if rem, err = rem.DividedBy(div); err != nil {
			return nil, fmt.Errorf("cannot divide %v by its prime divisor %v: %w", rem, div, err)
		}
	}
	return c.normalizeFactors(r, factors, rem)
}

// primeDivisorAbove finds a prime divisor of rem lying above the rational
// prime p: a norm-p element when p splits or ramifies, p itself when it is
// inert. Candidates are verified prime before any division is attempted; a
// norm-p candidate is prime by the norm criterion.
func (c *Calculator) primeDivisorAbove(rem quad.Integer, p int64) (quad.Integer, error) {
	r := rem.Ring()
	eps, err := c.realUnitValue(r)
	if err != nil {
		return quad.Integer{}, err
	}
	for _, cand := range candidatesOfNorm(r, p, eps) {
		if _, err := rem.DividedBy(cand); err == nil {
			return cand, nil
		}
	}
	inert := quad.NewWholeNumber(p, r)
	prime, err := c.IsPrime(inert)
	if err != nil {
		return quad.Integer{}, err
	}
	if prime {
		if _, err := rem.DividedBy(inert); err == nil {
			return inert, nil
		}
	}
	return quad.Integer{}, fmt.Errorf("no prime divisor above %d divides %v in %v", p, rem, r)
}

// normalizeFactors sorts factors by ascending |norm|, rotates each into the
// primary sector folding the compensating units into the leading unit, and
// elides the leading unit when it is exactly 1. Re-running the normalization
// on its own output is a no-op.
func (c *Calculator) normalizeFactors(r quad.Ring, factors []quad.Integer, unit quad.Integer) ([]quad.Integer, error) {
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].BigNorm().CmpAbs(factors[j].BigNorm()) < 0
	})
	out := make([]quad.Integer, 0, len(factors)+1)
	u := unit
	for _, f := range factors {
		placed, err := c.PlaceInPrimarySector(f)
		if err != nil {
			return nil, err
		}
		comp, err := f.DividedBy(placed)
		if err != nil {
			return nil, fmt.Errorf("sector rotation of %v is not a unit multiple: %w", f, err)
		}
		if u, err = u.Times(comp); err != nil {
			return nil, err
		}
		out = append(out, placed)
	}
	if !u.Equal(quad.NewWholeNumber(1, r)) {
		out = append([]quad.Integer{u}, out...)
	}
	return out, nil
}

// IrreducibleFactors decomposes z into irreducibles. In a unique
// factorization domain this is the prime factorization; elsewhere the
// decomposition is obtained by recursive proper-divisor splitting and is
// valid but not necessarily unique.
func (c *Calculator) IrreducibleFactors(z quad.Integer) ([]quad.Integer, error) {
	r := z.Ring()
	if r == (quad.Ring{}) {
		return nil, ErrNilRing
	}
	ufd, err := c.IsUFD(r)
	if err != nil {
		return nil, err
	}
	if ufd {
		factors, err := c.Factorize(z)
		if err != nil {
			if _, nonUnique := err.(*NonUFDError); nonUnique {
				return nil, fmt.Errorf("factorization refused in a confirmed UFD %v: %v", r, err)
			}
			return nil, err
		}
		return factors, nil
	}

	n := new(big.Int).Abs(z.BigNorm())
	if n.Cmp(big.NewInt(2)) < 0 {
		return []quad.Integer{z}, nil
	}
	var irr []quad.Integer
	var split func(w quad.Integer) error
	split = func(w quad.Integer) error {
		ok, err := c.IsIrreducible(w)
		if err != nil {
			return err
		}
		if ok {
			irr = append(irr, w)
			return nil
		}
		div, found, err := c.properDivisor(w)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%v is reducible but no proper divisor was found", w)
		}
		quo, err := w.DividedBy(div)
		if err != nil {
			return err
		}
		if err := split(div); err != nil {
			return err
		}
		return split(quo)
	}
	if err := split(z); err != nil {
		return nil, err
	}
	return c.normalizeFactors(r, irr, quad.NewWholeNumber(1, r))
}

// PlaceInPrimarySector rotates z by the generator of the ring's unit group
// until its argument falls in the ring's primary sector: (-45°, 45°] for the
// Gaussian integers, (-30°, 30°] for the Eisenstein integers, and the
// non-negative quadrant convention everywhere else.
func (c *Calculator) PlaceInPrimarySector(z quad.Integer) (quad.Integer, error) {
	r := z.Ring()
	if r == (quad.Ring{}) {
		return quad.Integer{}, ErrNilRing
	}
	if z.IsZero() {
		return z, nil
	}
	switch r.Radicand() {
	case -1:
		rot, _ := quad.NewInteger(0, -1, r, 1)
		w := z
		for i := 0; i < 4; i++ {
			a, b := w.RegPart(), w.SurdPart()
			if a > 0 && b > -a && b <= a {
				return w, nil
			}
			var err error
			if w, err = w.Times(rot); err != nil {
				return quad.Integer{}, err
			}
		}
	case -3:
		rot, _ := quad.NewInteger(1, -1, r, 2)
		w := z
		for i := 0; i < 6; i++ {
			a, b := w.RegPart(), w.SurdPart()
			if a > 0 && 3*b <= a && 3*b > -a {
				return w, nil
			}
			var err error
			if w, err = w.Times(rot); err != nil {
				return quad.Integer{}, err
			}
		}
	default:
		if z.RegPart() < 0 || (z.RegPart() == 0 && z.SurdPart() < 0) {
			return z.Negate(), nil
		}
		return z, nil
	}
	return quad.Integer{}, fmt.Errorf("cannot place %v in the primary sector of %v", z, r)
}

// DivideOutUnits normalizes z by units: sector placement in imaginary rings,
// scaling by the fundamental unit into the window [1, ε) in real rings.
func (c *Calculator) DivideOutUnits(z quad.Integer) (quad.Integer, error) {
	r := z.Ring()
	if r == (quad.Ring{}) {
		return quad.Integer{}, ErrNilRing
	}
	if z.IsZero() {
		return z, nil
	}
	if r.IsImaginary() {
		return c.PlaceInPrimarySector(z)
	}
	eps, err := c.FundamentalUnit(r)
	if err != nil {
		return quad.Integer{}, err
	}
	w := z
	if w.BigFloat(unitFloatPrec).Sign() < 0 {
		w = w.Negate()
	}
	epsVal := eps.BigFloat(unitFloatPrec)
	one := new(big.Float).SetPrec(unitFloatPrec).SetInt64(1)
	for w.BigFloat(unitFloatPrec).Cmp(epsVal) >= 0 {
		if w, err = w.DividedBy(eps); err != nil {
			return quad.Integer{}, fmt.Errorf("cannot divide %v by the unit %v: %w", w, eps, err)
		}
	}
	for w.BigFloat(unitFloatPrec).Cmp(one) < 0 {
		if w, err = w.Times(eps); err != nil {
			return quad.Integer{}, err
		}
	}
	return w, nil
}
