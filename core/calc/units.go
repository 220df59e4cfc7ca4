package calc

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/arith"
	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

// unitFloatPrec is the big.Float precision used to compare unit candidates
// and to window values against the fundamental unit.
const unitFloatPrec = 128

// FundamentalUnit finds the smallest unit greater than 1 of a real quadratic
// ring by brute-force search over ascending surd parts, interleaving whole
// and half-integer candidates. Imaginary rings have a finite unit group and
// no fundamental unit, so they are rejected outright. Results of expensive
// searches are cached for the life of the calculator.
func (c *Calculator) FundamentalUnit(r quad.Ring) (quad.Integer, error) {
	if r == (quad.Ring{}) {
		return quad.Integer{}, ErrNilRing
	}
	if !r.IsReal() {
		return quad.Integer{}, fmt.Errorf("%w: %v", ErrNotRealRing, r)
	}
	if u, ok := c.units.Get(r); ok {
		c.log.Debug("fundamental unit cache hit", "ring", r.String(), "unit", u.String())
		return u, nil
	}

	d := r.Radicand()
	dBig := big.NewInt(d)
	half := r.HasHalfIntegers()
	one := big.NewInt(1)
	four := big.NewInt(4)

	for t := int64(1); t <= c.searchBudget; t++ {
		sq := new(big.Int).SetInt64(t)
		sq.Mul(sq, sq)
		sq.Mul(sq, dBig)
		x := new(big.Int).Sqrt(sq)
		if !x.IsInt64() {
			return quad.Integer{}, fmt.Errorf("fundamental unit of %v at surd %d: %w", r, t, quad.ErrOverflow)
		}

		var found []quad.Integer
		for delta := int64(0); delta <= 1; delta++ {
			a := new(big.Int).Add(x, big.NewInt(delta))
			norm := new(big.Int).Mul(a, a)
			norm.Sub(norm, sq)
			if norm.CmpAbs(one) == 0 && a.IsInt64() {
				if u, err := quad.NewInteger(a.Int64(), t, r, 1); err == nil {
					found = append(found, u)
				}
			}
		}
		if half && t%2 == 1 {
			for delta := int64(-1); delta <= 2; delta++ {
				a := new(big.Int).Add(x, big.NewInt(delta))
				if a.Sign() <= 0 || a.Bit(0) == 0 {
					continue
				}
				norm := new(big.Int).Mul(a, a)
				norm.Sub(norm, sq)
				if norm.CmpAbs(four) == 0 && a.IsInt64() {
					if u, err := quad.NewInteger(a.Int64(), t, r, 2); err == nil {
						found = append(found, u)
					}
				}
			}
		}

		if len(found) > 0 {
			best := found[0]
			for _, u := range found[1:] {
				if u.BigFloat(unitFloatPrec).Cmp(best.BigFloat(unitFloatPrec)) < 0 {
					best = u
				}
			}
			c.log.Debug("fundamental unit found", "ring", r.String(), "unit", best.String(), "surd", t)
			if t > unitCacheThreshold {
				c.units.Put(r, best)
			}
			return best, nil
		}
	}
	return quad.Integer{}, fmt.Errorf("fundamental unit of %v: %w", r, ErrSearchBudgetExceeded)
}

// FieldClassNumber computes the class number of Q(√d) by the analytic class
// number formula: a weighted Kronecker character sum for imaginary fields,
// and a logarithmic sum against the fundamental unit for real fields. Results
// are cached.
func (c *Calculator) FieldClassNumber(r quad.Ring) (int64, error) {
	if r == (quad.Ring{}) {
		return 0, ErrNilRing
	}
	if h, ok := c.classNumbers.Get(r); ok {
		return h, nil
	}

	disc := r.Discriminant()
	var h int64
	if r.IsImaginary() {
		w := int64(2)
		switch disc {
		case -3:
			w = 6
		case -4:
			// d = -1 has four units, not two.
			w = 4
		}
		var sum int64
		for i := int64(1); i < -disc; i++ {
			k, err := arith.SymbolKronecker(disc, i)
			if err != nil {
				return 0, fmt.Errorf("class number of %v: %w", r, err)
			}
			sum += k * i
		}
		if sum < 0 {
			sum = -sum
		}
		h = int64(math.Round(float64(w*sum) / float64(-2*disc)))
	} else {
		eps, err := c.FundamentalUnit(r)
		if err != nil {
			return 0, fmt.Errorf("class number of %v: %w", r, err)
		}
		v, _ := eps.BigFloat(unitFloatPrec).Float64()
		var sum float64
		for i := int64(1); i < disc; i++ {
			k, err := arith.SymbolKronecker(disc, i)
			if err != nil {
				return 0, fmt.Errorf("class number of %v: %w", r, err)
			}
			if k != 0 {
				sum += float64(k) * math.Log(math.Sin(math.Pi*float64(i)/float64(disc)))
			}
		}
		h = int64(math.Round(-sum / (2 * math.Log(v))))
	}

	c.log.Debug("class number computed", "ring", r.String(), "h", h)
	c.classNumbers.Put(r, h)
	return h, nil
}
