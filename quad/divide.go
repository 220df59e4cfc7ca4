package quad

import (
	"math/big"
)

// DividedBy returns the exact quotient z / other. When no exact quotient
// exists in the ring, the returned error is a *NotDivisibleError carrying the
// rational quotient and the ring elements bounding it, so the caller can
// continue with a remainder-based search.
func (z Integer) DividedBy(other Integer) (Integer, error) {
	x, y, err := reconcile(z, other)
	if err != nil {
		return Integer{}, err
	}
	if y.IsZero() {
		return Integer{}, ErrDivisionByZero
	}

	d := new(big.Rat).SetInt64(x.ring.d)
	xReg := big.NewRat(x.a, x.denom)
	xSurd := big.NewRat(x.b, x.denom)
	yReg := big.NewRat(y.a, y.denom)
	ySurd := big.NewRat(y.b, y.denom)

	// Multiply by the conjugate of the divisor and divide by its norm.
	norm := new(big.Rat).Mul(yReg, yReg)
	norm.Sub(norm, new(big.Rat).Mul(d, new(big.Rat).Mul(ySurd, ySurd)))

	qReg := new(big.Rat).Mul(xReg, yReg)
	qReg.Sub(qReg, new(big.Rat).Mul(d, new(big.Rat).Mul(xSurd, ySurd)))
	qReg.Quo(qReg, norm)

	qSurd := new(big.Rat).Mul(xSurd, yReg)
	qSurd.Sub(qSurd, new(big.Rat).Mul(xReg, ySurd))
	qSurd.Quo(qSurd, norm)

	if q, ok := integerFromRats(qReg, qSurd, x.ring); ok {
		return q, nil
	}

	return Integer{}, &NotDivisibleError{
		Dividend:     x,
		Divisor:      y,
		RegQuotient:  qReg,
		SurdQuotient: qSurd,
		Bounding:     boundingIntegers(qReg, qSurd, x.ring),
	}
}

// integerFromRats interprets the rational pair as a ring element, if it is one.
func integerFromRats(reg, surd *big.Rat, r Ring) (Integer, bool) {
	if reg.IsInt() && surd.IsInt() {
		if !reg.Num().IsInt64() || !surd.Num().IsInt64() {
			return Integer{}, false
		}
		q, err := NewInteger(reg.Num().Int64(), surd.Num().Int64(), r, 1)
		return q, err == nil
	}
	if r.HasHalfIntegers() {
		two := new(big.Rat).SetInt64(2)
		dreg := new(big.Rat).Mul(reg, two)
		dsurd := new(big.Rat).Mul(surd, two)
		if dreg.IsInt() && dsurd.IsInt() && dreg.Num().IsInt64() && dsurd.Num().IsInt64() {
			q, err := NewInteger(dreg.Num().Int64(), dsurd.Num().Int64(), r, 2)
			return q, err == nil
		}
	}
	return Integer{}, false
}

// ratFloor returns the floor of q as an int64, assuming it fits.
func ratFloor(q *big.Rat) int64 {
	f := new(big.Int).Quo(q.Num(), q.Denom())
	if q.Sign() < 0 && !q.IsInt() {
		f.Sub(f, big.NewInt(1))
	}
	return f.Int64()
}

// boundingIntegers lists the ring elements nearest the rational point
// (reg, surd): the floor/ceil grid extended one step outward, plus the
// surrounding half-integer grid points in half-integer rings.
func boundingIntegers(reg, surd *big.Rat, r Ring) []Integer {
	regFloor := ratFloor(reg)
	surdFloor := ratFloor(surd)
	var bounding []Integer
	seen := make(map[Integer]struct{})
	add := func(z Integer) {
		if _, ok := seen[z]; !ok {
			seen[z] = struct{}{}
			bounding = append(bounding, z)
		}
	}
	for da := int64(-1); da <= 2; da++ {
		for db := int64(-1); db <= 2; db++ {
			if z, err := NewInteger(regFloor+da, surdFloor+db, r, 1); err == nil {
				add(z)
			}
		}
	}
	if r.HasHalfIntegers() {
		for da := int64(-1); da <= 3; da += 2 {
			for db := int64(-1); db <= 3; db += 2 {
				if z, err := NewInteger(2*regFloor+da, 2*surdFloor+db, r, 2); err == nil {
					add(z)
				}
			}
		}
	}
	return bounding
}
