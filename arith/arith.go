// Package arith provides the scalar number-theoretic functions underlying
// the quadratic ring engines: primality, integer factorization, squarefree
// and cubefree tests, the Möbius function and the Legendre, Jacobi and
// Kronecker symbols.
package arith

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v6/utils/factorization"
)

// ErrZeroModulus is returned by Mod when the modulus is zero.
var ErrZeroModulus = fmt.Errorf("arith: modulus is zero")

// millerRabinFloor is the magnitude above which primality checks are handed
// to the Miller-Rabin test instead of trial division.
const millerRabinFloor = int64(1) << 50

// trialDivisionCeil bounds the trial divisors used by PrimeFactors before
// the remaining cofactor is handed to the ECM/Pollard factor extraction.
const trialDivisionCeil = int64(1) << 20

// Mod returns the Euclidean remainder of n modulo m, always in [0, |m|).
func Mod(n, m int64) (int64, error) {
	if m == 0 {
		return 0, ErrZeroModulus
	}
	if m < 0 {
		m = -m
	}
	r := n % m
	if r < 0 {
		r += m
	}
	return r, nil
}

// IsPrime reports whether the 32-bit integer n is prime. Negative primes are
// recognized: IsPrime(-29) is true.
func IsPrime(n int32) bool {
	return IsPrime64(int64(n))
}

// IsPrime64 reports whether n is prime. Small and medium operands are checked
// by trial division over odd candidates up to the square root; wide operands
// go through the Miller-Rabin test.
func IsPrime64(n int64) bool {
	if n < 0 {
		n = -n
	}
	switch n {
	case 0, 1:
		return false
	case 2:
		return true
	}
	if n%2 == 0 {
		return false
	}
	if n > millerRabinFloor {
		return factorization.IsPrime(new(big.Int).SetInt64(n))
	}
	for f := int64(3); f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

// IsPrimeBig reports whether the arbitrary-precision integer n is prime.
func IsPrimeBig(n *big.Int) bool {
	return factorization.IsPrime(new(big.Int).Abs(n))
}

// PrimeFactors returns the prime factorization of n in ascending order, with
// multiplicity. A negative n gets a leading -1 factor. The inputs 0 and 1 are
// returned as singleton lists containing themselves; that is a documented
// special case, not a true factorization.
func PrimeFactors(n int64) []int64 {
	if n == 0 || n == 1 {
		return []int64{n}
	}
	var factors []int64
	if n < 0 {
		factors = append(factors, -1)
		n = -n
	}
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for f := int64(3); f <= trialDivisionCeil && f*f <= n; f += 2 {
		for n%f == 0 {
			factors = append(factors, f)
			n /= f
		}
	}
	if n > 1 {
		if IsPrime64(n) {
			factors = append(factors, n)
		} else {
			// Cofactor beyond the trial window with no small factors left.
			for _, p := range factorization.GetFactors(new(big.Int).SetInt64(n)) {
				f := p.Int64()
				for n%f == 0 {
					factors = append(factors, f)
					n /= f
				}
			}
			if n > 1 {
				factors = append(factors, n)
			}
			sortInt64s(factors)
		}
	}
	return factors
}

func sortInt64s(s []int64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// IsSquarefree reports whether no square of a prime divides n. Both -1 and 1
// are squarefree, 0 is not.
func IsSquarefree(n int64) bool {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return false
	}
	for f := int64(2); f*f <= n; f++ {
		if n%f == 0 {
			n /= f
			if n%f == 0 {
				return false
			}
		}
	}
	return true
}

// IsCubefree reports whether no cube of a prime divides n.
func IsCubefree(n int64) bool {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return false
	}
	for f := int64(2); f*f <= n; f++ {
		if n%f == 0 {
			n /= f
			if n%f == 0 {
				n /= f
				if n%f == 0 {
					return false
				}
			}
		}
	}
	return true
}

// MoebiusMu computes the Möbius function: 1 for n in {-1, 1}, 0 when n is not
// squarefree, otherwise (-1)^k where k is the number of prime factors.
func MoebiusMu(n int64) int64 {
	if n == 1 || n == -1 {
		return 1
	}
	if !IsSquarefree(n) {
		return 0
	}
	factors := PrimeFactors(n)
	k := 0
	for _, f := range factors {
		if f != -1 {
			k++
		}
	}
	if k%2 == 0 {
		return 1
	}
	return -1
}

// EuclideanGCD computes the greatest common divisor of a and b on absolute
// values. EuclideanGCD(0, 0) is 0, a documented deviation from the strict
// mathematical definition.
func EuclideanGCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mulMod performs (a*b) mod m using big.Int to avoid overflow in the uint64
// intermediate.
func mulMod(a, b, m uint64) uint64 {
	A := new(big.Int).SetUint64(a)
	B := new(big.Int).SetUint64(b)
	M := new(big.Int).SetUint64(m)
	A.Mul(A, B).Mod(A, M)
	return A.Uint64()
}

// ModPow computes base^exp mod m by square and multiply.
func ModPow(base, exp, m uint64) uint64 {
	res := uint64(1)
	b := base % m
	e := exp
	for e > 0 {
		if e&1 == 1 {
			res = mulMod(res, b, m)
		}
		b = mulMod(b, b, m)
		e >>= 1
	}
	return res
}
