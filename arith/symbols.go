package arith

import "fmt"

// SymbolLegendre computes the Legendre symbol (a/p) for an odd prime p via
// Euler's criterion: 1 when a is a nonzero quadratic residue mod p, -1 when a
// is a non-residue, 0 when p divides a.
func SymbolLegendre(a, p int64) (int64, error) {
	if p < 3 || p%2 == 0 || !IsPrime64(p) {
		return 0, fmt.Errorf("arith: Legendre symbol needs an odd prime modulus, got %d", p)
	}
	r, _ := Mod(a, p)
	if r == 0 {
		return 0, nil
	}
	e := ModPow(uint64(r), uint64((p-1)/2), uint64(p))
	if e == 1 {
		return 1, nil
	}
	return -1, nil
}

// SymbolJacobi computes the Jacobi symbol (n/m) for odd positive m. The value
// equals the product of Legendre symbols over the prime factorization of m,
// computed here by the iterative quadratic-reciprocity algorithm. The symbol
// is 0 when gcd(n, m) > 1.
func SymbolJacobi(n, m int64) (int64, error) {
	if m <= 0 || m%2 == 0 {
		return 0, fmt.Errorf("arith: Jacobi symbol needs an odd positive modulus, got %d", m)
	}
	a, _ := Mod(n, m)
	j := int64(1)
	for a != 0 {
		for a%2 == 0 {
			a /= 2
			if m%8 == 3 || m%8 == 5 {
				j = -j
			}
		}
		a, m = m, a
		if a%4 == 3 && m%4 == 3 {
			j = -j
		}
		a %= m
	}
	if m == 1 {
		return j, nil
	}
	return 0, nil
}

// kronecker2 evaluates the Kronecker symbol (n/2): 0 for even n, 1 for
// n ≡ ±1 (mod 8), -1 for n ≡ ±3 (mod 8).
func kronecker2(n int64) int64 {
	if n%2 == 0 {
		return 0
	}
	r, _ := Mod(n, 8)
	if r == 1 || r == 7 {
		return 1
	}
	return -1
}

// SymbolKronecker computes the Kronecker symbol (n/m), the multiplicative
// extension of the Jacobi symbol to arbitrary nonzero m: the factor -1
// contributes the sign of n, the factor 2 follows the mod-8 table, and odd
// prime factors reduce to Legendre symbols.
func SymbolKronecker(n, m int64) (int64, error) {
	if m == 0 {
		if n == 1 || n == -1 {
			return 1, nil
		}
		return 0, nil
	}
	k := int64(1)
	if m < 0 {
		if n < 0 {
			k = -1
		}
		m = -m
	}
	for m%2 == 0 {
		s := kronecker2(n)
		if s == 0 {
			return 0, nil
		}
		k *= s
		m /= 2
	}
	if m == 1 {
		return k, nil
	}
	j, err := SymbolJacobi(n, m)
	if err != nil {
		return 0, err
	}
	return k * j, nil
}
