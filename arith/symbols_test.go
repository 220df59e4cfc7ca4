package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v6/utils/sampling"
)

func TestSymbolLegendre(t *testing.T) {
	cases := []struct {
		a, p, want int64
	}{
		{2, 7, 1},
		{3, 7, -1},
		{-1, 7, -1},
		{-1, 5, 1},
		{4, 11, 1},
		{14, 7, 0},
		{5, 13, -1},
	}
	for _, tc := range cases {
		got, err := SymbolLegendre(tc.a, tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Legendre(%d/%d)", tc.a, tc.p)
	}
}

func TestSymbolLegendreRejectsBadModulus(t *testing.T) {
	for _, p := range []int64{0, 1, 2, -7, 15} {
		_, err := SymbolLegendre(3, p)
		assert.Error(t, err, "modulus %d", p)
	}
}

func TestSymbolJacobi(t *testing.T) {
	cases := []struct {
		n, m, want int64
	}{
		{1, 1, 1},
		{2, 15, 1},
		{5, 21, 1},
		{3, 9, 0},
		{1001, 9907, -1},
	}
	for _, tc := range cases {
		got, err := SymbolJacobi(tc.n, tc.m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Jacobi(%d/%d)", tc.n, tc.m)
	}
}

func TestSymbolJacobiRejectsBadModulus(t *testing.T) {
	for _, m := range []int64{0, -3, 10} {
		_, err := SymbolJacobi(7, m)
		assert.Error(t, err, "modulus %d", m)
	}
}

// The Jacobi symbol must agree with the product of Legendre symbols over the
// prime factorization of the modulus.
func TestSymbolJacobiMatchesLegendreProduct(t *testing.T) {
	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		n, err := randInt64(prng, 10000)
		require.NoError(t, err)
		m, err := randInt64(prng, 999)
		require.NoError(t, err)
		m = 2*m + 1
		if m == 1 {
			continue
		}
		want := int64(1)
		for _, p := range PrimeFactors(m) {
			l, err := SymbolLegendre(n, p)
			require.NoError(t, err)
			want *= l
		}
		got, err := SymbolJacobi(n, m)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Jacobi(%d/%d)", n, m)
	}
}

func TestSymbolKronecker(t *testing.T) {
	cases := []struct {
		n, m, want int64
	}{
		{3, 2, -1},
		{1, 2, 1},
		{7, 2, 1},
		{5, 2, -1},
		{4, 2, 0},
		{-4, 2, 0},
		{5, 1, 1},
		{-20, 3, 1},
		{-20, 11, -1},
		{8, 3, -1},
		{-1, -1, -1},
		{3, -1, 1},
	}
	for _, tc := range cases {
		got, err := SymbolKronecker(tc.n, tc.m)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Kronecker(%d/%d)", tc.n, tc.m)
	}
}

// Kronecker at an odd positive modulus coincides with Jacobi.
func TestSymbolKroneckerMatchesJacobi(t *testing.T) {
	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		n, err := randInt64(prng, 5000)
		require.NoError(t, err)
		m, err := randInt64(prng, 499)
		require.NoError(t, err)
		m = 2*m + 3
		j, err := SymbolJacobi(n, m)
		require.NoError(t, err)
		k, err := SymbolKronecker(n, m)
		require.NoError(t, err)
		assert.Equal(t, j, k, "n=%d m=%d", n, m)
	}
}

func TestRandomPrime(t *testing.T) {
	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		p, err := RandomPrime(prng, 10000)
		require.NoError(t, err)
		assert.True(t, IsPrime64(p), "RandomPrime returned %d", p)
	}
}

func TestRandomSquarefree(t *testing.T) {
	prng, err := sampling.NewPRNG()
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		n, err := RandomSquarefree(prng, 10000)
		require.NoError(t, err)
		assert.True(t, IsSquarefree(n), "RandomSquarefree returned %d", n)
	}
}
