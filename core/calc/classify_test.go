package calc

import (
	"errors"
	"testing"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

func mustRing(t *testing.T, d int64) quad.Ring {
	t.Helper()
	r, err := quad.NewRing(d)
	if err != nil {
		t.Fatalf("NewRing(%d) failed: %v", d, err)
	}
	return r
}

func mustInteger(t *testing.T, a, b int64, r quad.Ring, denom int64) quad.Integer {
	t.Helper()
	z, err := quad.NewInteger(a, b, r, denom)
	if err != nil {
		t.Fatalf("NewInteger(%d, %d, %v, %d) failed: %v", a, b, r, denom, err)
	}
	return z
}

func TestIsUFDHeegnerNumbers(t *testing.T) {
	c := New()
	heegner := []int64{-1, -2, -3, -7, -11, -19, -43, -67, -163}
	for _, d := range heegner {
		ufd, err := c.IsUFD(mustRing(t, d))
		if err != nil {
			t.Fatalf("IsUFD(%d) failed: %v", d, err)
		}
		if !ufd {
			t.Fatalf("the Heegner radicand %d should give a UFD", d)
		}
	}
	for _, d := range []int64{-5, -6, -10, -13, -14, -15, -17} {
		ufd, err := c.IsUFD(mustRing(t, d))
		if err != nil {
			t.Fatalf("IsUFD(%d) failed: %v", d, err)
		}
		if ufd {
			t.Fatalf("radicand %d is not a Heegner number, should not give a UFD", d)
		}
	}
}

func TestIsUFDRealRings(t *testing.T) {
	c := New()
	// Norm-Euclidean radicands short-circuit the class number computation.
	for _, d := range []int64{2, 3, 5, 6, 7, 11, 13, 73} {
		ufd, err := c.IsUFD(mustRing(t, d))
		if err != nil {
			t.Fatalf("IsUFD(%d) failed: %v", d, err)
		}
		if !ufd {
			t.Fatalf("the norm-Euclidean ring with radicand %d should be a UFD", d)
		}
	}
	// 14 is not norm-Euclidean but has class number 1.
	ufd, err := c.IsUFD(mustRing(t, 14))
	if err != nil {
		t.Fatalf("IsUFD(14) failed: %v", err)
	}
	if !ufd {
		t.Fatalf("Z[√14] has class number 1, should be a UFD")
	}
	// 10 has class number 2.
	ufd, err = c.IsUFD(mustRing(t, 10))
	if err != nil {
		t.Fatalf("IsUFD(10) failed: %v", err)
	}
	if ufd {
		t.Fatalf("Z[√10] has class number 2, should not be a UFD")
	}
}

func TestIsUFDNilRing(t *testing.T) {
	c := New()
	if _, err := c.IsUFD(quad.Ring{}); !errors.Is(err, ErrNilRing) {
		t.Fatalf("the zero ring should be rejected, got %v", err)
	}
}

func TestIsNormEuclidean(t *testing.T) {
	for _, d := range []int64{-11, -7, -3, -2, -1, 2, 3, 5, 6, 7, 11, 13, 17, 19, 21, 29, 33, 37, 41, 57, 73} {
		if !IsNormEuclidean(mustRing(t, d)) {
			t.Fatalf("radicand %d should be norm-Euclidean", d)
		}
	}
	for _, d := range []int64{-5, -19, 10, 14, 53, 97} {
		if IsNormEuclidean(mustRing(t, d)) {
			t.Fatalf("radicand %d should not be in the norm-Euclidean list", d)
		}
	}
}
