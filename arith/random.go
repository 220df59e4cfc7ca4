package arith

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxDraws bounds the rejection sampling loops below.
const maxDraws = 4096

func randInt64(source io.Reader, bound int64) (int64, error) {
	if bound < 1 {
		return 0, fmt.Errorf("arith: random bound must be positive, got %d", bound)
	}
	var buf [8]byte
	if _, err := io.ReadFull(source, buf[:]); err != nil {
		return 0, fmt.Errorf("arith: cannot read from random source: %w", err)
	}
	n := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	return n % bound, nil
}

// RandomPrime draws a uniformly distributed prime in [2, bound) from the
// given random source, typically a sampling.PRNG.
func RandomPrime(source io.Reader, bound int64) (int64, error) {
	if bound < 3 {
		return 0, fmt.Errorf("arith: no primes below %d", bound)
	}
	for i := 0; i < maxDraws; i++ {
		n, err := randInt64(source, bound)
		if err != nil {
			return 0, err
		}
		if IsPrime64(n) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("arith: no prime found below %d in %d draws", bound, maxDraws)
}

// RandomSquarefree draws a uniformly distributed squarefree integer in
// [1, bound) from the given random source.
func RandomSquarefree(source io.Reader, bound int64) (int64, error) {
	if bound < 2 {
		return 0, fmt.Errorf("arith: no squarefree integers below %d", bound)
	}
	for i := 0; i < maxDraws; i++ {
		n, err := randInt64(source, bound)
		if err != nil {
			return 0, err
		}
		if n != 0 && IsSquarefree(n) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("arith: no squarefree integer found below %d in %d draws", bound, maxDraws)
}
