// Package calc implements the number-theoretic engines over quadratic
// integer rings: ring classification, primality and irreducibility of
// quadratic integers, factorization into irreducibles, the Euclidean GCD,
// the fundamental unit search and field class numbers.
package calc

import (
	"github.com/ethereum/go-ethereum/log"
)

// defaultSearchBudget bounds the surd-part magnitude explored by the
// fundamental unit search before giving up.
const defaultSearchBudget = 1 << 22

// Calculator bundles the engines with their memoization caches. The zero
// value is not usable; construct through New. A Calculator is safe for
// concurrent use: the caches are internally synchronized and everything else
// is immutable.
type Calculator struct {
	units        *UnitCache
	classNumbers *ClassNumberCache
	log          log.Logger
	searchBudget int64
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the structured logger used by the expensive search paths.
func WithLogger(l log.Logger) Option {
	return func(c *Calculator) { c.log = l }
}

// WithUnitCache injects a fundamental unit cache, typically shared between
// calculators serving one session.
func WithUnitCache(u *UnitCache) Option {
	return func(c *Calculator) { c.units = u }
}

// WithClassNumberCache injects a class number cache.
func WithClassNumberCache(n *ClassNumberCache) Option {
	return func(c *Calculator) { c.classNumbers = n }
}

// WithSearchBudget caps the brute-force unit search. The default is generous
// enough for every radicand below a few thousand.
func WithSearchBudget(budget int64) Option {
	return func(c *Calculator) { c.searchBudget = budget }
}

// New returns a Calculator with freshly seeded caches.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		units:        NewUnitCache(),
		classNumbers: NewClassNumberCache(),
		log:          log.Root(),
		searchBudget: defaultSearchBudget,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
