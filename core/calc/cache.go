package calc

import (
	"sync"

	"github.com/Alonso-del-Arte/algebraic-integer-calculator-sub004/quad"
)

// unitCacheThreshold is the surd-part magnitude above which a freshly
// computed fundamental unit is worth remembering.
const unitCacheThreshold = 1000

// UnitCache memoizes fundamental units per ring. It is safe for concurrent
// use; entries are never invalidated.
type UnitCache struct {
	mu sync.Mutex
	m  map[quad.Ring]quad.Integer
}

// NewUnitCache returns a cache seeded with a few real quadratic rings whose
// fundamental units are expensive to find by brute force.
func NewUnitCache() *UnitCache {
	c := &UnitCache{m: make(map[quad.Ring]quad.Integer)}
	c.seed(46, 24335, 3588, 1)
	c.seed(61, 39, 5, 2)
	c.seed(94, 2143295, 221064, 1)
	c.seed(151, 1728148040, 140634693, 1)
	return c
}

func (c *UnitCache) seed(d, a, b, denom int64) {
	r, err := quad.NewRing(d)
	if err != nil {
		panic(err)
	}
	u, err := quad.NewInteger(a, b, r, denom)
	if err != nil {
		panic(err)
	}
	c.m[r] = u
}

// Get returns the cached fundamental unit of r, if present.
func (c *UnitCache) Get(r quad.Ring) (quad.Integer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.m[r]
	return u, ok
}

// Put stores the fundamental unit of r.
func (c *UnitCache) Put(r quad.Ring, u quad.Integer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[r] = u
}

// ClassNumberCache memoizes field class numbers per ring. It is safe for
// concurrent use; entries are never invalidated.
type ClassNumberCache struct {
	mu sync.Mutex
	m  map[quad.Ring]int64
}

// NewClassNumberCache returns a cache seeded with a few well-known entries.
func NewClassNumberCache() *ClassNumberCache {
	c := &ClassNumberCache{m: make(map[quad.Ring]int64)}
	c.seed(-163, 1)
	c.seed(-23, 3)
	c.seed(79, 3)
	return c
}

func (c *ClassNumberCache) seed(d, h int64) {
	r, err := quad.NewRing(d)
	if err != nil {
		panic(err)
	}
	c.m[r] = h
}

// Get returns the cached class number of r, if present.
func (c *ClassNumberCache) Get(r quad.Ring) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h, ok := c.m[r]
	return h, ok
}

// Put stores the class number of r.
func (c *ClassNumberCache) Put(r quad.Ring, h int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[r] = h
}
