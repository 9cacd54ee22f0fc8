package resolve

import (
	"sync"

	"github.com/minio/highwayhash"

	"bindbridge/internal/common"
)

var hashKey = []byte("bindbridge-resolve-cache-key-v01")

// DefaultCacheSize bounds a Cache created with a non-positive size.
const DefaultCacheSize = 256

// Cache memoises Resolve for repeated identical inputs, e.g. the same bound
// element rendered many times in a list. Results are handed out as clones.
// Failed resolutions are not cached.
type Cache struct {
	mu      sync.Mutex
	size    int
	entries map[uint64]*Declarations
	order   []uint64
	hits    int
	misses  int
}

// NewCache creates a cache holding at most size results.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}

	return &Cache{
		size:    size,
		entries: make(map[uint64]*Declarations, size),
	}
}

// Resolve returns the cached declarations for in, resolving on a miss.
func (c *Cache) Resolve(in Input) (*Declarations, error) {
	key, err := Fingerprint(in)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if d, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()

		return d.Clone(), nil
	}
	c.misses++
	c.mu.Unlock()

	d, err := Resolve(in)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		if len(c.order) >= c.size {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}

		c.entries[key] = d
		c.order = append(c.order, key)
	}

	return d.Clone(), nil
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits, c.misses
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Fingerprint hashes the canonical form of in: the effective export list
// followed by every attribute in name order.
func Fingerprint(in Input) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}

	write := func(s string) {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}

	write(in.ExportList())

	for _, name := range common.SortedKeys(in.Attributes) {
		write(name)
		write(in.Attributes[name])
	}

	return h.Sum64(), nil
}
