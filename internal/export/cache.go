package export

import "sync"

// Cache holds rendered artifacts keyed by the assignment content hash and
// format. A new key evicts everything stored under the previous one: any
// change to the assignment map invalidates all generated artifacts, which
// replaces ad hoc "clear on selection change" bookkeeping.
type Cache struct {
	mu        sync.Mutex
	key       string
	artifacts map[Format]Artifact
}

// NewCache creates an empty artifact cache.
func NewCache() *Cache {
	return &Cache{artifacts: make(map[Format]Artifact)}
}

// Get returns the cached artifact for the key and format, if present.
func (c *Cache) Get(key string, f Format) (Artifact, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key != c.key {
		return Artifact{}, false
	}
	a, ok := c.artifacts[f]
	return a, ok
}

// Put stores an artifact under the key, evicting artifacts from any
// previous key first.
func (c *Cache) Put(key string, a Artifact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key != c.key {
		c.key = key
		c.artifacts = make(map[Format]Artifact)
	}
	c.artifacts[a.Format] = a
}
