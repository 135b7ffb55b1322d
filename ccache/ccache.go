// Package ccache provides a concurrency-safe LRU cache for computed
// digests.
package ccache

import (
	"sync"

	"github.com/golang/groupcache/lru"

	"massnet.org/crypto/sha256"
)

// DigestCache maps string keys to sha256 digests with LRU eviction.
type DigestCache struct {
	l     sync.Mutex
	cache *lru.Cache
}

func NewDigestCache(maxEntries int) *DigestCache {
	return &DigestCache{
		cache: lru.New(maxEntries),
	}
}

func (c *DigestCache) Get(key string) (sha256.Digest, bool) {
	c.l.Lock()
	defer c.l.Unlock()
	value, ok := c.cache.Get(key)
	if !ok {
		return sha256.Digest{}, false
	}
	return value.(sha256.Digest), true
}

func (c *DigestCache) Add(key string, digest sha256.Digest) {
	c.l.Lock()
	c.cache.Add(key, digest)
	c.l.Unlock()
}

func (c *DigestCache) Remove(key string) {
	c.l.Lock()
	c.cache.Remove(key)
	c.l.Unlock()
}

func (c *DigestCache) RemoveOldest() {
	c.l.Lock()
	c.cache.RemoveOldest()
	c.l.Unlock()
}

// GetRemove fetches the digest for key and drops it from the cache.
func (c *DigestCache) GetRemove(key string) (sha256.Digest, bool) {
	c.l.Lock()
	defer c.l.Unlock()
	value, ok := c.cache.Get(key)
	if !ok {
		return sha256.Digest{}, false
	}
	c.cache.Remove(key)
	return value.(sha256.Digest), true
}

func (c *DigestCache) Clear() {
	c.l.Lock()
	c.cache.Clear()
	c.l.Unlock()
}

func (c *DigestCache) Len() int {
	c.l.Lock()
	defer c.l.Unlock()
	return c.cache.Len()
}

func (c *DigestCache) SetMaxEntries(maxEntries int) {
	c.l.Lock()
	c.cache.MaxEntries = maxEntries
	c.l.Unlock()
}

// SetOnEvicted installs a callback invoked when an entry is evicted.
func (c *DigestCache) SetOnEvicted(onEvicted func(key string, digest sha256.Digest)) {
	c.l.Lock()
	if onEvicted == nil {
		c.cache.OnEvicted = nil
	} else {
		c.cache.OnEvicted = func(key lru.Key, value interface{}) {
			onEvicted(key.(string), value.(sha256.Digest))
		}
	}
	c.l.Unlock()
}
