package razor

import (
	"sync"
	"time"

	"github.com/tidwall/gjson"
)

// CacheItem represents a cached document with expiration
type CacheItem struct {
	Value     gjson.Result
	ExpiresAt time.Time
}

// Cache provides thread-safe caching of API documents with a TTL
type Cache struct {
	items      map[string]CacheItem
	mutex      sync.RWMutex
	defaultTTL time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewCache creates a new cache and starts its sweeper.
func NewCache(defaultTTL time.Duration) *Cache {
	cache := &Cache{
		items:      make(map[string]CacheItem),
		defaultTTL: defaultTTL,
		stop:       make(chan struct{}),
	}
	go cache.cleanup(time.Minute)
	return cache
}

// Get retrieves a document from the cache
func (c *Cache) Get(key string) (gjson.Result, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	if !exists {
		return gjson.Result{}, false
	}
	if time.Now().After(item.ExpiresAt) {
		c.Delete(key)
		return gjson.Result{}, false
	}
	return item.Value, true
}

// Set stores a document with the given TTL
func (c *Cache) Set(key string, value gjson.Result, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[key] = CacheItem{
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	}
}

// SetDefault stores a document with the default TTL
func (c *Cache) SetDefault(key string, value gjson.Result) {
	c.Set(key, value, c.defaultTTL)
}

// Delete removes a document from the cache
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, key)
}

// Clear removes all documents
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]CacheItem)
}

// Close stops the sweeper. The cache stays usable.
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

func (c *Cache) evictExpired(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, item := range c.items {
		if now.After(item.ExpiresAt) {
			delete(c.items, key)
		}
	}
}

// Stats returns cache statistics
func (c *Cache) Stats() map[string]int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	expired := 0
	active := 0
	now := time.Now()
	for _, item := range c.items {
		if now.After(item.ExpiresAt) {
			expired++
		} else {
			active++
		}
	}

	return map[string]int{
		"total":   len(c.items),
		"active":  active,
		"expired": expired,
	}
}
