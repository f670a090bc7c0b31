// Package idempotency replays responses of retried POST requests so that a
// client retry never applies an operation twice.
package idempotency

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Response is a captured HTTP response
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// Cache holds responses keyed by caller and idempotency key
type Cache struct {
	lru *expirable.LRU[string, Response]
}

// NewCache creates a cache with at most size entries living for ttl
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, Response](size, nil, ttl),
	}
}

// Get returns a stored response
func (c *Cache) Get(key string) (Response, bool) {
	return c.lru.Get(key)
}

// Set stores a response
func (c *Cache) Set(key string, resp Response) {
	c.lru.Add(key, resp)
}

// Len returns the number of live entries
func (c *Cache) Len() int {
	return c.lru.Len()
}

// cachable reports whether a status reflects a settled outcome worth replaying.
// Server errors and rate limiting may succeed on retry.
func cachable(status int) bool {
	return status < http.StatusInternalServerError && status != http.StatusTooManyRequests
}
