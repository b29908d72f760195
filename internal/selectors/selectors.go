// Package selectors compiles and caches CSS selectors.
//
// Selectors are compiled once and kept in a bounded LRU, the
// package level Compile uses a shared cache.
package selectors

import (
	"fmt"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/segmentio/agecache"
)

// DefaultCapacity is the capacity of the shared cache.
const DefaultCapacity = 128

// Cache is the shared cache.
var cache = NewCache(DefaultCapacity)

// Compile compiles the given selector using the shared cache.
func Compile(selector string) (cascadia.Selector, error) {
	return cache.Compile(selector)
}

// Cache implements a bounded selector cache.
type Cache struct {
	lru *agecache.Cache
}

// NewCache returns a new cache holding up to capacity selectors.
//
// When capacity <= 0, DefaultCapacity is used.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	lru := agecache.New(agecache.Config{
		Capacity:           capacity,
		MaxAge:             1 * time.Hour,
		ExpirationType:     agecache.PassiveExpration,
		ExpirationInterval: 1 * time.Minute,
	})

	return &Cache{lru: lru}
}

// Compile compiles the given selector.
//
// The method returns an error if the selector is invalid,
// invalid selectors are not cached.
func (c *Cache) Compile(selector string) (cascadia.Selector, error) {
	if v, ok := c.lru.Get(selector); ok {
		return v.(cascadia.Selector), nil
	}

	s, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selectors: compile %q - %w", selector, err)
	}

	c.lru.Set(selector, s)
	return s, nil
}

// Len returns the number of cached selectors.
func (c *Cache) Len() int {
	return c.lru.Len()
}
