package href

import (
	"context"
	"sync"

	"github.com/willf/bloom"
)

// Deduper represents a URL de-duplicator.
type Deduper interface {
	// Dedupe de-duplicates the given URLs.
	//
	// The method returns a new slice of URLs that
	// were not seen yet in their original order,
	// it must be thread-safe.
	//
	// URLs are keyed by their full URL, the collector
	// normalizes them before calling the method when
	// configured to.
	Dedupe(ctx context.Context, urls []*URL) ([]*URL, error)
}

// Deduper implements an in-memory deduper.
type deduper struct {
	m *sync.Map
}

// DedupeMap returns a new deduper backed by sync.Map.
func DedupeMap() Deduper {
	return &deduper{new(sync.Map)}
}

// Dedupe implementation.
func (d *deduper) Dedupe(ctx context.Context, urls []*URL) ([]*URL, error) {
	var ret = make([]*URL, 0, len(urls))

	for _, u := range urls {
		if _, exists := d.m.LoadOrStore(u.FullURL(), nil); !exists {
			ret = append(ret, u)
		}
	}

	return ret, nil
}

// Dedupebf implements a bloom filter deduper.
type dedupebf struct {
	filter *bloom.BloomFilter
	mu     sync.Mutex
}

// DedupeBF returns a new deduper backed by a bloom filter
// of m bits and k hash functions.
//
// The filter may report false positives, in which case
// unseen URLs are dropped.
func DedupeBF(m, k uint) Deduper {
	return &dedupebf{
		filter: bloom.New(m, k),
	}
}

// Dedupe implementation.
func (d *dedupebf) Dedupe(ctx context.Context, urls []*URL) ([]*URL, error) {
	var ret = make([]*URL, 0, len(urls))

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range urls {
		key := []byte(u.FullURL())
		if !d.filter.Test(key) {
			d.filter.Add(key)
			ret = append(ret, u)
		}
	}

	return ret, nil
}
