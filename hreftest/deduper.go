package hreftest

import (
	"context"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yields/href"
	"golang.org/x/sync/errgroup"
)

// Deduper tests a Deduper implementation.
//
// `new(t)` must return a new empty deduper ready for use.
func Deduper(t *testing.T, new func(testing.TB) href.Deduper) {
	t.Run("dedupe", func(t *testing.T) {
		var ctx = context.Background()
		var assert = require.New(t)
		var d = new(t)

		a := Parse(t, "a.com")
		b := Parse(t, "b.com")

		ret, err := d.Dedupe(ctx, []*href.URL{a, b, a})
		assert.NoError(err)
		assert.Equal([]*href.URL{a, b}, ret)

		ret, err = d.Dedupe(ctx, []*href.URL{b, a})
		assert.NoError(err)
		assert.Empty(ret)
	})

	t.Run("full url", func(t *testing.T) {
		var ctx = context.Background()
		var assert = require.New(t)
		var d = new(t)

		ret, err := d.Dedupe(ctx, []*href.URL{
			Parse(t, "http://a.com:80/"),
			Parse(t, "a.com"),
			Parse(t, "//a.com"),
			Parse(t, "https://a.com"),
		})

		assert.NoError(err)
		assert.Len(ret, 3)
	})

	t.Run("concurrent", func(t *testing.T) {
		var ctx = context.Background()
		var assert = require.New(t)
		var d = new(t)
		var eg errgroup.Group
		var results = make([][]*href.URL, 4)

		var urls = make([]*href.URL, 0, 100)
		for j := 0; j < 100; j++ {
			urls = append(urls, Parse(t, "example.com/"+strconv.Itoa(j)))
		}

		for i := range results {
			eg.Go(func() error {
				ret, err := d.Dedupe(ctx, urls)
				results[i] = ret
				return err
			})
		}

		assert.NoError(eg.Wait())

		var seen []string
		for _, ret := range results {
			for _, u := range ret {
				seen = append(seen, u.FullURL())
			}
		}

		sort.Strings(seen)
		assert.Len(seen, 100)
		for j := 1; j < len(seen); j++ {
			assert.NotEqual(seen[j-1], seen[j])
		}
	})
}
