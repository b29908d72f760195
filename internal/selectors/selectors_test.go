package selectors

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectors(t *testing.T) {
	t.Run("compile", func(t *testing.T) {
		var assert = require.New(t)
		var cache = NewCache(0)

		s, err := cache.Compile(`a[href]`)

		assert.NoError(err)
		assert.NotNil(s)
		assert.Equal(1, cache.Len())
	})

	t.Run("cached", func(t *testing.T) {
		var assert = require.New(t)
		var cache = NewCache(2)

		_, err := cache.Compile(`a[href]`)
		assert.NoError(err)

		_, err = cache.Compile(`a[href]`)
		assert.NoError(err)
		assert.Equal(1, cache.Len())
	})

	t.Run("bounded", func(t *testing.T) {
		var assert = require.New(t)
		var cache = NewCache(2)

		for i := 0; i < 5; i++ {
			_, err := cache.Compile(`a:nth-child(` + strconv.Itoa(i+1) + `)`)
			assert.NoError(err)
		}

		assert.Equal(2, cache.Len())
	})

	t.Run("compile error", func(t *testing.T) {
		var assert = require.New(t)
		var cache = NewCache(0)

		_, err := cache.Compile(`[`)
		assert.Error(err)
		assert.Contains(err.Error(), `selectors: compile "["`)
		assert.Equal(0, cache.Len())
	})

	t.Run("shared cache", func(t *testing.T) {
		var assert = require.New(t)

		s, err := Compile("img[src]")

		assert.NoError(err)
		assert.NotNil(s)
	})
}

func BenchmarkSelectors(b *testing.B) {
	var cache = NewCache(0)

	b.Run("compile", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				v, err := cache.Compile("a[href]")
				if err != nil {
					b.Fatalf("compile: %s", err)
				}
				if v == nil {
					b.Fatal("nil selector")
				}
			}
		})
	})
}
