package href

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"
	"github.com/yields/href/internal/selectors"
	"golang.org/x/sync/errgroup"
)

// CollectorConfig configures the collector.
type CollectorConfig struct {
	// Selectors are the CSS selectors of nodes that
	// reference URLs.
	//
	// If empty, DefaultSelector is used.
	Selectors []string

	// Base is the URL relative references are resolved
	// against.
	//
	// If empty, relative references are skipped.
	Base string

	// Matcher is the URL matcher to use.
	//
	// The matcher is called with every URL, if it
	// returns false the URL is discarded.
	//
	// If nil, all URLs are collected.
	Matcher Matcher

	// Deduper is the URL de-duplicator to use.
	//
	// If nil, DedupeMap is used.
	Deduper Deduper

	// Normalize normalizes URLs before they are
	// matched and de-duplicated.
	Normalize bool

	// Concurrency controls the amount of goroutines
	// parsing documents.
	//
	// If <= 0, it defaults to runtime.GOMAXPROCS.
	Concurrency int

	// Logger is the logger to use.
	//
	// If nil, log.Log is used.
	Logger log.Interface
}

// Collector collects URLs from HTML documents.
type Collector struct {
	selectors   []string
	base        string
	matcher     Matcher
	deduper     Deduper
	normalize   bool
	concurrency int
	logger      log.Interface
}

// NewCollector returns a new collector.
//
// The function returns an error if a selector is invalid.
func NewCollector(c CollectorConfig) (*Collector, error) {
	for _, s := range c.Selectors {
		if _, err := selectors.Compile(s); err != nil {
			return nil, fmt.Errorf("href: new collector - %w", err)
		}
	}

	if c.Deduper == nil {
		c.Deduper = DedupeMap()
	}

	if c.Concurrency <= 0 {
		c.Concurrency = runtime.GOMAXPROCS(-1)
	}

	if c.Logger == nil {
		c.Logger = log.Log
	}

	return &Collector{
		selectors:   c.Selectors,
		base:        c.Base,
		matcher:     c.Matcher,
		deduper:     c.Deduper,
		normalize:   c.Normalize,
		concurrency: c.Concurrency,
		logger:      c.Logger,
	}, nil
}

// Collect returns the URLs referenced by the given documents.
//
// Documents are parsed concurrently, URLs are then matched and
// de-duplicated in document order so the result is deterministic.
//
// A document that cannot be parsed does not stop the others, its
// error is returned as a *DocumentError along with the URLs of all
// other documents. When more than one document fails the errors
// are aggregated in a *multierror.Error.
//
// The method returns ctx.Err() if the context is canceled.
func (c *Collector) Collect(ctx context.Context, docs ...io.Reader) ([]*URL, error) {
	var results = make([][]*URL, len(docs))
	var failures = make([]error, len(docs))
	var jobs = make(chan int)
	var eg, subctx = errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(jobs)
		for j := range docs {
			select {
			case jobs <- j:
			case <-subctx.Done():
				return subctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < c.concurrency; i++ {
		eg.Go(func() error {
			for j := range jobs {
				if err := subctx.Err(); err != nil {
					return err
				}

				urls, err := FromHTML(docs[j], c.base, c.selectors...)
				if err != nil {
					c.logger.WithError(err).
						WithField("document", j).
						Debug("skip document")
					failures[j] = &DocumentError{Index: j, Err: err}
					continue
				}

				results[j] = urls
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	var ret []*URL
	var errs *multierror.Error
	var failed int

	for j, urls := range results {
		if err := failures[j]; err != nil {
			errs = multierror.Append(errs, err)
			failed++
			continue
		}

		next, err := c.deduper.Dedupe(ctx, c.matches(urls))
		if err != nil {
			return nil, fmt.Errorf("href: dedupe - %w", err)
		}

		ret = append(ret, next...)
	}

	c.logger.WithFields(log.Fields{
		"documents": len(docs),
		"failed":    failed,
		"urls":      len(ret),
	}).Debug("collect")

	switch failed {
	case 0:
		return ret, nil
	case 1:
		return ret, errs.Errors[0]
	default:
		return ret, errs.ErrorOrNil()
	}
}

// Matches normalizes and returns the matching URLs.
func (c *Collector) matches(urls []*URL) []*URL {
	var ret = make([]*URL, 0, len(urls))

	for _, u := range urls {
		if c.normalize {
			u = u.Normalize()
		}

		if c.matcher != nil && !c.matcher.Match(u) {
			c.logger.WithField("url", u.FullURL()).Debug("skip url")
			continue
		}

		ret = append(ret, u)
	}

	return ret
}
