package href

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/match"
)

// Matcher represents a URL matcher.
//
// Matchers classify extracted URLs, the collector calls its
// matcher with every URL and discards URLs that do not match.
type Matcher interface {
	// Match returns true if the URL matches.
	Match(u *URL) bool
}

// MatcherFunc implements a Matcher.
type MatcherFunc func(*URL) bool

// Match implementation.
func (mf MatcherFunc) Match(u *URL) bool {
	return mf(u)
}

// MatchAny returns a matcher that matches when any of the
// given matchers match.
//
// With no matchers, the matcher matches all URLs.
func MatchAny(matchers ...Matcher) MatcherFunc {
	return func(u *URL) bool {
		if len(matchers) == 0 {
			return true
		}
		for _, m := range matchers {
			if m.Match(u) {
				return true
			}
		}
		return false
	}
}

// MatchRegexp returns a new regexp matcher.
//
// The matcher returns true for all URLs whose full URL matches
// the provided regular expression. The function panics if the
// expression cannot be compiled.
func MatchRegexp(expr string) MatcherFunc {
	re, err := regexp.Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("href: match regexp %q - %s", expr, err))
	}

	return func(u *URL) bool {
		return re.MatchString(u.FullURL())
	}
}

// MatchHostname returns a new hostname matcher.
//
// The matcher returns true for all URLs whose host equals
// host, ignoring case.
func MatchHostname(host string) MatcherFunc {
	return func(u *URL) bool {
		return strings.EqualFold(u.Host(), host)
	}
}

// MatchGlob returns a new glob matcher.
//
// The matcher returns true for all URLs whose full URL matches
// the pattern, `*` matches any sequence of characters and `?`
// matches a single character.
func MatchGlob(pattern string) MatcherFunc {
	return func(u *URL) bool {
		return match.Match(u.FullURL(), pattern)
	}
}

// MatchScheme returns a new scheme matcher.
//
// The matcher returns true for all URLs whose scheme is one of
// names, ignoring case. URLs without a scheme marker are http URLs
// and protocol-relative URLs have an empty scheme.
func MatchScheme(names ...string) MatcherFunc {
	return func(u *URL) bool {
		var name = u.Scheme()

		if u.kind == SchemeExplicit {
			name = u.name
		}

		for _, n := range names {
			if strings.EqualFold(name, n) {
				return true
			}
		}
		return false
	}
}
