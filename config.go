package href

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/yields/href/internal/selectors"
	"gopkg.in/yaml.v3"
)

// Config represents a collector configuration file.
//
//	selectors: ["a[href]", "img[src]"]
//	base: https://example.com/
//	normalize: true
//	hosts: [example.com]
//	patterns: ["*.pdf"]
//	schemes: [https]
//	dedupe:
//	  kind: bloom
//	  m: 1000000
//	  k: 5
type Config struct {
	Selectors   []string     `yaml:"selectors" validate:"dive,required,selector"`
	Base        string       `yaml:"base" validate:"omitempty,url"`
	Concurrency int          `yaml:"concurrency" validate:"min=0"`
	Normalize   bool         `yaml:"normalize"`
	Hosts       []string     `yaml:"hosts" validate:"dive,required"`
	Patterns    []string     `yaml:"patterns" validate:"dive,required"`
	Schemes     []string     `yaml:"schemes" validate:"dive,required"`
	Dedupe      DedupeConfig `yaml:"dedupe"`
}

// DedupeConfig configures the deduper.
type DedupeConfig struct {
	// Kind is either `map` or `bloom`, it defaults to `map`.
	Kind string `yaml:"kind" validate:"omitempty,oneof=map bloom"`

	// M and K are the bloom filter's size in bits and
	// number of hash functions.
	M uint `yaml:"m" validate:"required_if=Kind bloom"`
	K uint `yaml:"k" validate:"required_if=Kind bloom"`
}

// Validate is the config validator.
var validate = newValidator()

// NewValidator returns a validator with the `selector` tag.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("selector", func(fl validator.FieldLevel) bool {
		_, err := selectors.Compile(fl.Field().String())
		return err == nil
	})

	return v
}

// LoadConfig decodes and validates a YAML config from r.
//
// Unknown fields are an error, an empty document is
// a valid config that uses all defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("href: decode config - %w", err)
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("href: validate config - %w", err)
	}

	return &c, nil
}

// CollectorConfig returns the collector config.
//
// A URL is collected when it matches any of the hosts, patterns
// or schemes, all URLs are collected when none are configured.
func (c *Config) CollectorConfig() CollectorConfig {
	var matchers []Matcher

	for _, h := range c.Hosts {
		matchers = append(matchers, MatchHostname(h))
	}

	for _, p := range c.Patterns {
		matchers = append(matchers, MatchGlob(p))
	}

	if len(c.Schemes) > 0 {
		matchers = append(matchers, MatchScheme(c.Schemes...))
	}

	var deduper = DedupeMap()
	if c.Dedupe.Kind == "bloom" {
		deduper = DedupeBF(c.Dedupe.M, c.Dedupe.K)
	}

	return CollectorConfig{
		Selectors:   c.Selectors,
		Base:        c.Base,
		Matcher:     MatchAny(matchers...),
		Deduper:     deduper,
		Normalize:   c.Normalize,
		Concurrency: c.Concurrency,
	}
}
