// Package pipeline runs word chaining and graph rendering with caching.
//
// This package implements the read → chain → render flow shared by the CLI
// and the HTTP server. By centralizing this logic, both entry points cache,
// log and report hooks the same way.
//
// # Architecture
//
// The pipeline has two independent operations:
//
//  1. Chain: order the words with the policy for the selected mode
//  2. Graph: render the letter graph of the words as DOT or SVG
//
// Both look up the [cache.Cache] first. Chaining failures are deterministic,
// so unchainable results are cached as well and replayed as the same error.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Words: []string{"apple", "era"},
//	    Mode:  "circuit",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Chain) // [apple era]
package pipeline

import (
	"time"

	"github.com/matzehuels/wordchain/pkg/chain"
	"github.com/matzehuels/wordchain/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultChainTTL is how long computed chains stay cached.
	DefaultChainTTL = 7 * 24 * time.Hour

	// DefaultGraphTTL is how long rendered graphs stay cached.
	DefaultGraphTTL = 24 * time.Hour
)

// Format constants for graph output.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported graph formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// ValidateFormat checks that a graph format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Words []string `json:"words"`
	Mode  string   `json:"mode,omitempty"`

	// Graph options
	Format  string `json:"format,omitempty"`
	Degrees bool   `json:"degrees,omitempty"`

	// Annotate numbers graph edges by chain position when a chain exists.
	Annotate bool `json:"annotate,omitempty"`

	// Refresh recomputes and overwrites cached entries.
	Refresh bool `json:"refresh,omitempty"`

	// TTL overrides the default cache lifetime.
	TTL time.Duration `json:"-"`

	mode chain.Mode
}

// ValidateForChain resolves the mode and applies defaults for chaining.
func (o *Options) ValidateForChain() error {
	if err := o.resolveMode(); err != nil {
		return err
	}
	if o.TTL == 0 {
		o.TTL = DefaultChainTTL
	}
	return nil
}

// ValidateForGraph validates the format and applies defaults for rendering.
func (o *Options) ValidateForGraph() error {
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Annotate {
		if err := o.resolveMode(); err != nil {
			return err
		}
	}
	if o.TTL == 0 {
		o.TTL = DefaultGraphTTL
	}
	return nil
}

func (o *Options) resolveMode() error {
	o.mode = chain.DefaultMode
	if o.Mode != "" {
		m, err := chain.ParseMode(o.Mode)
		if err != nil {
			return err
		}
		o.mode = m
	}
	o.Mode = string(o.mode)
	return nil
}

// Result contains the outcome of a successful chaining run.
type Result struct {
	// Chain holds every input word in chain order.
	Chain []string

	// Mode is the resolved mode.
	Mode chain.Mode

	// WordsHash is the content hash of the input list.
	WordsHash string

	// Cached reports whether the chain came from the cache.
	Cached bool

	// Stats contains timing and size information.
	Stats Stats
}

// GraphResult contains a rendered letter graph.
type GraphResult struct {
	Data   []byte
	Format string
	Cached bool
	Stats  Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount int
	Duration  time.Duration
}

// cachedChain is the cache representation of a chaining outcome.
type cachedChain struct {
	Chain   []string `json:"chain"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message,omitempty"`
}

func (c cachedChain) err() error {
	if c.Code == "" {
		return nil
	}
	return errors.New(errors.Code(c.Code), "%s", c.Message)
}
