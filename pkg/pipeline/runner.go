package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordchain/pkg/cache"
	"github.com/matzehuels/wordchain/pkg/chain"
	"github.com/matzehuels/wordchain/pkg/errors"
	"github.com/matzehuels/wordchain/pkg/observability"
	"github.com/matzehuels/wordchain/pkg/wordgraph"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute chains opts.Words with the policy for opts.Mode, consulting the
// cache first. Unchainable input returns the policy's error; a partial chain
// is never returned.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateForChain(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	hash := cache.WordsHash(opts.Words)
	key := r.Keyer.ChainKey(opts.Mode, hash)

	res := &Result{
		Mode:      opts.mode,
		WordsHash: hash,
		Stats:     Stats{WordCount: len(opts.Words)},
	}

	if !opts.Refresh {
		if entry, ok := r.lookup(ctx, key); ok {
			res.Cached = true
			res.Stats.Duration = time.Since(start)
			r.Logger.Debug("chain cache hit", "mode", opts.Mode, "words", len(opts.Words))
			if err := entry.err(); err != nil {
				return nil, err
			}
			res.Chain = entry.Chain
			return res, nil
		}
	}

	observability.Chain().OnChainStart(ctx, opts.Mode, len(opts.Words))
	words, err := chain.Chain(opts.mode, opts.Words)
	res.Stats.Duration = time.Since(start)
	observability.Chain().OnChainComplete(ctx, opts.Mode, len(opts.Words), res.Stats.Duration, err)

	if err != nil && !errors.IsUnchainable(err) {
		return nil, err
	}
	r.store(ctx, key, words, err, opts.TTL)
	if err != nil {
		r.Logger.Info("no chain", "mode", opts.Mode, "words", len(opts.Words), "code", errors.GetCode(err))
		return nil, err
	}

	r.Logger.Info("built chain",
		"mode", opts.Mode,
		"words", len(words),
		"duration", res.Stats.Duration)

	res.Chain = words
	return res, nil
}

func (r *Runner) lookup(ctx context.Context, key string) (cachedChain, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return cachedChain{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "chain")
		return cachedChain{}, false
	}

	var entry cachedChain
	if err := json.Unmarshal(data, &entry); err != nil {
		observability.Cache().OnCacheMiss(ctx, "chain")
		return cachedChain{}, false
	}
	if entry.Chain == nil {
		entry.Chain = []string{}
	}
	observability.Cache().OnCacheHit(ctx, "chain")
	return entry, true
}

func (r *Runner) store(ctx context.Context, key string, words []string, chainErr error, ttl time.Duration) {
	entry := cachedChain{Chain: words}
	if chainErr != nil {
		entry.Chain = nil
		entry.Code = string(errors.GetCode(chainErr))
		entry.Message = errors.UserMessage(chainErr)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "chain", len(data))
}

// Graph renders the letter graph of opts.Words in opts.Format. With
// opts.Annotate set, edges are numbered by their position in the chain for
// opts.Mode; unchainable input is rendered without numbers.
func (r *Runner) Graph(ctx context.Context, opts Options) (*GraphResult, error) {
	if err := opts.ValidateForGraph(); err != nil {
		return nil, err
	}

	start := time.Now()
	hash := cache.WordsHash(opts.Words)
	variant := opts.Format
	if opts.Degrees {
		variant += "+degrees"
	}
	if opts.Annotate {
		variant += "+" + opts.Mode
	}
	key := r.Keyer.GraphKey(hash, variant)

	res := &GraphResult{
		Format: opts.Format,
		Stats:  Stats{WordCount: len(opts.Words)},
	}

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "graph")
			res.Data = data
			res.Cached = true
			res.Stats.Duration = time.Since(start)
			return res, nil
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	dotOpts := wordgraph.Options{Degrees: opts.Degrees}
	if opts.Annotate {
		cr, err := r.Execute(ctx, Options{Words: opts.Words, Mode: opts.Mode, Refresh: opts.Refresh})
		switch {
		case err == nil:
			dotOpts.Chain = cr.Chain
		case !errors.IsUnchainable(err) && !errors.Is(err, errors.ErrCodeSingleWordNotCircular):
			return nil, err
		}
	}

	observability.Chain().OnRenderStart(ctx, opts.Format)
	data, err := r.render(ctx, wordgraph.Build(opts.Words), opts.Format, dotOpts)
	res.Stats.Duration = time.Since(start)
	observability.Chain().OnRenderComplete(ctx, opts.Format, res.Stats.Duration, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", opts.Format)
	}

	if err := r.Cache.Set(ctx, key, data, opts.TTL); err == nil {
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}

	r.Logger.Info("rendered graph",
		"format", opts.Format,
		"bytes", len(data),
		"duration", res.Stats.Duration)

	res.Data = data
	return res, nil
}

func (r *Runner) render(ctx context.Context, g *wordgraph.Graph, format string, opts wordgraph.Options) ([]byte, error) {
	dot := wordgraph.ToDOT(g, opts)
	if format == FormatDOT {
		return []byte(dot), nil
	}
	return wordgraph.RenderSVG(ctx, dot)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
