package pipeline

import (
	"context"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordchain/pkg/cache"
	"github.com/matzehuels/wordchain/pkg/errors"
	"github.com/matzehuels/wordchain/pkg/observability"
)

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func newTestRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.New(&strings.Builder{}))
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateForChain(); err != nil {
		t.Fatalf("ValidateForChain: %v", err)
	}
	if o.Mode != "circuit" {
		t.Errorf("default mode = %q, want circuit", o.Mode)
	}
	if o.TTL != DefaultChainTTL {
		t.Errorf("default TTL = %v, want %v", o.TTL, DefaultChainTTL)
	}

	o = Options{Mode: "--chain"}
	if err := o.ValidateForChain(); err != nil {
		t.Fatalf("ValidateForChain: %v", err)
	}
	if o.Mode != "path" {
		t.Errorf("alias resolved to %q, want path", o.Mode)
	}

	g := Options{Annotate: true}
	if err := g.ValidateForGraph(); err != nil {
		t.Fatalf("ValidateForGraph: %v", err)
	}
	if g.Format != FormatSVG || g.TTL != DefaultGraphTTL {
		t.Errorf("graph defaults = %q, %v", g.Format, g.TTL)
	}

	bad := Options{Mode: "sideways"}
	if err := bad.ValidateForChain(); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ValidateForChain(bad mode) = %v", err)
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		mode     string
		want     []string
		wantCode errors.Code
	}{
		{"circuit", []string{"apple", "era"}, "circuit", []string{"apple", "era"}, ""},
		{"path", []string{"tiger", "red", "elephant", "apple"}, "path", []string{"apple", "elephant", "tiger", "red"}, ""},
		{"no circuit", []string{"apple", "elephant", "tiger", "red"}, "circuit", nil, errors.ErrCodeNoCircuit},
		{"no path", []string{"apple", "banana", "cherry"}, "path", nil, errors.ErrCodeNoPath},
		{"single open word", []string{"hello"}, "circuit", nil, errors.ErrCodeSingleWordNotCircular},
		{"empty", nil, "path", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRunner(nil)
			res, err := r.Execute(context.Background(), Options{Words: tt.words, Mode: tt.mode})
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Execute() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !slices.Equal(res.Chain, tt.want) {
				t.Errorf("Execute() = %v, want %v", res.Chain, tt.want)
			}
			if res.Stats.WordCount != len(tt.words) {
				t.Errorf("WordCount = %d, want %d", res.Stats.WordCount, len(tt.words))
			}
		})
	}
}

func TestExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := newTestRunner(c)
	opts := Options{Words: []string{"apple", "era"}, Mode: "circuit"}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.Cached {
		t.Error("first run should not be cached")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.Cached {
		t.Error("second run should come from cache")
	}
	if !slices.Equal(first.Chain, second.Chain) {
		t.Errorf("cached chain = %v, want %v", second.Chain, first.Chain)
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if third.Cached {
		t.Error("refresh should bypass the cache")
	}
	if c.sets != 2 {
		t.Errorf("cache writes = %d, want 2", c.sets)
	}
}

func TestExecuteWithoutCache(t *testing.T) {
	r := newTestRunner(cache.NewNullCache())
	opts := Options{Words: []string{"apple", "era"}, Mode: "circuit"}

	for i := 0; i < 2; i++ {
		res, err := r.Execute(context.Background(), opts)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if res.Cached {
			t.Errorf("run %d came from a disabled cache", i+1)
		}
	}
}

func TestExecuteCachesUnchainable(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := newTestRunner(c)
	opts := Options{Words: []string{"apple", "banana", "cherry"}, Mode: "path"}

	_, err1 := r.Execute(ctx, opts)
	_, err2 := r.Execute(ctx, opts)
	if !errors.Is(err1, errors.ErrCodeNoPath) || !errors.Is(err2, errors.ErrCodeNoPath) {
		t.Fatalf("errors = %v, %v; want NO_PATH twice", err1, err2)
	}
	if errors.UserMessage(err1) != errors.UserMessage(err2) {
		t.Errorf("cached message %q differs from %q", errors.UserMessage(err2), errors.UserMessage(err1))
	}
	if c.sets != 1 {
		t.Errorf("cache writes = %d, want 1", c.sets)
	}
}

func TestExecuteModesCachedSeparately(t *testing.T) {
	ctx := context.Background()
	r := newTestRunner(newMemCache())
	words := []string{"apple", "elephant", "tiger", "red"}

	if _, err := r.Execute(ctx, Options{Words: words, Mode: "path"}); err != nil {
		t.Fatalf("path: %v", err)
	}
	if _, err := r.Execute(ctx, Options{Words: words, Mode: "circuit"}); !errors.Is(err, errors.ErrCodeNoCircuit) {
		t.Errorf("circuit after path = %v, want NO_CIRCUIT", err)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newTestRunner(nil)
	if _, err := r.Execute(ctx, Options{Words: []string{"apple", "era"}}); err != context.Canceled {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestGraphDOT(t *testing.T) {
	ctx := context.Background()
	c := newMemCache()
	r := newTestRunner(c)
	opts := Options{Words: []string{"era", "apple"}, Format: FormatDOT, Annotate: true, Mode: "circuit"}

	res, err := r.Graph(ctx, opts)
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	dot := string(res.Data)
	for _, want := range []string{"digraph words", `"e" -> "a" [label="1. era"]`, `"a" -> "e" [label="2. apple"]`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	again, err := r.Graph(ctx, opts)
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if !again.Cached {
		t.Error("second render should come from cache")
	}
}

func TestGraphUnchainableAnnotate(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		mode  string
	}{
		{"no path", []string{"apple", "banana", "cherry"}, "path"},
		{"single open word", []string{"hello"}, "circuit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRunner(nil)
			res, err := r.Graph(context.Background(), Options{
				Words:    tt.words,
				Format:   FormatDOT,
				Annotate: true,
				Mode:     tt.mode,
			})
			if err != nil {
				t.Fatalf("Graph: %v", err)
			}
			if strings.Contains(string(res.Data), "1. ") {
				t.Errorf("unchainable graph should not be numbered:\n%s", res.Data)
			}
		})
	}
}

func TestGraphInvalidFormat(t *testing.T) {
	r := newTestRunner(nil)
	if _, err := r.Graph(context.Background(), Options{Words: []string{"a"}, Format: "png"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Graph(png) = %v, want INVALID_INPUT", err)
	}
}

type recordingHooks struct {
	observability.NoopChainHooks
	mu     sync.Mutex
	starts []string
	errs   []error
}

func (h *recordingHooks) OnChainStart(_ context.Context, mode string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts = append(h.starts, mode)
}

func (h *recordingHooks) OnChainComplete(_ context.Context, _ string, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func TestExecuteHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetChainHooks(h)
	defer observability.Reset()

	r := newTestRunner(newMemCache())
	opts := Options{Words: []string{"apple", "elephant", "tiger", "red"}, Mode: "circuit"}
	_, _ = r.Execute(context.Background(), opts)
	_, _ = r.Execute(context.Background(), opts)

	if len(h.starts) != 1 || h.starts[0] != "circuit" {
		t.Errorf("OnChainStart calls = %v, want one circuit call", h.starts)
	}
	if len(h.errs) != 1 || !errors.Is(h.errs[0], errors.ErrCodeNoCircuit) {
		t.Errorf("OnChainComplete errors = %v", h.errs)
	}
}
