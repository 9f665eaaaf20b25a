package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Chain hooks
	p := NoopChainHooks{}
	p.OnChainStart(ctx, "circuit", 2)
	p.OnChainComplete(ctx, "circuit", 2, time.Second, nil)
	p.OnRenderStart(ctx, "svg")
	p.OnRenderComplete(ctx, "svg", time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "chain")
	c.OnCacheMiss(ctx, "chain")
	c.OnCacheSet(ctx, "graph", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/chains")
	h.OnResponse(ctx, "POST", "/chains", 201, time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Chain().(NoopChainHooks); !ok {
		t.Error("Chain() should return NoopChainHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customChain := &testChainHooks{}
	SetChainHooks(customChain)
	if Chain() != customChain {
		t.Error("SetChainHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Chain().(NoopChainHooks); !ok {
		t.Error("Reset() should restore NoopChainHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testChainHooks{}
	SetChainHooks(custom)

	// Setting nil should be ignored
	SetChainHooks(nil)

	if Chain() != custom {
		t.Error("SetChainHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testChainHooks struct{ NoopChainHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
