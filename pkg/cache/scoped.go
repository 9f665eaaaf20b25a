package cache

// ScopedKeyer wraps a Keyer with a prefix so several users of one backend
// get separate namespaces.
//
// Example usage:
//
//	// Keys for the staging server sharing production Redis
//	k := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ChainKey generates a prefixed key for chain caching.
func (k *ScopedKeyer) ChainKey(mode, wordsHash string) string {
	return k.prefix + k.inner.ChainKey(mode, wordsHash)
}

// GraphKey generates a prefixed key for rendered graph caching.
func (k *ScopedKeyer) GraphKey(wordsHash, format string) string {
	return k.prefix + k.inner.GraphKey(wordsHash, format)
}
