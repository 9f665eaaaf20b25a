package cache

import "strings"

// Keyer derives cache keys.
type Keyer interface {
	// ChainKey identifies the chain computed for a word list in a mode.
	ChainKey(mode, wordsHash string) string

	// GraphKey identifies a rendered graph of a word list.
	GraphKey(wordsHash, format string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ChainKey returns "chain:<hash>" over mode and the list hash.
func (DefaultKeyer) ChainKey(mode, wordsHash string) string {
	return hashKey("chain", mode, wordsHash)
}

// GraphKey returns "graph:<hash>" over the list hash and output format.
func (DefaultKeyer) GraphKey(wordsHash, format string) string {
	return hashKey("graph", wordsHash, strings.ToLower(format))
}

var _ Keyer = DefaultKeyer{}
