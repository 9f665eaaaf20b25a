package chain

import (
	"github.com/matzehuels/wordchain/pkg/errors"
	"github.com/matzehuels/wordchain/pkg/wordgraph"
)

// Validate checks that chain links every word to the next one and, when
// circular is set, that it closes on itself. Empty chains are valid.
//
// Validate only looks at letters; it does not know which words the chain was
// built from. Use it on chains read back from files or received over the wire.
func Validate(chain []string, circular bool) error {
	for i, w := range chain {
		if w == "" {
			return errors.New(errors.ErrCodeInvalidInput, "word %d is empty", i)
		}
	}
	for i := 1; i < len(chain); i++ {
		prev, next := chain[i-1], chain[i]
		if wordgraph.Last(prev) != wordgraph.First(next) {
			return errors.New(errors.ErrCodeNoPath,
				"words %d and %d do not link: %q ends with '%c' but %q starts with '%c'",
				i-1, i, prev, wordgraph.Last(prev), next, wordgraph.First(next))
		}
	}
	if circular && len(chain) > 0 {
		head, tail := chain[0], chain[len(chain)-1]
		if wordgraph.First(head) != wordgraph.Last(tail) {
			return errors.New(errors.ErrCodeNoCircuit,
				"chain does not close: %q starts with '%c' but %q ends with '%c'",
				head, wordgraph.First(head), tail, wordgraph.Last(tail))
		}
	}
	return nil
}
