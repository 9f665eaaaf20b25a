package chain

import (
	"github.com/matzehuels/wordchain/pkg/errors"
	"github.com/matzehuels/wordchain/pkg/wordgraph"
)

// Path chains words into an open Eulerian path.
type Path struct{}

// Mode implements Policy.
func (Path) Mode() Mode { return ModePath }

// Name implements Policy.
func (Path) Name() string { return "Word Chain (Path)" }

// Chain returns the words ordered so that each starts with the previous
// word's last letter. The chain need not close.
//
// No words yield an empty chain and a single word is returned as is.
func (Path) Chain(words []string) ([]string, error) {
	switch len(words) {
	case 0:
		return []string{}, nil
	case 1:
		return []string{words[0]}, nil
	}

	g := wordgraph.Build(words)
	e := g.Analyze()
	if !e.Exists {
		return nil, errors.New(errors.ErrCodeNoPath,
			"no Eulerian path exists: words cannot be arranged so each starts with the last letter of the previous one")
	}
	return g.Trail(e.Start), nil
}

// Circuit chains words into a closed Eulerian circuit.
type Circuit struct{}

// Mode implements Policy.
func (Circuit) Mode() Mode { return ModeCircuit }

// Name implements Policy.
func (Circuit) Name() string { return "Circular Chaining (Circuit)" }

// Chain returns the words ordered so that each starts with the previous
// word's last letter and the last word ends with the first word's first
// letter.
//
// No words yield an empty chain. A single word succeeds only if it starts and
// ends with the same letter.
func (Circuit) Chain(words []string) ([]string, error) {
	switch len(words) {
	case 0:
		return []string{}, nil
	case 1:
		w := words[0]
		if first, last := wordgraph.First(w), wordgraph.Last(w); first != last {
			return nil, errors.New(errors.ErrCodeSingleWordNotCircular,
				"cannot close a circle with the single word %q: first letter '%c' must equal last letter '%c'", w, first, last)
		}
		return []string{w}, nil
	}

	g := wordgraph.Build(words)
	e := g.Analyze()
	if !e.Exists || !e.Circuit {
		return nil, errors.New(errors.ErrCodeNoCircuit,
			"no Eulerian circuit exists: words cannot be arranged in a circle where each starts with the last letter of the previous one")
	}

	chain := g.Trail(e.Start)
	if err := checkClosed(chain); err != nil {
		return nil, err
	}
	return chain, nil
}

// checkClosed re-verifies an extracted circuit. A failure here is a bug in
// the analysis or extraction, not a problem with the input.
func checkClosed(chain []string) error {
	if len(chain) == 0 {
		return nil
	}
	head, tail := chain[0], chain[len(chain)-1]
	if first, last := wordgraph.First(head), wordgraph.Last(tail); first != last {
		return errors.New(errors.ErrCodeInternalInconsistency,
			"extracted chain is not circular: first word %q starts with '%c' but last word %q ends with '%c'", head, first, tail, last)
	}
	return nil
}

var (
	_ Policy = Path{}
	_ Policy = Circuit{}
)
