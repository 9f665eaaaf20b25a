// Package chain arranges words so each one starts with the last letter of the
// word before it.
//
// Two policies are provided, selected by [Mode]:
//
//   - [ModePath]: every word exactly once, the chain may end anywhere
//   - [ModeCircuit]: every word exactly once and the last word's last letter
//     equals the first word's first letter, closing the loop
//
// Both build a [wordgraph.Graph] from the input, check it with
// [wordgraph.Graph.Analyze] and extract the chain with [wordgraph.Graph.Trail].
// Failures are *errors.Error values carrying one of the codes NO_PATH,
// NO_CIRCUIT, SINGLE_WORD_NOT_CIRCULAR or INTERNAL_INCONSISTENCY. There is no
// partial result: a policy returns every word or an error.
//
// Policies hold no state; one value may serve any number of goroutines.
package chain

import (
	"slices"
	"strings"

	"github.com/matzehuels/wordchain/pkg/errors"
)

// Mode names a chaining policy.
type Mode string

const (
	// ModePath allows the chain to end on a different letter than it starts.
	ModePath Mode = "path"
	// ModeCircuit requires the chain to close into a loop.
	ModeCircuit Mode = "circuit"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeCircuit

// aliases maps accepted spellings to modes. The dashed forms are the
// historical command-line codes.
var aliases = map[string]Mode{
	"path":       ModePath,
	"chain":      ModePath,
	"--chain":    ModePath,
	"circuit":    ModeCircuit,
	"circular":   ModeCircuit,
	"--circular": ModeCircuit,
}

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeCircuit, ModePath}
}

// Aliases returns the other names [ParseMode] accepts for m, sorted.
func (m Mode) Aliases() []string {
	var out []string
	for name, mode := range aliases {
		if mode == m && name != string(m) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// ParseMode resolves a user supplied mode name. Matching is case-insensitive.
func ParseMode(s string) (Mode, error) {
	if m, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	names := make([]string, 0, len(Modes()))
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (available: %s)", s, strings.Join(names, ", "))
}

// Policy turns a word list into a chain.
type Policy interface {
	// Mode returns the mode this policy implements.
	Mode() Mode
	// Name returns a human readable description.
	Name() string
	// Chain returns the words reordered into a valid chain.
	Chain(words []string) ([]string, error)
}

// ForMode returns the policy implementing m.
func ForMode(m Mode) (Policy, error) {
	switch m {
	case ModePath:
		return Path{}, nil
	case ModeCircuit:
		return Circuit{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q", m)
}

// Chain runs the policy for m over words.
func Chain(m Mode, words []string) ([]string, error) {
	p, err := ForMode(m)
	if err != nil {
		return nil, err
	}
	return p.Chain(words)
}
