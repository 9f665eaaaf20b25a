package wordgraph

import (
	"unicode"
	"unicode/utf8"
)

// node is a single letter vertex with its outgoing words in insertion order.
type node struct {
	letter rune
	words  []string // outgoing edges, oldest first
	in     int
	out    int
}

// Graph is a directed multigraph over letters where every word is one edge.
//
// The zero value is not usable - use New or Build.
type Graph struct {
	nodes map[rune]*node
	order []rune // letters in order of first appearance
	edges int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[rune]*node)}
}

// Build creates a graph holding one edge per word, in list order.
// Empty strings are skipped.
func Build(words []string) *Graph {
	g := New()
	for _, w := range words {
		g.AddWord(w)
	}
	return g
}

// First returns the case-folded first letter of word, or utf8.RuneError if
// word is empty.
func First(word string) rune {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.ToLower(r)
}

// Last returns the case-folded last letter of word, or utf8.RuneError if
// word is empty.
func Last(word string) rune {
	r, _ := utf8.DecodeLastRuneInString(word)
	return unicode.ToLower(r)
}

// AddWord adds word as an edge from its first letter to its last letter.
// Both letters become nodes even if one of their degrees stays zero.
// An empty word is ignored.
func (g *Graph) AddWord(word string) {
	if word == "" {
		return
	}
	from := g.ensure(First(word))
	to := g.ensure(Last(word))

	from.words = append(from.words, word)
	from.out++
	to.in++
	g.edges++
}

func (g *Graph) ensure(r rune) *node {
	n, ok := g.nodes[r]
	if !ok {
		n = &node{letter: r}
		g.nodes[r] = n
		g.order = append(g.order, r)
	}
	return n
}

// Nodes returns every letter in the graph in order of first appearance.
func (g *Graph) Nodes() []rune {
	out := make([]rune, len(g.order))
	copy(out, g.order)
	return out
}

// HasNode reports whether r is a node of the graph.
func (g *Graph) HasNode(r rune) bool {
	_, ok := g.nodes[r]
	return ok
}

// NodeCount returns the number of distinct letters.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of words added.
func (g *Graph) EdgeCount() int { return g.edges }

// InDegree returns the number of words ending with r.
func (g *Graph) InDegree(r rune) int {
	if n, ok := g.nodes[r]; ok {
		return n.in
	}
	return 0
}

// OutDegree returns the number of words starting with r.
func (g *Graph) OutDegree(r rune) int {
	if n, ok := g.nodes[r]; ok {
		return n.out
	}
	return 0
}

// Imbalance returns OutDegree(r) - InDegree(r).
func (g *Graph) Imbalance(r rune) int {
	return g.OutDegree(r) - g.InDegree(r)
}

// Words returns a copy of the words leaving r, in insertion order.
func (g *Graph) Words(r rune) []string {
	n, ok := g.nodes[r]
	if !ok || len(n.words) == 0 {
		return nil
	}
	out := make([]string, len(n.words))
	copy(out, n.words)
	return out
}

// adjacency clones the outgoing word lists. Trail consumes the clone.
func (g *Graph) adjacency() map[rune][]string {
	adj := make(map[rune][]string, len(g.nodes))
	for r, n := range g.nodes {
		if len(n.words) > 0 {
			adj[r] = append([]string(nil), n.words...)
		}
	}
	return adj
}
