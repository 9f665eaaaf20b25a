package wordgraph

import "slices"

// Eligibility is the outcome of [Graph.Analyze].
type Eligibility struct {
	// Exists reports whether a trail using every word exactly once exists.
	Exists bool
	// Start is the letter the trail must begin at. Only meaningful when Exists.
	Start rune
	// Circuit reports whether the trail closes on itself. Every node is then
	// balanced and Start is merely the first letter with outgoing words.
	Circuit bool
}

// Analyze decides whether the graph has an Eulerian path or circuit.
//
// A circuit needs every node balanced (out-degree == in-degree). An open path
// needs exactly one node with one surplus outgoing word (the start) and
// exactly one with one surplus incoming word (the end); every other node must
// be balanced. Any node off by more than one rules out both.
//
// The degree test alone accepts graphs made of several disjoint balanced
// pieces, which no single trail can cover, so Analyze also requires every
// edge to be reachable from the start letter when directions are ignored.
//
// An empty graph has no trail. Analyze does not modify the graph and returns
// the same answer every time it is called.
func (g *Graph) Analyze() Eligibility {
	var starts, ends []rune
	for _, r := range g.order {
		switch diff := g.Imbalance(r); {
		case diff == 1:
			starts = append(starts, r)
		case diff == -1:
			ends = append(ends, r)
		case diff != 0:
			return Eligibility{}
		}
	}

	var e Eligibility
	switch {
	case len(starts) == 0 && len(ends) == 0:
		start, ok := g.firstWithOutgoing()
		if !ok {
			return Eligibility{}
		}
		e = Eligibility{Exists: true, Start: start, Circuit: true}
	case len(starts) == 1 && len(ends) == 1:
		e = Eligibility{Exists: true, Start: starts[0]}
	default:
		return Eligibility{}
	}

	if !g.connected(e.Start) {
		return Eligibility{}
	}
	return e
}

func (g *Graph) firstWithOutgoing() (rune, bool) {
	for _, r := range g.order {
		if g.nodes[r].out > 0 {
			return r, true
		}
	}
	return 0, false
}

// connected reports whether every node is reachable from start over edges
// taken in either direction. Every node carries at least one edge, so this
// is the same as all edges lying in one weakly connected component.
func (g *Graph) connected(start rune) bool {
	undirected := make(map[rune][]rune, len(g.nodes))
	for r, n := range g.nodes {
		for _, w := range n.words {
			to := Last(w)
			undirected[r] = append(undirected[r], to)
			undirected[to] = append(undirected[to], r)
		}
	}

	seen := map[rune]bool{start: true}
	queue := []rune{start}
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for _, next := range undirected[r] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen) == len(g.nodes)
}

// Trail returns the words of an Eulerian trail beginning at start, using
// Hierholzer's algorithm with explicit stacks.
//
// From the letter on top of the node stack the most recently added unused
// word is taken, pushed on the word stack, and its last letter pushed on the
// node stack. A letter with nothing left is popped and the word that led to
// it is emitted. Emission happens in reverse completion order, so the result
// is reversed before returning.
//
// Trail works on a copy of the adjacency lists and leaves the graph intact.
// The result is only meaningful if [Graph.Analyze] reported Exists with the
// same start letter.
func (g *Graph) Trail(start rune) []string {
	adj := g.adjacency()

	nodes := []rune{start}
	words := make([]string, 0, g.edges)
	trail := make([]string, 0, g.edges)

	for len(nodes) > 0 {
		top := nodes[len(nodes)-1]
		if out := adj[top]; len(out) > 0 {
			w := out[len(out)-1]
			adj[top] = out[:len(out)-1]
			words = append(words, w)
			nodes = append(nodes, Last(w))
			continue
		}

		nodes = nodes[:len(nodes)-1]
		if len(words) > 0 {
			trail = append(trail, words[len(words)-1])
			words = words[:len(words)-1]
		}
	}

	slices.Reverse(trail)
	return trail
}
