// Package wordgraph provides the directed letter multigraph used to chain words.
//
// # Overview
//
// Every word is one directed edge from its first letter to its last letter.
// Nodes are single letters, case-folded, so "Apple" and "era" meet at 'a'/'e'
// regardless of capitalisation. Several words may share the same pair of
// letters; the graph is a multigraph and keeps every one of them.
//
// Arranging the words into a chain where each word starts with the previous
// word's last letter is then the same as walking every edge of the graph
// exactly once: an Eulerian path, or an Eulerian circuit when the chain must
// close into a loop.
//
// # Basic Usage
//
// Build a graph, check it, then extract the trail:
//
//	g := wordgraph.Build([]string{"apple", "era"})
//	e := g.Analyze()
//	if !e.Exists {
//	    // no chain uses every word
//	}
//	words := g.Trail(e.Start) // ["apple", "era"]
//
// [Graph.Analyze] checks the degree balance of every node (out-degree minus
// in-degree must be 0 everywhere for a circuit, or +1 at exactly one node and
// -1 at exactly one other for an open path) and that all edges belong to one
// weakly connected component. [Graph.Trail] runs Hierholzer's algorithm with
// explicit stacks, so very long word lists never hit recursion limits.
//
// # Determinism
//
// Nodes are enumerated in order of first appearance, and within a node the
// most recently added remaining word is always taken first. The same input
// list therefore always yields the same chain.
//
// # Lifecycle
//
// A graph only grows: there is no removal. [Graph.Trail] works on a private
// copy of the adjacency lists, so the graph stays valid and inspectable after
// extraction and [Graph.Analyze] keeps returning the same answer.
//
// # Visualization
//
// [ToDOT] converts a graph to Graphviz DOT, optionally numbering edges by
// their position in a computed chain, and [RenderSVG] renders DOT to SVG
// through go-graphviz.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Independent graphs may be
// built and consumed in parallel freely.
package wordgraph
