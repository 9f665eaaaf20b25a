// Package pkg provides the libraries behind the wordchain tool.
//
// # Overview
//
// Wordchain orders a list of words so that every word starts with the last
// letter of the word before it. Each word is an edge in a directed multigraph
// over letters, and a chain is an Eulerian trail through that graph. The pkg
// directory is organized into three areas:
//
//  1. Domain logic: [wordgraph] (letter graph, eligibility, trail extraction)
//     and [chain] (path and circuit policies, validation)
//  2. Infrastructure: [cache], [history], [config], [observability] and [io]
//  3. Orchestration: [pipeline] (cached chaining and rendering) and [server]
//     (HTTP API)
//
// # Architecture
//
//	word file / HTTP request
//	         ↓
//	    [io] package (split on whitespace)
//	         ↓
//	    [pipeline] package (cache lookup, hooks)
//	         ↓
//	    [chain] package (policy for the mode)
//	         ↓
//	    [wordgraph] package (analyze + Hierholzer trail)
//	         ↓
//	    chain file / JSON / DOT / SVG
//
// # Quick Start
//
//	words, err := io.ImportWords("words.txt")
//	if err != nil {
//	    return err
//	}
//	out, err := chain.Chain(chain.ModeCircuit, words)
//	if errors.IsUnchainable(err) {
//	    // no ordering uses every word exactly once
//	}
//
// # Errors
//
// Every package returns *[errors.Error] values with a stable code such as
// NO_CIRCUIT or INVALID_MODE, so callers can branch on [errors.Is] and the
// server can map codes to HTTP statuses.
package pkg
