// Package io reads word lists and writes chains to files.
//
// # Word Lists
//
// A word list is plain text. Words are separated by any run of Unicode
// whitespace (spaces, tabs, newlines); surrounding whitespace is trimmed and
// empty tokens are dropped, so these two files hold the same list:
//
//	apple era
//
//	apple
//	  era
//
// Use [ImportWords] to read a list from a file path, or [ReadWords] to read
// from any io.Reader:
//
//	words, err := io.ImportWords("words.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [ImportWords] rejects a file without any words (NO_WORDS). [ReadWords]
// returns an empty list and leaves that decision to the caller.
//
// # Chains
//
// A chain is written one word per line, joined by "\n" with no trailing
// newline. An empty chain produces an empty file, which is also what the CLI
// writes when no chain exists. [OutputPath] derives the default destination
// next to the input:
//
//	io.OutputPath("data/words.txt", "circuit") // data/words-circuit.txt
//
// # JSON Results
//
// [WriteResult] and [ReadResult] encode a [Result]: the mode, the chain and,
// for failures, the error code and message. The same shape is returned by the
// HTTP API, so files written by the CLI can be fed back to it.
package io
