package wordgraph

import (
	"slices"
	"testing"
	"unicode/utf8"
)

func TestFirstLast(t *testing.T) {
	tests := []struct {
		word        string
		first, last rune
	}{
		{"apple", 'a', 'e'},
		{"Apple", 'a', 'e'},
		{"ERA", 'e', 'a'},
		{"x", 'x', 'x'},
		{"Éclair", 'é', 'r'},
		{"café", 'c', 'é'},
		{"", utf8.RuneError, utf8.RuneError},
	}

	for _, tt := range tests {
		if got := First(tt.word); got != tt.first {
			t.Errorf("First(%q) = %q, want %q", tt.word, got, tt.first)
		}
		if got := Last(tt.word); got != tt.last {
			t.Errorf("Last(%q) = %q, want %q", tt.word, got, tt.last)
		}
	}
}

func TestAddWord(t *testing.T) {
	g := New()
	g.AddWord("apple")

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if g.OutDegree('a') != 1 || g.InDegree('a') != 0 {
		t.Errorf("a: out=%d in=%d, want out=1 in=0", g.OutDegree('a'), g.InDegree('a'))
	}
	if g.OutDegree('e') != 0 || g.InDegree('e') != 1 {
		t.Errorf("e: out=%d in=%d, want out=0 in=1", g.OutDegree('e'), g.InDegree('e'))
	}
	// Both endpoints are nodes even with a zero degree on one side.
	if !g.HasNode('a') || !g.HasNode('e') {
		t.Error("both endpoints should be registered as nodes")
	}
	if got := g.Words('a'); !slices.Equal(got, []string{"apple"}) {
		t.Errorf("Words('a') = %v, want [apple]", got)
	}
	if got := g.Words('e'); got != nil {
		t.Errorf("Words('e') = %v, want nil", got)
	}
}

func TestAddWordEmptyIsNoop(t *testing.T) {
	g := New()
	g.AddWord("")

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
}

func TestAddWordCaseFolding(t *testing.T) {
	g := Build([]string{"Apple", "era", "EAR"})

	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3 (a, e, r)", g.NodeCount())
	}
	if g.OutDegree('e') != 2 {
		t.Errorf("OutDegree('e') = %d, want 2", g.OutDegree('e'))
	}
	if g.HasNode('E') || g.HasNode('A') {
		t.Error("upper-case letters should be folded")
	}
	// Words keep their original spelling.
	if got := g.Words('e'); !slices.Equal(got, []string{"era", "EAR"}) {
		t.Errorf("Words('e') = %v, want [era EAR]", got)
	}
}

func TestSelfLoop(t *testing.T) {
	g := Build([]string{"area"})

	if g.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if g.InDegree('a') != 1 || g.OutDegree('a') != 1 {
		t.Errorf("a: in=%d out=%d, want 1/1", g.InDegree('a'), g.OutDegree('a'))
	}
	if g.Imbalance('a') != 0 {
		t.Errorf("Imbalance('a') = %d, want 0", g.Imbalance('a'))
	}
}

func TestNodesOrder(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []rune
	}{
		{"empty", nil, []rune{}},
		{"single", []string{"apple"}, []rune{'a', 'e'}},
		{"first before last", []string{"apple", "era"}, []rune{'a', 'e'}},
		{"chain", []string{"tiger", "red"}, []rune{'t', 'r', 'd'}},
		{"dedup", []string{"ab", "ba", "ab"}, []rune{'a', 'b'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.words).Nodes()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Nodes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	g := Build([]string{"apple"})
	nodes := g.Nodes()
	nodes[0] = 'z'

	if g.Nodes()[0] != 'a' {
		t.Error("mutating Nodes() result should not affect the graph")
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	g := Build([]string{"ab", "ac"})
	words := g.Words('a')
	words[0] = "zz"

	if got := g.Words('a'); !slices.Equal(got, []string{"ab", "ac"}) {
		t.Errorf("Words('a') = %v after mutation, want [ab ac]", got)
	}
}

func TestDegreesUnknownNode(t *testing.T) {
	g := Build([]string{"apple"})
	if g.InDegree('z') != 0 || g.OutDegree('z') != 0 || g.Imbalance('z') != 0 {
		t.Error("unknown node should report zero degrees")
	}
}
