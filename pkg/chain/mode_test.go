package chain

import (
	"slices"
	"testing"

	"github.com/matzehuels/wordchain/pkg/errors"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"path", ModePath, false},
		{"chain", ModePath, false},
		{"--chain", ModePath, false},
		{"circuit", ModeCircuit, false},
		{"circular", ModeCircuit, false},
		{"--circular", ModeCircuit, false},
		{"  Circuit ", ModeCircuit, false},
		{"PATH", ModePath, false},
		{"", "", true},
		{"reverse", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidMode) {
				t.Errorf("ParseMode(%q) code = %s, want %s", tt.in, errors.GetCode(err), errors.ErrCodeInvalidMode)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForMode(t *testing.T) {
	for _, m := range Modes() {
		p, err := ForMode(m)
		if err != nil {
			t.Fatalf("ForMode(%q) error = %v", m, err)
		}
		if p.Mode() != m {
			t.Errorf("ForMode(%q).Mode() = %q", m, p.Mode())
		}
		if p.Name() == "" {
			t.Errorf("ForMode(%q).Name() is empty", m)
		}
	}

	if _, err := ForMode("bogus"); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("ForMode(bogus) error = %v, want %s", err, errors.ErrCodeInvalidMode)
	}
}

func TestChainByMode(t *testing.T) {
	got, err := Chain(ModeCircuit, []string{"apple", "era"})
	if err != nil || len(got) != 2 {
		t.Fatalf("Chain(circuit) = %v, %v", got, err)
	}
	if _, err := Chain("bogus", []string{"apple"}); !errors.Is(err, errors.ErrCodeInvalidMode) {
		t.Errorf("Chain(bogus) error = %v, want %s", err, errors.ErrCodeInvalidMode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		chain    []string
		circular bool
		wantCode errors.Code
	}{
		{"empty", nil, true, ""},
		{"single", []string{"hello"}, false, ""},
		{"single circular open", []string{"hello"}, true, errors.ErrCodeNoCircuit},
		{"linked", []string{"apple", "elephant", "tiger"}, false, ""},
		{"linked case folded", []string{"Apple", "Era"}, true, ""},
		{"broken link", []string{"apple", "tiger"}, false, errors.ErrCodeNoPath},
		{"not closed", []string{"apple", "elephant"}, true, errors.ErrCodeNoCircuit},
		{"empty word", []string{"apple", ""}, false, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.chain, tt.circular)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestModeAliases(t *testing.T) {
	tests := []struct {
		mode Mode
		want []string
	}{
		{ModePath, []string{"--chain", "chain"}},
		{ModeCircuit, []string{"--circular", "circular"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.Aliases(); !slices.Equal(got, tt.want) {
				t.Errorf("Aliases() = %v, want %v", got, tt.want)
			}
		})
	}
}
