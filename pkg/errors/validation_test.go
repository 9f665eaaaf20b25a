package errors

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "apple", false},
		{"valid mixed case", "Apple", false},
		{"valid unicode", "éclair", false},
		{"valid hyphen", "well-known", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxWordLength+1), true},
		{"space", "two words", true},
		{"tab", "foo\tbar", true},
		{"newline", "foo\nbar", true},
		{"null byte", "foo\x00bar", true},
		{"invalid utf8", "foo\xffbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateWord(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	if err := ValidateWords(nil); err != nil {
		t.Errorf("ValidateWords(nil) = %v, want nil", err)
	}
	if err := ValidateWords([]string{"apple", "era"}); err != nil {
		t.Errorf("ValidateWords(valid) = %v, want nil", err)
	}

	err := ValidateWords([]string{"apple", ""})
	if err == nil {
		t.Fatal("ValidateWords with empty word should fail")
	}
	if !strings.Contains(err.Error(), "word 1") {
		t.Errorf("error should name the offending index: %v", err)
	}
	if msg := UserMessage(err); msg != "word 1: word cannot be empty" {
		t.Errorf("UserMessage() = %q, want the index and the reason", msg)
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "words.txt", false},
		{"absolute", "/tmp/words.txt", false},
		{"nested", "data/lists/words.txt", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
