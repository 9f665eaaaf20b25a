package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteWords writes words to w one per line, without a trailing newline.
func WriteWords(words []string, w io.Writer) error {
	if _, err := io.WriteString(w, strings.Join(words, "\n")); err != nil {
		return fmt.Errorf("write words: %w", err)
	}
	return nil
}

// ExportWords writes words to a file at path, replacing any existing file.
// An empty list produces an empty file.
func ExportWords(words []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteWords(words, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputPath returns the default output file for a chain built from input:
// "<dir>/<name>-<mode><ext>" in the input's directory. A leading "--" on
// mode is dropped.
func OutputPath(input, mode string) string {
	ext := filepath.Ext(input)
	name := strings.TrimSuffix(filepath.Base(input), ext)
	mode = strings.TrimPrefix(mode, "--")
	return filepath.Join(filepath.Dir(input), name+"-"+mode+ext)
}
