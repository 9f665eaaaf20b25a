package io

import (
	"bufio"
	"io"
	"os"

	"github.com/matzehuels/wordchain/pkg/errors"
)

// maxTokenSize bounds a single whitespace-free run in the input.
const maxTokenSize = 1 << 20

// ReadWords splits the text read from r into words.
//
// Any Unicode whitespace separates words and empty tokens are dropped. The
// order of words is preserved, duplicates included. ReadWords does not close r.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	words := []string{}
	for sc.Scan() {
		if w := sc.Text(); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read words")
	}
	return words, nil
}

// ImportWords reads the word list stored at path.
//
// A missing file yields FILE_NOT_FOUND and a file without any words yields
// NO_WORDS.
func ImportWords(path string) ([]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadWords(f)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New(errors.ErrCodeNoWords, "no words found in %s", path)
	}
	return words, nil
}

// openFile validates path and opens it, mapping a missing file to
// FILE_NOT_FOUND and any other failure to INVALID_PATH.
func openFile(path string) (*os.File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read file at %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to read file at %s", path)
	}
	return f, nil
}
