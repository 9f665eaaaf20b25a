package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/wordchain/pkg/errors"
)

// Result is the JSON form of a chaining run.
type Result struct {
	Mode  string       `json:"mode"`
	Chain []string     `json:"chain"`
	Error *ResultError `json:"error,omitempty"`
}

// ResultError describes why no chain was produced.
type ResultError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewResult builds a Result from the outcome of a chaining run. A nil chain
// is stored as an empty list so the JSON always carries an array.
func NewResult(mode string, chain []string, err error) Result {
	if chain == nil {
		chain = []string{}
	}
	res := Result{Mode: mode, Chain: chain}
	if err != nil {
		code := string(errors.GetCode(err))
		if code == "" {
			code = string(errors.ErrCodeInternal)
		}
		res.Error = &ResultError{Code: code, Message: errors.UserMessage(err)}
	}
	return res
}

// WriteResult encodes res as indented JSON.
func WriteResult(res Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadResult decodes a Result written by [WriteResult]. ReadResult does not
// close r.
func ReadResult(r io.Reader) (Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode result")
	}
	if res.Chain == nil {
		res.Chain = []string{}
	}
	return res, nil
}

// ImportResult reads a Result from the file at path.
func ImportResult(path string) (Result, error) {
	f, err := openFile(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return ReadResult(f)
}
