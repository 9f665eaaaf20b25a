// Package history records chaining runs served by the HTTP API so they can
// be fetched again by ID.
//
// Two stores are provided:
//   - [MemoryStore]: bounded in-process storage, the default
//   - [MongoStore]: a MongoDB collection, for servers that restart or scale out
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/wordchain/pkg/errors"
)

// Record is one chaining run.
type Record struct {
	ID        string    `json:"id" bson:"_id"`
	Mode      string    `json:"mode" bson:"mode"`
	Words     []string  `json:"words" bson:"words"`
	Chain     []string  `json:"chain" bson:"chain"`
	ErrorCode string    `json:"error_code,omitempty" bson:"error_code,omitempty"`
	Error     string    `json:"error,omitempty" bson:"error,omitempty"`
	Cached    bool      `json:"cached" bson:"cached"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewRecord creates a record with a fresh ID. A nil chain is stored as
// empty; chainErr, if set, is kept as code and message.
func NewRecord(mode string, words, chain []string, chainErr error) *Record {
	if chain == nil {
		chain = []string{}
	}
	rec := &Record{
		ID:        uuid.New().String(),
		Mode:      mode,
		Words:     words,
		Chain:     chain,
		CreatedAt: time.Now().UTC(),
	}
	if chainErr != nil {
		rec.ErrorCode = string(errors.GetCode(chainErr))
		rec.Error = errors.UserMessage(chainErr)
	}
	return rec
}

// Store persists records.
type Store interface {
	// Save stores rec, replacing any record with the same ID.
	Save(ctx context.Context, rec *Record) error

	// Get returns the record with id, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]*Record, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "run %q not found", id)
}
