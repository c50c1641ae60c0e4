package docstore

import (
	"context"
	"encoding/json"
)

// Event is one child-added notification: the new child's key plus a snapshot
// of its record. Key "0" is a reserved placeholder on the curator side and
// never refers to a real record.
type Event struct {
	Key    string          `json:"key"`
	Record json.RawMessage `json:"record"`
}

const PlaceholderKey = "0"

type Handler func(ctx context.Context, evt Event)

// Store is a realtime document store connection. Subscriptions deliver each
// notification at least once, in per-path order; Update is an optimistic
// compare-and-set, never a blind overwrite, so concurrent unrelated mutations
// to the same record are not lost.
type Store interface {
	// Subscribe starts consuming child-added events under path, invoking h
	// once per delivered notification until ctx is cancelled. Events for one
	// path are handled sequentially.
	Subscribe(ctx context.Context, path string, h Handler) error
	// Get reads the raw record at path; nil without error when absent.
	Get(ctx context.Context, path string) ([]byte, error)
	// Update applies mutate to the current raw record under an optimistic
	// transaction, retrying while concurrent writers interfere. mutate
	// receives nil when the record is absent; returning nil leaves the
	// record untouched.
	Update(ctx context.Context, path string, mutate func(current []byte) ([]byte, error)) error
	Close() error
}
