package sessionstate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by Load and Save when the session row itself
// does not exist. A session with no state yet is NOT an error: Load returns
// the empty-object default for it.
var ErrSessionNotFound = errors.New("chat session not found")

// ValidationError reports a state document the store refuses to persist
// (not serializable as JSON, or rejected by the storage backend).
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid session state: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid session state: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransientError wraps an I/O failure reaching the backing store. The store
// performs no retries itself; callers may retry at their own policy.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("session state %s failed: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// Store is the persistence contract for per-session continuity documents.
//
// Semantics:
//   - Load returns `{}` for sessions that exist but have no state written.
//   - Save replaces the stored document in full (last-write-wins, no merge)
//     and is atomic with respect to concurrent readers: a reader never
//     observes a partially written document. Concurrent writers to the same
//     session race under last-write-wins; no conflict resolution is applied.
//   - A failed Save leaves the previously stored document intact.
type Store interface {
	Load(ctx context.Context, sessionID uuid.UUID) (State, error)
	Save(ctx context.Context, sessionID uuid.UUID, state State) error
}
