package domain

import "context"

// WriterPort appends records to a session's log
type WriterPort interface {
	Append(ctx context.Context, sessionID string, rec Record) error
}

// ReaderPort lists a session's records in insertion order
type ReaderPort interface {
	List(ctx context.Context, sessionID string) ([]Record, error)
}

// PurgerPort discards a session's log wholesale, used on logout
type PurgerPort interface {
	Purge(ctx context.Context, sessionID string) error
}

// Ports bundles the history ports for cross-module wiring
type Ports struct {
	Writer WriterPort
	Reader ReaderPort
	Purger PurgerPort
}
