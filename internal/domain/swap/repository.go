package swap

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("swap request not found")

	// ErrDuplicatePending is returned by Insert when a pending request with
	// the same (requester, recipient, skillOffered, skillRequested) tuple
	// already exists. Enforced at insert time by the storage layer so two
	// concurrent creates cannot both slip past a pre-check.
	ErrDuplicatePending = errors.New("duplicate pending swap request")

	// ErrNotPending is returned by UpdateStatusIfPending when the request
	// exists but already reached a terminal status.
	ErrNotPending = errors.New("swap request is not pending")
)

type Relation string

const (
	RelationSent     Relation = "sent"
	RelationReceived Relation = "received"
	RelationAll      Relation = "all"
)

func ParseRelation(raw string) (Relation, bool) {
	switch Relation(raw) {
	case RelationSent, RelationReceived, RelationAll:
		return Relation(raw), true
	}
	return "", false
}

// ListFilter is the query shape the list operation supports. Status nil
// means no status restriction. Results are ordered by createdAt descending.
type ListFilter struct {
	UserID   uuid.UUID
	Relation Relation
	Status   *Status
	Offset   int
	Limit    int
}

type Repository interface {
	// Insert persists r with a fresh pending status. Returns
	// ErrDuplicatePending when the pending-tuple uniqueness constraint
	// rejects the row.
	Insert(ctx context.Context, r Request) (Request, error)

	GetByID(ctx context.Context, id uuid.UUID) (Request, error)

	List(ctx context.Context, f ListFilter) ([]Request, error)

	// Count returns the total number of rows matching f ignoring
	// Offset/Limit.
	Count(ctx context.Context, f ListFilter) (int, error)

	// UpdateStatusIfPending atomically sets the status to `to` only while
	// the stored status is still pending, and returns the updated row.
	// Returns ErrNotFound if the request does not exist and ErrNotPending
	// if it exists in a terminal status.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, to Status) (Request, error)
}
