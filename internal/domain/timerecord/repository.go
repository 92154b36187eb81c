package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access for time records. Implementations
// (in-memory, PostgreSQL) are interchangeable behind this contract; list
// operations return records ordered by check-in time descending.
type TimeRecordRepository interface {
	// ListAll retrieves every time record.
	ListAll(ctx context.Context) ([]TimeRecord, error)

	// ListSince retrieves records across all users whose check-in time is at
	// or after cutoff.
	ListSince(ctx context.Context, cutoff time.Time) ([]TimeRecord, error)

	// ListByUserSince retrieves one user's records whose check-in time is at
	// or after cutoff.
	ListByUserSince(ctx context.Context, userID string, cutoff time.Time) ([]TimeRecord, error)

	// GetByID retrieves a single record, ErrRecordNotFound when missing.
	GetByID(ctx context.Context, id string) (TimeRecord, error)

	// FindOpenRecord retrieves the user's record with no check-out time, or
	// nil when the user has no open shift. At most one open record per user
	// may exist; the service enforces that invariant.
	FindOpenRecord(ctx context.Context, userID string) (*TimeRecord, error)

	// Create inserts a new open record. A missing ID is assigned by the
	// store; CreatedAt and UpdatedAt are set to the check-in time.
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// Close sets the check-out time on a record and refreshes UpdatedAt.
	// Notes are overwritten only when a new value is provided; a nil notes
	// argument keeps the prior value. ErrRecordNotFound when id is unknown.
	Close(ctx context.Context, id string, checkOutTime time.Time, notes *string) (TimeRecord, error)

	// SetApproval updates the manager review outcome and refreshes
	// UpdatedAt. ErrRecordNotFound when id is unknown.
	SetApproval(ctx context.Context, id string, status ApprovalStatus) (TimeRecord, error)
}
