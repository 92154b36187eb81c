package timerecord

import (
	"time"
)

type ApprovalStatus string

const (
	ApprovalPending    ApprovalStatus = "pending"
	ApprovalApproved   ApprovalStatus = "approved"
	ApprovalRejected   ApprovalStatus = "rejected"
	ApprovalSyncFailed ApprovalStatus = "sync-failed"
)

// IsValid reports whether s is one of the known approval statuses.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected, ApprovalSyncFailed:
		return true
	}
	return false
}

// TimeRecord is one shift instance. A record is created open at check-in and
// closed exactly once at check-out; after that only Notes and ApprovalStatus
// may change. Records are never deleted.
type TimeRecord struct {
	ID             string
	UserID         string
	UserName       string
	CheckInTime    time.Time
	CheckOutTime   *time.Time // nil while the shift is open
	Location       *string
	Notes          *string
	ApprovalStatus *ApprovalStatus // nil until a manager reviews the record
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOpen reports whether the shift is still in progress.
func (r *TimeRecord) IsOpen() bool {
	return r.CheckOutTime == nil
}
