package timerecord

import (
	"context"
)

// TimeRegistrationService defines business logic for check-in/check-out
// operations. The acting user is taken from the request context.
type TimeRegistrationService interface {
	// GetStatus returns the derived check-in status for the acting user.
	GetStatus(ctx context.Context) (CheckInStatusResponse, error)

	// CheckIn opens a new shift. Fails with ErrAlreadyCheckedIn when the
	// user already has an open record.
	CheckIn(ctx context.Context, req CheckInRequest) (TimeRecordResponse, error)

	// CheckOut closes the open shift. Fails with ErrNotCheckedIn when no
	// open record exists.
	CheckOut(ctx context.Context, req CheckOutRequest) (TimeRecordResponse, error)

	// GetRecentRecords returns the acting user's records within the trailing
	// days-day window (default 7 when days <= 0), most recent first.
	GetRecentRecords(ctx context.Context, days int) ([]TimeRecordResponse, error)
}
