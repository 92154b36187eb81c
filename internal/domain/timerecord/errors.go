package timerecord

import "errors"

// Time registration domain errors
var (
	// State-machine errors
	ErrAlreadyCheckedIn = errors.New("already checked in, please check out first")
	ErrNotCheckedIn     = errors.New("not checked in, please check in first")

	// General errors
	ErrRecordNotFound        = errors.New("time record not found")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
)
