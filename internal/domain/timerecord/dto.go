package timerecord

import (
	"github.com/contoso/timereg-backend-go/internal/pkg/validator"
)

// ========================================
// TIME REGISTRATION DTOs
// ========================================

const (
	maxLocationLength = 255
	maxNotesLength    = 2000
)

type CheckInRequest struct {
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Location != nil && len(*r.Location) > maxLocationLength {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 255 characters",
		})
	}

	if r.Location != nil && validator.IsEmpty(*r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not be blank when provided",
		})
	}

	if r.Notes != nil && len(*r.Notes) > maxNotesLength {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Notes *string `json:"notes"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Notes != nil && len(*r.Notes) > maxNotesLength {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 2000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimeRecordResponse is the wire representation of a shift.
type TimeRecordResponse struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	UserName       string   `json:"user_name"`
	CheckInTime    string   `json:"check_in_time"`
	CheckOutTime   *string  `json:"check_out_time,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	ApprovalStatus *string  `json:"approval_status,omitempty"`
	DurationHours  float64  `json:"duration_hours"`
	Duration       string   `json:"duration"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// CheckInStatusResponse is the derived per-user status; it is computed on
// demand and never persisted.
type CheckInStatusResponse struct {
	IsCheckedIn     bool                `json:"is_checked_in"`
	CurrentRecord   *TimeRecordResponse `json:"current_record,omitempty"`
	ElapsedClock    *string             `json:"elapsed_clock,omitempty"`
	TodayTotalHours float64             `json:"today_total_hours"`
	WeekTotalHours  float64             `json:"week_total_hours"`
	TodayTotal      string              `json:"today_total"`
	WeekTotal       string              `json:"week_total"`
}
