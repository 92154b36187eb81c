package team

import (
	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
)

type TodayStatus string

const (
	StatusCheckedIn  TodayStatus = "checked-in"
	StatusCheckedOut TodayStatus = "checked-out"
	StatusNotStarted TodayStatus = "not-started"
)

// TeamStatisticsResponse holds team-wide counts and aggregate hours,
// recomputed on every query.
type TeamStatisticsResponse struct {
	TotalEmployees          int     `json:"total_employees"`
	CurrentlyCheckedIn      int     `json:"currently_checked_in"`
	TodayTotalHours         float64 `json:"today_total_hours"`
	WeekTotalHours          float64 `json:"week_total_hours"`
	AverageHoursPerEmployee float64 `json:"average_hours_per_employee"`
}

// TeamMemberSummaryResponse is one roster member's derived day view.
type TeamMemberSummaryResponse struct {
	User            user.UserResponse `json:"user"`
	TodayStatus     TodayStatus       `json:"today_status"`
	TodayHours      float64           `json:"today_hours"`
	WeekHours       float64           `json:"week_hours"`
	CurrentLocation *string           `json:"current_location,omitempty"`
	LastCheckIn     *string           `json:"last_check_in,omitempty"`
}

// ReviewResponse wraps the reviewed record.
type ReviewResponse struct {
	Record timerecord.TimeRecordResponse `json:"record"`
}
