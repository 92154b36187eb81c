package timerecord

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"github.com/contoso/timereg-backend-go/internal/pkg/accounting"
	"github.com/go-chi/jwtauth/v5"
)

// defaultLocation is recorded when a check-in carries no location.
const defaultLocation = "Main Office"

type TimeRegistrationServiceImpl struct {
	records timerecord.TimeRecordRepository
	users   user.UserRepository
	loc     *time.Location
	now     func() time.Time

	// checkInLocks serializes check-in/check-out per user so the
	// single-open-record invariant holds under concurrent callers.
	checkInLocks sync.Map // userID -> *sync.Mutex
}

func NewTimeRegistrationService(records timerecord.TimeRecordRepository, users user.UserRepository, loc *time.Location) timerecord.TimeRegistrationService {
	return NewTimeRegistrationServiceWithClock(records, users, loc, func() time.Time { return time.Now().UTC() })
}

// NewTimeRegistrationServiceWithClock injects the clock. Tests pin it.
func NewTimeRegistrationServiceWithClock(records timerecord.TimeRecordRepository, users user.UserRepository, loc *time.Location, now func() time.Time) timerecord.TimeRegistrationService {
	return &TimeRegistrationServiceImpl{
		records: records,
		users:   users,
		loc:     loc,
		now:     now,
	}
}

// getUserID extracts user_id from JWT claims
func (s *TimeRegistrationServiceImpl) getUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func (s *TimeRegistrationServiceImpl) userLock(userID string) *sync.Mutex {
	mu, _ := s.checkInLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// GetStatus implements timerecord.TimeRegistrationService.
func (s *TimeRegistrationServiceImpl) GetStatus(ctx context.Context) (timerecord.CheckInStatusResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return timerecord.CheckInStatusResponse{}, err
	}

	now := s.now()

	open, err := s.records.FindOpenRecord(ctx, userID)
	if err != nil {
		return timerecord.CheckInStatusResponse{}, fmt.Errorf("failed to find open record: %w", err)
	}

	weekRecords, err := s.records.ListByUserSince(ctx, userID, accounting.MostRecentMonday(now, s.loc))
	if err != nil {
		return timerecord.CheckInStatusResponse{}, fmt.Errorf("failed to list week records: %w", err)
	}

	todayHours := accounting.TodayTotal(weekRecords, now, s.loc)
	weekHours := accounting.WeekTotal(weekRecords, now, s.loc)

	status := timerecord.CheckInStatusResponse{
		IsCheckedIn:     open != nil,
		TodayTotalHours: todayHours,
		WeekTotalHours:  weekHours,
		TodayTotal:      accounting.FormatDuration(todayHours),
		WeekTotal:       accounting.FormatDuration(weekHours),
	}

	if open != nil {
		current := ToResponse(*open, now)
		elapsed := accounting.ElapsedClock(open.CheckInTime, now)
		status.CurrentRecord = &current
		status.ElapsedClock = &elapsed
	}

	return status, nil
}

// CheckIn implements timerecord.TimeRegistrationService.
func (s *TimeRegistrationServiceImpl) CheckIn(ctx context.Context, req timerecord.CheckInRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	actor, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to resolve acting user: %w", err)
	}

	// Find-open and create must be one atomic unit per user.
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	open, err := s.records.FindOpenRecord(ctx, userID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to find open record: %w", err)
	}
	if open != nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrAlreadyCheckedIn
	}

	now := s.now()
	location := req.Location
	if location == nil {
		fallback := defaultLocation
		location = &fallback
	}

	created, err := s.records.Create(ctx, timerecord.TimeRecord{
		UserID:      userID,
		UserName:    actor.DisplayName,
		CheckInTime: now,
		Location:    location,
		Notes:       req.Notes,
	})
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return ToResponse(created, now), nil
}

// CheckOut implements timerecord.TimeRegistrationService.
func (s *TimeRegistrationServiceImpl) CheckOut(ctx context.Context, req timerecord.CheckOutRequest) (timerecord.TimeRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	userID, err := s.getUserID(ctx)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	open, err := s.records.FindOpenRecord(ctx, userID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to find open record: %w", err)
	}
	if open == nil {
		return timerecord.TimeRecordResponse{}, timerecord.ErrNotCheckedIn
	}

	now := s.now()
	closed, err := s.records.Close(ctx, open.ID, now, req.Notes)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to close time record: %w", err)
	}

	return ToResponse(closed, now), nil
}

// GetRecentRecords implements timerecord.TimeRegistrationService.
func (s *TimeRegistrationServiceImpl) GetRecentRecords(ctx context.Context, days int) ([]timerecord.TimeRecordResponse, error) {
	userID, err := s.getUserID(ctx)
	if err != nil {
		return nil, err
	}

	if days <= 0 {
		days = 7
	}

	now := s.now()
	records, err := s.records.ListByUserSince(ctx, userID, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("failed to list recent records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, ToResponse(rec, now))
	}
	return responses, nil
}

// ToResponse converts a TimeRecord entity to its wire representation. Open
// records report hours accrued up to now.
func ToResponse(rec timerecord.TimeRecord, now time.Time) timerecord.TimeRecordResponse {
	hours := accounting.HoursBetween(rec.CheckInTime, rec.CheckOutTime, now)

	resp := timerecord.TimeRecordResponse{
		ID:            rec.ID,
		UserID:        rec.UserID,
		UserName:      rec.UserName,
		CheckInTime:   rec.CheckInTime.Format(time.RFC3339),
		Location:      rec.Location,
		Notes:         rec.Notes,
		DurationHours: hours,
		Duration:      accounting.FormatDuration(hours),
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     rec.UpdatedAt.Format(time.RFC3339),
	}

	if rec.CheckOutTime != nil {
		out := rec.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	if rec.ApprovalStatus != nil {
		status := string(*rec.ApprovalStatus)
		resp.ApprovalStatus = &status
	}

	return resp
}
