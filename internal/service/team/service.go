package team

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/team"
	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"github.com/contoso/timereg-backend-go/internal/pkg/accounting"
	"github.com/contoso/timereg-backend-go/internal/pkg/email"
	timerecordService "github.com/contoso/timereg-backend-go/internal/service/timerecord"
	"golang.org/x/sync/errgroup"
)

// teamWindowDays is the trailing window team statistics and summaries cover.
const teamWindowDays = 7

type TeamServiceImpl struct {
	records  timerecord.TimeRecordRepository
	users    user.UserRepository
	notifier email.Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewTeamService(records timerecord.TimeRecordRepository, users user.UserRepository, notifier email.Notifier, loc *time.Location) team.TeamService {
	return NewTeamServiceWithClock(records, users, notifier, loc, func() time.Time { return time.Now().UTC() })
}

// NewTeamServiceWithClock injects the clock. Tests pin it.
func NewTeamServiceWithClock(records timerecord.TimeRecordRepository, users user.UserRepository, notifier email.Notifier, loc *time.Location, now func() time.Time) team.TeamService {
	return &TeamServiceImpl{
		records:  records,
		users:    users,
		notifier: notifier,
		loc:      loc,
		now:      now,
	}
}

// fetchRosterAndRecords loads the roster and the trailing-window records in
// parallel, the same fan-out the combined dashboard uses.
func (s *TeamServiceImpl) fetchRosterAndRecords(ctx context.Context, now time.Time) ([]user.User, []timerecord.TimeRecord, error) {
	var (
		roster  []user.User
		records []timerecord.TimeRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.users.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.records.ListSince(gctx, now.AddDate(0, 0, -teamWindowDays))
		if err != nil {
			return fmt.Errorf("failed to list team records: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return roster, records, nil
}

// Statistics implements team.TeamService.
func (s *TeamServiceImpl) Statistics(ctx context.Context) (team.TeamStatisticsResponse, error) {
	now := s.now()

	roster, records, err := s.fetchRosterAndRecords(ctx, now)
	if err != nil {
		return team.TeamStatisticsResponse{}, err
	}

	var todayHours float64
	currentlyCheckedIn := 0
	for _, rec := range records {
		if !accounting.SameDay(rec.CheckInTime, now, s.loc) {
			continue
		}
		todayHours += accounting.HoursBetween(rec.CheckInTime, rec.CheckOutTime, now)
		if rec.IsOpen() {
			currentlyCheckedIn++
		}
	}

	weekHours := accounting.TotalSince(records, now.AddDate(0, 0, -teamWindowDays), now)

	average := 0.0
	if len(roster) > 0 {
		average = weekHours / float64(len(roster))
	}

	return team.TeamStatisticsResponse{
		TotalEmployees:          len(roster),
		CurrentlyCheckedIn:      currentlyCheckedIn,
		TodayTotalHours:         todayHours,
		WeekTotalHours:          weekHours,
		AverageHoursPerEmployee: average,
	}, nil
}

// MemberSummaries implements team.TeamService.
func (s *TeamServiceImpl) MemberSummaries(ctx context.Context) ([]team.TeamMemberSummaryResponse, error) {
	now := s.now()

	roster, records, err := s.fetchRosterAndRecords(ctx, now)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string][]timerecord.TimeRecord, len(roster))
	for _, rec := range records {
		byUser[rec.UserID] = append(byUser[rec.UserID], rec)
	}

	summaries := make([]team.TeamMemberSummaryResponse, 0, len(roster))
	for _, member := range roster {
		summaries = append(summaries, s.summarize(member, byUser[member.ID], now))
	}
	return summaries, nil
}

// summarize derives one roster member's day view from their trailing-window
// records, which arrive ordered most recent first.
func (s *TeamServiceImpl) summarize(member user.User, records []timerecord.TimeRecord, now time.Time) team.TeamMemberSummaryResponse {
	summary := team.TeamMemberSummaryResponse{
		User:        user.ToResponse(member),
		TodayStatus: team.StatusNotStarted,
		WeekHours:   accounting.TotalSince(records, now.AddDate(0, 0, -teamWindowDays), now),
	}

	var open *timerecord.TimeRecord
	var lastTodayCheckIn *time.Time
	for i, rec := range records {
		if !accounting.SameDay(rec.CheckInTime, now, s.loc) {
			continue
		}
		summary.TodayHours += accounting.HoursBetween(rec.CheckInTime, rec.CheckOutTime, now)
		if rec.IsOpen() && open == nil {
			open = &records[i]
		}
		if lastTodayCheckIn == nil {
			in := rec.CheckInTime
			lastTodayCheckIn = &in
		}
	}

	switch {
	case open != nil:
		summary.TodayStatus = team.StatusCheckedIn
		summary.CurrentLocation = open.Location
		last := open.CheckInTime.Format(time.RFC3339)
		summary.LastCheckIn = &last
	case lastTodayCheckIn != nil:
		summary.TodayStatus = team.StatusCheckedOut
		last := lastTodayCheckIn.Format(time.RFC3339)
		summary.LastCheckIn = &last
	}

	return summary
}

// RecordsByDate implements team.TeamService.
func (s *TeamServiceImpl) RecordsByDate(ctx context.Context, days int) ([]timerecord.TimeRecordResponse, error) {
	if days <= 0 {
		days = 7
	}

	now := s.now()
	records, err := s.records.ListSince(ctx, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("failed to list team records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, timerecordService.ToResponse(rec, now))
	}
	return responses, nil
}

// MemberRecords implements team.TeamService.
func (s *TeamServiceImpl) MemberRecords(ctx context.Context, userID string, days int) ([]timerecord.TimeRecordResponse, error) {
	if days <= 0 {
		days = 30
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now()
	records, err := s.records.ListByUserSince(ctx, userID, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("failed to list member records: %w", err)
	}

	responses := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, timerecordService.ToResponse(rec, now))
	}
	return responses, nil
}

// Approve implements team.TeamService.
func (s *TeamServiceImpl) Approve(ctx context.Context, recordID string) (timerecord.TimeRecordResponse, error) {
	return s.review(ctx, recordID, timerecord.ApprovalApproved)
}

// Reject implements team.TeamService.
func (s *TeamServiceImpl) Reject(ctx context.Context, recordID string) (timerecord.TimeRecordResponse, error) {
	return s.review(ctx, recordID, timerecord.ApprovalRejected)
}

func (s *TeamServiceImpl) review(ctx context.Context, recordID string, status timerecord.ApprovalStatus) (timerecord.TimeRecordResponse, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return timerecord.TimeRecordResponse{}, err
	}

	// Re-applying the same decision is a no-op
	if rec.ApprovalStatus != nil && *rec.ApprovalStatus == status {
		return timerecordService.ToResponse(rec, s.now()), nil
	}

	updated, err := s.records.SetApproval(ctx, recordID, status)
	if err != nil {
		return timerecord.TimeRecordResponse{}, fmt.Errorf("failed to set approval status: %w", err)
	}

	s.notifyOwner(ctx, updated)

	return timerecordService.ToResponse(updated, s.now()), nil
}

// notifyOwner emails the record owner about the decision, best-effort.
func (s *TeamServiceImpl) notifyOwner(ctx context.Context, rec timerecord.TimeRecord) {
	owner, err := s.users.GetByID(ctx, rec.UserID)
	if err != nil {
		slog.Warn("review notification skipped, owner not found", "user_id", rec.UserID, "error", err)
		return
	}
	if err := s.notifier.NotifyReviewDecision(owner, rec); err != nil {
		slog.Warn("failed to send review notification", "record_id", rec.ID, "error", err)
	}
}
