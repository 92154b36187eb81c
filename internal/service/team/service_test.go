package team

import (
	"context"
	"testing"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/team"
	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"github.com/contoso/timereg-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures review notifications instead of sending mail.
type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) NotifyReviewDecision(to user.User, rec timerecord.TimeRecord) error {
	n.sent = append(n.sent, rec.ID)
	return nil
}

func strPtr(s string) *string { return &s }

func statusPtr(s timerecord.ApprovalStatus) *timerecord.ApprovalStatus { return &s }

func rosterOfFive() []user.User {
	return []user.User{
		{ID: "u1", DisplayName: "John Doe", Email: "u1@contoso.com", Role: user.RoleEmployee},
		{ID: "u2", DisplayName: "Jane Smith", Email: "u2@contoso.com", Role: user.RoleEmployee},
		{ID: "u3", DisplayName: "Mike Johnson", Email: "u3@contoso.com", Role: user.RoleEmployee},
		{ID: "u4", DisplayName: "Emily Brown", Email: "u4@contoso.com", Role: user.RoleEmployee},
		{ID: "u5", DisplayName: "David Wilson", Email: "u5@contoso.com", Role: user.RoleEmployee},
	}
}

// now is Wednesday 2026-08-26 18:00 UTC in all scenarios below.
var testNow = time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)

func teamRecords() []timerecord.TimeRecord {
	today := func(h, m int) time.Time {
		return time.Date(2026, 8, 26, h, m, 0, 0, time.UTC)
	}
	yesterday := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	yesterdayOut := yesterday.Add(8 * time.Hour)
	u1Out := today(16, 0)
	u3Out := today(15, 30)

	return []timerecord.TimeRecord{
		// u1 and u3 finished their shifts today
		{ID: "rec-u1", UserID: "u1", UserName: "John Doe", CheckInTime: today(8, 0), CheckOutTime: &u1Out},
		{ID: "rec-u3", UserID: "u3", UserName: "Mike Johnson", CheckInTime: today(8, 30), CheckOutTime: &u3Out},
		// u2 and u4 are still on the clock
		{ID: "rec-u2", UserID: "u2", UserName: "Jane Smith", CheckInTime: today(9, 0), Location: strPtr("Main Office")},
		{ID: "rec-u4", UserID: "u4", UserName: "Emily Brown", CheckInTime: today(8, 15), Location: strPtr("Home Office")},
		// u5 only worked yesterday
		{ID: "rec-u5", UserID: "u5", UserName: "David Wilson", CheckInTime: yesterday, CheckOutTime: &yesterdayOut},
	}
}

func newTestService(records []timerecord.TimeRecord, roster []user.User, notifier *recordingNotifier) team.TeamService {
	return NewTeamServiceWithClock(
		memory.NewSeededTimeRecordRepository(records),
		memory.NewUserRepository(roster),
		notifier,
		time.UTC,
		func() time.Time { return testNow },
	)
}

func TestStatistics(t *testing.T) {
	svc := newTestService(teamRecords(), rosterOfFive(), &recordingNotifier{})

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalEmployees)
	assert.Equal(t, 2, stats.CurrentlyCheckedIn)

	// Today: u1 8h, u3 7h, u2 open 9h, u4 open 9.75h
	assert.InDelta(t, 33.75, stats.TodayTotalHours, 1e-9)
	// Week adds u5's 8h from yesterday
	assert.InDelta(t, 41.75, stats.WeekTotalHours, 1e-9)
	assert.InDelta(t, 41.75/5, stats.AverageHoursPerEmployee, 1e-9)
}

func TestStatistics_EmptyRoster(t *testing.T) {
	svc := newTestService(nil, nil, &recordingNotifier{})

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalEmployees)
	assert.Equal(t, 0, stats.CurrentlyCheckedIn)
	assert.Zero(t, stats.AverageHoursPerEmployee)
}

func TestMemberSummaries(t *testing.T) {
	svc := newTestService(teamRecords(), rosterOfFive(), &recordingNotifier{})

	summaries, err := svc.MemberSummaries(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 5)

	byID := make(map[string]team.TeamMemberSummaryResponse, len(summaries))
	for _, s := range summaries {
		byID[s.User.ID] = s
	}

	assert.Equal(t, team.StatusCheckedOut, byID["u1"].TodayStatus)
	require.NotNil(t, byID["u1"].LastCheckIn)
	assert.Equal(t, "2026-08-26T08:00:00Z", *byID["u1"].LastCheckIn)
	assert.InDelta(t, 8.0, byID["u1"].TodayHours, 1e-9)

	assert.Equal(t, team.StatusCheckedIn, byID["u2"].TodayStatus)
	require.NotNil(t, byID["u2"].CurrentLocation)
	assert.Equal(t, "Main Office", *byID["u2"].CurrentLocation)
	assert.InDelta(t, 9.0, byID["u2"].TodayHours, 1e-9)

	assert.Equal(t, team.StatusCheckedIn, byID["u4"].TodayStatus)

	assert.Equal(t, team.StatusNotStarted, byID["u5"].TodayStatus)
	assert.Nil(t, byID["u5"].LastCheckIn)
	assert.Zero(t, byID["u5"].TodayHours)
	assert.InDelta(t, 8.0, byID["u5"].WeekHours, 1e-9)
}

func TestRecordsByDate_Window(t *testing.T) {
	old := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	oldOut := old.Add(8 * time.Hour)
	records := append(teamRecords(), timerecord.TimeRecord{
		ID: "rec-old", UserID: "u1", CheckInTime: old, CheckOutTime: &oldOut,
	})
	svc := newTestService(records, rosterOfFive(), &recordingNotifier{})

	// the default 7-day window excludes the two-week-old record
	resp, err := svc.RecordsByDate(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, resp, 5)

	resp, err = svc.RecordsByDate(context.Background(), 30)
	require.NoError(t, err)
	assert.Len(t, resp, 6)
}

func TestMemberRecords(t *testing.T) {
	svc := newTestService(teamRecords(), rosterOfFive(), &recordingNotifier{})

	resp, err := svc.MemberRecords(context.Background(), "u1", 0)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "rec-u1", resp[0].ID)

	_, err = svc.MemberRecords(context.Background(), "missing", 0)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestApprove(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(teamRecords(), rosterOfFive(), notifier)

	resp, err := svc.Approve(context.Background(), "rec-u1")
	require.NoError(t, err)
	require.NotNil(t, resp.ApprovalStatus)
	assert.Equal(t, "approved", *resp.ApprovalStatus)
	assert.Equal(t, []string{"rec-u1"}, notifier.sent)
}

func TestApprove_Idempotent(t *testing.T) {
	notifier := &recordingNotifier{}
	records := teamRecords()
	records[0].ApprovalStatus = statusPtr(timerecord.ApprovalApproved)
	svc := newTestService(records, rosterOfFive(), notifier)

	resp, err := svc.Approve(context.Background(), "rec-u1")
	require.NoError(t, err)
	require.NotNil(t, resp.ApprovalStatus)
	assert.Equal(t, "approved", *resp.ApprovalStatus)
	assert.Empty(t, notifier.sent, "re-applying the same decision must not notify again")
}

func TestReject_AfterApprove(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := newTestService(teamRecords(), rosterOfFive(), notifier)

	_, err := svc.Approve(context.Background(), "rec-u1")
	require.NoError(t, err)

	resp, err := svc.Reject(context.Background(), "rec-u1")
	require.NoError(t, err)
	require.NotNil(t, resp.ApprovalStatus)
	assert.Equal(t, "rejected", *resp.ApprovalStatus)
	assert.Equal(t, []string{"rec-u1", "rec-u1"}, notifier.sent)
}

func TestReview_RecordNotFound(t *testing.T) {
	svc := newTestService(nil, rosterOfFive(), &recordingNotifier{})

	_, err := svc.Approve(context.Background(), "missing")
	assert.ErrorIs(t, err, timerecord.ErrRecordNotFound)
}
