package team

import (
	"context"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
)

// TeamService fans the per-user accounting out across the roster for the
// manager view, and owns the manager review actions.
type TeamService interface {
	// Statistics returns team-wide counts and aggregate hours.
	Statistics(ctx context.Context) (TeamStatisticsResponse, error)

	// MemberSummaries returns one derived summary per roster member.
	MemberSummaries(ctx context.Context) ([]TeamMemberSummaryResponse, error)

	// RecordsByDate returns records across all users within the trailing
	// days-day window (default 7 when days <= 0), most recent first.
	RecordsByDate(ctx context.Context, days int) ([]timerecord.TimeRecordResponse, error)

	// MemberRecords returns one member's records within the trailing
	// days-day window (default 30 when days <= 0), most recent first.
	MemberRecords(ctx context.Context, userID string, days int) ([]timerecord.TimeRecordResponse, error)

	// Approve marks a record approved. Re-approving an already approved
	// record is a no-op.
	Approve(ctx context.Context, recordID string) (timerecord.TimeRecordResponse, error)

	// Reject marks a record rejected. Idempotent like Approve.
	Reject(ctx context.Context, recordID string) (timerecord.TimeRecordResponse, error)
}
