package fixtures

import (
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string        { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func statusPtr(s timerecord.ApprovalStatus) *timerecord.ApprovalStatus { return &s }

// ==========================================
// DEMO ROSTER
// ==========================================

// DemoUsers returns the demo roster seeded into the memory store: five
// engineers and their manager.
func DemoUsers() []user.User {
	created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)

	newUser := func(id, name, email string, role user.Role) user.User {
		return user.User{
			ID:          id,
			DisplayName: name,
			Email:       email,
			Department:  strPtr("Engineering"),
			Role:        role,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
	}

	return []user.User{
		newUser("user-001", "John Doe", "john.doe@contoso.com", user.RoleEmployee),
		newUser("user-002", "Jane Smith", "jane.smith@contoso.com", user.RoleEmployee),
		newUser("user-003", "Mike Johnson", "mike.johnson@contoso.com", user.RoleEmployee),
		newUser("user-004", "Emily Brown", "emily.brown@contoso.com", user.RoleEmployee),
		newUser("user-005", "David Wilson", "david.wilson@contoso.com", user.RoleEmployee),
		newUser("user-100", "Sarah Connor", "sarah.connor@contoso.com", user.RoleManager),
	}
}

// ==========================================
// DEMO TIME RECORDS
// ==========================================

// DemoTimeRecords returns a week of closed shifts relative to now so the
// dashboards have data to aggregate on a fresh memory store.
func DemoTimeRecords(now time.Time) []timerecord.TimeRecord {
	shift := func(id, userID, userName string, daysAgo int, inHour, inMin, outHour, outMin int, location string, status *timerecord.ApprovalStatus) timerecord.TimeRecord {
		day := now.AddDate(0, 0, -daysAgo)
		in := time.Date(day.Year(), day.Month(), day.Day(), inHour, inMin, 0, 0, now.Location())
		out := time.Date(day.Year(), day.Month(), day.Day(), outHour, outMin, 0, 0, now.Location())
		return timerecord.TimeRecord{
			ID:             id,
			UserID:         userID,
			UserName:       userName,
			CheckInTime:    in,
			CheckOutTime:   timePtr(out),
			Location:       strPtr(location),
			ApprovalStatus: status,
			CreatedAt:      in,
			UpdatedAt:      out,
		}
	}

	return []timerecord.TimeRecord{
		shift("rec-001", "user-001", "John Doe", 1, 8, 30, 17, 15, "Main Office", statusPtr(timerecord.ApprovalApproved)),
		shift("rec-002", "user-002", "Jane Smith", 1, 9, 0, 18, 0, "Home Office", statusPtr(timerecord.ApprovalRejected)),
		shift("rec-003", "user-003", "Mike Johnson", 1, 8, 45, 17, 30, "Main Office", statusPtr(timerecord.ApprovalApproved)),
		shift("rec-004", "user-004", "Emily Brown", 1, 8, 0, 16, 45, "Branch Office", statusPtr(timerecord.ApprovalSyncFailed)),
		shift("rec-005", "user-005", "David Wilson", 1, 9, 15, 18, 0, "Remote", statusPtr(timerecord.ApprovalApproved)),
		shift("rec-006", "user-001", "John Doe", 2, 8, 30, 17, 15, "Main Office", statusPtr(timerecord.ApprovalApproved)),
		shift("rec-007", "user-002", "Jane Smith", 2, 9, 0, 17, 30, "Home Office", statusPtr(timerecord.ApprovalApproved)),
		shift("rec-008", "user-003", "Mike Johnson", 2, 8, 45, 16, 30, "Main Office", statusPtr(timerecord.ApprovalPending)),
		shift("rec-009", "user-001", "John Doe", 3, 8, 45, 16, 30, "Main Office", nil),
		shift("rec-010", "user-004", "Emily Brown", 4, 8, 30, 17, 30, "Branch Office", nil),
	}
}
