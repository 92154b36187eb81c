package memory

import (
	"context"
	"testing"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTimeRecordRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository()

	checkIn := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, timerecord.TimeRecord{
		UserID:      "user-001",
		UserName:    "John Doe",
		CheckInTime: checkIn,
		Location:    strPtr("Main Office"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsOpen())
	assert.Equal(t, checkIn, created.CreatedAt)
	assert.Equal(t, checkIn, created.UpdatedAt)
}

func TestTimeRecordRepository_FindOpenRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository()

	open, err := repo.FindOpenRecord(ctx, "user-001")
	require.NoError(t, err)
	assert.Nil(t, open, "no open record on an empty store")

	checkIn := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, timerecord.TimeRecord{UserID: "user-001", CheckInTime: checkIn})
	require.NoError(t, err)

	open, err = repo.FindOpenRecord(ctx, "user-001")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, created.ID, open.ID)

	// Another user's open record stays invisible
	other, err := repo.FindOpenRecord(ctx, "user-002")
	require.NoError(t, err)
	assert.Nil(t, other)

	_, err = repo.Close(ctx, created.ID, checkIn.Add(8*time.Hour), nil)
	require.NoError(t, err)

	open, err = repo.FindOpenRecord(ctx, "user-001")
	require.NoError(t, err)
	assert.Nil(t, open, "closed records are not open")
}

func TestTimeRecordRepository_Close(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository()

	checkIn := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	checkOut := checkIn.Add(8*time.Hour + 45*time.Minute)
	created, err := repo.Create(ctx, timerecord.TimeRecord{
		UserID:      "user-001",
		CheckInTime: checkIn,
		Notes:       strPtr("morning shift"),
	})
	require.NoError(t, err)

	closed, err := repo.Close(ctx, created.ID, checkOut, nil)
	require.NoError(t, err)
	require.NotNil(t, closed.CheckOutTime)
	assert.Equal(t, checkOut, *closed.CheckOutTime)
	assert.Equal(t, checkOut, closed.UpdatedAt)
	require.NotNil(t, closed.Notes)
	assert.Equal(t, "morning shift", *closed.Notes, "absent notes keep the prior value")
}

func TestTimeRecordRepository_Close_OverwritesNotes(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository()

	checkIn := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, timerecord.TimeRecord{
		UserID:      "user-001",
		CheckInTime: checkIn,
		Notes:       strPtr("morning shift"),
	})
	require.NoError(t, err)

	closed, err := repo.Close(ctx, created.ID, checkIn.Add(time.Hour), strPtr("left early"))
	require.NoError(t, err)
	require.NotNil(t, closed.Notes)
	assert.Equal(t, "left early", *closed.Notes)
}

func TestTimeRecordRepository_Close_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository()

	_, err := repo.Close(ctx, "missing", time.Now(), nil)
	assert.ErrorIs(t, err, timerecord.ErrRecordNotFound)
}

func TestTimeRecordRepository_SetApproval(t *testing.T) {
	ctx := context.Background()
	reviewedAt := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	repo := NewTimeRecordRepositoryWithClock(func() time.Time { return reviewedAt })

	checkIn := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	created, err := repo.Create(ctx, timerecord.TimeRecord{UserID: "user-001", CheckInTime: checkIn})
	require.NoError(t, err)

	updated, err := repo.SetApproval(ctx, created.ID, timerecord.ApprovalApproved)
	require.NoError(t, err)
	require.NotNil(t, updated.ApprovalStatus)
	assert.Equal(t, timerecord.ApprovalApproved, *updated.ApprovalStatus)
	assert.Equal(t, reviewedAt, updated.UpdatedAt)

	_, err = repo.SetApproval(ctx, "missing", timerecord.ApprovalRejected)
	assert.ErrorIs(t, err, timerecord.ErrRecordNotFound)
}

func TestTimeRecordRepository_ListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewTimeRecordRepository()

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	for day := 0; day < 5; day++ {
		_, err := repo.Create(ctx, timerecord.TimeRecord{
			UserID:      "user-001",
			CheckInTime: base.AddDate(0, 0, day),
		})
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].CheckInTime.After(all[i].CheckInTime), "records must be ordered most recent first")
	}

	since, err := repo.ListSince(ctx, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Len(t, since, 3, "cutoff is inclusive")

	byUser, err := repo.ListByUserSince(ctx, "user-002", base)
	require.NoError(t, err)
	assert.Empty(t, byUser)
}
