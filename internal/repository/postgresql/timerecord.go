package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const timeRecordColumns = `
	id, user_id, user_name, check_in_time, check_out_time,
	location, notes, approval_status, created_at, updated_at
`

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{db: db}
}

func scanTimeRecord(row pgx.Row) (timerecord.TimeRecord, error) {
	var rec timerecord.TimeRecord
	var approval *string
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.UserName, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Location, &rec.Notes, &approval, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return timerecord.TimeRecord{}, err
	}
	if approval != nil {
		status := timerecord.ApprovalStatus(*approval)
		rec.ApprovalStatus = &status
	}
	return rec, nil
}

func collectTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	defer rows.Close()

	var result []timerecord.TimeRecord
	for rows.Next() {
		rec, err := scanTimeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// ListAll implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListAll(ctx context.Context) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		ORDER BY check_in_time DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	return collectTimeRecords(rows)
}

// ListSince implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListSince(ctx context.Context, cutoff time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE check_in_time >= $1
		ORDER BY check_in_time DESC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records since cutoff: %w", err)
	}
	return collectTimeRecords(rows)
}

// ListByUserSince implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListByUserSince(ctx context.Context, userID string, cutoff time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE user_id = $1
		  AND check_in_time >= $2
		ORDER BY check_in_time DESC
	`

	rows, err := q.Query(ctx, query, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list user time records: %w", err)
	}
	return collectTimeRecords(rows)
}

// GetByID implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE id = $1
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to get time record: %w", err)
	}
	return rec, nil
}

// FindOpenRecord implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) FindOpenRecord(ctx context.Context, userID string) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timeRecordColumns + `
		FROM time_records
		WHERE user_id = $1
		  AND check_out_time IS NULL
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open record: %w", err)
	}
	return &rec, nil
}

// Create implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_records (
			user_id, user_name, check_in_time, location, notes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $3, $3
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.UserID,
		record.UserName,
		record.CheckInTime,
		record.Location,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// Close implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Close(ctx context.Context, id string, checkOutTime time.Time, notes *string) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET check_out_time = $1,
			notes = COALESCE($2, notes),
			updated_at = $1
		WHERE id = $3
		RETURNING ` + timeRecordColumns + `
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, checkOutTime, notes, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to close time record: %w", err)
	}
	return rec, nil
}

// SetApproval implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) SetApproval(ctx context.Context, id string, status timerecord.ApprovalStatus) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET approval_status = $1,
			updated_at = NOW()
		WHERE id = $2
		RETURNING ` + timeRecordColumns + `
	`

	rec, err := scanTimeRecord(q.QueryRow(ctx, query, string(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to set approval status: %w", err)
	}
	return rec, nil
}
