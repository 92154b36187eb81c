// Package memory holds the in-memory repositories. They are the reference
// store implementation: a single mutex-guarded collection with the same
// contract the PostgreSQL repositories satisfy, so either backend is a
// drop-in behind the domain interfaces.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/google/uuid"
)

type timeRecordRepositoryImpl struct {
	mu      sync.RWMutex
	records map[string]timerecord.TimeRecord
	now     func() time.Time
}

func NewTimeRecordRepository() timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{
		records: make(map[string]timerecord.TimeRecord),
		now:     time.Now,
	}
}

// NewTimeRecordRepositoryWithClock injects the clock used for bookkeeping
// timestamps on mutations. Tests pin it.
func NewTimeRecordRepositoryWithClock(now func() time.Time) timerecord.TimeRecordRepository {
	return &timeRecordRepositoryImpl{
		records: make(map[string]timerecord.TimeRecord),
		now:     now,
	}
}

// NewSeededTimeRecordRepository pre-populates the store, closed records
// included, for demo data and tests.
func NewSeededTimeRecordRepository(seed []timerecord.TimeRecord) timerecord.TimeRecordRepository {
	records := make(map[string]timerecord.TimeRecord, len(seed))
	for _, rec := range seed {
		records[rec.ID] = rec
	}
	return &timeRecordRepositoryImpl{
		records: records,
		now:     time.Now,
	}
}

// sortedDesc returns records ordered by check-in time descending.
func sortedDesc(records []timerecord.TimeRecord) []timerecord.TimeRecord {
	sort.Slice(records, func(i, j int) bool {
		return records[i].CheckInTime.After(records[j].CheckInTime)
	})
	return records
}

// ListAll implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListAll(ctx context.Context) ([]timerecord.TimeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]timerecord.TimeRecord, 0, len(r.records))
	for _, rec := range r.records {
		result = append(result, rec)
	}
	return sortedDesc(result), nil
}

// ListSince implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListSince(ctx context.Context, cutoff time.Time) ([]timerecord.TimeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []timerecord.TimeRecord
	for _, rec := range r.records {
		if !rec.CheckInTime.Before(cutoff) {
			result = append(result, rec)
		}
	}
	return sortedDesc(result), nil
}

// ListByUserSince implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) ListByUserSince(ctx context.Context, userID string, cutoff time.Time) ([]timerecord.TimeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []timerecord.TimeRecord
	for _, rec := range r.records {
		if rec.UserID == userID && !rec.CheckInTime.Before(cutoff) {
			result = append(result, rec)
		}
	}
	return sortedDesc(result), nil
}

// GetByID implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) GetByID(ctx context.Context, id string) (timerecord.TimeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}
	return rec, nil
}

// FindOpenRecord implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) FindOpenRecord(ctx context.Context, userID string) (*timerecord.TimeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.UserID == userID && rec.IsOpen() {
			open := rec
			return &open, nil
		}
	}
	return nil, nil
}

// Create implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.CheckOutTime = nil
	record.CreatedAt = record.CheckInTime
	record.UpdatedAt = record.CheckInTime

	r.records[record.ID] = record
	return record, nil
}

// Close implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) Close(ctx context.Context, id string, checkOutTime time.Time, notes *string) (timerecord.TimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}

	out := checkOutTime
	rec.CheckOutTime = &out
	if notes != nil {
		rec.Notes = notes
	}
	rec.UpdatedAt = checkOutTime

	r.records[id] = rec
	return rec, nil
}

// SetApproval implements timerecord.TimeRecordRepository.
func (r *timeRecordRepositoryImpl) SetApproval(ctx context.Context, id string, status timerecord.ApprovalStatus) (timerecord.TimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[id]
	if !ok {
		return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
	}

	rec.ApprovalStatus = &status
	rec.UpdatedAt = r.now()

	r.records[id] = rec
	return rec, nil
}
