package tracking

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores tracking records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]Record)}
}

// Create stores the record.
func (r *MemoryRepo) Create(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.records[record.ID] = record
	return nil
}

// ListUnlinkedByDevice returns unlinked records for the device, oldest first.
func (r *MemoryRepo) ListUnlinkedByDevice(ctx context.Context, deviceID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Record
	for _, record := range r.records {
		if record.DeviceID == deviceID && !record.IsLinked {
			out = append(out, record)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// MarkLinked transitions a record to linked with the given identity.
func (r *MemoryRepo) MarkLinked(ctx context.Context, recordID, userID, companyID string, linkedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[recordID]
	if !ok {
		return ErrNotFound
	}
	record.IsLinked = true
	record.LinkedUserID = userID
	record.LinkedCompanyID = companyID
	record.LinkedAt = &linkedAt
	r.records[recordID] = record
	return nil
}
