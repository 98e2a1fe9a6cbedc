package assessments

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores assessments in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Assessment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Assessment)}
}

func (r *MemoryRepo) Create(ctx context.Context, assessment Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[assessment.ID] = assessment
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	assessment, ok := r.byID[assessmentID]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return assessment, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Assessment
	for _, assessment := range r.byID {
		if assessment.UserID == userID {
			out = append(out, assessment)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) UpdateOwner(ctx context.Context, assessmentID, userID, companyID, deviceID string, linkedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	assessment, ok := r.byID[assessmentID]
	if !ok {
		return ErrNotFound
	}
	assessment.UserID = userID
	assessment.CompanyID = companyID
	assessment.Anonymous = false
	assessment.WasAnonymous = true
	assessment.OriginalDeviceID = deviceID
	assessment.LinkedAt = &linkedAt
	r.byID[assessmentID] = assessment
	return nil
}
