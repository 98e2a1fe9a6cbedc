package callrequests

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	requests map[string]CallRequest
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{requests: make(map[string]CallRequest)}
}

func (r *MemoryRepo) Create(ctx context.Context, request CallRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, requestID string) (CallRequest, error) {
	if err := ctx.Err(); err != nil {
		return CallRequest{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	request, ok := r.requests[requestID]
	if !ok {
		return CallRequest{}, ErrNotFound
	}
	return request, nil
}

func (r *MemoryRepo) List(ctx context.Context, status string, limit, offset int) ([]CallRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]CallRequest, 0, len(r.requests))
	for _, request := range r.requests {
		if status != "" && request.Status != status {
			continue
		}
		all = append(all, request)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if offset >= len(all) {
		return []CallRequest{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, requestID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[requestID]
	if !ok {
		return ErrNotFound
	}
	request.Status = status
	request.UpdatedAt = time.Now().UTC()
	r.requests[requestID] = request
	return nil
}
