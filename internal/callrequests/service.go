package callrequests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"readiness-backend/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid call request input")

// ErrBadTransition marks a status update that the transition rules forbid.
type ErrBadTransition struct {
	From string
	To   string
}

func (e ErrBadTransition) Error() string {
	return fmt.Sprintf("cannot move call request from %s to %s", e.From, e.To)
}

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries a new follow-up call request from the public site.
type CreateInput struct {
	Name          string
	Email         string
	Phone         string
	PreferredTime string
	Notes         string
	AssessmentID  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (CallRequest, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return CallRequest{}, ErrInvalidInput
	}
	request := CallRequest{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Phone:         strings.TrimSpace(in.Phone),
		PreferredTime: strings.TrimSpace(in.PreferredTime),
		Notes:         strings.TrimSpace(in.Notes),
		AssessmentID:  strings.TrimSpace(in.AssessmentID),
		Status:        StatusPending,
	}
	if err := s.Repo.Create(ctx, request); err != nil {
		telemetry.Error("callrequest.create_failed", map[string]any{
			"call_request_id": request.ID,
			"error":           err.Error(),
		})
		return CallRequest{}, err
	}
	telemetry.Info("callrequest.created", map[string]any{
		"call_request_id": request.ID,
		"assessment_id":   request.AssessmentID,
	})
	return s.Repo.GetByID(ctx, request.ID)
}

func (s *Service) Get(ctx context.Context, requestID string) (CallRequest, error) {
	return s.Repo.GetByID(ctx, requestID)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]CallRequest, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, status, limit, offset)
}

// UpdateStatus moves a request through its lifecycle. The transition rules
// are re-checked against the stored record, so a stale admin view cannot
// resurrect a completed or cancelled request.
func (s *Service) UpdateStatus(ctx context.Context, requestID, status string) (CallRequest, error) {
	if !ValidStatus(status) {
		return CallRequest{}, ErrInvalidInput
	}
	current, err := s.Repo.GetByID(ctx, requestID)
	if err != nil {
		return CallRequest{}, err
	}
	if current.Status == status {
		return current, nil
	}
	if !CanTransition(current.Status, status) {
		return CallRequest{}, ErrBadTransition{From: current.Status, To: status}
	}
	if err := s.Repo.UpdateStatus(ctx, requestID, status); err != nil {
		return CallRequest{}, err
	}
	return s.Repo.GetByID(ctx, requestID)
}
