package companies

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"readiness-backend/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid company input")

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// CreateInput carries the writable fields of a company.
type CreateInput struct {
	Name     string
	Industry string
	SizeBand string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Company{}, ErrInvalidInput
	}
	company := Company{
		ID:       uuid.NewString(),
		Name:     name,
		Industry: strings.TrimSpace(in.Industry),
		SizeBand: strings.TrimSpace(in.SizeBand),
	}
	if err := s.Repo.Create(ctx, company); err != nil {
		telemetry.Error("company.create_failed", map[string]any{
			"company_id": company.ID,
			"error":      err.Error(),
		})
		return Company{}, err
	}
	return s.Repo.GetByID(ctx, company.ID)
}

func (s *Service) Update(ctx context.Context, companyID string, in CreateInput) (Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Company{}, ErrInvalidInput
	}
	company := Company{
		ID:       companyID,
		Name:     name,
		Industry: strings.TrimSpace(in.Industry),
		SizeBand: strings.TrimSpace(in.SizeBand),
	}
	if err := s.Repo.Update(ctx, company); err != nil {
		return Company{}, err
	}
	return s.Repo.GetByID(ctx, companyID)
}

func (s *Service) Get(ctx context.Context, companyID string) (Company, error) {
	return s.Repo.GetByID(ctx, companyID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Company, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *Service) Delete(ctx context.Context, companyID string) error {
	return s.Repo.Delete(ctx, companyID)
}
