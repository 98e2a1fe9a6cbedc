package companies

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "company not found" }

type Repo interface {
	Create(ctx context.Context, company Company) error
	Update(ctx context.Context, company Company) error
	GetByID(ctx context.Context, companyID string) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, error)
	Delete(ctx context.Context, companyID string) error
}
