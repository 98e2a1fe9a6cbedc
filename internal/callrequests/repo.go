package callrequests

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "call request not found" }

type Repo interface {
	Create(ctx context.Context, request CallRequest) error
	GetByID(ctx context.Context, requestID string) (CallRequest, error)
	List(ctx context.Context, status string, limit, offset int) ([]CallRequest, error)
	UpdateStatus(ctx context.Context, requestID, status string) error
}
