package callrequests

import "time"

// Request statuses. A request moves forward only: pending requests can be
// scheduled or cancelled, scheduled ones completed or cancelled, and the
// terminal states never change again.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type CallRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	PreferredTime string    `json:"preferredTime,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	AssessmentID  string    `json:"assessmentId,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the known request statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a request may move from one status to
// another.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusScheduled || to == StatusCancelled
	case StatusScheduled:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
