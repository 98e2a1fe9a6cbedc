package users

import "time"

// Roles carried by identified users.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CompanyID string    `json:"companyId,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
