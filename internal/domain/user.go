package domain

import "time"

// DefaultUserRoleID is the role assigned to accounts created through the
// registration approval flow.
const DefaultUserRoleID = "user"

const AdminRoleID = "admin"

// User is an active account in the document platform.
type User struct {
	ID           string    `json:"id"`
	RoleID       string    `json:"role_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	StorageQuota int64     `json:"storage_quota"`
	Onboarding   bool      `json:"onboarding"`
	Disabled     bool      `json:"disabled"`
	CreateDate   time.Time `json:"create_date"`
}

// IsAdmin reports whether the account carries the admin base function.
func (u *User) IsAdmin() bool {
	return u.RoleID == AdminRoleID
}
