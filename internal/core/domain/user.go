package domain

import "time"

// User represents an account holder. The user's balance is never stored on
// this struct; it is always derived from the statement log.
type User struct {
	UserID       string `json:"userID"` // Primary Key (e.g., UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// GetUserID implements the accessor used by dto.ToUserResponse.
func (u *User) GetUserID() string { return u.UserID }

// GetUsername implements the accessor used by dto.ToUserResponse.
func (u *User) GetUsername() string { return u.Username }

// GetName implements the accessor used by dto.ToUserResponse.
func (u *User) GetName() string { return u.Name }
