package models

import "time"

type Role string

const (
	RoleUser     Role = "user"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password_hash" json:"-"`
	FullName  string    `db:"full_name" json:"full_name"`
	Phone     *string   `db:"phone" json:"phone"`
	Role      Role      `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Session is the opaque cookie session minted next to every issued JWT.
type Session struct {
	UserID    int64     `db:"user_id"`
	Token     string    `db:"session_token"`
	ExpiresAt time.Time `db:"expires_at"`
}
