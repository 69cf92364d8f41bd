package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
