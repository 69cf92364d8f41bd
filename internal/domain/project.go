package domain

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	URL         *string   `db:"url" json:"url"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	Apps        []App     `db:"-" json:"apps"`
}

func (p Project) OwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
