package domain

import (
	"time"

	"github.com/google/uuid"
)

// App is a source of HTTP traffic; APIKey is the only credential accepted on ingestion.
type App struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	APIKey    string    `db:"api_key" json:"apiKey"`
	ProjectID uuid.UUID `db:"project_id" json:"projectId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Project   *Project  `db:"-" json:"project,omitempty"`
}
