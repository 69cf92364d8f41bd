package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var LogLevels = []string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

type Log struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AppID     uuid.UUID `db:"app_id" json:"appId"`
	Source    string    `db:"source" json:"source"`
	Level     string    `db:"level" json:"level"`
	Message   string    `db:"message" json:"message"`
	Timestamp time.Time `db:"logged_at" json:"timestamp"`
}

type LogQuery struct {
	AppID  uuid.UUID
	Source string
	Level  string
	Page   int
	Limit  int
}

type LogInput struct {
	Source    string
	Level     string
	Message   string
	Timestamp *time.Time
}
