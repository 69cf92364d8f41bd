package repotypes

import (
	"time"

	"github.com/google/uuid"
)

// HttpLogFilter constrains http_logs reads. Zero values mean "no constraint".
type HttpLogFilter struct {
	UserID     uuid.UUID
	AppID      uuid.UUID
	Source     string
	Method     string
	URL        string
	StatusCode *int
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

type LogFilter struct {
	UserID uuid.UUID
	AppID  uuid.UUID
	Source string
	Level  string
	Limit  int
	Offset int
}

// HourWindow selects rows in [From, To) and groups them by hour in Location.
type HourWindow struct {
	AppID      uuid.UUID
	From       time.Time
	To         time.Time
	Location   string
	ErrorsOnly bool
}
