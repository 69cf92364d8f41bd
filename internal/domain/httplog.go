package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HttpLog is one request/response pair reported by an app. Rows are never updated.
type HttpLog struct {
	ID         uuid.UUID `db:"id" json:"id"`
	AppID      uuid.UUID `db:"app_id" json:"appId"`
	Source     string    `db:"source" json:"source"`
	Method     string    `db:"method" json:"method"`
	URL        string    `db:"url" json:"url"`
	StatusCode int       `db:"status_code" json:"statusCode"`
	Headers    string    `db:"headers" json:"headers"`
	Params     string    `db:"params" json:"params"`
	Query      string    `db:"query" json:"query"`
	Body       string    `db:"body" json:"body"`
	Response   *string   `db:"response" json:"response"`
	IP         string    `db:"ip" json:"ip"`
	UserAgent  string    `db:"user_agent" json:"userAgent"`
	Timestamp  time.Time `db:"logged_at" json:"timestamp"`
}

// HttpLogInput is an ingested event before normalisation. The JSON-valued
// fields keep the raw client encoding.
type HttpLogInput struct {
	Source     string
	Method     string
	URL        string
	StatusCode int
	Headers    json.RawMessage
	Params     json.RawMessage
	Query      json.RawMessage
	Body       json.RawMessage
	Response   json.RawMessage
	IP         string
	UserAgent  string
	Timestamp  *time.Time
}

type HttpLogQuery struct {
	AppID      uuid.UUID
	Source     string
	Method     string
	URL        string
	StatusCode *int
	StartDate  time.Time
	EndDate    time.Time
	Page       int
	Limit      int
}
