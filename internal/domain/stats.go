package domain

import "time"

const HourBucketLayout = "2006-01-02 15:00"

type HourBucket struct {
	Hour   string `json:"hour"`
	Total  int    `json:"total"`
	Errors int    `json:"errors"`
}

// HourCount is a grouped row; Hour holds the wall clock of the truncated hour.
type HourCount struct {
	Hour  time.Time `db:"hour"`
	Count int       `db:"count"`
}

type StatusCount struct {
	StatusCode int `db:"status_code"`
	Count      int `db:"count"`
}

type TimeframeStat struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type TimeframeStats struct {
	Hour  TimeframeStat `json:"hour"`
	Day   TimeframeStat `json:"day"`
	Month TimeframeStat `json:"month"`
}

// IsErrorStatus reports whether a status code counts as an error: 400 and above.
func IsErrorStatus(code int) bool {
	return code >= 400
}

func IsSuccessStatus(code int) bool {
	return code >= 200 && code < 400
}
