package service

import (
	"bytes"
	"unicode/utf8"

	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/goccy/go-json"
)

const (
	MaxResponseLength = 1000
	TruncatedLength   = 500
	TruncationSuffix  = "..."
)

var jsonNull = []byte("null")

// NormalizeJSON renders a raw JSON value as stored text: strings unquoted,
// everything else compacted. It returns nil for an absent or null value.
func NormalizeJSON(raw []byte) (*string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil, nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		return &s, nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	s := buf.String()
	return &s, nil
}

// TruncateText cuts s to its first 500 characters plus "..." when it has more
// than 1000 characters. Characters are Unicode code points.
func TruncateText(s string) (string, bool) {
	if utf8.RuneCountInString(s) <= MaxResponseLength {
		return s, false
	}

	n := 0
	for i := range s {
		if n == TruncatedLength {
			return s[:i] + TruncationSuffix, true
		}
		n++
	}
	return s, false
}

// TruncateResponse normalizes a raw response value and applies TruncateText.
func TruncateResponse(raw []byte) (*string, bool, error) {
	s, err := NormalizeJSON(raw)
	if err != nil || s == nil {
		return nil, false, err
	}

	out, cut := TruncateText(*s)
	return &out, cut, nil
}
