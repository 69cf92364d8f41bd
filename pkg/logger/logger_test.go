package logger_test

import (
	"testing"

	"github.com/Egor213/LogiDash/pkg/logger"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel log.Level
		textFmt   bool
	}{
		{name: "debug json", level: "debug", format: "json", wantLevel: log.DebugLevel},
		{name: "warn text", level: "warn", format: "text", wantLevel: log.WarnLevel, textFmt: true},
		{name: "unknown level falls back to info", level: "loud", format: "", wantLevel: log.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger.SetupLogger(tc.level, tc.format)

			assert.Equal(t, tc.wantLevel, log.GetLevel())
			_, isText := log.StandardLogger().Formatter.(*log.TextFormatter)
			assert.Equal(t, tc.textFmt, isText)
		})
	}
}
