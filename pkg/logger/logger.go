package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

func callerPrettyfier(frame *runtime.Frame) (function string, file string) {
	return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
}

// SetupLogger configures the global logrus logger. format is "json" or "text".
func SetupLogger(level, format string) {
	log.SetReportCaller(true)

	switch format {
	case "text":
		log.SetFormatter(&log.TextFormatter{
			CallerPrettyfier: callerPrettyfier,
			TimestampFormat:  timestampFormat,
			FullTimestamp:    true,
		})
	default:
		log.SetFormatter(&log.JSONFormatter{
			CallerPrettyfier: callerPrettyfier,
			TimestampFormat:  timestampFormat,
		})
	}

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetLevel(loggerLevel)
}
