package logginghelper

import (
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func LogReceived(appID uuid.UUID, method, url string, statusCode int) {
	log.WithFields(log.Fields{
		"app_id":      appID,
		"method":      method,
		"url":         url,
		"status_code": statusCode,
	}).Debug("Received http log")
}

func LogSaved(entry domain.HttpLog) {
	log.WithFields(log.Fields{
		"app_id":    entry.AppID,
		"id":        entry.ID,
		"has_response": entry.Response != nil,
	}).Info("Http log saved successfully")
}

func LogError(appID uuid.UUID, err error) {
	log.WithFields(log.Fields{
		"app_id": appID,
		"error":  err,
	}).Error("Failed to save http log")
}

func LogAuthFailure(path, reason string) {
	log.WithFields(log.Fields{
		"path":   path,
		"reason": reason,
	}).Warn("Request rejected")
}
