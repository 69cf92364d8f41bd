package httpv1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Egor213/LogiDash/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func newHTTPError(status int, summary, details string) *echo.HTTPError {
	return echo.NewHTTPError(status, ErrorResponse{Error: summary, Details: details})
}

func badRequest(details string) *echo.HTTPError {
	return newHTTPError(http.StatusBadRequest, "Bad Request", details)
}

// mapServiceError turns service sentinels into responses; anything unknown
// becomes a 500 with summary.
func mapServiceError(err error, summary string) *echo.HTTPError {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, service.ErrMissingAuthHeader):
		return newHTTPError(http.StatusUnauthorized, "Unauthorized", "Authorization header is missing")
	case errors.Is(err, service.ErrInvalidAPIKey):
		return newHTTPError(http.StatusUnauthorized, "Unauthorized", "Invalid Authorization key")
	case errors.Is(err, service.ErrInvalidCredentials):
		return newHTTPError(http.StatusUnauthorized, "Unauthorized", "Invalid credentials")
	case errors.Is(err, service.ErrNotOwner):
		return newHTTPError(http.StatusUnauthorized, "Unauthorized", "You do not have access to this resource")
	case errors.Is(err, service.ErrValidation):
		return badRequest(err.Error())
	case errors.Is(err, service.ErrUserExists):
		return badRequest("User already exists")
	case errors.Is(err, service.ErrRegistrationDisabled):
		return newHTTPError(http.StatusForbidden, "Forbidden", "Registration is disabled")
	case errors.Is(err, service.ErrForbidden):
		return newHTTPError(http.StatusForbidden, "Forbidden", "Admin role required")
	case errors.Is(err, service.ErrAppNotFound):
		return newHTTPError(http.StatusNotFound, "Not Found", "App not found")
	case errors.Is(err, service.ErrProjectNotFound):
		return newHTTPError(http.StatusNotFound, "Not Found", "Project not found")
	case errors.Is(err, service.ErrUserNotFound):
		return newHTTPError(http.StatusNotFound, "Not Found", "User not found")
	default:
		return newHTTPError(http.StatusInternalServerError, summary, err.Error())
	}
}

// HTTPErrorHandler renders every error as {error, details}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he := mapServiceError(err, http.StatusText(http.StatusInternalServerError))

	body, ok := he.Message.(ErrorResponse)
	if !ok {
		details := fmt.Sprint(he.Message)
		if he.Internal != nil {
			details = fmt.Sprintf("%s: %v", details, he.Internal)
		}
		body = ErrorResponse{Error: http.StatusText(he.Code), Details: details}
	}

	if he.Code >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"path":   c.Path(),
			"method": c.Request().Method,
			"error":  err,
		}).Error("Request failed")
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(he.Code)
	} else {
		werr = c.JSON(he.Code, body)
	}
	if werr != nil {
		log.Errorf("Failed to write error response: %v", werr)
	}
}
