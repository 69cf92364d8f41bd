package httpv1

import (
	"errors"
	"net/http"
	"strings"
	"time"

	logginghelper "github.com/Egor213/LogiDash/internal/controller/common/logging"
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

const (
	appContextKey  = "app"
	userContextKey = "user"
	bearerPrefix   = "Bearer "
)

// APIKeyAuth resolves the app behind "Authorization: Bearer <key>".
func APIKeyAuth(apps service.App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				logginghelper.LogAuthFailure(c.Path(), "missing header")
				return mapServiceError(service.ErrMissingAuthHeader, "")
			}

			key, ok := strings.CutPrefix(header, bearerPrefix)
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				logginghelper.LogAuthFailure(c.Path(), "malformed header")
				return mapServiceError(service.ErrInvalidAPIKey, "")
			}

			app, err := apps.Authenticate(c.Request().Context(), key)
			if err != nil {
				logginghelper.LogAuthFailure(c.Path(), err.Error())
				return mapServiceError(err, "Failed to authenticate")
			}

			c.Set(appContextKey, app)
			return next(c)
		}
	}
}

// BasicAuth checks email and password against stored users.
func BasicAuth(users service.User) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "LogiDash",
		Validator: func(email, password string, c echo.Context) (bool, error) {
			user, err := users.Authenticate(c.Request().Context(), email, password)
			if err != nil {
				if errors.Is(err, service.ErrInvalidCredentials) {
					logginghelper.LogAuthFailure(c.Path(), "invalid credentials")
					return false, nil
				}
				return false, err
			}
			c.Set(userContextKey, user)
			return true, nil
		},
	})
}

// RateLimitByIP caps requests per client address within window.
func RateLimitByIP(limit int, window time.Duration) echo.MiddlewareFunc {
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return echo.WrapMiddleware(httprate.LimitByIP(limit, window))
}

// RequestLogger writes one logrus entry per request.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"remote_ip":  v.RemoteIP,
				"request_id": v.RequestID,
			})
			switch {
			case v.Status >= http.StatusInternalServerError:
				entry.WithField("error", v.Error).Error("request")
			case v.Status >= http.StatusBadRequest:
				entry.Warn("request")
			default:
				entry.Info("request")
			}
			return nil
		},
	})
}

func currentApp(c echo.Context) domain.App {
	app, _ := c.Get(appContextKey).(domain.App)
	return app
}

func currentUser(c echo.Context) domain.User {
	user, _ := c.Get(userContextKey).(domain.User)
	return user
}
