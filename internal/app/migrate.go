package app

import (
	"errors"
	"net/url"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

// Migrate applies every pending migration from migrationsPath.
func Migrate(pgUrl, migrationsPath string) error {
	pgUrl = withSSLModeDisabled(pgUrl)
	log.Info("Running migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return errorsUtils.WrapPathErr(err)
	}

	var (
		err  error
		mgrt *migrate.Migrate
	)
	for attempts := defaultAttempts; attempts > 0; attempts-- {
		mgrt, err = migrate.New("file://"+migrationsPath, pgUrl)
		if err == nil {
			break
		}

		log.Infof("Postgres trying to connect, attempts left: %d", attempts-1)
		time.Sleep(defaultTimeout)
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.Info("Migration successful up")
	return nil
}

// withSSLModeDisabled adds sslmode=disable unless the URL already sets it.
func withSSLModeDisabled(pgUrl string) string {
	u, err := url.Parse(pgUrl)
	if err != nil {
		return pgUrl
	}
	q := u.Query()
	if q.Get("sslmode") != "" {
		return pgUrl
	}
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}
