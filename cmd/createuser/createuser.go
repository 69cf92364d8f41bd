package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/Egor213/LogiDash/internal/config"
	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/pgdb"
	"github.com/Egor213/LogiDash/internal/service"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/Egor213/LogiDash/pkg/logger"
	"github.com/Egor213/LogiDash/pkg/postgres"
	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		username = flag.String("username", "", "user name, at least 3 characters")
		email    = flag.String("email", "", "login email")
		password = flag.String("password", os.Getenv("LOGIDASH_PASSWORD"), "password, at least 8 characters (or LOGIDASH_PASSWORD)")
		role     = flag.String("role", domain.RoleUser, "admin or user")
	)
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	logger.SetupLogger(cfg.Log.Level, "text")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := postgres.New(ctx, cfg.PG.URL, postgres.MaxPoolSize(1))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()

	users := service.NewUserService(pgdb.NewUserRepo(pg), false)
	user, err := users.CreateUser(ctx, service.RegisterInput{
		Username: *username,
		Email:    *email,
		Password: *password,
	}, *role)
	if err != nil {
		log.Fatal(err)
	}

	log.WithFields(log.Fields{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	}).Info("User created")
}
