package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const apiKeyBytes = 32

type AppInput struct {
	Name      string    `json:"name" validate:"required,min=2,max=128"`
	ProjectID uuid.UUID `json:"projectId" validate:"required"`
}

type AppService struct {
	appRepo     repo.App
	httpLogRepo repo.HttpLog
	logRepo     repo.Log
	owner       *ownership
	txManager   TxManager
	newKey      func() (string, error)
}

func NewAppService(ar repo.App, hr repo.HttpLog, lr repo.Log, owner *ownership, tx TxManager) *AppService {
	return &AppService{
		appRepo:     ar,
		httpLogRepo: hr,
		logRepo:     lr,
		owner:       owner,
		txManager:   tx,
		newKey:      GenerateAPIKey,
	}
}

// GenerateAPIKey returns 32 random bytes hex encoded.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, apiKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}
	return hex.EncodeToString(buf), nil
}

// Authenticate resolves the app owning apiKey. Every failure is ErrInvalidAPIKey
// except storage errors.
func (s *AppService) Authenticate(ctx context.Context, apiKey string) (domain.App, error) {
	if apiKey == "" {
		return domain.App{}, ErrInvalidAPIKey
	}

	app, err := s.appRepo.GetAppByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.App{}, ErrInvalidAPIKey
		}
		return domain.App{}, errorsUtils.WrapPathErr(err)
	}
	return app, nil
}

func (s *AppService) CreateApp(ctx context.Context, userID uuid.UUID, in AppInput) (domain.App, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return domain.App{}, err
	}

	project, err := s.owner.ownedProject(ctx, userID, in.ProjectID)
	if err != nil {
		return domain.App{}, err
	}

	key, err := s.newKey()
	if err != nil {
		return domain.App{}, err
	}

	app := domain.App{
		Name:      in.Name,
		APIKey:    key,
		ProjectID: project.ID,
	}
	if err := s.appRepo.CreateApp(ctx, &app); err != nil {
		return domain.App{}, errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{"app_id": app.ID, "project_id": project.ID}).Info("App created")
	return app, nil
}

func (s *AppService) GetApp(ctx context.Context, userID, appID uuid.UUID) (domain.App, error) {
	return s.owner.ownedApp(ctx, userID, appID)
}

func (s *AppService) RenameApp(ctx context.Context, userID, appID uuid.UUID, name string) (domain.App, error) {
	app, err := s.owner.ownedApp(ctx, userID, appID)
	if err != nil {
		return domain.App{}, err
	}

	in := AppInput{Name: strings.TrimSpace(name), ProjectID: app.ProjectID}
	if err := validateInput(in); err != nil {
		return domain.App{}, err
	}

	app.Name = in.Name
	if err := s.appRepo.UpdateApp(ctx, &app); err != nil {
		return domain.App{}, s.mapUpdateErr(err)
	}
	return app, nil
}

// RotateKey replaces the api key; the previous key stops working immediately.
func (s *AppService) RotateKey(ctx context.Context, userID, appID uuid.UUID) (domain.App, error) {
	app, err := s.owner.ownedApp(ctx, userID, appID)
	if err != nil {
		return domain.App{}, err
	}

	key, err := s.newKey()
	if err != nil {
		return domain.App{}, err
	}

	app.APIKey = key
	if err := s.appRepo.UpdateApp(ctx, &app); err != nil {
		return domain.App{}, s.mapUpdateErr(err)
	}

	log.WithField("app_id", app.ID).Info("App key rotated")
	return app, nil
}

func (s *AppService) DeleteApp(ctx context.Context, userID, appID uuid.UUID) error {
	if _, err := s.owner.ownedApp(ctx, userID, appID); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.httpLogRepo.DeleteHttpLogsByApp(ctx, appID); err != nil {
			return err
		}
		if _, err := s.logRepo.DeleteLogsByApp(ctx, appID); err != nil {
			return err
		}
		return s.appRepo.DeleteApp(ctx, appID)
	})
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrAppNotFound
		}
		return errorsUtils.WrapPathErr(err)
	}

	log.WithField("app_id", appID).Info("App deleted")
	return nil
}

func (s *AppService) mapUpdateErr(err error) error {
	if errors.Is(err, repoerrs.ErrNotFound) {
		return ErrAppNotFound
	}
	return errorsUtils.WrapPathErr(err)
}
