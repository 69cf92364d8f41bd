package service

import (
	"context"
	"strings"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type ProjectInput struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"max=1024"`
	URL         string `json:"url" validate:"omitempty,url"`
}

type ProjectService struct {
	projectRepo repo.Project
	appRepo     repo.App
	httpLogRepo repo.HttpLog
	logRepo     repo.Log
	owner       *ownership
	txManager   TxManager
}

func NewProjectService(pr repo.Project, ar repo.App, hr repo.HttpLog, lr repo.Log, tx TxManager) *ProjectService {
	return &ProjectService{
		projectRepo: pr,
		appRepo:     ar,
		httpLogRepo: hr,
		logRepo:     lr,
		owner:       newOwnership(ar, pr),
		txManager:   tx,
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, userID uuid.UUID, in ProjectInput) (domain.Project, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)
	if err := validateInput(in); err != nil {
		return domain.Project{}, err
	}

	project := domain.Project{
		Name:        in.Name,
		Description: optional(in.Description),
		URL:         optional(in.URL),
		UserID:      userID,
		Apps:        []domain.App{},
	}
	if err := s.projectRepo.CreateProject(ctx, &project); err != nil {
		return domain.Project{}, errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{"project_id": project.ID, "user_id": userID}).Info("Project created")
	return project, nil
}

// ListProjects returns the user's projects with their apps attached.
func (s *ProjectService) ListProjects(ctx context.Context, userID uuid.UUID) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjectsByUser(ctx, userID)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if len(projects) == 0 {
		return []domain.Project{}, nil
	}

	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	apps, err := s.appRepo.ListAppsByProjects(ctx, ids)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	byProject := make(map[uuid.UUID][]domain.App, len(projects))
	for _, a := range apps {
		byProject[a.ProjectID] = append(byProject[a.ProjectID], a)
	}
	for i := range projects {
		projects[i].Apps = byProject[projects[i].ID]
		if projects[i].Apps == nil {
			projects[i].Apps = []domain.App{}
		}
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, userID, projectID uuid.UUID) (domain.Project, error) {
	project, err := s.owner.ownedProject(ctx, userID, projectID)
	if err != nil {
		return domain.Project{}, err
	}

	apps, err := s.appRepo.ListAppsByProjects(ctx, []uuid.UUID{projectID})
	if err != nil {
		return domain.Project{}, errorsUtils.WrapPathErr(err)
	}
	if apps == nil {
		apps = []domain.App{}
	}
	project.Apps = apps
	return project, nil
}

// DeleteProject removes the project, its apps and their logs in one transaction.
func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID uuid.UUID) error {
	if _, err := s.owner.ownedProject(ctx, userID, projectID); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		apps, err := s.appRepo.ListAppsByProjects(ctx, []uuid.UUID{projectID})
		if err != nil {
			return err
		}
		for _, a := range apps {
			if _, err := s.httpLogRepo.DeleteHttpLogsByApp(ctx, a.ID); err != nil {
				return err
			}
			if _, err := s.logRepo.DeleteLogsByApp(ctx, a.ID); err != nil {
				return err
			}
		}
		if _, err := s.appRepo.DeleteAppsByProject(ctx, projectID); err != nil {
			return err
		}
		return s.projectRepo.DeleteProject(ctx, projectID)
	})
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{"project_id": projectID, "user_id": userID}).Info("Project deleted")
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
