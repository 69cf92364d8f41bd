package service

import (
	"context"
	"errors"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	"github.com/google/uuid"
)

// ownership resolves an app together with its project and checks who owns it.
type ownership struct {
	appRepo     repo.App
	projectRepo repo.Project
}

func newOwnership(ar repo.App, pr repo.Project) *ownership {
	return &ownership{appRepo: ar, projectRepo: pr}
}

func (o *ownership) ownedApp(ctx context.Context, userID, appID uuid.UUID) (domain.App, error) {
	app, err := o.appRepo.GetAppByID(ctx, appID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.App{}, ErrAppNotFound
		}
		return domain.App{}, errorsUtils.WrapPathErr(err)
	}

	project, err := o.ownedProject(ctx, userID, app.ProjectID)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return domain.App{}, ErrAppNotFound
		}
		return domain.App{}, err
	}

	app.Project = &project
	return app, nil
}

func (o *ownership) ownedProject(ctx context.Context, userID, projectID uuid.UUID) (domain.Project, error) {
	project, err := o.projectRepo.GetProjectByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, errorsUtils.WrapPathErr(err)
	}
	if !project.OwnedBy(userID) {
		return domain.Project{}, ErrNotOwner
	}
	return project, nil
}
