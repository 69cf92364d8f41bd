package service_test

import (
	"context"
	"testing"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProjectService_CreateProject(t *testing.T) {
	userID := uuid.New()

	tcs := []struct {
		name    string
		in      service.ProjectInput
		wantErr error
	}{
		{name: "name only", in: service.ProjectInput{Name: "shop"}},
		{name: "with url", in: service.ProjectInput{Name: "shop", URL: "https://shop.example.com"}},
		{name: "missing name", in: service.ProjectInput{Name: "  "}, wantErr: service.ErrValidation},
		{name: "invalid url", in: service.ProjectInput{Name: "shop", URL: "not a url"}, wantErr: service.ErrValidation},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestServices(t, false)
			if tc.wantErr == nil {
				m.project.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil)
			}

			p, err := svc.Project.CreateProject(context.Background(), userID, tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, p.UserID)
			assert.NotNil(t, p.Apps)
			assert.Nil(t, p.Description)
			if tc.in.URL == "" {
				assert.Nil(t, p.URL)
			} else {
				assert.Equal(t, tc.in.URL, *p.URL)
			}
		})
	}
}

func TestProjectService_ListProjects(t *testing.T) {
	userID := uuid.New()
	svc, m := newTestServices(t, false)

	p1 := domain.Project{ID: uuid.New(), UserID: userID}
	p2 := domain.Project{ID: uuid.New(), UserID: userID}
	a1 := domain.App{ID: uuid.New(), ProjectID: p1.ID}

	m.project.EXPECT().ListProjectsByUser(gomock.Any(), userID).Return([]domain.Project{p1, p2}, nil)
	m.app.EXPECT().ListAppsByProjects(gomock.Any(), []uuid.UUID{p1.ID, p2.ID}).Return([]domain.App{a1}, nil)

	got, err := svc.Project.ListProjects(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []domain.App{a1}, got[0].Apps)
	assert.Equal(t, []domain.App{}, got[1].Apps)
}

func TestProjectService_GetProject(t *testing.T) {
	userID := uuid.New()
	project := domain.Project{ID: uuid.New(), UserID: userID}

	t.Run("owner", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		m.project.EXPECT().GetProjectByID(gomock.Any(), project.ID).Return(project, nil)
		m.app.EXPECT().ListAppsByProjects(gomock.Any(), []uuid.UUID{project.ID}).Return(nil, nil)

		got, err := svc.Project.GetProject(context.Background(), userID, project.ID)
		require.NoError(t, err)
		assert.Equal(t, []domain.App{}, got.Apps)
	})

	t.Run("other user", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		m.project.EXPECT().GetProjectByID(gomock.Any(), project.ID).Return(project, nil)

		_, err := svc.Project.GetProject(context.Background(), uuid.New(), project.ID)
		assert.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("missing", func(t *testing.T) {
		svc, m := newTestServices(t, false)
		m.project.EXPECT().GetProjectByID(gomock.Any(), project.ID).Return(domain.Project{}, repoerrs.ErrNotFound)

		_, err := svc.Project.GetProject(context.Background(), userID, project.ID)
		assert.ErrorIs(t, err, service.ErrProjectNotFound)
	})
}

func TestProjectService_DeleteProject(t *testing.T) {
	userID := uuid.New()
	project := domain.Project{ID: uuid.New(), UserID: userID}
	apps := []domain.App{{ID: uuid.New()}, {ID: uuid.New()}}

	svc, m := newTestServices(t, false)
	m.project.EXPECT().GetProjectByID(gomock.Any(), project.ID).Return(project, nil)
	m.expectTx()

	m.app.EXPECT().ListAppsByProjects(gomock.Any(), []uuid.UUID{project.ID}).Return(apps, nil)
	for _, a := range apps {
		m.httpLog.EXPECT().DeleteHttpLogsByApp(gomock.Any(), a.ID).Return(int64(1), nil)
		m.log.EXPECT().DeleteLogsByApp(gomock.Any(), a.ID).Return(int64(0), nil)
	}
	gomock.InOrder(
		m.app.EXPECT().DeleteAppsByProject(gomock.Any(), project.ID).Return(int64(2), nil),
		m.project.EXPECT().DeleteProject(gomock.Any(), project.ID).Return(nil),
	)

	require.NoError(t, svc.Project.DeleteProject(context.Background(), userID, project.ID))
}
