package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogiDash/internal/domain"
	repomocks "github.com/Egor213/LogiDash/internal/mocks/repository"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	"github.com/Egor213/LogiDash/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, disabled bool) (*service.UserService, *repomocks.MockUser) {
	t.Helper()
	ctrl := gomock.NewController(t)
	r := repomocks.NewMockUser(ctrl)
	return service.NewUserService(r, disabled).WithHashCost(bcrypt.MinCost), r
}

func TestUserService_Register(t *testing.T) {
	valid := service.RegisterInput{Username: "alice", Email: " Alice@Example.com ", Password: "supersecret"}

	type mockBehavior func(r *repomocks.MockUser)

	tcs := []struct {
		name         string
		disabled     bool
		in           service.RegisterInput
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name: "success",
			in:   valid,
			mockBehavior: func(r *repomocks.MockUser) {
				r.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *domain.User) error {
						assert.Equal(t, "alice@example.com", u.Email)
						assert.Equal(t, domain.RoleUser, u.Role)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("supersecret")))
						u.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:         "registration disabled",
			disabled:     true,
			in:           valid,
			mockBehavior: func(r *repomocks.MockUser) {},
			wantErr:      service.ErrRegistrationDisabled,
		},
		{
			name:         "short username",
			in:           service.RegisterInput{Username: "al", Email: "a@b.io", Password: "supersecret"},
			mockBehavior: func(r *repomocks.MockUser) {},
			wantErr:      service.ErrValidation,
		},
		{
			name:         "bad email",
			in:           service.RegisterInput{Username: "alice", Email: "nope", Password: "supersecret"},
			mockBehavior: func(r *repomocks.MockUser) {},
			wantErr:      service.ErrValidation,
		},
		{
			name:         "short password",
			in:           service.RegisterInput{Username: "alice", Email: "a@b.io", Password: "short"},
			mockBehavior: func(r *repomocks.MockUser) {},
			wantErr:      service.ErrValidation,
		},
		{
			name: "email taken",
			in:   valid,
			mockBehavior: func(r *repomocks.MockUser) {
				r.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(repoerrs.ErrAlreadyExists)
			},
			wantErr: service.ErrUserExists,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newUserService(t, tc.disabled)
			tc.mockBehavior(r)

			user, err := svc.Register(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
		})
	}
}

func TestUserService_CreateUser_Role(t *testing.T) {
	svc, r := newUserService(t, true)
	r.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.CreateUser(context.Background(), service.RegisterInput{
		Username: "root", Email: "root@example.com", Password: "rootroot",
	}, domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	_, err = svc.CreateUser(context.Background(), service.RegisterInput{
		Username: "root", Email: "root@example.com", Password: "rootroot",
	}, "owner")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUserService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: string(hash)}

	tcs := []struct {
		name     string
		email    string
		password string
		setup    func(r *repomocks.MockUser)
		wantErr  error
	}{
		{
			name:     "success",
			email:    "ALICE@example.com",
			password: "supersecret",
			setup: func(r *repomocks.MockUser) {
				r.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "guess",
			setup: func(r *repomocks.MockUser) {
				r.EXPECT().GetUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "bob@example.com",
			password: "supersecret",
			setup: func(r *repomocks.MockUser) {
				r.EXPECT().GetUserByEmail(gomock.Any(), "bob@example.com").Return(domain.User{}, repoerrs.ErrNotFound)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:    "empty credentials",
			setup:   func(r *repomocks.MockUser) {},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newUserService(t, false)
			tc.setup(r)

			user, err := svc.Authenticate(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func TestUserService_Authenticate_StorageError(t *testing.T) {
	svc, r := newUserService(t, false)
	r.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(domain.User{}, errors.New("conn reset"))

	_, err := svc.Authenticate(context.Background(), "a@b.io", "supersecret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}
