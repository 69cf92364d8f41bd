package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Egor213/LogiDash/internal/domain"
	"github.com/Egor213/LogiDash/internal/repo"
	"github.com/Egor213/LogiDash/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/LogiDash/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UserService struct {
	userRepo            repo.User
	disableRegistration bool
	hashCost            int
}

func NewUserService(ur repo.User, disableRegistration bool) *UserService {
	return &UserService{
		userRepo:            ur,
		disableRegistration: disableRegistration,
		hashCost:            bcrypt.DefaultCost,
	}
}

// WithHashCost lowers the bcrypt cost, used by tests.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if s.disableRegistration {
		return domain.User{}, ErrRegistrationDisabled
	}
	return s.CreateUser(ctx, in, domain.RoleUser)
}

func (s *UserService) CreateUser(ctx context.Context, in RegisterInput, role string) (domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if err := validateInput(in); err != nil {
		return domain.User{}, err
	}
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return domain.User{}, errors.Join(ErrValidation, errors.New("role must be admin or user"))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return domain.User{}, errorsUtils.WrapPathErr(err)
	}

	user := domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repoerrs.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		return domain.User{}, errorsUtils.WrapPathErr(err)
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": role}).Info("User created")
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, errorsUtils.WrapPathErr(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}
