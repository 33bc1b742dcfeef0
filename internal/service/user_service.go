package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/yavin/platform/internal/error_values"
	"github.com/yavin/platform/internal/repository"
	"github.com/yavin/platform/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo     repository.UsersRepositoryI
	progress repository.ProgressRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, progressRepo repository.ProgressRepositoryI) *UserService {
	return &UserService{
		repo:     usersRepo,
		progress: progressRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.Field() {
				case "Email":
					return nil, errorvalues.ErrInvalidEmail
				case "Password":
					return nil, errorvalues.ErrWeakPassword
				}
			}
			return nil, errors.New("validation error: " + err.Error())
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	err = us.repo.Create(ctx, &entity.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmailTaken) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	// Best effort: a failed streak write degrades to the stale counter
	// instead of failing the login
	today := time.Now()
	streak := NextStreak(user.LastActivityDate, user.StreakDays, today)
	if err = us.repo.UpdateStreak(ctx, user.ID, streak, today); err != nil {
		slog.Warn("streak update failed on login", slog.String("uid", user.ID.String()), slog.String("error", err.Error()))
	} else {
		user.StreakDays = streak
		user.LastActivityDate = &today
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Profile(ctx context.Context, uid uuid.UUID) (*entity.User, []entity.Progress, error) {
	user, err := us.GetByID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	progress, err := us.progress.GetByUser(ctx, uid)
	if err != nil {
		return nil, nil, errors.New("progress repository error: " + err.Error())
	}
	return user, progress, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
