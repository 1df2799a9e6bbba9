package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"usertaskapi/internal/models"
	"usertaskapi/internal/repository"
	"usertaskapi/internal/utils"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("a user with this email already exists")
	ErrInvalidEmail = errors.New("email must be a valid email address")
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUser validates the email and persists a new user
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if err := s.validate.Var(input.Email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}

	user := &models.User{
		Name:  input.Name,
		Email: input.Email,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser returns a user with the full set of owned tasks. The task set is
// loaded eagerly so callers never see a partially resolved ownership set.
func (s *UserService) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID, repository.FetchEager)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListUsers returns users in insertion order, tasks included
func (s *UserService) ListUsers(ctx context.Context, params utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}
