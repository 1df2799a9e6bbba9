package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"usertaskapi/internal/database"
	"usertaskapi/internal/models"
	"usertaskapi/internal/utils"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrDuplicateEmail is returned when creating a user whose email is already taken.
	ErrDuplicateEmail = errors.New("user repository: email already registered")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create checks email uniqueness and inserts the user in one transaction, so
// the check and the insert observe the same state and nothing is persisted on
// conflict.
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}

		return tx.Create(user).Error
	})
}

// FindByID finds a user by ID, eagerly loading owned tasks when requested
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64, fetch FetchStrategy) (*models.User, error) {
	var user models.User
	query := r.db.WithContext(ctx)

	if fetch == FetchEager {
		query = query.Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id")
		})
	}

	if err := query.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// List retrieves users in insertion order with their tasks loaded
func (r *GormUserRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.User, int64, error) {
	var users []models.User

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id")
		}).
		Order("users.id").
		Scopes(database.Paginate(params)).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
