package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"usertaskapi/internal/database"
	"usertaskapi/internal/models"
	"usertaskapi/internal/utils"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

var (
	// ErrOwnerNotFound is returned when a task operation references a user that does not exist.
	ErrOwnerNotFound = errors.New("task repository: owning user not found")
)

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create verifies the owning user exists and inserts the task in one
// transaction. Nothing is inserted when the user reference is dangling.
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", task.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOwnerNotFound
		}

		return tx.Create(task).Error
	})
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks in insertion order
func (r *GormTaskRepository) List(ctx context.Context, params utils.PaginationParams) ([]models.Task, int64, error) {
	var tasks []models.Task

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("tasks.id").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListByUser retrieves the tasks owned by one user in insertion order. The
// owner check and the listing share one transaction so the result is a
// consistent snapshot.
func (r *GormTaskRepository) ListByUser(ctx context.Context, userID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	var tasks []models.Task
	var total int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOwnerNotFound
		}

		if err := tx.Model(&models.Task{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", userID).
			Order("tasks.id").
			Scopes(database.Paginate(params)).
			Find(&tasks).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update loads the task, applies the non-nil fields of changes, stamps
// updated_at and saves, all in one transaction. A changes value with no
// fields set leaves the row untouched, updated_at included.
func (r *GormTaskRepository) Update(ctx context.Context, id uint64, changes TaskChanges) (*models.Task, error) {
	var task models.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}

		if changes.Title == nil && changes.Text == nil {
			return nil
		}

		if changes.Title != nil {
			task.Title = *changes.Title
		}
		if changes.Text != nil {
			task.Text = *changes.Text
		}

		now := time.Now()
		task.UpdatedAt = &now

		return tx.Save(&task).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// Delete removes the task and returns the snapshot taken before deletion
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}
