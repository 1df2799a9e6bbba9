package repository

import (
	"context"

	"usertaskapi/internal/models"
	"usertaskapi/internal/utils"
)

// FetchStrategy controls whether a read resolves related records in the same
// fetch or returns the bare row.
type FetchStrategy int

const (
	// FetchLazy loads the record only.
	FetchLazy FetchStrategy = iota
	// FetchEager loads the record together with its owned relations.
	FetchEager
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user after checking email uniqueness.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID. With FetchEager the user's tasks are
	// loaded as part of the same fetch.
	FindByID(ctx context.Context, id uint64, fetch FetchStrategy) (*models.User, error)

	// List retrieves users in insertion order, tasks included, along with
	// the total count. Unbounded params return the full sequence.
	List(ctx context.Context, params utils.PaginationParams) ([]models.User, int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task after verifying the owning user exists.
	// Returns ErrOwnerNotFound if task.UserID references no user.
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// List retrieves tasks in insertion order along with the total count.
	// Unbounded params return the full sequence.
	List(ctx context.Context, params utils.PaginationParams) ([]models.Task, int64, error)

	// ListByUser retrieves the tasks owned by the given user in insertion
	// order. Returns ErrOwnerNotFound if the user does not exist.
	ListByUser(ctx context.Context, userID uint64, params utils.PaginationParams) ([]models.Task, int64, error)

	// Update applies the non-nil fields of changes to the task and stamps
	// updated_at, all within one transaction
	Update(ctx context.Context, id uint64, changes TaskChanges) (*models.Task, error)

	// Delete removes the task and returns its pre-deletion snapshot
	Delete(ctx context.Context, id uint64) (*models.Task, error)
}

// TaskChanges holds the fields of a partial task update. A nil field leaves
// the current value untouched; a pointer to the zero value overwrites.
type TaskChanges struct {
	Title *string
	Text  *string
}
