package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"usertaskapi/internal/models"
	"usertaskapi/internal/repository"
	"usertaskapi/internal/utils"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title  string
	Text   string
	UserID uint64
}

// UpdateTaskInput represents input for updating a task. Nil fields are left
// untouched; a pointer to an empty string overwrites.
type UpdateTaskInput struct {
	Title *string
	Text  *string
}

// CreateTask creates a new task owned by an existing user
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	task := &models.Task{
		Title:  input.Title,
		Text:   input.Text,
		UserID: input.UserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask returns a task by ID
func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// ListTasks returns tasks in insertion order
func (s *TaskService) ListTasks(ctx context.Context, params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// ListTasksByUser returns the tasks owned by one user in insertion order
func (s *TaskService) ListTasksByUser(ctx context.Context, userID uint64, params utils.PaginationParams) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.ListByUser(ctx, userID, params)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// UpdateTask applies a partial update to an existing task
func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	if input.Title != nil && *input.Title == "" {
		return nil, ErrTitleEmpty
	}

	task, err := s.taskRepo.Update(ctx, taskID, repository.TaskChanges{
		Title: input.Title,
		Text:  input.Text,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task and returns its pre-deletion snapshot
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return task, nil
}
