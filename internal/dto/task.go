package dto

import (
	"time"

	"usertaskapi/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        uint64     `json:"id"`
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	UserID    uint64     `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Text:      task.Text,
		UserID:    task.UserID,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskList converts a slice of tasks to response DTOs
func ToTaskList(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
