package dto

import "usertaskapi/internal/models"

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserWithTasksDTO represents a user together with its full task set. The
// tasks array is always present, empty when the user owns nothing.
type UserWithTasksDTO struct {
	ID    uint64    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Tasks []TaskDTO `json:"tasks"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// ToUserWithTasksDTO converts a User model with loaded tasks to UserWithTasksDTO
func ToUserWithTasksDTO(user models.User) UserWithTasksDTO {
	tasks := make([]TaskDTO, len(user.Tasks))
	for i, task := range user.Tasks {
		tasks[i] = ToTaskDTO(task)
	}

	return UserWithTasksDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Tasks: tasks,
	}
}

// ToUserWithTasksList converts a slice of users to response DTOs
func ToUserWithTasksList(users []models.User) []UserWithTasksDTO {
	items := make([]UserWithTasksDTO, len(users))
	for i, user := range users {
		items[i] = ToUserWithTasksDTO(user)
	}
	return items
}
