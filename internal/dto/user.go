package dto

import "github.com/collabtrack/project-api/internal/models"

// UserDTO is the public shape of a user
type UserDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// ToUserDTO converts a user model to its DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
