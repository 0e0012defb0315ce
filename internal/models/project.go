package models

import (
	"time"
)

// Field length limits shared by projects, tasks and comments.
const (
	NameMaxLength        = 150
	DescriptionMaxLength = 500
)

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"name"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Members []Membership `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
	Tasks   []Task       `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}
