package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "BACKLOG"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is a known workflow state.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusBacklog, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Name        string     `gorm:"type:varchar(150);not null" json:"name"`
	Description string     `gorm:"type:varchar(500)" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'BACKLOG'" json:"status"`
	ProjectID   uint64     `gorm:"index;not null" json:"project_id"`
	// ContractorID points at the membership responsible for the task.
	// Unassigned is a valid state.
	ContractorID *uint64   `gorm:"index" json:"contractor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Project    Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Contractor *Membership `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Comments   []Comment   `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
