package models

import (
	"time"
)

type Comment struct {
	ID      uint64 `gorm:"primarykey" json:"id"`
	Content string `gorm:"type:varchar(500);not null" json:"content"`
	TaskID  uint64 `gorm:"index;not null" json:"task_id"`
	// AuthorID is nulled when the authoring membership is removed.
	AuthorID  *uint64   `gorm:"index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Task   Task        `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Author *Membership `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
