package models

import "time"

type Rank string

const (
	RankOwner     Rank = "owner"
	RankModerator Rank = "moderator"
	RankMember    Rank = "member"
)

// CanModerate reports whether the rank carries moderation authority.
func (r Rank) CanModerate() bool {
	return r == RankOwner || r == RankModerator
}

// Valid reports whether r is one of the known ranks.
func (r Rank) Valid() bool {
	switch r {
	case RankOwner, RankModerator, RankMember:
		return true
	}
	return false
}

// Membership associates one user with one project under a rank. It is the
// unit every authorization decision pivots on.
type Membership struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"user_id"`
	ProjectID uint64    `gorm:"index;not null" json:"project_id"`
	Rank      Rank      `gorm:"type:varchar(20);not null" json:"rank"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`

	// Tasks contracted to and comments authored by this membership. These do
	// not cascade on delete; the repository nulls them explicitly.
	Tasks    []Task    `gorm:"foreignKey:ContractorID" json:"-"`
	Comments []Comment `gorm:"foreignKey:AuthorID" json:"-"`
}
