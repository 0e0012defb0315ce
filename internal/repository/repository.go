package repository

import (
	"context"

	"github.com/collabtrack/project-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// CreateWithOwner creates a project and seeds the creator's owner
	// membership within a single transaction.
	CreateWithOwner(ctx context.Context, project *models.Project, ownerUserID string) error

	// FindDetails loads a project with its tasks (contractors included) and
	// members. Returns gorm.ErrRecordNotFound when absent.
	FindDetails(ctx context.Context, id uint64) (*models.Project, error)

	// ListForUser lists memberships of the user with projects preloaded
	ListForUser(ctx context.Context, userID string) ([]models.Membership, error)

	// UpdateNameDescription updates the project's name and description.
	// Returns false when the project does not exist.
	UpdateNameDescription(ctx context.Context, id uint64, name, description string) (bool, error)

	// Delete removes the project together with its memberships, tasks and
	// the tasks' comments in one transaction. Missing projects are a no-op.
	Delete(ctx context.Context, id uint64) error
}

// MembershipRepository defines the interface for membership data access
type MembershipRepository interface {
	// Create creates a new membership
	Create(ctx context.Context, membership *models.Membership) error

	// ProjectIDOf resolves the owning project of a membership. Absent
	// memberships resolve to project 0, not an error.
	ProjectIDOf(ctx context.Context, membershipID uint64) (uint64, error)

	// FindByProjectAndUser finds the user's membership in the project
	FindByProjectAndUser(ctx context.Context, projectID uint64, userID string) (*models.Membership, error)

	// Exists reports whether the user already holds a membership in the project
	Exists(ctx context.Context, projectID uint64, userID string) (bool, error)

	// UpdateRankExcludingUser sets the membership's rank unless the
	// membership belongs to excludedUserID. Returns false when no row
	// matched.
	UpdateRankExcludingUser(ctx context.Context, membershipID uint64, rank models.Rank, excludedUserID string) (bool, error)

	// Remove deletes the membership, nulling contractor and author
	// references that point at it, within a single transaction. Returns
	// false when the membership does not exist.
	Remove(ctx context.Context, membershipID uint64) (bool, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// ProjectIDOf resolves the owning project of a task. Absent tasks
	// resolve to project 0, not an error.
	ProjectIDOf(ctx context.Context, taskID uint64) (uint64, error)

	// FindDetails loads a task with its comments and contractor. Returns
	// gorm.ErrRecordNotFound when absent.
	FindDetails(ctx context.Context, id uint64) (*models.Task, error)

	// UpdateNameDescription updates the task's name and description, leaving
	// status and contractor untouched. Returns false when the task does not
	// exist.
	UpdateNameDescription(ctx context.Context, id uint64, name, description string) (bool, error)

	// UpdateContractor reassigns the task's contractor membership; nil
	// unassigns. Returns false when the task does not exist.
	UpdateContractor(ctx context.Context, id uint64, contractorID *uint64) (bool, error)

	// Delete removes the task and its comments. Missing tasks are a no-op.
	Delete(ctx context.Context, id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// ProjectIDOf resolves the owning project of a comment through its task.
	// Absent comments resolve to project 0, not an error.
	ProjectIDOf(ctx context.Context, commentID uint64) (uint64, error)

	// IsAuthoredBy reports whether the comment's author membership belongs
	// to the user. Comments with a nulled author match nobody.
	IsAuthoredBy(ctx context.Context, commentID uint64, userID string) (bool, error)

	// UpdateContent replaces the comment's content. Returns false when the
	// comment does not exist.
	UpdateContent(ctx context.Context, id uint64, content string) (bool, error)

	// Delete removes the comment. Missing comments are a no-op.
	Delete(ctx context.Context, id uint64) error
}
