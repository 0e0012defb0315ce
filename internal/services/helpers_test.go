package services

import (
	"testing"

	"github.com/collabtrack/project-api/internal/authz"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// serviceTestEnv wires every service against one in-memory database.
type serviceTestEnv struct {
	db           *gorm.DB
	auth         *AuthService
	projects     *ProjectService
	participants *ParticipantService
	tasks        *TaskService
	comments     *CommentService
}

func setupServiceTest(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Membership{},
		&models.Task{},
		&models.Comment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	authzSvc := authz.NewService(db)

	return serviceTestEnv{
		db:           db,
		auth:         NewAuthService(userRepo),
		projects:     NewProjectService(projectRepo, authzSvc),
		participants: NewParticipantService(membershipRepo, userRepo, authzSvc),
		tasks:        NewTaskService(taskRepo, authzSvc),
		comments:     NewCommentService(commentRepo, taskRepo, membershipRepo, authzSvc),
	}
}

func (env serviceTestEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test User",
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env serviceTestEnv) createProject(t *testing.T, name string) *models.Project {
	t.Helper()
	project := &models.Project{Name: name}
	require.NoError(t, env.db.Create(project).Error)
	return project
}

func (env serviceTestEnv) addMembership(t *testing.T, userID string, projectID uint64, rank models.Rank) *models.Membership {
	t.Helper()
	m := &models.Membership{UserID: userID, ProjectID: projectID, Rank: rank}
	require.NoError(t, env.db.Create(m).Error)
	return m
}

func (env serviceTestEnv) addTask(t *testing.T, projectID uint64, name string) *models.Task {
	t.Helper()
	task := &models.Task{Name: name, Status: models.TaskStatusBacklog, ProjectID: projectID}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func (env serviceTestEnv) addComment(t *testing.T, taskID uint64, authorID *uint64, content string) *models.Comment {
	t.Helper()
	comment := &models.Comment{TaskID: taskID, AuthorID: authorID, Content: content}
	require.NoError(t, env.db.Create(comment).Error)
	return comment
}
