package authz

import (
	"context"
	"testing"

	"github.com/collabtrack/project-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthzTest(t *testing.T) (*gorm.DB, *Service) {
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

	return db, NewService(db)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test User",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, name string) *models.Project {
	t.Helper()
	project := &models.Project{Name: name}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedMembership(t *testing.T, db *gorm.DB, userID string, projectID uint64, rank models.Rank) *models.Membership {
	t.Helper()
	m := &models.Membership{UserID: userID, ProjectID: projectID, Rank: rank}
	require.NoError(t, db.Create(m).Error)
	return m
}

func TestRankPredicates(t *testing.T) {
	db, svc := setupAuthzTest(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	moderator := seedUser(t, db, "moderator@example.com")
	member := seedUser(t, db, "member@example.com")
	outsider := seedUser(t, db, "outsider@example.com")

	project := seedProject(t, db, "Apollo")
	seedMembership(t, db, owner.ID, project.ID, models.RankOwner)
	seedMembership(t, db, moderator.ID, project.ID, models.RankModerator)
	seedMembership(t, db, member.ID, project.ID, models.RankMember)

	require.True(t, svc.IsProjectOwner(ctx, owner.ID, project.ID))
	require.False(t, svc.IsProjectOwner(ctx, moderator.ID, project.ID))
	require.False(t, svc.IsProjectOwner(ctx, member.ID, project.ID))

	require.True(t, svc.CanModerateProject(ctx, owner.ID, project.ID))
	require.True(t, svc.CanModerateProject(ctx, moderator.ID, project.ID))
	require.False(t, svc.CanModerateProject(ctx, member.ID, project.ID))

	require.True(t, svc.IsProjectMember(ctx, owner.ID, project.ID))
	require.True(t, svc.IsProjectMember(ctx, member.ID, project.ID))
	require.False(t, svc.IsProjectMember(ctx, outsider.ID, project.ID))
}

func TestPredicates_UnknownScope(t *testing.T) {
	db, svc := setupAuthzTest(t)
	ctx := context.Background()

	user := seedUser(t, db, "user@example.com")

	// Project 0 is the resolution of any absent target. No membership can
	// reference it, so every predicate answers false.
	require.False(t, svc.IsProjectOwner(ctx, user.ID, 0))
	require.False(t, svc.CanModerateProject(ctx, user.ID, 0))
	require.False(t, svc.IsProjectMember(ctx, user.ID, 0))
	require.False(t, svc.CanRemoveMembership(ctx, user.ID, 0))
}

func TestCanRemoveMembership(t *testing.T) {
	db, svc := setupAuthzTest(t)
	ctx := context.Background()

	ownerA := seedUser(t, db, "owner-a@example.com")
	ownerB := seedUser(t, db, "owner-b@example.com")
	moderator := seedUser(t, db, "moderator@example.com")
	member := seedUser(t, db, "member@example.com")

	project := seedProject(t, db, "Apollo")
	mOwnerA := seedMembership(t, db, ownerA.ID, project.ID, models.RankOwner)
	mOwnerB := seedMembership(t, db, ownerB.ID, project.ID, models.RankOwner)
	mModerator := seedMembership(t, db, moderator.ID, project.ID, models.RankModerator)
	mMember := seedMembership(t, db, member.ID, project.ID, models.RankMember)

	// Anyone below owner may leave voluntarily.
	require.True(t, svc.CanRemoveMembership(ctx, member.ID, mMember.ID))
	require.True(t, svc.CanRemoveMembership(ctx, moderator.ID, mModerator.ID))

	// Owners may remove anyone in their project, other owners included.
	require.True(t, svc.CanRemoveMembership(ctx, ownerA.ID, mMember.ID))
	require.True(t, svc.CanRemoveMembership(ctx, ownerA.ID, mModerator.ID))
	require.True(t, svc.CanRemoveMembership(ctx, ownerA.ID, mOwnerB.ID))

	// An owner may remove their own membership only when another owner
	// remains in the project.
	require.True(t, svc.CanRemoveMembership(ctx, ownerA.ID, mOwnerA.ID))

	// Non-moderating members cannot remove anyone else.
	require.False(t, svc.CanRemoveMembership(ctx, member.ID, mModerator.ID))
	require.False(t, svc.CanRemoveMembership(ctx, moderator.ID, mMember.ID))
}

func TestCanRemoveMembership_LoneOwner(t *testing.T) {
	db, svc := setupAuthzTest(t)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	project := seedProject(t, db, "Apollo")
	mOwner := seedMembership(t, db, owner.ID, project.ID, models.RankOwner)

	require.False(t, svc.CanRemoveMembership(ctx, owner.ID, mOwner.ID))
}

func TestCanRemoveMembership_ScopedToProject(t *testing.T) {
	db, svc := setupAuthzTest(t)
	ctx := context.Background()

	ownerA := seedUser(t, db, "owner-a@example.com")
	ownerB := seedUser(t, db, "owner-b@example.com")
	member := seedUser(t, db, "member@example.com")

	projectA := seedProject(t, db, "Apollo")
	projectB := seedProject(t, db, "Borealis")
	seedMembership(t, db, ownerA.ID, projectA.ID, models.RankOwner)
	seedMembership(t, db, ownerB.ID, projectB.ID, models.RankOwner)
	mMemberB := seedMembership(t, db, member.ID, projectB.ID, models.RankMember)

	// Owning an unrelated project grants nothing here.
	require.False(t, svc.CanRemoveMembership(ctx, ownerA.ID, mMemberB.ID))
	require.True(t, svc.CanRemoveMembership(ctx, ownerB.ID, mMemberB.ID))
}
