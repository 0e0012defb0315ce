package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/collabtrack/project-api/internal/auth"
	"github.com/collabtrack/project-api/internal/authz"
	"github.com/collabtrack/project-api/internal/database"
	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.Init("test-secret", 1)

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

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	authzSvc := authz.NewService(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, authzSvc))
	participantHandler := NewParticipantHandler(services.NewParticipantService(membershipRepo, userRepo, authzSvc))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", authHandler.CreateUser)
	api.POST("/login", authHandler.LoginUser)
	api.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

	projects := api.Group("/projects")
	projects.Use(middleware.RequireAuth())
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.GetProjectsList)
	projects.GET("/:id", projectHandler.GetProjectDetails)

	participants := api.Group("/participants")
	participants.Use(middleware.RequireAuth())
	participants.POST("", participantHandler.AddParticipant)

	return testEnv{db: db, router: r}
}

func (env testEnv) do(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signup registers a user and returns a valid bearer token for them.
func (env testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"full_name": "Test User",
		"email":     email,
		"password":  "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    email,
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.Error.Code
}

func TestSignupAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	token := env.signup(t, "grace@example.com")

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "grace@example.com", claims.Email)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	env.signup(t, "grace@example.com")

	w := env.do(t, http.MethodPost, "/api/users", "", map[string]string{
		"full_name": "Test User",
		"email":     "grace@example.com",
		"password":  "supersecret",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "CreateUser.Validation", errorCode(t, w))
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "LoginUser.NotFound", errorCode(t, w))
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signup(t, "grace@example.com")

	w := env.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		ID       string `json:"id"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.ID)
	require.Equal(t, "grace@example.com", response.Email)
	require.Equal(t, "Test User", response.FullName)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/projects", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
