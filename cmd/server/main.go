package main

import (
	"github.com/collabtrack/project-api/internal/auth"
	"github.com/collabtrack/project-api/internal/authz"
	"github.com/collabtrack/project-api/internal/config"
	"github.com/collabtrack/project-api/internal/database"
	"github.com/collabtrack/project-api/internal/handlers"
	"github.com/collabtrack/project-api/internal/logging"
	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logging.Init(cfg.LogFile)
	auth.Init(cfg.JWTSecret, cfg.JWTExpiryHours)
	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logging.Logger.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		logging.Logger.WithError(err).Fatal("failed to run migrations")
	}

	db := database.GetDB()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authzService := authz.NewService(db)

	authHandler := handlers.NewAuthHandler(services.NewAuthService(userRepo))
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(projectRepo, authzService))
	participantHandler := handlers.NewParticipantHandler(services.NewParticipantService(membershipRepo, userRepo, authzService))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(taskRepo, authzService))
	commentHandler := handlers.NewCommentHandler(services.NewCommentService(commentRepo, taskRepo, membershipRepo, authzService))

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/users", authHandler.CreateUser)
		api.POST("/login", authHandler.LoginUser)
		api.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjectsList)
			projects.GET("/:id", projectHandler.GetProjectDetails)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
		}

		participants := api.Group("/participants")
		participants.Use(middleware.RequireAuth())
		{
			participants.POST("", participantHandler.AddParticipant)
			participants.PUT("/:id", participantHandler.UpdateParticipantRank)
			participants.DELETE("/:id", participantHandler.DeleteParticipant)
		}

		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTaskDetails)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PUT("/:id/contractor", taskHandler.ReassignTaskContractor)
		}

		comments := api.Group("/comments")
		comments.Use(middleware.RequireAuth())
		{
			comments.POST("", commentHandler.CreateComment)
			comments.PUT("/:id", commentHandler.UpdateComment)
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}
	}

	logging.Logger.Info("server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		logging.Logger.WithError(err).Fatal("server stopped")
	}
}
