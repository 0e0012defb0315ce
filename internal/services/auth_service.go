package services

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/auth"
	"github.com/collabtrack/project-api/internal/dto"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	opCreateUser     = "CreateUser"
	opLoginUser      = "LoginUser"
	opGetCurrentUser = "GetCurrentUser"
)

// AuthService handles signup and login.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// CreateUserCommand registers a new user.
type CreateUserCommand struct {
	FullName string `validate:"required,max=150"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginUserCommand authenticates a user by credentials.
type LoginUserCommand struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// CreateUser registers a new user and returns its id.
func (s *AuthService) CreateUser(ctx context.Context, cmd CreateUserCommand) result.Of[string] {
	if summary := validation.Struct(cmd); summary != "" {
		return result.FailureOf[string](result.Validation(opCreateUser, summary))
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		return result.FailureOf[string](result.Exception(opCreateUser, err))
	}
	if exists {
		return result.FailureOf[string](result.Validation(opCreateUser, "user already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return result.FailureOf[string](result.Exception(opCreateUser, err))
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        cmd.Email,
		PasswordHash: string(hashed),
		FullName:     cmd.FullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return result.FailureOf[string](result.Exception(opCreateUser, err))
	}

	return result.Ok(user.ID)
}

// LoginUser verifies credentials and returns a signed token.
func (s *AuthService) LoginUser(ctx context.Context, cmd LoginUserCommand) result.Of[string] {
	if summary := validation.Struct(cmd); summary != "" {
		return result.FailureOf[string](result.Validation(opLoginUser, summary))
	}

	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.FailureOf[string](result.NotFound(opLoginUser, "user not found"))
		}
		return result.FailureOf[string](result.Exception(opLoginUser, err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		return result.FailureOf[string](result.NotFound(opLoginUser, "user not found"))
	}

	token, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return result.FailureOf[string](result.Exception(opLoginUser, err))
	}

	return result.Ok(token)
}

// GetCurrentUser returns the authenticated user's profile. A valid token for
// a since-deleted user reports NotFound.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) result.Of[dto.UserDTO] {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.FailureOf[dto.UserDTO](result.NotFound(opGetCurrentUser, "user not found"))
		}
		return result.FailureOf[dto.UserDTO](result.Exception(opGetCurrentUser, err))
	}

	return result.Ok(dto.ToUserDTO(*user))
}
