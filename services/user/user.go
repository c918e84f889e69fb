package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var (
	errFieldsRequired     = utils.ValidationError{Msg: "name, email and password are required"}
	errPasswordTooShort   = utils.ValidationError{Msg: "password must be at least 6 characters"}
	errEmailTaken         = utils.StateConflictError{Msg: "email already registered"}
	errInvalidCredentials = utils.AuthorizationError{Msg: "invalid email or password"}
)

// RegisterInput carries a new account request.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Pincode  string `json:"pincode"`
}

// AuthResult is the successful authentication payload.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Service covers account registration and authentication. Password reset and
// related recovery flows live outside this system.
type Service interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id models.UserID) (*models.User, error)
}

// DefaultUserService implements Service.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account with the user role.
func (s *DefaultUserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errFieldsRequired
	}
	if len(in.Password) < 6 {
		return nil, errPasswordTooShort
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           models.UserID(uuid.New().String()),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		Pincode:      in.Pincode,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(u)
}

// Authenticate verifies credentials and issues a JWT carrying the account's
// current role.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	if u.IsBlocked {
		return nil, utils.AuthorizationError{Msg: "account is blocked"}
	}

	return s.issueToken(u)
}

// GetByID returns an account by id.
func (s *DefaultUserService) GetByID(ctx context.Context, id models.UserID) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(string(u.ID), u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, User: u}, nil
}
