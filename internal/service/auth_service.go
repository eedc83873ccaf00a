package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"canteen/internal/auth"
	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/repository"
)

const bcryptCost = 10

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	users      UserService
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, users UserService, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a user with a hashed password and logs them in.
func (s *authService) Register(ctx context.Context, username, email, password string) (string, *model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}
	if exists {
		return "", nil, errors.ErrUserAlreadyExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	_, token, err := s.jwtService.GenerateAuthToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate auth token: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials and returns a signed auth token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, errors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	_, token, err := s.jwtService.GenerateAuthToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate auth token: %w", err)
	}
	return token, user, nil
}

// Logout revokes the token for the rest of its lifetime. An already invalid
// token is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.tokenStore.Revoke(ctx, claims.ID, s.jwtService.RemainingTTL(claims))
}

// Authenticate resolves verified claims to the current user.
func (s *authService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	if claims == nil {
		return nil, errors.ErrUnauthenticated
	}
	revoked, err := s.tokenStore.IsRevoked(ctx, claims.ID)
	if err != nil || revoked {
		return nil, errors.ErrUnauthenticated
	}
	user, err := s.users.GetUser(ctx, claims.UserID)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, errors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
