package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"canteen/internal/cache"
	"canteen/internal/errors"
	"canteen/internal/model"
	"canteen/internal/repository"
)

const (
	userCacheTTL      = 5 * time.Minute
	minPasswordLength = 6
)

// UserService exposes profile operations for logged-in users.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User, address, phone, email string) (*model.User, error)
	ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error
	AddPaymentMethod(ctx context.Context, user *model.User, cardNumber, expiry string) (last4 string, err error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser returns the user, from cache when possible. Cached copies carry no
// password hash.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

// UpdateProfile stores address and phone, and the email when it changed and
// no other user holds it.
func (s *userService) UpdateProfile(ctx context.Context, user *model.User, address, phone, email string) (*model.User, error) {
	if user == nil {
		return nil, errors.ErrUnauthenticated
	}
	current, err := s.load(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	current.Address = strings.TrimSpace(address)
	current.Phone = strings.TrimSpace(phone)

	email = strings.TrimSpace(email)
	if email != "" && email != current.Email {
		other, err := s.repo.FindByEmail(ctx, email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("find user by email: %w", err)
		}
		if other != nil && other.ID != current.ID {
			return nil, errors.ErrEmailTaken
		}
		current.Email = email
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if err := s.cache.Delete(ctx, s.cacheKey(current.ID)); err != nil {
		log.Printf("user cache invalidation failed: %v", err)
	}
	return current, nil
}

// ChangePassword replaces the password after checking the old one.
func (s *userService) ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error {
	if user == nil {
		return errors.ErrUnauthenticated
	}
	current, err := s.load(ctx, user.ID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(oldPassword)); err != nil {
		return errors.ErrInvalidCredentials
	}
	if len(newPassword) < minPasswordLength {
		return errors.ErrPasswordTooShort
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	current.PasswordHash = hash
	if err := s.repo.Update(ctx, current); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// AddPaymentMethod acknowledges a card without storing any of it; only the
// last four digits are echoed back.
func (s *userService) AddPaymentMethod(_ context.Context, user *model.User, cardNumber, expiry string) (string, error) {
	if user == nil {
		return "", errors.ErrUnauthenticated
	}
	digits := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(cardNumber))
	if digits == "" || strings.TrimSpace(expiry) == "" {
		return "", errors.ErrPaymentMethodIncomplete
	}
	if len(digits) < 4 {
		return digits, nil
	}
	return digits[len(digits)-4:], nil
}

// load reads the full record, bypassing the cache so the password hash is present.
func (s *userService) load(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
