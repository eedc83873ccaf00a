package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"canteen/internal/auth"
	"canteen/internal/errors"
	"canteen/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		username      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			username: "ivan",
			email:    "ivan@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsernameOrEmail", mock.Anything, "ivan", "ivan@example.com").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 10
				}).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user already exists",
			username: "admin",
			email:    "new@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("ExistsByUsernameOrEmail", mock.Anything, "admin", "new@example.com").Return(true, nil)
			},
			expectedError: errors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			mockTokenStore := new(MockTokenStore)

			service := NewAuthService(mockRepo, NewUserService(mockRepo, nil), jwtService, mockTokenStore)
			token, user, err := service.Register(context.Background(), tt.username, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				assert.False(t, user.IsAdmin)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))

				claims, err := jwtService.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, uint(10), claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("1234"), 10)
	stored := &model.User{ID: 1, Username: "admin", PasswordHash: string(hashedPassword), IsAdmin: true}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "4321",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(stored, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			service := NewAuthService(mockRepo, NewUserService(mockRepo, nil), auth.NewJWTService("test-secret"), new(MockTokenStore))

			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, "admin", user.Username)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	tokenID, token, err := jwtService.GenerateAuthToken(1, "admin")
	require.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("Revoke", mock.Anything, tokenID, mock.AnythingOfType("time.Duration")).Return(nil)
	service := NewAuthService(new(MockUserRepository), nil, jwtService, mockTokenStore)

	require.NoError(t, service.Logout(context.Background(), token))
	assert.NoError(t, service.Logout(context.Background(), "garbage"))
	mockTokenStore.AssertNumberOfCalls(t, "Revoke", 1)
}

func TestAuthService_Authenticate(t *testing.T) {
	claims := &auth.Claims{UserID: 1}
	claims.ID = "token-1"

	t.Run("active token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "admin", IsAdmin: true}, nil)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("IsRevoked", mock.Anything, "token-1").Return(false, nil)
		service := NewAuthService(mockRepo, NewUserService(mockRepo, nil), auth.NewJWTService("test-secret"), mockTokenStore)

		user, err := service.Authenticate(context.Background(), claims)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("revoked token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("IsRevoked", mock.Anything, "token-1").Return(true, nil)
		service := NewAuthService(mockRepo, NewUserService(mockRepo, nil), auth.NewJWTService("test-secret"), mockTokenStore)

		_, err := service.Authenticate(context.Background(), claims)
		assert.ErrorIs(t, err, errors.ErrUnauthenticated)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("deleted user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("IsRevoked", mock.Anything, "token-1").Return(false, nil)
		service := NewAuthService(mockRepo, NewUserService(mockRepo, nil), auth.NewJWTService("test-secret"), mockTokenStore)

		_, err := service.Authenticate(context.Background(), claims)
		assert.ErrorIs(t, err, errors.ErrUnauthenticated)
	})
}
