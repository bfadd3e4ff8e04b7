package service

import (
	"context"
	"testing"
	"time"

	"shelfmate/internal/config"
	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret-that-is-long-enough!",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByCPF", mock.Anything, "12345678901").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := authService.Register(context.Background(), RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Password:  "password123",
		CPF:       "12345678901",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	// the stored value is a bcrypt hash, never the raw password
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockUserRepo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	existing := &models.User{ID: "other", Email: "ana@example.com"}
	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(existing, nil)

	user, err := authService.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "password123",
		CPF:      "12345678901",
	})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Nil(t, user)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_CPFExists(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByCPF", mock.Anything, "12345678901").Return(&models.User{ID: "other"}, nil)

	user, err := authService.Register(context.Background(), RegisterInput{
		Email:    "ana@example.com",
		Password: "password123",
		CPF:      "12345678901",
	})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Nil(t, user)
}

func TestLogin_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-id",
		Email:    "ana@example.com",
		Password: string(hashedPassword),
	}

	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	mockRefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, refreshToken, returnedUser, err := authService.Login(context.Background(), "ana@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, user.ID, returnedUser.ID)
	mockUserRepo.AssertExpectations(t)
	mockRefreshTokenRepo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-id", Email: "ana@example.com", Password: string(hashedPassword)}
	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	accessToken, refreshToken, returnedUser, err := authService.Login(context.Background(), "ana@example.com", "wrongpassword")

	assert.ErrorIs(t, err, apperr.ErrAuthFailed)
	assert.Empty(t, accessToken)
	assert.Empty(t, refreshToken)
	assert.Nil(t, returnedUser)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockUserRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, unknownEmailErr := authService.Login(context.Background(), "nobody@example.com", "password123")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-id", Email: "ana@example.com", Password: string(hashedPassword)}
	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	_, _, _, wrongPasswordErr := authService.Login(context.Background(), "ana@example.com", "wrongpassword")

	// both failures collapse into the same error so callers cannot probe
	// which emails have accounts
	assert.ErrorIs(t, unknownEmailErr, apperr.ErrAuthFailed)
	assert.ErrorIs(t, wrongPasswordErr, apperr.ErrAuthFailed)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestRefreshAccessToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-token").Return(stored, nil)
	mockUserRepo.On("FindByID", mock.Anything, "user-id").Return(&models.User{ID: "user-id", Email: "ana@example.com"}, nil)

	accessToken, err := authService.RefreshAccessToken(context.Background(), "refresh-token")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := authService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-id", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "token-id",
		UserID:    "user-id",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "refresh-token").Return(stored, nil)
	mockRefreshTokenRepo.On("Delete", mock.Anything, "token-id").Return(nil)

	accessToken, err := authService.RefreshAccessToken(context.Background(), "refresh-token")

	assert.ErrorIs(t, err, apperr.ErrAuthFailed)
	assert.Empty(t, accessToken)
	mockRefreshTokenRepo.AssertCalled(t, "Delete", mock.Anything, "token-id")
}

func TestRefreshAccessToken_Unknown(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	mockRefreshTokenRepo.On("FindByToken", mock.Anything, "bogus").Return(nil, gorm.ErrRecordNotFound)

	accessToken, err := authService.RefreshAccessToken(context.Background(), "bogus")

	assert.ErrorIs(t, err, apperr.ErrAuthFailed)
	assert.Empty(t, accessToken)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockRefreshTokenRepo := new(MockRefreshTokenRepository)
	authService := NewAuthService(mockUserRepo, mockRefreshTokenRepo, testAuthConfig())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-id", Email: "ana@example.com", Password: string(hashedPassword)}
	mockUserRepo.On("FindByEmail", mock.Anything, "ana@example.com").Return(user, nil)
	mockRefreshTokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	accessToken, _, _, err := authService.Login(context.Background(), "ana@example.com", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(accessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-id", claims.UserID)

	_, err = authService.ValidateToken(accessToken + "tampered")
	assert.ErrorIs(t, err, apperr.ErrAuthFailed)
}
