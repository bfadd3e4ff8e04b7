package service

import (
	"context"
	"testing"

	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUpdateUser_KeepsPasswordWhenNotSupplied(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	storedHash := "$2a$10$storedhashstoredhashstoredhashstoredhashstoredhashsto"
	user := &models.User{ID: "user-id", Email: "ana@example.com", CPF: "12345678901", Password: storedHash}
	mockRepo.On("FindByID", mock.Anything, "user-id").Return(user, nil)
	mockRepo.On("Save", mock.Anything, user).Return(nil)

	name := "Ana Clara"
	updated, err := svc.Update(context.Background(), "user-id", UpdateUserInput{FirstName: &name})

	assert.NoError(t, err)
	assert.Equal(t, "Ana Clara", updated.FirstName)
	assert.Equal(t, storedHash, updated.Password)
}

func TestUpdateUser_RehashesNewPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	user := &models.User{ID: "user-id", Email: "ana@example.com", CPF: "12345678901", Password: "old-hash"}
	mockRepo.On("FindByID", mock.Anything, "user-id").Return(user, nil)
	mockRepo.On("Save", mock.Anything, user).Return(nil)

	newPassword := "newpassword456"
	updated, err := svc.Update(context.Background(), "user-id", UpdateUserInput{Password: &newPassword})

	assert.NoError(t, err)
	assert.NotEqual(t, "old-hash", updated.Password)
	assert.NotEqual(t, newPassword, updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPassword)))
}

func TestUpdateUser_EmailTakenByAnotherUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	user := &models.User{ID: "user-id", Email: "ana@example.com", CPF: "12345678901"}
	other := &models.User{ID: "other-id", Email: "taken@example.com"}
	mockRepo.On("FindByID", mock.Anything, "user-id").Return(user, nil)
	mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(other, nil)

	email := "taken@example.com"
	updated, err := svc.Update(context.Background(), "user-id", UpdateUserInput{Email: &email})

	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	name := "Ana"
	updated, err := svc.Update(context.Background(), "missing", UpdateUserInput{FirstName: &name})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Nil(t, updated)
}

func TestDeleteUser_CascadesThroughRepository(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("ExistsByID", mock.Anything, "user-id").Return(true, nil)
	mockRepo.On("DeleteWithData", mock.Anything, "user-id").Return(nil)

	err := svc.Delete(context.Background(), "user-id")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc := NewUserService(mockRepo)

	mockRepo.On("ExistsByID", mock.Anything, "missing").Return(false, nil)

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, apperr.ErrNotFound)
	mockRepo.AssertNotCalled(t, "DeleteWithData", mock.Anything, mock.Anything)
}
