package repository

import (
	"context"
	"errors"
	"fmt"

	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByCPF(ctx context.Context, cpf string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	// DeleteWithData removes the user and everything hanging off them:
	// loans via their shelf entries, the shelf entries, history rows and
	// refresh tokens, all in one transaction.
	DeleteWithData(ctx context.Context, id string) error
}

// userRepository is the GORM implementation of UserRepository.
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("user with this email or CPF already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	// return nil on error so a zero-value struct is never mistaken for a hit
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByCPF(ctx context.Context, cpf string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("user with this email or CPF already exists")
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) DeleteWithData(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin user delete: %w", tx.Error)
	}

	entryIDs := tx.Model(&models.UserBook{}).Select("id").Where("user_id = ?", id)

	if err := tx.Where("user_book_id IN (?)", entryIDs).Delete(&models.Loan{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete user loans: %w", err)
	}
	if err := tx.Where("user_id = ?", id).Delete(&models.UserBook{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete user shelf: %w", err)
	}
	if err := tx.Where("user_id = ?", id).Delete(&models.UserHistory{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete user history: %w", err)
	}
	if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete user tokens: %w", err)
	}
	if err := tx.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("delete user: %w", err)
	}

	return tx.Commit().Error
}
