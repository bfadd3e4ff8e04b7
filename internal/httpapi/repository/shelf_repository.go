package repository

import (
	"context"
	"errors"
	"fmt"

	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"

	"gorm.io/gorm"
)

// ShelfRepository manages user_books rows. Ownership checks happen here by
// compound (id, user_id) lookups so a caller can never touch someone
// else's shelf entry by guessing an id.
type ShelfRepository interface {
	Create(ctx context.Context, entry *models.UserBook) error
	FindByIDAndUser(ctx context.Context, entryID int64, userID string) (*models.UserBook, error)
	FindByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.UserBook, error)
	ListByUser(ctx context.Context, userID string) ([]models.UserBook, error)
	Save(ctx context.Context, entry *models.UserBook) error
	Delete(ctx context.Context, entryID int64, userID string) error
	Exists(ctx context.Context, userID string, bookID int64) (bool, error)
	CountByUserAndStatus(ctx context.Context, userID string, status models.ReadingStatus) (int64, error)
}

type shelfRepository struct {
	db *gorm.DB
}

func NewShelfRepository(db *gorm.DB) ShelfRepository {
	return &shelfRepository{db: db}
}

func (r *shelfRepository) Create(ctx context.Context, entry *models.UserBook) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		// the (user_id, book_id) unique index is the authority on dedup;
		// the service pre-check only exists for a friendlier message
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("book already on this user's shelf")
		}
		return fmt.Errorf("add shelf entry: %w", err)
	}
	return nil
}

func (r *shelfRepository) FindByIDAndUser(ctx context.Context, entryID int64, userID string) (*models.UserBook, error) {
	var entry models.UserBook
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *shelfRepository) FindByUserAndBook(ctx context.Context, userID string, bookID int64) (*models.UserBook, error) {
	var entry models.UserBook
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *shelfRepository) ListByUser(ctx context.Context, userID string) ([]models.UserBook, error) {
	var entries []models.UserBook
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list shelf: %w", err)
	}
	return entries, nil
}

func (r *shelfRepository) Save(ctx context.Context, entry *models.UserBook) error {
	if err := r.db.WithContext(ctx).Save(entry).Error; err != nil {
		return fmt.Errorf("save shelf entry: %w", err)
	}
	return nil
}

func (r *shelfRepository) Delete(ctx context.Context, entryID int64, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.UserBook{})

	if result.Error != nil {
		return fmt.Errorf("remove shelf entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *shelfRepository) Exists(ctx context.Context, userID string, bookID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserBook{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shelfRepository) CountByUserAndStatus(ctx context.Context, userID string, status models.ReadingStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserBook{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
