package repository

import (
	"context"
	"fmt"

	"shelfmate/internal/httpapi/models"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	Create(ctx context.Context, entry *models.UserHistory) error
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]models.UserHistory, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, entry *models.UserHistory) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (r *historyRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]models.UserHistory, error) {
	var entries []models.UserHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}
	return entries, nil
}
