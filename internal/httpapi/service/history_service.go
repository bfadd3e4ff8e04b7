package service

import (
	"context"
	"log/slog"

	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"
	"shelfmate/internal/httpapi/repository"
)

// Action type categories written by the other services.
const (
	ActionLibrary  = "LIBRARY"
	ActionWishlist = "WISHLIST"
	ActionReading  = "READING"
	ActionLoan     = "LOAN"
)

// recentHistoryLimit caps the activity read. The endpoint serves a
// recent-activity widget, not a full audit trail.
const recentHistoryLimit = 3

type HistoryService interface {
	// LogAction appends an activity entry. It never fails the calling
	// mutation; persistence errors are logged and swallowed.
	LogAction(ctx context.Context, userID, actionType, description string)
	GetRecent(ctx context.Context, userID string) ([]models.UserHistory, error)
}

type historyService struct {
	repo     repository.HistoryRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewHistoryService(repo repository.HistoryRepository, userRepo repository.UserRepository, logger *slog.Logger) HistoryService {
	return &historyService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *historyService) LogAction(ctx context.Context, userID, actionType, description string) {
	entry := &models.UserHistory{
		UserID:      userID,
		ActionType:  actionType,
		Description: description,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to append history entry",
			"user_id", userID, "action_type", actionType, "error", err)
	}
}

func (s *historyService) GetRecent(ctx context.Context, userID string) ([]models.UserHistory, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFoundf("user %s not found", userID)
	}

	return s.repo.FindRecentByUser(ctx, userID, recentHistoryLimit)
}
