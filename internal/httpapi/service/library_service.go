package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shelfmate/internal/cache"
	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"
	"shelfmate/internal/httpapi/repository"

	"gorm.io/gorm"
)

// LibraryService owns the shelf state machine: which books a user tracks,
// their reading status, progress, rating and review.
type LibraryService interface {
	AddToShelf(ctx context.Context, userID string, bookID int64, status models.ReadingStatus) (*models.UserBook, error)
	RemoveFromShelf(ctx context.Context, userID string, entryID int64) error
	ListShelf(ctx context.Context, userID string) ([]models.UserBook, error)
	UpdateStatus(ctx context.Context, userID string, entryID int64, status models.ReadingStatus) (*models.UserBook, error)
	UpdateProgress(ctx context.Context, userID string, entryID int64, currentPage int) (*models.UserBook, error)
	UpdateRating(ctx context.Context, userID string, entryID int64, rating int) (*models.UserBook, error)
	UpdateReview(ctx context.Context, userID string, entryID int64, review string) (*models.UserBook, error)
	GetStats(ctx context.Context, userID string) (*cache.Stats, error)
}

type libraryService struct {
	shelfRepo repository.ShelfRepository
	userRepo  repository.UserRepository
	bookRepo  repository.BookRepository
	loanRepo  repository.LoanRepository
	history   HistoryService
	stats     *cache.StatsCache
	logger    *slog.Logger
}

func NewLibraryService(
	shelfRepo repository.ShelfRepository,
	userRepo repository.UserRepository,
	bookRepo repository.BookRepository,
	loanRepo repository.LoanRepository,
	history HistoryService,
	stats *cache.StatsCache,
	logger *slog.Logger,
) LibraryService {
	return &libraryService{
		shelfRepo: shelfRepo,
		userRepo:  userRepo,
		bookRepo:  bookRepo,
		loanRepo:  loanRepo,
		history:   history,
		stats:     stats,
		logger:    logger,
	}
}

func (s *libraryService) AddToShelf(ctx context.Context, userID string, bookID int64, status models.ReadingStatus) (*models.UserBook, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s not found", userID)
		}
		return nil, err
	}

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("book %d not found", bookID)
		}
		return nil, err
	}

	exists, err := s.shelfRepo.Exists(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflictf("book already on this user's shelf")
	}

	entry := &models.UserBook{
		UserID:  user.ID,
		BookID:  book.ID,
		Status:  status,
		AddedAt: time.Now(),
	}
	if err := s.shelfRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	entry.Book = book

	actionType := ActionLibrary
	description := fmt.Sprintf("Added '%s' to the shelf.", book.Title)
	switch status {
	case models.StatusWantToRead:
		actionType = ActionWishlist
		description = fmt.Sprintf("Added '%s' to the wishlist.", book.Title)
	case models.StatusReading:
		actionType = ActionReading
		description = fmt.Sprintf("Started reading '%s'.", book.Title)
	}
	s.history.LogAction(ctx, user.ID, actionType, description)

	s.invalidateStats(ctx, userID)
	return entry, nil
}

func (s *libraryService) RemoveFromShelf(ctx context.Context, userID string, entryID int64) error {
	if err := s.shelfRepo.Delete(ctx, entryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("shelf entry %d not found for this user", entryID)
		}
		return err
	}
	s.invalidateStats(ctx, userID)
	return nil
}

func (s *libraryService) ListShelf(ctx context.Context, userID string) ([]models.UserBook, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFoundf("user %s not found", userID)
	}

	return s.shelfRepo.ListByUser(ctx, userID)
}

func (s *libraryService) UpdateStatus(ctx context.Context, userID string, entryID int64, status models.ReadingStatus) (*models.UserBook, error) {
	entry, err := s.findEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Status = status

	now := time.Now()
	if status == models.StatusReading && entry.StartedReadingAt == nil {
		entry.StartedReadingAt = &now
	} else if status == models.StatusRead {
		// re-entering READ re-stamps the finish time on purpose
		entry.FinishedReadingAt = &now
	}

	if err := s.shelfRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, userID)
	return entry, nil
}

func (s *libraryService) UpdateProgress(ctx context.Context, userID string, entryID int64, currentPage int) (*models.UserBook, error) {
	if currentPage < 0 {
		return nil, apperr.InvalidArgumentf("current page must not be negative")
	}

	entry, err := s.findEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.CurrentPage = currentPage

	// reaching the last known page flips the entry to READ; below that,
	// progress never changes status
	if entry.Book != nil && entry.Book.Pages != nil && currentPage >= *entry.Book.Pages {
		now := time.Now()
		entry.Status = models.StatusRead
		entry.FinishedReadingAt = &now
	}

	if err := s.shelfRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, userID)
	return entry, nil
}

func (s *libraryService) UpdateRating(ctx context.Context, userID string, entryID int64, rating int) (*models.UserBook, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.InvalidArgumentf("rating must be between 1 and 5")
	}

	entry, err := s.findEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Rating = &rating
	if err := s.shelfRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *libraryService) UpdateReview(ctx context.Context, userID string, entryID int64, review string) (*models.UserBook, error) {
	entry, err := s.findEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Review = &review
	if err := s.shelfRepo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *libraryService) GetStats(ctx context.Context, userID string) (*cache.Stats, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFoundf("user %s not found", userID)
	}

	if cached, err := s.stats.Get(ctx, userID); err != nil {
		s.logger.Warn("stats cache read failed", "user_id", userID, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	read, err := s.shelfRepo.CountByUserAndStatus(ctx, userID, models.StatusRead)
	if err != nil {
		return nil, err
	}
	reading, err := s.shelfRepo.CountByUserAndStatus(ctx, userID, models.StatusReading)
	if err != nil {
		return nil, err
	}
	toRead, err := s.shelfRepo.CountByUserAndStatus(ctx, userID, models.StatusToRead)
	if err != nil {
		return nil, err
	}
	wishlist, err := s.shelfRepo.CountByUserAndStatus(ctx, userID, models.StatusWantToRead)
	if err != nil {
		return nil, err
	}
	activeLoans, err := s.loanRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &cache.Stats{
		// wishlist books are not owned yet, so they stay out of the total
		TotalOwned:   read + reading + toRead,
		BooksRead:    read,
		BooksReading: reading,
		Wishlist:     wishlist,
		ActiveLoans:  activeLoans,
	}

	if err := s.stats.Set(ctx, userID, stats); err != nil {
		s.logger.Warn("stats cache write failed", "user_id", userID, "error", err)
	}
	return stats, nil
}

func (s *libraryService) findEntry(ctx context.Context, userID string, entryID int64) (*models.UserBook, error) {
	entry, err := s.shelfRepo.FindByIDAndUser(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("shelf entry %d not found for this user", entryID)
		}
		return nil, err
	}
	return entry, nil
}

func (s *libraryService) invalidateStats(ctx context.Context, userID string) {
	if err := s.stats.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("stats cache invalidation failed", "user_id", userID, "error", err)
	}
}
