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

// defaultLoanTerm is applied when the caller supplies no due date.
const defaultLoanTerm = 14 * 24 * time.Hour

// CreateLoanInput carries the caller-supplied loan fields. The shelf entry
// is resolved through (userID, bookID), not passed directly.
type CreateLoanInput struct {
	BookID        int64
	BorrowerName  string
	BorrowerEmail *string
	DueDate       *time.Time
	Notes         *string
}

type LoanService interface {
	Create(ctx context.Context, userID string, input CreateLoanInput) (*models.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]models.Loan, error)
	Return(ctx context.Context, userID string, loanID int64) (*models.Loan, error)
}

type loanService struct {
	loanRepo  repository.LoanRepository
	shelfRepo repository.ShelfRepository
	history   HistoryService
	stats     *cache.StatsCache
	logger    *slog.Logger
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	shelfRepo repository.ShelfRepository,
	history HistoryService,
	stats *cache.StatsCache,
	logger *slog.Logger,
) LoanService {
	return &loanService{
		loanRepo:  loanRepo,
		shelfRepo: shelfRepo,
		history:   history,
		stats:     stats,
		logger:    logger,
	}
}

func (s *loanService) Create(ctx context.Context, userID string, input CreateLoanInput) (*models.Loan, error) {
	entry, err := s.shelfRepo.FindByUserAndBook(ctx, userID, input.BookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("book %d not found on this user's shelf", input.BookID)
		}
		return nil, err
	}

	// only finished books or unread shelf copies can leave the house
	if entry.Status != models.StatusRead && entry.Status != models.StatusToRead {
		return nil, apperr.InvalidArgumentf("only books marked READ or TO_READ can be lent")
	}

	active, err := s.loanRepo.ExistsActiveByUserBook(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperr.Conflictf("this book is already lent out and not yet returned")
	}

	now := time.Now()
	dueDate := now.Add(defaultLoanTerm)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	loan := &models.Loan{
		UserBookID:    entry.ID,
		BorrowerName:  input.BorrowerName,
		BorrowerEmail: input.BorrowerEmail,
		LoanDate:      now,
		DueDate:       dueDate,
		Status:        models.LoanActive,
		Notes:         input.Notes,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	loan.UserBook = entry

	bookTitle := fmt.Sprintf("book %d", input.BookID)
	if entry.Book != nil {
		bookTitle = fmt.Sprintf("'%s'", entry.Book.Title)
	}
	s.history.LogAction(ctx, userID, ActionLoan,
		fmt.Sprintf("Lent %s to %s.", bookTitle, input.BorrowerName))

	s.invalidateStats(ctx, userID)
	return loan, nil
}

func (s *loanService) ListByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	return s.loanRepo.ListByUser(ctx, userID)
}

func (s *loanService) Return(ctx context.Context, userID string, loanID int64) (*models.Loan, error) {
	// resolving through the caller's shelf entries keeps other users'
	// loan ids unreachable
	loan, err := s.loanRepo.FindByIDForUser(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("loan %d not found for this user", loanID)
		}
		return nil, err
	}

	if loan.Status == models.LoanReturned {
		return nil, apperr.InvalidArgumentf("loan %d is already returned", loanID)
	}

	now := time.Now()
	loan.Status = models.LoanReturned
	loan.ReturnDate = &now

	if err := s.loanRepo.Save(ctx, loan); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, userID)
	return loan, nil
}

func (s *loanService) invalidateStats(ctx context.Context, userID string) {
	if err := s.stats.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("stats cache invalidation failed", "user_id", userID, "error", err)
	}
}
