package repository

import (
	"context"
	"fmt"

	"shelfmate/internal/httpapi/models"

	"gorm.io/gorm"
)

type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	// FindByIDForUser resolves a loan only when it hangs off one of the
	// given user's shelf entries.
	FindByIDForUser(ctx context.Context, loanID int64, userID string) (*models.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]models.Loan, error)
	Save(ctx context.Context, loan *models.Loan) error
	ExistsActiveByUserBook(ctx context.Context, userBookID int64) (bool, error)
	CountActiveByUser(ctx context.Context, userID string) (int64, error)
}

type loanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	if err := r.db.WithContext(ctx).Create(loan).Error; err != nil {
		return fmt.Errorf("create loan: %w", err)
	}
	return nil
}

func (r *loanRepository) FindByIDForUser(ctx context.Context, loanID int64, userID string) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.WithContext(ctx).
		Preload("UserBook").
		Preload("UserBook.Book").
		Joins("JOIN user_books ON user_books.id = loans.user_book_id").
		Where("loans.id = ? AND user_books.user_id = ?", loanID, userID).
		First(&loan).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.WithContext(ctx).
		Preload("UserBook").
		Preload("UserBook.Book").
		Joins("JOIN user_books ON user_books.id = loans.user_book_id").
		Where("user_books.user_id = ?", userID).
		Order("loans.loan_date DESC").
		Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) Save(ctx context.Context, loan *models.Loan) error {
	if err := r.db.WithContext(ctx).Save(loan).Error; err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	return nil
}

func (r *loanRepository) ExistsActiveByUserBook(ctx context.Context, userBookID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("user_book_id = ? AND status = ?", userBookID, models.LoanActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *loanRepository) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Joins("JOIN user_books ON user_books.id = loans.user_book_id").
		Where("user_books.user_id = ? AND loans.status = ?", userID, models.LoanActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
