package repository

import (
	"context"
	"errors"
	"fmt"

	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*models.Book, error)
	FindByGoogleBooksID(ctx context.Context, googleID string) (*models.Book, error)
	FindAll(ctx context.Context) ([]models.Book, error)
	Save(ctx context.Context, book *models.Book) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("book with this ISBN or Google Books ID already exists")
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByGoogleBooksID(ctx context.Context, googleID string) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Where("google_books_id = ?", googleID).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindAll(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (r *bookRepository) Save(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflictf("book with this ISBN or Google Books ID already exists")
		}
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}
