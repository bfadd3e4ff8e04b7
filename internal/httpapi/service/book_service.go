package service

import (
	"context"
	"errors"

	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"
	"shelfmate/internal/httpapi/repository"

	"gorm.io/gorm"
)

// BookInput carries caller-supplied catalog fields. Identity fields
// (ISBN, Google Books ID) are only honored at creation time.
type BookInput struct {
	Title           string
	Author          string
	ISBN            *string
	GoogleBooksID   *string
	Synopsis        *string
	CoverImageURL   *string
	Pages           *int
	Publisher       *string
	PublicationYear *int
	Price           *float64
	PurchaseURL     *string
}

type BookService interface {
	// CreateInCatalog registers a new catalog book and rejects duplicates.
	CreateInCatalog(ctx context.Context, input BookInput) (*models.Book, error)
	// FindOrCreate returns an existing book matched by Google Books ID,
	// then ISBN, creating one only when neither matches.
	FindOrCreate(ctx context.Context, input BookInput) (*models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetByGoogleBooksID(ctx context.Context, googleID string) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
	// Update merges the supplied metadata fields; catalog identity is immutable.
	Update(ctx context.Context, id int64, input BookInput) (*models.Book, error)
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) CreateInCatalog(ctx context.Context, input BookInput) (*models.Book, error) {
	if err := s.checkUniqueness(ctx, input.ISBN, input.GoogleBooksID); err != nil {
		return nil, err
	}

	book := newBookFromInput(input)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) FindOrCreate(ctx context.Context, input BookInput) (*models.Book, error) {
	if input.GoogleBooksID != nil && *input.GoogleBooksID != "" {
		book, err := s.repo.FindByGoogleBooksID(ctx, *input.GoogleBooksID)
		if err == nil {
			return book, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if input.ISBN != nil && *input.ISBN != "" {
		book, err := s.repo.FindByISBN(ctx, *input.ISBN)
		if err == nil {
			return book, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	book := newBookFromInput(input)
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("book %d not found in catalog", id)
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) GetByGoogleBooksID(ctx context.Context, googleID string) (*models.Book, error) {
	book, err := s.repo.FindByGoogleBooksID(ctx, googleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("book with Google Books ID %s not found", googleID)
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.repo.FindAll(ctx)
}

func (s *bookService) Update(ctx context.Context, id int64, input BookInput) (*models.Book, error) {
	book, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("book %d not found in catalog", id)
		}
		return nil, err
	}

	if input.Title != "" {
		book.Title = input.Title
	}
	if input.Author != "" {
		book.Author = input.Author
	}
	if input.Synopsis != nil {
		book.Synopsis = input.Synopsis
	}
	if input.CoverImageURL != nil && *input.CoverImageURL != "" {
		book.CoverImageURL = input.CoverImageURL
	}
	if input.Pages != nil {
		book.Pages = input.Pages
	}
	if input.Publisher != nil {
		book.Publisher = input.Publisher
	}
	if input.PublicationYear != nil {
		book.PublicationYear = input.PublicationYear
	}
	if input.Price != nil {
		book.Price = input.Price
	}
	if input.PurchaseURL != nil {
		book.PurchaseURL = input.PurchaseURL
	}

	if err := s.repo.Save(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) checkUniqueness(ctx context.Context, isbn, googleID *string) error {
	if isbn != nil && *isbn != "" {
		if _, err := s.repo.FindByISBN(ctx, *isbn); err == nil {
			return apperr.Conflictf("book already cataloged with ISBN %s", *isbn)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	if googleID != nil && *googleID != "" {
		if _, err := s.repo.FindByGoogleBooksID(ctx, *googleID); err == nil {
			return apperr.Conflictf("book already cataloged with Google Books ID %s", *googleID)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return nil
}

func newBookFromInput(input BookInput) *models.Book {
	return &models.Book{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		GoogleBooksID:   input.GoogleBooksID,
		Synopsis:        input.Synopsis,
		CoverImageURL:   input.CoverImageURL,
		Pages:           input.Pages,
		Publisher:       input.Publisher,
		PublicationYear: input.PublicationYear,
		Price:           input.Price,
		PurchaseURL:     input.PurchaseURL,
	}
}
