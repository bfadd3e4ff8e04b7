package dto

import (
	"time"

	"shelfmate/internal/httpapi/models"
)

// BookRequest: payload to register a catalog book (create or find-or-create)
type BookRequest struct {
	Title           string   `json:"title" binding:"required"`
	Author          string   `json:"author" binding:"required"`
	ISBN            *string  `json:"isbn,omitempty"`
	GoogleBooksID   *string  `json:"google_books_id,omitempty"`
	Synopsis        *string  `json:"synopsis,omitempty"`
	CoverImageURL   *string  `json:"cover_image_url,omitempty" binding:"omitempty,url"`
	Pages           *int     `json:"pages,omitempty" binding:"omitempty,min=1"`
	Publisher       *string  `json:"publisher,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	PurchaseURL     *string  `json:"purchase_url,omitempty" binding:"omitempty,url"`
}

// UpdateBookRequest: partial catalog metadata update; identity fields
// (isbn, google_books_id) are not accepted here
type UpdateBookRequest struct {
	Title           *string  `json:"title,omitempty"`
	Author          *string  `json:"author,omitempty"`
	Synopsis        *string  `json:"synopsis,omitempty"`
	CoverImageURL   *string  `json:"cover_image_url,omitempty" binding:"omitempty,url"`
	Pages           *int     `json:"pages,omitempty" binding:"omitempty,min=1"`
	Publisher       *string  `json:"publisher,omitempty"`
	PublicationYear *int     `json:"publication_year,omitempty"`
	Price           *float64 `json:"price,omitempty" binding:"omitempty,min=0"`
	PurchaseURL     *string  `json:"purchase_url,omitempty" binding:"omitempty,url"`
}

// BookResponse: catalog view of a book
type BookResponse struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Author          string     `json:"author"`
	ISBN            *string    `json:"isbn,omitempty"`
	GoogleBooksID   *string    `json:"google_books_id,omitempty"`
	Synopsis        *string    `json:"synopsis,omitempty"`
	CoverImageURL   *string    `json:"cover_image_url,omitempty"`
	Pages           *int       `json:"pages,omitempty"`
	Publisher       *string    `json:"publisher,omitempty"`
	PublicationYear *int       `json:"publication_year,omitempty"`
	Price           *float64   `json:"price,omitempty"`
	PurchaseURL     *string    `json:"purchase_url,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// FromModelToBookResponse converts a Book model to BookResponse DTO
func FromModelToBookResponse(book *models.Book) *BookResponse {
	return &BookResponse{
		ID:              book.ID,
		Title:           book.Title,
		Author:          book.Author,
		ISBN:            book.ISBN,
		GoogleBooksID:   book.GoogleBooksID,
		Synopsis:        book.Synopsis,
		CoverImageURL:   book.CoverImageURL,
		Pages:           book.Pages,
		Publisher:       book.Publisher,
		PublicationYear: book.PublicationYear,
		Price:           book.Price,
		PurchaseURL:     book.PurchaseURL,
		CreatedAt:       book.CreatedAt,
	}
}
