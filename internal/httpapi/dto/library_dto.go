package dto

import (
	"time"

	"shelfmate/internal/cache"
	"shelfmate/internal/httpapi/models"
)

// AddToShelfRequest: payload to add a catalog book to the user's shelf
type AddToShelfRequest struct {
	BookID int64  `json:"book_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// UpdateStatusRequest: payload for a shelf entry status transition
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateProgressRequest: payload for a reading progress update.
// The min=0 binding rejects negative pages at the boundary.
type UpdateProgressRequest struct {
	CurrentPage *int `json:"current_page" binding:"required,min=0"`
}

// UpdateRatingRequest: payload for rating a shelf entry
type UpdateRatingRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// UpdateReviewRequest: payload for reviewing a shelf entry
type UpdateReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

// ShelfEntryResponse: a shelf entry flattened with catalog fields for
// client convenience
type ShelfEntryResponse struct {
	ID                int64      `json:"id"`
	Status            string     `json:"status"`
	CurrentPage       int        `json:"current_page"`
	Rating            *int       `json:"rating,omitempty"`
	Review            *string    `json:"review,omitempty"`
	AddedAt           time.Time  `json:"added_at"`
	StartedReadingAt  *time.Time `json:"started_reading_at,omitempty"`
	FinishedReadingAt *time.Time `json:"finished_reading_at,omitempty"`

	// Denormalized book fields
	BookID        int64   `json:"book_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	TotalPages    *int    `json:"total_pages,omitempty"`
}

// ShelfListResponse: the user's full shelf
type ShelfListResponse struct {
	Items []ShelfEntryResponse `json:"items"`
	Total int                  `json:"total"`
}

// LibraryStatsResponse: per-user library summary counters
type LibraryStatsResponse struct {
	TotalOwned   int64 `json:"total_owned"`
	BooksRead    int64 `json:"books_read"`
	BooksReading int64 `json:"books_reading"`
	Wishlist     int64 `json:"wishlist"`
	ActiveLoans  int64 `json:"active_loans"`
}

// FromModelToShelfEntryResponse converts a UserBook model to its DTO,
// denormalizing the preloaded book when present.
func FromModelToShelfEntryResponse(entry *models.UserBook) *ShelfEntryResponse {
	resp := &ShelfEntryResponse{
		ID:                entry.ID,
		Status:            string(entry.Status),
		CurrentPage:       entry.CurrentPage,
		Rating:            entry.Rating,
		Review:            entry.Review,
		AddedAt:           entry.AddedAt,
		StartedReadingAt:  entry.StartedReadingAt,
		FinishedReadingAt: entry.FinishedReadingAt,
		BookID:            entry.BookID,
	}
	if entry.Book != nil {
		resp.Title = entry.Book.Title
		resp.Author = entry.Book.Author
		resp.CoverImageURL = entry.Book.CoverImageURL
		resp.TotalPages = entry.Book.Pages
	}
	return resp
}

// FromStatsToResponse converts cached stats to the API shape.
func FromStatsToResponse(stats *cache.Stats) *LibraryStatsResponse {
	return &LibraryStatsResponse{
		TotalOwned:   stats.TotalOwned,
		BooksRead:    stats.BooksRead,
		BooksReading: stats.BooksReading,
		Wishlist:     stats.Wishlist,
		ActiveLoans:  stats.ActiveLoans,
	}
}
