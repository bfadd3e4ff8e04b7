package dto

import (
	"time"

	"shelfmate/internal/httpapi/models"
)

// CreateLoanRequest: payload to lend a shelf entry, resolved by book id
type CreateLoanRequest struct {
	BookID        int64      `json:"book_id" binding:"required"`
	BorrowerName  string     `json:"borrower_name" binding:"required"`
	BorrowerEmail *string    `json:"borrower_email,omitempty" binding:"omitempty,email"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// LoanResponse: a loan with denormalized book fields. Overdue is derived
// at read time; it is never stored.
type LoanResponse struct {
	ID            int64      `json:"id"`
	BorrowerName  string     `json:"borrower_name"`
	BorrowerEmail *string    `json:"borrower_email,omitempty"`
	LoanDate      time.Time  `json:"loan_date"`
	DueDate       time.Time  `json:"due_date"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	Status        string     `json:"status"`
	Overdue       bool       `json:"overdue"`
	Notes         *string    `json:"notes,omitempty"`

	// Denormalized book fields
	BookID       int64   `json:"book_id,omitempty"`
	BookTitle    string  `json:"book_title,omitempty"`
	BookAuthor   string  `json:"book_author,omitempty"`
	BookCoverURL *string `json:"book_cover_url,omitempty"`
}

// LoanListResponse: all of a user's loans, newest first
type LoanListResponse struct {
	Items []LoanResponse `json:"items"`
	Total int            `json:"total"`
}

// FromModelToLoanResponse converts a Loan model to LoanResponse DTO
func FromModelToLoanResponse(loan *models.Loan, now time.Time) *LoanResponse {
	resp := &LoanResponse{
		ID:            loan.ID,
		BorrowerName:  loan.BorrowerName,
		BorrowerEmail: loan.BorrowerEmail,
		LoanDate:      loan.LoanDate,
		DueDate:       loan.DueDate,
		ReturnDate:    loan.ReturnDate,
		Status:        string(loan.Status),
		Overdue:       loan.Overdue(now),
		Notes:         loan.Notes,
	}
	if loan.UserBook != nil && loan.UserBook.Book != nil {
		book := loan.UserBook.Book
		resp.BookID = book.ID
		resp.BookTitle = book.Title
		resp.BookAuthor = book.Author
		resp.BookCoverURL = book.CoverImageURL
	}
	return resp
}
