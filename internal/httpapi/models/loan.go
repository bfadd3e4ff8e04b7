package models

import "time"

// LoanStatus values stored in the database. OVERDUE is never persisted;
// it is derived from due_date at read time for ACTIVE loans.
type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanReturned LoanStatus = "RETURNED"
)

type Loan struct {
	ID            int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserBookID    int64      `gorm:"not null;index" json:"user_book_id"`
	BorrowerName  string     `gorm:"not null" json:"borrower_name"`
	BorrowerEmail *string    `json:"borrower_email,omitempty"`
	LoanDate      time.Time  `gorm:"not null" json:"loan_date"`
	DueDate       time.Time  `gorm:"not null" json:"due_date"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	Status        LoanStatus `gorm:"type:text;not null" json:"status"`
	Notes         *string    `json:"notes,omitempty"`

	// Associations
	UserBook *UserBook `gorm:"foreignKey:UserBookID" json:"user_book,omitempty"`
}

func (Loan) TableName() string {
	return "loans"
}

// Overdue reports whether an active loan is past due at the given instant.
func (l *Loan) Overdue(now time.Time) bool {
	return l.Status == LoanActive && now.After(l.DueDate)
}
