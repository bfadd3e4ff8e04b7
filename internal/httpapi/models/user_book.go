package models

import (
	"fmt"
	"time"
)

// ReadingStatus is the shelf state of a UserBook.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "WANT_TO_READ" // wishlist, not owned
	StatusToRead     ReadingStatus = "TO_READ"      // owned, on the shelf
	StatusReading    ReadingStatus = "READING"
	StatusRead       ReadingStatus = "READ"
)

// ParseReadingStatus validates a status string coming from the API.
func ParseReadingStatus(s string) (ReadingStatus, error) {
	switch ReadingStatus(s) {
	case StatusWantToRead, StatusToRead, StatusReading, StatusRead:
		return ReadingStatus(s), nil
	}
	return "", fmt.Errorf("unknown reading status %q", s)
}

// UserBook is a shelf entry: one user's record of one catalog book.
// The (user_id, book_id) pair is unique; the index backs the Conflict
// translation when two requests race on the same pair.
type UserBook struct {
	ID                int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            string        `gorm:"type:uuid;not null;uniqueIndex:idx_user_book" json:"user_id"`
	BookID            int64         `gorm:"not null;uniqueIndex:idx_user_book" json:"book_id"`
	Status            ReadingStatus `gorm:"type:text;not null" json:"status"`
	CurrentPage       int           `gorm:"default:0" json:"current_page"`
	Rating            *int          `json:"rating,omitempty"`
	Review            *string       `gorm:"type:text" json:"review,omitempty"`
	AddedAt           time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"added_at"`
	StartedReadingAt  *time.Time    `json:"started_reading_at,omitempty"`
	FinishedReadingAt *time.Time    `json:"finished_reading_at,omitempty"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (UserBook) TableName() string {
	return "user_books"
}
