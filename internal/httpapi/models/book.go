package models

import "time"

type Book struct {
	ID              int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string     `json:"title" gorm:"not null"`
	Author          string     `json:"author" gorm:"not null"`
	ISBN            *string    `json:"isbn,omitempty" gorm:"column:isbn;uniqueIndex;size:20"`
	GoogleBooksID   *string    `json:"google_books_id,omitempty" gorm:"uniqueIndex;size:64"`
	Synopsis        *string    `json:"synopsis,omitempty" gorm:"type:text"`
	CoverImageURL   *string    `json:"cover_image_url,omitempty" gorm:"size:2048"`
	Pages           *int       `json:"pages,omitempty"`
	Publisher       *string    `json:"publisher,omitempty"`
	PublicationYear *int       `json:"publication_year,omitempty"`
	Price           *float64   `json:"price,omitempty" gorm:"type:decimal(10,2)"`
	PurchaseURL     *string    `json:"purchase_url,omitempty" gorm:"size:2048"`
	CreatedAt       *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Book) TableName() string {
	return "books"
}
