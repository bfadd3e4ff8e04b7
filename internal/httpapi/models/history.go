package models

import "time"

// UserHistory is an append-only activity log row. Rows are never updated
// or deleted individually; only a user-delete cascade removes them.
type UserHistory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ActionType  string    `gorm:"not null" json:"action_type"`
	Description string    `gorm:"not null" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserHistory) TableName() string {
	return "user_history"
}
