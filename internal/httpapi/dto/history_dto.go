package dto

import (
	"time"

	"shelfmate/internal/httpapi/models"
)

// HistoryEntryResponse: one activity log row
type HistoryEntryResponse struct {
	ID          int64     `json:"id"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// HistoryListResponse: a user's recent activity, newest first
type HistoryListResponse struct {
	Items []HistoryEntryResponse `json:"items"`
	Total int                    `json:"total"`
}

// FromModelToHistoryEntryResponse converts a UserHistory model to its DTO
func FromModelToHistoryEntryResponse(entry *models.UserHistory) *HistoryEntryResponse {
	return &HistoryEntryResponse{
		ID:          entry.ID,
		ActionType:  entry.ActionType,
		Description: entry.Description,
		CreatedAt:   entry.CreatedAt,
	}
}
