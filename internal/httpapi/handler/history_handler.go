package handler

import (
	"context"
	"net/http"
	"time"

	"shelfmate/internal/httpapi/dto"
	"shelfmate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	svc service.HistoryService
}

func NewHistoryHandler(svc service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Recent)
}

// Recent returns the user's most recent activity entries
func (h *HistoryHandler) Recent(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.svc.GetRecent(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.HistoryEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, *dto.FromModelToHistoryEntryResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, dto.HistoryListResponse{
		Items: items,
		Total: len(items),
	})
}
