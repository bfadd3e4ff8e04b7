package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shelfmate/internal/httpapi/dto"
	"shelfmate/internal/httpapi/models"
	"shelfmate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type LibraryHandler struct {
	svc service.LibraryService
}

func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

func (h *LibraryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Add)
	rg.GET("/", h.List)
	rg.GET("/stats", h.Stats)
	rg.DELETE("/:entryId", h.Remove)
	rg.PATCH("/:entryId/status", h.UpdateStatus)
	rg.PATCH("/:entryId/progress", h.UpdateProgress)
	rg.PATCH("/:entryId/rating", h.UpdateRating)
	rg.PATCH("/:entryId/review", h.UpdateReview)
}

// Add a catalog book to the user's shelf
func (h *LibraryHandler) Add(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req dto.AddToShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseReadingStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.AddToShelf(ctx, userID, req.BookID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToShelfEntryResponse(entry))
}

// List the user's shelf
func (h *LibraryHandler) List(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, err := h.svc.ListShelf(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.ShelfEntryResponse, 0, len(entries))
	for i := range entries {
		items = append(items, *dto.FromModelToShelfEntryResponse(&entries[i]))
	}

	c.JSON(http.StatusOK, dto.ShelfListResponse{
		Items: items,
		Total: len(items),
	})
}

// Stats returns the user's library summary counters
func (h *LibraryHandler) Stats(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.svc.GetStats(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStatsToResponse(stats))
}

// Remove a shelf entry
func (h *LibraryHandler) Remove(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.RemoveFromShelf(ctx, userID, entryID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateStatus transitions a shelf entry's reading status
func (h *LibraryHandler) UpdateStatus(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := models.ParseReadingStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.UpdateStatus(ctx, userID, entryID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToShelfEntryResponse(entry))
}

// UpdateProgress records the current page of a shelf entry
func (h *LibraryHandler) UpdateProgress(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.UpdateProgress(ctx, userID, entryID, *req.CurrentPage)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToShelfEntryResponse(entry))
}

// UpdateRating rates a shelf entry
func (h *LibraryHandler) UpdateRating(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.UpdateRating(ctx, userID, entryID, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToShelfEntryResponse(entry))
}

// UpdateReview sets the review text of a shelf entry
func (h *LibraryHandler) UpdateReview(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entry, err := h.svc.UpdateReview(ctx, userID, entryID, req.Review)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToShelfEntryResponse(entry))
}

func entryIDParam(c *gin.Context) (int64, bool) {
	entryID, err := strconv.ParseInt(c.Param("entryId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return 0, false
	}
	return entryID, true
}
