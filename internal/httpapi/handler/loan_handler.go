package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shelfmate/internal/httpapi/dto"
	"shelfmate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	svc service.LoanService
}

func NewLoanHandler(svc service.LoanService) *LoanHandler {
	return &LoanHandler{svc: svc}
}

func (h *LoanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.PATCH("/:loanId/return", h.Return)
}

// Create lends one of the user's shelf entries to a third party
func (h *LoanHandler) Create(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loan, err := h.svc.Create(ctx, userID, service.CreateLoanInput{
		BookID:        req.BookID,
		BorrowerName:  req.BorrowerName,
		BorrowerEmail: req.BorrowerEmail,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToLoanResponse(loan, time.Now()))
}

// List all of the user's loans, active and returned, newest first
func (h *LoanHandler) List(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loans, err := h.svc.ListByUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	items := make([]dto.LoanResponse, 0, len(loans))
	for i := range loans {
		items = append(items, *dto.FromModelToLoanResponse(&loans[i], now))
	}

	c.JSON(http.StatusOK, dto.LoanListResponse{
		Items: items,
		Total: len(items),
	})
}

// Return marks a loan as returned
func (h *LoanHandler) Return(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	loanID, err := strconv.ParseInt(c.Param("loanId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid loan id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	loan, err := h.svc.Return(ctx, userID, loanID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToLoanResponse(loan, time.Now()))
}
