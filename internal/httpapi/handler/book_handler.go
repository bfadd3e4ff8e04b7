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

type BookHandler struct {
	svc service.BookService
}

func NewBookHandler(svc service.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/", h.Create)
	rg.GET("/", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/google/:googleId", h.GetByGoogleID)
	rg.PUT("/:id", h.Update)
}

// Create registers a new book in the global catalog
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.CreateInCatalog(ctx, bookInputFromRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToBookResponse(book))
}

// List returns the whole catalog
func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	books, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.BookResponse, 0, len(books))
	for i := range books {
		items = append(items, *dto.FromModelToBookResponse(&books[i]))
	}

	c.JSON(http.StatusOK, items)
}

// Get returns one catalog book by id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToBookResponse(book))
}

// GetByGoogleID returns one catalog book by its external catalog id
func (h *BookHandler) GetByGoogleID(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.GetByGoogleBooksID(ctx, c.Param("googleId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToBookResponse(book))
}

// Update merges catalog metadata onto an existing book
func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.BookInput{
		Synopsis:        req.Synopsis,
		CoverImageURL:   req.CoverImageURL,
		Pages:           req.Pages,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		PurchaseURL:     req.PurchaseURL,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Author != nil {
		input.Author = *req.Author
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	book, err := h.svc.Update(ctx, id, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToBookResponse(book))
}

func bookInputFromRequest(req dto.BookRequest) service.BookInput {
	return service.BookInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		GoogleBooksID:   req.GoogleBooksID,
		Synopsis:        req.Synopsis,
		CoverImageURL:   req.CoverImageURL,
		Pages:           req.Pages,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		PurchaseURL:     req.PurchaseURL,
	}
}
