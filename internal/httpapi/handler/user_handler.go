package handler

import (
	"context"
	"net/http"
	"time"

	"shelfmate/internal/httpapi/dto"
	"shelfmate/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.List)
	rg.GET("/search", h.GetByEmail)
	rg.GET("/:userId", h.Get)
	rg.PUT("/:userId", h.Update)
	rg.DELETE("/:userId", h.Delete)
}

// List all users
func (h *UserHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *dto.FromModelToUserResponse(&users[i]))
	}

	c.JSON(http.StatusOK, items)
}

// GetByEmail looks a user up by email query parameter
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.GetByEmail(ctx, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// Get one user's profile
func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.GetByID(ctx, c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// Update merges profile fields; only the owner may update
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.svc.Update(ctx, userID, service.UpdateUserInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Password:          req.Password,
		CPF:               req.CPF,
		Avatar:            req.Avatar,
		Biography:         req.Biography,
		DateOfBirth:       req.DateOfBirth,
		AddressStreet:     req.AddressStreet,
		AddressCity:       req.AddressCity,
		AddressState:      req.AddressState,
		AddressZip:        req.AddressZip,
		AnnualReadingGoal: req.AnnualReadingGoal,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// Delete removes the account and everything owned by it
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
