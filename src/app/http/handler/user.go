// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"storefront/src/app/http/dto"
	"storefront/src/app/http/response"
	"storefront/src/app/middleware"
	"storefront/src/core/usecase"
)

// UserHandler handles the user registration endpoints.
type UserHandler struct {
	userService *usecase.UserService
	log         *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userService *usecase.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		log:         log,
	}
}

// Create registers a new user.
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		h.log.Warn("user creation rejected",
			"request_id", middleware.GetRequestID(c),
			"reason", err.Error(),
		)
		response.FromDomainError(c, err)
		return
	}
	response.Created(c, user)
}

// List returns all registered users.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, users)
}

// Get returns a single user by id.
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.OK(c, user)
}
