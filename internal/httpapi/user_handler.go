package httpapi

import (
	"errors"

	"bookshelf-be/internal/httpapi/response"
	"bookshelf-be/internal/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username, email and password are required")
		return
	}

	token, u, err := h.svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameExists):
			response.Conflict(c, "username already exists")
		case errors.Is(err, user.ErrEmailExists):
			response.Conflict(c, "email already exists")
		default:
			response.InternalError(c, "registration failed")
		}
		return
	}

	response.Created(c, AuthResponse{Token: token, User: toUserResponse(u)})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	token, u, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.InternalError(c, "login failed")
		return
	}

	response.Success(c, AuthResponse{Token: token, User: toUserResponse(u)})
}
