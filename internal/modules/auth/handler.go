package auth

import (
	"errors"

	"github.com/findelmundo/core/internal/middleware"
	"github.com/findelmundo/core/internal/models"
	"github.com/findelmundo/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.GET("/me", authMW, h.me)
}

func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, a, err := h.svc.Register(&dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.BadRequest(c, "email already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toTokenResponse(token, a))
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, a, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.UnauthorizedMsg(c, "invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, toTokenResponse(token, a))
}

func (h *Handler) me(c *gin.Context) {
	a, err := h.svc.GetByID(middleware.CurrentAdminID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, toAdminResponse(a))
}

func toAdminResponse(a *models.AdminModel) adminResponse {
	return adminResponse{
		ID:            a.ID,
		Email:         a.Email,
		CreatedAt:     a.CreatedAt,
		LastLoginTime: a.LastLoginTime,
	}
}

func toTokenResponse(token string, a *models.AdminModel) tokenResponse {
	return tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       toAdminResponse(a),
	}
}
