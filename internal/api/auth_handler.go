package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lt1hs/d-bms/internal/config"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/service"
	"github.com/rs/zerolog"
)

// AuthHandler handles login/logout/current-user endpoints
type AuthHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	resp, err := h.services.Auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	if err := h.services.Auth.Logout(ctx, bearerToken(c)); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CurrentUser handles GET /v1/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
