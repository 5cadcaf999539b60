package handlers

import (
	"errors"
	"net/http"

	"github.com/aaraainfra/weekly-mis/internal/api/middleware"
	"github.com/aaraainfra/weekly-mis/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	tokens *auth.TokenManager
}

func NewAuthHandler(tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login validates credentials and hands out a session token along with the
// views the role may mount, so the client can compose its shell in one
// round trip.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := auth.Authenticate(req.Username, req.Password)
	if err != nil {
		// Distinct messages match the login form's two error states.
		switch {
		case errors.Is(err, auth.ErrInvalidUsername):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username"})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		}
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}

	views, defaultView := auth.ViewsFor(user.Role)
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"views":       views,
		"defaultView": defaultView,
	})
}

// Views reports the tab set and default tab for the caller's role.
func (h *AuthHandler) Views(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	views, defaultView := auth.ViewsFor(user.Role)
	c.JSON(http.StatusOK, gin.H{
		"views":       views,
		"defaultView": defaultView,
	})
}
