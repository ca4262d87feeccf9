package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/petcare-manager/internal/config"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/user"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

type AuthHandler struct {
	users   *user.Service
	config  *config.Config
	metrics *observability.Metrics
}

func NewAuthHandler(users *user.Service, cfg *config.Config, m *observability.Metrics) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, metrics: m}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validators.Struct(req); err != nil {
		httperr.Respond(c, err)
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			h.metrics.AuthFailuresTotal.Inc()
			httperr.Unauthorized(c, "invalid_credentials", "Correo o contraseña incorrectos.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	token, expiresAt, err := h.generateToken(u)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No fue posible iniciar la sesión.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"phone": u.Phone,
			"role":  u.Role,
		},
		"token":      token,
		"expires_at": expiresAt,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(u *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(h.config.JWTTTL)

	claims := jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	return signed, expiresAt, err
}
