package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "pengadaan_monitor/internal/adapter/http/dto/request"
	response "pengadaan_monitor/internal/adapter/http/dto/response"
	"pengadaan_monitor/internal/usecase"
	"pengadaan_monitor/pkg"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
)

// AuthHandler handles the engineering actor's shared-key login.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login issues a bearer token when the shared engineering key matches.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Login(payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Logout drops the caller's session; always answers 204.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := BearerToken(c); token != "" {
		h.usecase.Logout(token)
	}
	c.Status(http.StatusNoContent)
}

// BearerToken extracts the token of an "Authorization: Bearer ..." header,
// or "" when the header is absent or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPassword):
		log.Printf("[auth][handler] login denied")
		return pkg.NewDomainErrorSimple("INVALID_PASSWORD", "Wrong password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrAuthNotConfigured):
		log.Printf("[auth][handler] login attempted but ENGINEERING_KEY is not set")
		return pkg.NewDomainErrorSimple("AUTH_NOT_CONFIGURED", "Engineering login is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
