package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/server/http/dto"
	"github.com/jokistudio/portal/internal/server/http/middleware"
)

// AuthHandler manages sign-in and device registration endpoints.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrValidation)
		return
	}

	user, token, err := h.facade.SignIn(c.Request.Context(), req.Provider, req.AccessToken)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: toUserResponse(user)})
}

// MobileLogin handles POST /api/mobile/auth.
func (h *AuthHandler) MobileLogin(c *gin.Context) {
	var req dto.MobileLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainErrors.ErrValidation)
		return
	}

	user, token, err := h.facade.MobileLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: toUserResponse(user)})
}

// RegisterFCM handles POST /api/mobile/fcm.
func (h *AuthHandler) RegisterFCM(c *gin.Context) {
	user := CurrentUser(c)

	var req dto.FCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		writeError(c, fmt.Errorf("%w: token wajib diisi", domainErrors.ErrValidation))
		return
	}

	if err := h.facade.RegisterFCMToken(c.Request.Context(), user.ID, &req.Token); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ClearFCM handles DELETE /api/mobile/fcm.
func (h *AuthHandler) ClearFCM(c *gin.Context) {
	user := CurrentUser(c)

	if err := h.facade.RegisterFCMToken(c.Request.Context(), user.ID, nil); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
