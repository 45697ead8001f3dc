package handler

import (
	"net/http"

	"github.com/asbuyukgungor-bot/bus-erp/internal/apierror"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/middleware"
	"github.com/asbuyukgungor-bot/bus-erp/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Token godoc
// @Summary Issue an access token (OAuth2 password flow)
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/v1/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req dto.LoginRequest
	if !bindFormAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	username := middleware.GetUsername(c)
	resp, err := h.svc.GetUser(c.Request.Context(), username)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, apierror.New("Could not validate credentials"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
