package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"peerplan/pkg/auth/service"
)

type AuthCtrl struct{ svc service.AuthService }

func New(svc service.AuthService) *AuthCtrl { return &AuthCtrl{svc} }

func (h *AuthCtrl) Register(c echo.Context) error {
	var req service.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, token, err := h.svc.Register(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    u.PublicProfile(),
		"token":   token,
	})
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    u.PublicProfile(),
		"token":   token,
	})
}

func (h *AuthCtrl) Profile(c echo.Context) error {
	uid := c.Get("uid").(uint)
	u, err := h.svc.GetUserByID(uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u.PublicProfile()})
}
