package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"collection-orders/internal/dto"
	"collection-orders/internal/model"
	"collection-orders/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Неверный пароль"})
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Неверный пароль"})
		}
		h.logger.Error("issuing admin token", "error", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Ошибка сервера"})
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
