package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"collection-orders/internal/auth"
	"collection-orders/internal/handler"
	"collection-orders/internal/middleware"
	"collection-orders/internal/service"
)

type Server struct {
	echo            *echo.Echo
	tokens          *auth.Manager
	authHandler     *handler.AuthHandler
	purchaseHandler *handler.PurchaseHandler
}

func NewServer(authService service.AuthService, purchaseService service.PurchaseService, tokens *auth.Manager, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Admin UI
	e.File("/", "web/index.html")
	e.Static("/js", "web/js")

	s := &Server{
		echo:            e,
		tokens:          tokens,
		authHandler:     handler.NewAuthHandler(authService, logger),
		purchaseHandler: handler.NewPurchaseHandler(purchaseService, logger),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.POST("/auth/login", s.authHandler.Login)

	purchases := api.Group("/purchases", middleware.RequireAdmin(s.tokens))
	purchases.GET("", s.purchaseHandler.ListOrders)
	purchases.GET("/:purchaseId/products", s.purchaseHandler.ListProducts)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
