// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loopcard/internal/delivery/api/middleware"
	"loopcard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	MeHandler        *handler.MeHandler
	CardHandler      *handler.CardHandler
	AnalyticsHandler *handler.AnalyticsHandler
	PublicHandler    *handler.PublicHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	meHandler        *handler.MeHandler
	cardHandler      *handler.CardHandler
	analyticsHandler *handler.AnalyticsHandler
	publicHandler    *handler.PublicHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		meHandler:        params.MeHandler,
		cardHandler:      params.CardHandler,
		analyticsHandler: params.AnalyticsHandler,
		publicHandler:    params.PublicHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/identity", r.authHandler.SignInWithIdentity)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Visitor routes, no authentication
	publicGroup := e.Group("/public")
	{
		publicGroup.GET("/cards/:id", r.publicHandler.GetCard)
		publicGroup.GET("/cards/:id/qr.png", r.publicHandler.GetQRCode)
		publicGroup.GET("/cards/:id/vcard", r.publicHandler.DownloadVCard)
		publicGroup.POST("/cards/:id/clicks", r.publicHandler.RecordClick)
		publicGroup.POST("/scan", r.publicHandler.ResolveScan)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.meHandler.GetMe)
		meGroup.PUT("/tier", r.meHandler.ChangeTier)
	}

	cardsGroup := apiV1.Group("/cards")
	{
		cardsGroup.GET("", r.cardHandler.ListCards)
		cardsGroup.POST("", r.cardHandler.CreateCard)
		cardsGroup.POST("/repair-qr", r.cardHandler.RepairQRLinks)
		cardsGroup.PUT("/:id", r.cardHandler.UpdateCard)
		cardsGroup.DELETE("/:id", r.cardHandler.DeleteCard)

		cardsGroup.GET("/:id/analytics", r.analyticsHandler.GetSummary)
		cardsGroup.POST("/:id/insights", r.analyticsHandler.GenerateInsights)
		cardsGroup.POST("/:id/username-suggestions", r.analyticsHandler.SuggestUsernames)
	}

	apiV1.POST("/assets", r.cardHandler.UploadAsset)
}
