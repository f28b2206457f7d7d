package server

import (
	"github.com/labstack/echo/v4"

	"example.com/creator-rates/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	sessionHandler *handlers.SessionHandler,
	contractHandler *handlers.ContractHandler,
	notificationHandler *handlers.NotificationHandler,
	exportRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/healthz", handlers.Health)

	api := e.Group("/api/v1")

	sessions := api.Group("/sessions")
	sessions.GET("", sessionHandler.List)
	sessions.POST("", sessionHandler.Create)
	sessions.POST("/import", sessionHandler.Import, exportRateLimiter)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.DELETE("/:id", sessionHandler.Delete)
	sessions.PUT("/:id/expenses", sessionHandler.UpdateExpenses)
	sessions.PUT("/:id/income", sessionHandler.UpdateIncome)
	sessions.PUT("/:id/creator", sessionHandler.UpdateCreator)
	sessions.PUT("/:id/tier", sessionHandler.UpdateTier)
	sessions.GET("/:id/services", sessionHandler.Services)
	sessions.POST("/:id/custom-services", sessionHandler.AddCustomService)
	sessions.DELETE("/:id/custom-services/:serviceId", sessionHandler.RemoveCustomService)
	sessions.GET("/:id/export", sessionHandler.ExportJSON, exportRateLimiter)
	sessions.GET("/:id/export/csv", sessionHandler.ExportCSV, exportRateLimiter)
	sessions.GET("/:id/events", notificationHandler.Stream)

	contracts := api.Group("/contracts")
	contracts.GET("", contractHandler.List)
	contracts.POST("", contractHandler.Create)
	contracts.POST("/import", contractHandler.Import, exportRateLimiter)
	contracts.GET("/:id", contractHandler.Get)
	contracts.PUT("/:id", contractHandler.Update)
	contracts.DELETE("/:id", contractHandler.Delete)
	contracts.POST("/:id/clauses", contractHandler.AddClause)
	contracts.DELETE("/:id/clauses/:clauseId", contractHandler.RemoveClause)
	contracts.GET("/:id/preview", contractHandler.Preview)
	contracts.GET("/:id/export", contractHandler.ExportJSON, exportRateLimiter)
	contracts.GET("/:id/export/markdown", contractHandler.ExportMarkdown, exportRateLimiter)
	contracts.GET("/:id/export/pdf", contractHandler.ExportPDF, exportRateLimiter)
}
