package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/server/http/handlers"
	"github.com/vitrinepdv/vitrine/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	shippingHandler := handlers.NewShippingHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)

	api := engine.Group("/api")

	api.GET("/products", catalogHandler.List)
	api.GET("/products/:id", catalogHandler.Get)

	api.GET("/cart", cartHandler.Get)
	api.POST("/cart/items", cartHandler.AddItem)
	api.PUT("/cart/items", cartHandler.UpdateItem)
	api.DELETE("/cart/items", cartHandler.RemoveItem)

	api.POST("/shipping/quote", shippingHandler.Quote)
	api.POST("/checkout", orderHandler.Checkout)
	api.GET("/orders/:id", orderHandler.Get)
	api.POST("/webhooks/payment", orderHandler.Webhook)

	staff := api.Group("/staff")
	staff.POST("/register", authHandler.Register)
	staff.POST("/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/orders", orderHandler.List)
	admin.GET("/orders/:id", orderHandler.Get)
	admin.POST("/orders", orderHandler.Checkout)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.POST("/orders/:id/cancel", orderHandler.Cancel)
	admin.GET("/products", catalogHandler.AdminList)
	admin.POST("/products", catalogHandler.Create)
	admin.PUT("/products/:id", catalogHandler.Update)
	admin.GET("/products/low-stock", catalogHandler.LowStock)
	admin.PATCH("/products/:id/stock", catalogHandler.AdjustStock)

	reports := admin.Group("/reports")
	reports.Use(middleware.RoleRequired(model.StaffRoleAdmin))
	reports.GET("/dashboard", reportHandler.Dashboard)
	reports.GET("/profit", reportHandler.Profit)

	return engine
}
