package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/minhvn/sourcehub/internal/adapter/filestore"
	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/server/http/handlers"
	"github.com/minhvn/sourcehub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, files filestore.Store, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	rfqHandler := handlers.NewRFQHandler(facade)
	quoteHandler := handlers.NewQuoteHandler(facade)
	contractHandler := handlers.NewContractHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, files)
	notificationHandler := handlers.NewNotificationHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired(facade))
	authorized.GET("/auth/me", authHandler.Me)

	authorized.GET("/products", productHandler.List)
	authorized.GET("/products/mine", middleware.RequireRole(model.RoleSupplier), productHandler.ListMine)
	authorized.GET("/products/:id", productHandler.Get)
	authorized.POST("/products", middleware.RequireRole(model.RoleSupplier), productHandler.Create)

	authorized.POST("/rfqs", middleware.RequireRole(model.RoleShop), rfqHandler.Create)
	authorized.GET("/rfqs", rfqHandler.List)
	authorized.GET("/rfqs/:id", rfqHandler.Get)
	authorized.GET("/rfqs/:id/quotes", rfqHandler.Quotes)
	authorized.POST("/rfqs/:id/close", middleware.RequireRole(model.RoleShop), rfqHandler.Close)
	authorized.POST("/rfqs/:id/quotes", middleware.RequireRole(model.RoleSupplier), quoteHandler.Submit)

	authorized.GET("/quotes", quoteHandler.List)
	authorized.POST("/quotes/:id/accept", middleware.RequireRole(model.RoleShop), quoteHandler.Accept)
	authorized.POST("/quotes/:id/reject", middleware.RequireRole(model.RoleShop), quoteHandler.Reject)

	authorized.GET("/contracts", contractHandler.List)
	authorized.GET("/contracts/:id", contractHandler.Get)

	authorized.POST("/orders", middleware.RequireRole(model.RoleShop), orderHandler.Create)
	authorized.GET("/orders", orderHandler.List)
	authorized.GET("/orders/:id", orderHandler.Get)
	authorized.POST("/orders/:id/status", orderHandler.Advance)
	authorized.POST("/orders/:id/payment-proof", middleware.RequireRole(model.RoleShop), orderHandler.UploadPaymentProof)
	authorized.GET("/orders/:id/tracking", orderHandler.Tracking)

	authorized.GET("/notifications", notificationHandler.List)
	authorized.GET("/notifications/unread-count", notificationHandler.UnreadCount)
	authorized.PATCH("/notifications/:id", notificationHandler.SetRead)
	authorized.POST("/notifications/read-all", notificationHandler.MarkAllRead)
	authorized.DELETE("/notifications/:id", notificationHandler.Delete)

	return engine
}
