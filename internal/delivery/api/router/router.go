// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	ServiceHandler  *handler.ServiceHandler
	TicketHandler   *handler.TicketHandler
	BlogHandler     *handler.BlogHandler
	SettingsHandler *handler.SettingsHandler
	UploadHandler   *handler.UploadHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// Router holds all the handlers that need to be registered.
type Router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	serviceHandler  *handler.ServiceHandler
	ticketHandler   *handler.TicketHandler
	blogHandler     *handler.BlogHandler
	settingsHandler *handler.SettingsHandler
	uploadHandler   *handler.UploadHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		serviceHandler:  params.ServiceHandler,
		ticketHandler:   params.TicketHandler,
		blogHandler:     params.BlogHandler,
		settingsHandler: params.SettingsHandler,
		uploadHandler:   params.UploadHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads are public except tickets; every write needs an admin token except the public support form.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/media/*", r.mediaHandler.Serve)

	api := e.Group(r.config.HTTP.APIPrefix)
	admin := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify, admin...)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, admin...)
	}

	products := api.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.POST("", r.productHandler.CreateProduct, admin...)
		products.PUT("/:id", r.productHandler.UpdateProduct, admin...)
		products.DELETE("/:id", r.productHandler.DeleteProduct, admin...)
		products.POST("/:id/images", r.productHandler.AppendImages, admin...)
		products.DELETE("/:id/images/:imageIndex", r.productHandler.RemoveImage, admin...)
	}

	services := api.Group("/services")
	{
		services.GET("", r.serviceHandler.ListServices)
		services.GET("/:id", r.serviceHandler.GetService)
		services.POST("", r.serviceHandler.CreateService, admin...)
		services.PUT("/:id", r.serviceHandler.UpdateService, admin...)
		services.PATCH("/:id", r.serviceHandler.UpdateService, admin...)
		services.DELETE("/:id", r.serviceHandler.DeleteService, admin...)
	}

	tickets := api.Group("/tickets")
	{
		tickets.POST("", r.ticketHandler.CreateTicket, r.authMiddleware.Identify)
		tickets.GET("", r.ticketHandler.ListTickets, admin...)
		tickets.GET("/export", r.ticketHandler.ExportTickets, admin...)
		tickets.GET("/:id", r.ticketHandler.GetTicket, admin...)
		tickets.GET("/:id/qrcode", r.ticketHandler.TicketQRCode, admin...)
		tickets.PUT("/:id", r.ticketHandler.UpdateTicket, admin...)
		tickets.PATCH("/:id", r.ticketHandler.UpdateTicket, admin...)
		tickets.DELETE("/:id", r.ticketHandler.DeleteTicket, admin...)
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", r.blogHandler.ListBlogs)
		blogs.GET("/:id", r.blogHandler.GetBlog)
		blogs.POST("", r.blogHandler.CreateBlog, admin...)
		blogs.POST("/import", r.blogHandler.ImportBlog, admin...)
		blogs.PUT("/:id", r.blogHandler.UpdateBlog, admin...)
		blogs.DELETE("/:id", r.blogHandler.DeleteBlog, admin...)
	}

	settings := api.Group("/settings")
	{
		settings.GET("", r.settingsHandler.GetSettings)
		settings.PUT("", r.settingsHandler.UpdateSettings, admin...)
		settings.PATCH("", r.settingsHandler.UpdateSettings, admin...)
	}

	upload := api.Group("/upload")
	{
		upload.POST("", r.uploadHandler.UploadImage)
		upload.POST("/multiple", r.uploadHandler.UploadImages)
	}
}
