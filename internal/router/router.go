package router

import (
	"time"

	"github.com/brightdesk-dev/brightdesk/internal/auth"
	"github.com/brightdesk-dev/brightdesk/internal/authz"
	"github.com/brightdesk-dev/brightdesk/internal/config"
	"github.com/brightdesk-dev/brightdesk/internal/handlers"
	"github.com/brightdesk-dev/brightdesk/internal/middleware"
	"github.com/brightdesk-dev/brightdesk/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires the services and handlers and returns the configured
// engine. Everything is constructed here once and passed by reference;
// nothing is looked up ambiently at request time.
func New(database *gorm.DB, cfg *config.Config, tokens *auth.TokenManager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authService := services.NewAuthService(database, tokens)

	policy := authz.New(authz.DefaultRules())
	r.Use(middleware.RequestAuth(authService, tokens, policy))

	adminService := services.NewAdminService(database)
	projectService := services.NewProjectService(database)
	clientService := services.NewClientService(database)
	invoiceService := services.NewInvoiceService(database)
	paymentService := services.NewPaymentService(database, cfg.StripeSecret)

	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	projectHandler := handlers.NewProjectHandler(projectService)
	clientHandler := handlers.NewClientHandler(clientService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authHandler.Me)
		}

		api.POST("/users/register", authHandler.Register)

		admin := api.Group("/admin")
		{
			admin.PUT("/approve/:userId", adminHandler.Approve)
			admin.PUT("/assign-role/:userId", adminHandler.AssignRole)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.POST("/add", projectHandler.Create)
			projects.GET("/deleted", projectHandler.ListDeleted)
			projects.GET("/:projectId", projectHandler.Get)
			projects.PUT("/:projectId", projectHandler.Update)
			projects.DELETE("/:projectId", projectHandler.Delete)
			projects.POST("/restore/:projectId", projectHandler.Restore)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.GET("/:clientId", clientHandler.Get)
			clients.PUT("/:clientId", clientHandler.Update)
			clients.DELETE("/:clientId", clientHandler.Delete)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.List)
			invoices.POST("", invoiceHandler.Create)
			invoices.GET("/project/:projectId", invoiceHandler.ByProject)
			invoices.GET("/:invoiceId", invoiceHandler.Get)
			invoices.PUT("/:invoiceId", invoiceHandler.Update)
			invoices.DELETE("/:invoiceId", invoiceHandler.Delete)
		}

		api.POST("/payment", paymentHandler.CreateIntent)
		api.POST("/payment/invoice", paymentHandler.PayInvoice)
	}

	return r
}
