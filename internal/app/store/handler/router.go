package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cuervostore/internal/app/store/entity"
	"cuervostore/pkg/logger"
	"cuervostore/pkg/metrics"
)

// SetupRoutes настраивает все маршруты приложения с использованием Gin
func SetupRoutes(
	authHandler *AuthHandler,
	catalogHandler *CatalogHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	authMiddleware *AuthMiddleware,
) *gin.Engine {
	router := gin.New()

	// Recovery middleware для обработки panic
	router.Use(gin.Recovery())

	// JSON logging middleware для HTTP-запросов
	router.Use(logger.GinLoggerMiddleware())

	// Prometheus metrics middleware
	router.Use(metrics.GinPrometheusMiddleware("store"))

	// CORS настройки
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "store",
		})
	})

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Аутентификация и профиль
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/confirm", authHandler.Confirm)
		auth.POST("/login", authHandler.Login)

		protected := auth.Group("")
		protected.Use(authMiddleware.Authenticate())
		{
			protected.GET("/me", authHandler.Me)
			protected.POST("/logout", authHandler.Logout)
			protected.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	// Каталог: чтение публично, запись по ролям
	products := router.Group("/products")
	{
		products.GET("", catalogHandler.Search)
		products.GET("/:id", catalogHandler.Get)

		sellers := products.Group("")
		sellers.Use(authMiddleware.Authenticate())
		sellers.Use(authMiddleware.RequireRole(entity.RoleSeller, entity.RoleAdmin))
		{
			sellers.GET("/mine", catalogHandler.Mine)
			sellers.POST("", catalogHandler.Create)
			sellers.PUT("/:id", catalogHandler.Update)
			sellers.DELETE("/:id", catalogHandler.Delete)
		}

		reviews := products.Group("")
		reviews.Use(authMiddleware.Authenticate())
		{
			reviews.POST("/:id/reviews", catalogHandler.AddReview)
		}

		moderation := products.Group("")
		moderation.Use(authMiddleware.Authenticate())
		moderation.Use(authMiddleware.RequireRole(entity.RoleAdmin))
		{
			moderation.PUT("/:id/status", catalogHandler.SetStatus)
		}
	}

	// Корзина текущего пользователя
	cart := router.Group("/cart")
	cart.Use(authMiddleware.Authenticate())
	{
		cart.GET("", cartHandler.Get)
		cart.DELETE("", cartHandler.Clear)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:productId", cartHandler.UpdateItem)
		cart.DELETE("/items/:productId", cartHandler.RemoveItem)
	}

	// Заказы
	orders := router.Group("/orders")
	orders.Use(authMiddleware.Authenticate())
	{
		orders.POST("/checkout", orderHandler.Checkout)
		orders.GET("", orderHandler.Mine)
		orders.GET("/:id", orderHandler.Get)

		admin := orders.Group("")
		admin.Use(authMiddleware.RequireRole(entity.RoleAdmin))
		{
			admin.GET("/all", orderHandler.All)
			admin.PUT("/:id/status", orderHandler.UpdateStatus)
		}
	}

	// Очередь mock-писем - только для администратора
	messages := router.Group("/messages")
	messages.Use(authMiddleware.Authenticate())
	messages.Use(authMiddleware.RequireRole(entity.RoleAdmin))
	{
		messages.GET("", orderHandler.Messages)
	}

	return router
}
