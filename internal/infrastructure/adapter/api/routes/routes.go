package routes

import (
	coreport "github.com/amirhossein-jamali/tuition-payment/internal/domain/port/core"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/tuition-payment/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// APIPrefix is the versioned root of every route
const APIPrefix = "/api/v1"

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Payment *handler.PaymentHandler
	User    *handler.UserHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, auth gin.HandlerFunc) {
	api := router.Group(APIPrefix)

	// GET /api/v1/health
	api.GET("/health", handlers.Health.Health)

	secured := api.Group("", auth)

	paymentRoutes := secured.Group("/payments")
	{
		paymentRoutes.POST("/initiate", handlers.Payment.Initiate)
		paymentRoutes.POST("/send-otp", handlers.Payment.SendOTP)
		paymentRoutes.POST("/verify-otp", handlers.Payment.VerifyOTP)
		paymentRoutes.POST("/confirm", handlers.Payment.Confirm)
		paymentRoutes.GET("/active", handlers.Payment.CheckActive)
		paymentRoutes.POST("/cancel-active", handlers.Payment.CancelActive)
		paymentRoutes.GET("/otp-status/:transactionId", handlers.Payment.OTPStatus)
	}

	secured.GET("/users/me", handlers.User.GetProfile)
	secured.GET("/students/:studentId", handlers.User.GetStudent)
	secured.GET("/transactions/history", handlers.User.GetHistory)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
}
