package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"transactions-service/internal/logger"
	"transactions-service/internal/models"
	"transactions-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	requestIDHeader    = "X-Request-ID"
	healthCheckTimeout = 2 * time.Second
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestIDMiddleware проставляет X-Request-ID, если клиент его не передал
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру
func SetupCommonEndpoints(router *gin.Engine, transactionService services.TransactionService) {
	// Health check: доступность хранилища
	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := transactionService.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Events endpoint
	router.GET("/api/v1/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}

		var events []logger.Event
		if eventType := c.Query("type"); eventType != "" {
			events = logger.GetEventsByType(logger.EventType(eventType), limit)
		} else {
			events = logger.GetEvents(limit)
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	// Stats endpoint: журнал событий и, если подключен Redis, общие и сегодняшние счетчики операций
	router.GET("/api/v1/stats", func(c *gin.Context) {
		stats := logger.GetStats()

		operations, err := transactionService.OperationStats()
		if err != nil {
			stats["operations_error"] = err.Error()
		} else if operations != nil {
			stats["operations"] = operations
		}

		today, err := transactionService.DailyOperationStats(time.Now())
		if err != nil {
			stats["operations_today_error"] = err.Error()
		} else if today != nil {
			stats["operations_today"] = today
		}

		c.JSON(http.StatusOK, stats)
	})
}

// RegisterTransactionRoutes регистрирует CRUD-маршруты ресурса transactions
func RegisterTransactionRoutes(router gin.IRouter, handlers *Handlers) {
	router.GET("/transactions", handlers.ListTransactions)
	router.POST("/transactions", handlers.CreateTransaction)
	router.GET("/transactions/:id", handlers.GetTransaction)
	router.PUT("/transactions/:id", handlers.UpdateTransaction)
	router.DELETE("/transactions/:id", handlers.DeleteTransaction)
}

// SetupRouter настраивает маршруты REST API
func SetupRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()

	router.Use(CORSMiddleware(), RequestIDMiddleware())
	router.Use(gin.Logger(), gin.Recovery())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	RegisterTransactionRoutes(router, handlers)
	router.GET("/api/v1/transactions/sample", handlers.SampleTransaction)

	// Общие endpoints (health, events, stats)
	SetupCommonEndpoints(router, handlers.transactionService)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not Found"})
	})

	return router
}
