package transactions

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"transactions-service/config"
	_ "transactions-service/docs" // Swagger docs
	"transactions-service/internal/api/rest"
	"transactions-service/internal/grpc"

	"github.com/gin-gonic/gin"
)

// StartTransactionsService запускает HTTP и gRPC серверы сервиса транзакций
func StartTransactionsService() {
	cfg := config.Load()

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Printf("Environment: %s, debug: %t, storage: %s", cfg.App.Env, cfg.App.Debug, cfg.DB.Driver)

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Close()

	// Настройка REST API
	handlers := rest.NewHandlers(deps.TransactionService)
	router := rest.SetupRouter(handlers)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Printf("Transactions Service starting on port %d", cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Запуск gRPC сервера в отдельной горутине
	grpcServer := grpc.NewServer(deps.TransactionService)
	go func() {
		log.Printf("Starting gRPC server on port %d...", cfg.Server.GRPCPort)
		if err := grpc.StartGRPCServer(cfg, grpcServer); err != nil {
			log.Fatalf("Failed to start gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down servers...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	grpcServer.GracefulStop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Servers exited")
}
