package grpc

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"transactions-service/config"
	"transactions-service/internal/services"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type TransactionGRPCServer struct {
	transactionService services.TransactionService
}

func NewTransactionGRPCServer(transactionService services.TransactionService) *TransactionGRPCServer {
	return &TransactionGRPCServer{transactionService: transactionService}
}

var _ TransactionServiceServer = (*TransactionGRPCServer)(nil)

// ListTransactions возвращает все транзакции в порядке sort/order
func (s *TransactionGRPCServer) ListTransactions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	params, err := listParams(req)
	if err != nil {
		return nil, toStatus(err, "Failed to get transactions")
	}

	transactions, err := s.transactionService.ListTransactions(ctx, params)
	if err != nil {
		return nil, toStatus(err, "Failed to get transactions")
	}

	items := make([]interface{}, 0, len(transactions))
	for i := range transactions {
		items = append(items, transactionToMap(&transactions[i]))
	}

	return structpb.NewStruct(map[string]interface{}{"transactions": items})
}

func (s *TransactionGRPCServer) GetTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tx, err := s.transactionService.GetTransaction(ctx, rawID(req))
	if err != nil {
		return nil, toStatus(err, "Failed to get transaction")
	}
	return transactionToStruct(tx)
}

func (s *TransactionGRPCServer) CreateTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tx, err := s.transactionService.CreateTransaction(ctx, payload(req))
	if err != nil {
		return nil, toStatus(err, "Failed to create transaction")
	}
	return transactionToStruct(tx)
}

// UpdateTransaction полностью заменяет транзакцию с указанным id
func (s *TransactionGRPCServer) UpdateTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	tx, err := s.transactionService.UpdateTransaction(ctx, rawID(req), payload(req))
	if err != nil {
		return nil, toStatus(err, "Failed to update transaction")
	}
	return transactionToStruct(tx)
}

func (s *TransactionGRPCServer) DeleteTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := s.transactionService.DeleteTransaction(ctx, rawID(req)); err != nil {
		return nil, toStatus(err, "Failed to delete transaction")
	}
	return &structpb.Struct{}, nil
}

// loggingInterceptor пишет в лог метод, код ответа и длительность вызова
func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	log.Printf("gRPC %s %s %v", info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}

// NewServer создает gRPC сервер с сервисом транзакций, health-check и reflection API
func NewServer(transactionService services.TransactionService) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor))
	RegisterTransactionServiceServer(s, NewTransactionGRPCServer(transactionService))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	// Включаем reflection API для grpcurl и других инструментов
	reflection.Register(s)

	return s
}

// StartGRPCServer запускает gRPC сервер и блокируется до его остановки
func StartGRPCServer(cfg *config.Config, s *grpc.Server) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	log.Printf("gRPC server listening on port %d", cfg.Server.GRPCPort)
	if err := s.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}
