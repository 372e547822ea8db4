package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"transactions-service/config"
	"transactions-service/internal/bootstrap/transactions"
	"transactions-service/internal/generator"
	grpcapi "transactions-service/internal/grpc"
	"transactions-service/internal/models"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"
)

const grpcCallTimeout = 5 * time.Second

type options struct {
	count    int
	profile  string
	reset    bool
	grpcAddr string
}

// Заполняет хранилище сгенерированными транзакциями: напрямую или через gRPC-сервер
func main() {
	var opts options
	flag.IntVar(&opts.count, "n", 100, "количество транзакций")
	flag.StringVar(&opts.profile, "profile", "", "профиль суммы: small, medium, large, refund (по умолчанию случайный)")
	flag.BoolVar(&opts.reset, "reset", false, "обнулить счетчики операций в Redis перед заполнением")
	flag.StringVar(&opts.grpcAddr, "grpc", "", "адрес gRPC-сервера, например localhost:50051; по умолчанию запись идет в хранилище напрямую")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed генератора")
	flag.Parse()

	if err := run(opts, generator.NewSeededTransactionGenerator(*seed)); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func run(opts options, gen *generator.TransactionGenerator) error {
	if err := generator.ValidateProfile(opts.profile); err != nil {
		return err
	}

	if opts.grpcAddr != "" {
		if opts.reset {
			return errors.New("-reset requires direct storage access and cannot be combined with -grpc")
		}
		return seedViaGRPC(opts, gen)
	}
	return seedStorage(opts, gen)
}

// seedStorage пишет транзакции через сервис поверх хранилища из конфигурации
func seedStorage(opts options, gen *generator.TransactionGenerator) (err error) {
	cfg := config.Load()

	deps, err := transactions.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if closeErr := deps.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close dependencies: %w", closeErr)
		}
	}()

	if opts.reset {
		if err := deps.TransactionService.ResetOperationStats(); err != nil {
			return fmt.Errorf("failed to reset operation stats: %w", err)
		}
		log.Println("Operation stats cleared")
	}

	ctx := context.Background()
	for i := 0; i < opts.count; i++ {
		in := generate(gen, opts.profile)
		tx, err := deps.TransactionService.CreateTransaction(ctx, map[string]interface{}{
			"amount": in.Amount,
			"date":   in.Date.Format(models.DateLayout),
		})
		if err != nil {
			return fmt.Errorf("failed to create transaction %d: %w", i+1, err)
		}
		log.Printf("Created transaction %d: amount=%d date=%s", tx.ID, tx.Amount, tx.Date)
	}

	log.Printf("Seeded %d transactions into %s storage", opts.count, cfg.DB.Driver)
	return nil
}

// seedViaGRPC создает транзакции на работающем сервере
func seedViaGRPC(opts options, gen *generator.TransactionGenerator) error {
	conn, err := grpc.NewClient(opts.grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", opts.grpcAddr, err)
	}
	defer conn.Close()

	client := grpcapi.NewTransactionServiceClient(conn)
	for i := 0; i < opts.count; i++ {
		in := generate(gen, opts.profile)
		req, err := structpb.NewStruct(map[string]interface{}{
			"amount": in.Amount,
			"date":   in.Date.Format(models.DateLayout),
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), grpcCallTimeout)
		resp, err := client.CreateTransaction(ctx, req)
		cancel()
		if err != nil {
			return fmt.Errorf("failed to create transaction %d: %w", i+1, err)
		}

		fields := resp.GetFields()
		log.Printf("Created transaction %.0f: amount=%.0f date=%s",
			fields["id"].GetNumberValue(), fields["amount"].GetNumberValue(), fields["date"].GetStringValue())
	}

	log.Printf("Seeded %d transactions via gRPC at %s", opts.count, opts.grpcAddr)
	return nil
}

func generate(gen *generator.TransactionGenerator, profile string) models.TransactionInput {
	if profile == "" {
		return gen.GenerateRandomInput()
	}
	return gen.GenerateInput(profile)
}
