package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-messbill/internal/config"
	"go-messbill/internal/events"
	"go-messbill/internal/messaging/kafka/consumer"
	"go-messbill/internal/salary"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const salarySeederGroup = "go-messbill-salary-seeder"

// RunConsumer seeds a zero salary record for every employee_created event.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, err := openStores(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer stores.Close()

	salaryService := salary.NewService(salary.NewRepository(stores.Salaries))

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        salarySeederGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	go consumer.ConsumeEmployeeLifecycle(ctx, reader, salaryService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
