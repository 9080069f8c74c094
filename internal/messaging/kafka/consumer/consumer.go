package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"go-messbill/internal/events"
	salaryerrors "go-messbill/internal/salary/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// SalarySeeder creates the all-zero salary record for a new employee.
type SalarySeeder interface {
	SeedDefault(ctx context.Context, empCode, name, department string) error
}

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	salaries SalarySeeder,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleEmployeeCreated(ctx, salaries, msg, log) {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// handleEmployeeCreated reports whether the message may be committed.
// Only transient seeding failures leave it uncommitted for redelivery.
func handleEmployeeCreated(ctx context.Context, salaries SalarySeeder, msg kafkago.Message, log *zap.Logger) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode employee_created event failed", zap.Error(err))
		return true
	}
	if event.EventType != events.EmployeeCreatedEventType || event.EmpCode == "" {
		log.Warn("ignoring employee lifecycle event",
			zap.String("event_type", event.EventType),
			zap.String("emp_code", event.EmpCode),
		)
		return true
	}

	err := salaries.SeedDefault(ctx, event.EmpCode, event.EmpName, event.Department)
	if errors.Is(err, salaryerrors.ErrSalaryAlreadyExists) {
		log.Warn("salary record already exists for event, skipping",
			zap.String("request_id", event.RequestID),
			zap.String("emp_code", event.EmpCode),
		)
		return true
	}
	if err != nil {
		log.Error("seed default salary failed",
			zap.String("request_id", event.RequestID),
			zap.String("emp_code", event.EmpCode),
			zap.Error(err),
		)
		return false
	}

	log.Info("salary record seeded from employee_created event",
		zap.String("request_id", event.RequestID),
		zap.String("emp_code", event.EmpCode),
	)
	return true
}
