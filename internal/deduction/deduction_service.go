package deduction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	deductionerrors "go-messbill/internal/deduction/errors"
	"go-messbill/internal/recordstore"
	"go-messbill/internal/shared/contextutil"
	"go-messbill/internal/shared/counter"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const idPrefix = "TXN"

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	GetAll(ctx context.Context) ([]DeductionResponse, error)
	GetByTxnNo(ctx context.Context, txnNo string) (DeductionResponse, error)
	Update(ctx context.Context, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, txnNo string) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{
		repo:    repo,
		counter: counterRepo,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	txnNo := strings.TrimSpace(req.TxnNo)
	if txnNo == "" {
		n, err := s.counter.GetNextValue(ctx, counter.TypeDeductionID)
		if err != nil {
			log.Error("create deduction txnno failed", zap.Error(err))
			return DeductionResponse{}, fmt.Errorf("generate deduction txnno: %w", err)
		}
		txnNo = counter.FormatID(idPrefix, n)
	} else {
		existing, err := s.repo.FindByTxnNo(ctx, txnNo)
		if err != nil && !errors.Is(err, recordstore.ErrNotFound) {
			return DeductionResponse{}, err
		}
		if existing != nil {
			return DeductionResponse{}, deductionerrors.ErrDeductionAlreadyExists
		}
	}

	now := s.now()
	rec := fromRequest(UpdateDeductionRequest(req))
	rec.TxnNo = txnNo
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := s.repo.Create(ctx, rec); err != nil {
		log.Error("create deduction persist failed", zap.String("txn_no", txnNo), zap.Error(err))
		return DeductionResponse{}, mapRepositoryError(err)
	}

	log.Info("create deduction success", zap.String("txn_no", txnNo), zap.String("emp_code", rec.EmpCode))
	return mapToResponse(*rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]DeductionResponse, error) {
	recs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]DeductionResponse, len(recs))
	for i, r := range recs {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByTxnNo(ctx context.Context, txnNo string) (DeductionResponse, error) {
	rec, err := s.repo.FindByTxnNo(ctx, txnNo)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, req UpdateDeductionRequest) (DeductionResponse, error) {
	rec := fromRequest(req)
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}

	updated, err := s.repo.FindByTxnNo(ctx, req.TxnNo)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, txnNo string) error {
	return mapRepositoryError(s.repo.Delete(ctx, txnNo))
}

func fromRequest(req UpdateDeductionRequest) *DeductionRecord {
	rec := &DeductionRecord{
		TxnNo:            req.TxnNo,
		Date:             req.Date,
		EmpCode:          req.EmpCode,
		Name:             req.Name,
		Mess:             req.Mess,
		Uniform:          req.Uniform,
		House:            req.House,
		Tax:              req.Tax,
		AdditionalColumn: req.AdditionalColumn,
	}
	rec.Total = total(rec.Mess, rec.Uniform, rec.House, rec.Tax)
	return rec
}

func total(amounts ...*float64) float64 {
	sum := decimal.Zero
	for _, a := range amounts {
		if a != nil {
			sum = sum.Add(decimal.NewFromFloat(*a))
		}
	}
	return sum.Round(2).InexactFloat64()
}

func mapToResponse(rec DeductionRecord) DeductionResponse {
	resp := DeductionResponse{
		TxnNo:            rec.TxnNo,
		Date:             rec.Date,
		EmpCode:          rec.EmpCode,
		Name:             rec.Name,
		Mess:             rec.Mess,
		Uniform:          rec.Uniform,
		House:            rec.House,
		Tax:              rec.Tax,
		AdditionalColumn: rec.AdditionalColumn,
		Total:            rec.Total,
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !rec.UpdatedAt.IsZero() {
		resp.UpdatedAt = rec.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}
