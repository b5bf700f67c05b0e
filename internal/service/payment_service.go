package service

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type paymentRepository interface {
	List(ctx context.Context) []models.PaymentTransaction
	FindByID(ctx context.Context, id string) (models.PaymentTransaction, bool)
	Save(ctx context.Context, tx models.PaymentTransaction) error
	Delete(ctx context.Context, id string) error
	ListByStudent(ctx context.Context, studentID string) []models.PaymentTransaction
}

// PaymentService keeps the fee ledger.
type PaymentService struct {
	repo      paymentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

func NewPaymentService(repo paymentRepository, validate *validator.Validate, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PaymentService{repo: repo, validator: validate, logger: logger}
}

// List returns the ledger, or one student's part of it.
func (s *PaymentService) List(ctx context.Context, studentID string) []models.PaymentTransaction {
	if studentID != "" {
		return s.repo.ListByStudent(ctx, studentID)
	}
	return s.repo.List(ctx)
}

func (s *PaymentService) Get(ctx context.Context, id string) (models.PaymentTransaction, error) {
	tx, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.PaymentTransaction{}, appErrors.Clone(appErrors.ErrNotFound, "transaction not found")
	}
	return tx, nil
}

// Create records a ledger entry under a generated id.
func (s *PaymentService) Create(ctx context.Context, tx models.PaymentTransaction) (models.PaymentTransaction, error) {
	tx.ID = newID("tx")
	if tx.Date == "" {
		tx.Date = today()
	}
	return s.Save(ctx, tx.ID, tx)
}

// Save validates and upserts the transaction with id.
func (s *PaymentService) Save(ctx context.Context, id string, tx models.PaymentTransaction) (models.PaymentTransaction, error) {
	tx.ID = id
	if err := s.validator.Struct(tx); err != nil {
		return models.PaymentTransaction{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid transaction payload")
	}
	if err := s.repo.Save(ctx, tx); err != nil {
		return models.PaymentTransaction{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save transaction")
	}
	return tx, nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete transaction")
	}
	return nil
}

// Pay records a completed credit paid through Telebirr or CBE.
func (s *PaymentService) Pay(ctx context.Context, req dto.PaymentRequest) (models.PaymentTransaction, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.PaymentTransaction{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payment payload")
	}
	description := req.Description
	if description == "" {
		description = "Tuition Payment via " + req.Method
	}
	tx, err := s.Create(ctx, models.PaymentTransaction{
		Description: description,
		Amount:      req.Amount,
		Method:      models.PaymentMethod(req.Method),
		Type:        models.TransactionCredit,
		Status:      models.PaymentCompleted,
		StudentID:   req.StudentID,
	})
	if err != nil {
		return models.PaymentTransaction{}, err
	}
	s.logger.Info("payment recorded", zap.String("tx_id", tx.ID), zap.Float64("amount", tx.Amount), zap.String("method", req.Method))
	return tx, nil
}

// Balance reports what is still owed, for one student or the whole ledger.
func (s *PaymentService) Balance(ctx context.Context, studentID string) dto.Balance {
	balance := ComputeBalance(s.List(ctx, studentID))
	balance.StudentID = studentID
	return balance
}

// ComputeBalance sums every debit regardless of status and subtracts only
// completed credits. Outstanding is floored at zero; Raw keeps the sign.
func ComputeBalance(txs []models.PaymentTransaction) dto.Balance {
	var b dto.Balance
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionDebit:
			b.Debits += tx.Amount
		case models.TransactionCredit:
			if tx.Status == models.PaymentCompleted {
				b.Credits += tx.Amount
			}
		}
	}
	b.Raw = b.Debits - b.Credits
	b.Outstanding = math.Max(b.Raw, 0)
	return b
}
