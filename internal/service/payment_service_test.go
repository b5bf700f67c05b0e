package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

func TestComputeBalanceCountsOnlyCompletedCredits(t *testing.T) {
	debit := models.PaymentTransaction{Amount: 12000, Type: models.TransactionDebit, Status: models.PaymentCompleted}
	credit := models.PaymentTransaction{Amount: 5000, Type: models.TransactionCredit, Status: models.PaymentCompleted}

	assert.Equal(t, 7000.0, ComputeBalance([]models.PaymentTransaction{debit, credit}).Outstanding)

	credit.Status = models.PaymentPending
	assert.Equal(t, 12000.0, ComputeBalance([]models.PaymentTransaction{debit, credit}).Outstanding)

	debit.Status = models.PaymentPending
	assert.Equal(t, 12000.0, ComputeBalance([]models.PaymentTransaction{debit}).Outstanding)
}

func TestComputeBalanceFloorsAtZero(t *testing.T) {
	b := ComputeBalance([]models.PaymentTransaction{
		{Amount: 100, Type: models.TransactionDebit, Status: models.PaymentPending},
		{Amount: 400, Type: models.TransactionCredit, Status: models.PaymentCompleted},
	})

	assert.Equal(t, 0.0, b.Outstanding)
	assert.Equal(t, -300.0, b.Raw)
}

func TestPayRecordsCompletedCredit(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPaymentService(repos.payments, nil, nil)
	ctx := context.Background()

	before := svc.Balance(ctx, "U101")
	require.Equal(t, 12000.0, before.Outstanding)

	tx, err := svc.Pay(ctx, dto.PaymentRequest{StudentID: "U101", Amount: 5000, Method: "Telebirr"})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCredit, tx.Type)
	assert.Equal(t, models.PaymentCompleted, tx.Status)
	assert.Contains(t, tx.ID, "tx")

	after := svc.Balance(ctx, "U101")
	assert.Equal(t, 7000.0, after.Outstanding)
	assert.Equal(t, "U101", after.StudentID)
	assert.Len(t, svc.List(ctx, "U101"), 2)
}

func TestPayRejectsInvalidRequests(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPaymentService(repos.payments, nil, nil)
	ctx := context.Background()

	_, err := svc.Pay(ctx, dto.PaymentRequest{Amount: 0, Method: "CBE"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Pay(ctx, dto.PaymentRequest{Amount: 10, Method: "Cash"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Pay(ctx, dto.PaymentRequest{Amount: 10, Method: "System"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestPaymentGetMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewPaymentService(repos.payments, nil, nil)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
