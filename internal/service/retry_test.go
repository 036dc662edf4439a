package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"casino-ledger/internal/model"
	repomocks "casino-ledger/mocks/repository"
	svcmocks "casino-ledger/mocks/service"
)

func TestRetryService_ProcessDueRetries_RequeuesAll(t *testing.T) {
	ctx := context.Background()
	mockTransRepo := repomocks.NewTransactionRepository(t)
	mockSettlement := svcmocks.NewSettlementService(t)

	due := []*model.Transaction{
		{ID: 1, TransactionID: "TXN_1", Status: model.StatusFailed, RetryCount: 0, MaxRetries: 3},
		{ID: 2, TransactionID: "TXN_2", Status: model.StatusFailed, RetryCount: 2, MaxRetries: 3},
	}

	mockTransRepo.On("GetRetryableDeposits", ctx, mock.Anything, 10).Return(due, nil)
	mockSettlement.On("Retry", ctx, "TXN_1").Return(&model.Transaction{TransactionID: "TXN_1", Status: model.StatusPending, RetryCount: 1}, nil)
	mockSettlement.On("Retry", ctx, "TXN_2").Return(&model.Transaction{TransactionID: "TXN_2", Status: model.StatusPending, RetryCount: 3}, nil)

	svc := NewRetryService(mockTransRepo, mockSettlement, nil, 10, zerolog.Nop())
	err := svc.ProcessDueRetries(ctx)

	assert.NoError(t, err)
}

func TestRetryService_ProcessDueRetries_SkipsExhausted(t *testing.T) {
	ctx := context.Background()
	mockTransRepo := repomocks.NewTransactionRepository(t)
	mockSettlement := svcmocks.NewSettlementService(t)

	due := []*model.Transaction{
		{ID: 1, TransactionID: "TXN_1", Status: model.StatusFailed},
		{ID: 2, TransactionID: "TXN_2", Status: model.StatusFailed},
	}

	mockTransRepo.On("GetRetryableDeposits", ctx, mock.Anything, 10).Return(due, nil)
	mockSettlement.On("Retry", ctx, "TXN_1").Return(nil, model.ErrMaxRetriesExceeded)
	mockSettlement.On("Retry", ctx, "TXN_2").Return(&model.Transaction{TransactionID: "TXN_2", Status: model.StatusPending, RetryCount: 1}, nil)

	svc := NewRetryService(mockTransRepo, mockSettlement, nil, 10, zerolog.Nop())
	err := svc.ProcessDueRetries(ctx)

	assert.NoError(t, err)
}

func TestRetryService_ProcessDueRetries_NothingDue(t *testing.T) {
	ctx := context.Background()
	mockTransRepo := repomocks.NewTransactionRepository(t)
	mockSettlement := svcmocks.NewSettlementService(t)

	mockTransRepo.On("GetRetryableDeposits", ctx, mock.Anything, 10).Return([]*model.Transaction{}, nil)

	svc := NewRetryService(mockTransRepo, mockSettlement, nil, 10, zerolog.Nop())
	err := svc.ProcessDueRetries(ctx)

	assert.NoError(t, err)
	mockSettlement.AssertNotCalled(t, "Retry")
}
