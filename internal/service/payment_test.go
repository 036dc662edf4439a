package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"casino-ledger/internal/config"
	"casino-ledger/internal/gateway"
	"casino-ledger/internal/model"
	svcmocks "casino-ledger/mocks/service"
)

func newPaymentFixture(t *testing.T) (*PaymentServiceImpl, *svcmocks.SettlementService, *gateway.Client) {
	mockSettlement := svcmocks.NewSettlementService(t)

	gwCfg := config.GatewayConfig{
		StoreID:       "teststore",
		StorePassword: "testpass",
		Sandbox:       true,
		SandboxURL:    "https://sandbox.sslcommerz.com",
	}
	client := gateway.NewClient(gwCfg)

	svc := NewPaymentService(mockSettlement, client, nil, zerolog.Nop(), "http://localhost:8080",
		decimal.NewFromInt(10), decimal.NewFromInt(100000))
	return svc, mockSettlement, client
}

func signedNotification(client *gateway.Client, tranID, amount, status string) *gateway.Notification {
	n := &gateway.Notification{
		TranID:   tranID,
		Amount:   amount,
		Currency: "USD",
		Status:   status,
		ValID:    "VAL001",
	}
	n.VerifySign = client.NotificationSignature(n.TranID, n.Amount, n.Currency, n.Status)
	return n
}

func TestPaymentService_InitiateDeposit_Success(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, _ := newPaymentFixture(t)

	acct := &model.Account{ID: 1, Email: "player@example.com", Currency: "USD"}

	mockSettlement.On("CreatePending", ctx, int64(1), decimal.NewFromInt(100), mock.MatchedBy(func(p model.SettlementParams) bool {
		return p.Type == model.TypeDeposit && p.Provider == gateway.ProviderName
	})).Return(&model.Transaction{
		TransactionID: "TXN_1",
		UserID:        1,
		Amount:        decimal.NewFromInt(100),
		Currency:      "USD",
		Status:        model.StatusPending,
	}, nil)

	resp, err := svc.InitiateDeposit(ctx, acct, &model.DepositRequest{Amount: "100"})

	assert.NoError(t, err)
	assert.Equal(t, "TXN_1", resp.TransactionID)
	assert.Equal(t, "https://sandbox.sslcommerz.com/gwprocess/v4/api.php", resp.PaymentURL)
	assert.Equal(t, "TXN_1", resp.PaymentData["tran_id"])
	assert.Equal(t, "100.00", resp.PaymentData["total_amount"])
	assert.NotEmpty(t, resp.PaymentData["signature_key"])
}

func TestPaymentService_InitiateDeposit_AmountBelowMinimum(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, _ := newPaymentFixture(t)

	acct := &model.Account{ID: 1, Email: "player@example.com", Currency: "USD"}

	resp, err := svc.InitiateDeposit(ctx, acct, &model.DepositRequest{Amount: "5"})

	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Nil(t, resp)
	mockSettlement.AssertNotCalled(t, "CreatePending")
}

func TestPaymentService_HandleNotification_ValidSettlesDeposit(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, client := newPaymentFixture(t)

	n := signedNotification(client, "TXN_1", "100.00", gateway.StatusValid)

	mockSettlement.On("GetTransaction", ctx, "TXN_1").Return(&model.Transaction{
		TransactionID: "TXN_1",
		UserID:        1,
		Status:        model.StatusPending,
	}, nil)
	mockSettlement.On("SettleDeposit", ctx, "TXN_1", "VAL001").Return(&model.Transaction{
		TransactionID: "TXN_1",
		UserID:        1,
		Status:        model.StatusCompleted,
		BalanceAfter:  decimal.NewFromInt(120),
	}, nil)

	trans, err := svc.HandleNotification(ctx, n)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, trans.Status)
}

func TestPaymentService_HandleNotification_UnknownTransaction(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, client := newPaymentFixture(t)

	n := signedNotification(client, "TXN_X", "100.00", gateway.StatusValid)

	mockSettlement.On("GetTransaction", ctx, "TXN_X").Return(nil, model.ErrTransactionNotFound)

	trans, err := svc.HandleNotification(ctx, n)

	assert.ErrorIs(t, err, ErrUnknownTransaction)
	assert.Nil(t, trans)
	mockSettlement.AssertNotCalled(t, "SettleDeposit")
	mockSettlement.AssertNotCalled(t, "FailTransaction")
}

func TestPaymentService_HandleNotification_InvalidSignature(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, client := newPaymentFixture(t)

	n := signedNotification(client, "TXN_1", "100.00", gateway.StatusValid)
	n.VerifySign = "forged"

	trans, err := svc.HandleNotification(ctx, n)

	assert.ErrorIs(t, err, model.ErrInvalidSignature)
	assert.Nil(t, trans)
	mockSettlement.AssertNotCalled(t, "GetTransaction")
	mockSettlement.AssertNotCalled(t, "SettleDeposit")
}

func TestPaymentService_HandleNotification_TamperedAmountRejected(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, client := newPaymentFixture(t)

	n := signedNotification(client, "TXN_1", "100.00", gateway.StatusValid)
	n.Amount = "999.00"

	trans, err := svc.HandleNotification(ctx, n)

	assert.ErrorIs(t, err, model.ErrInvalidSignature)
	assert.Nil(t, trans)
	mockSettlement.AssertNotCalled(t, "SettleDeposit")
}

func TestPaymentService_HandleNotification_FailedMarksFailed(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, client := newPaymentFixture(t)

	n := signedNotification(client, "TXN_2", "100.00", gateway.StatusFailed)
	n.FailReason = "card declined"

	mockSettlement.On("GetTransaction", ctx, "TXN_2").Return(&model.Transaction{
		TransactionID: "TXN_2",
		UserID:        1,
		Status:        model.StatusPending,
	}, nil)
	mockSettlement.On("FailTransaction", ctx, "TXN_2", "card declined").Return(&model.Transaction{
		TransactionID: "TXN_2",
		UserID:        1,
		Status:        model.StatusFailed,
	}, nil)

	trans, err := svc.HandleNotification(ctx, n)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusFailed, trans.Status)
	mockSettlement.AssertNotCalled(t, "SettleDeposit")
}

func TestPaymentService_HandleNotification_CancelledMarksCancelled(t *testing.T) {
	ctx := context.Background()
	svc, mockSettlement, client := newPaymentFixture(t)

	n := signedNotification(client, "TXN_3", "100.00", gateway.StatusCancelled)

	mockSettlement.On("GetTransaction", ctx, "TXN_3").Return(&model.Transaction{
		TransactionID: "TXN_3",
		UserID:        1,
		Status:        model.StatusPending,
	}, nil)
	mockSettlement.On("CancelTransaction", ctx, "TXN_3").Return(&model.Transaction{
		TransactionID: "TXN_3",
		UserID:        1,
		Status:        model.StatusCancelled,
	}, nil)

	trans, err := svc.HandleNotification(ctx, n)

	assert.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, trans.Status)
}
