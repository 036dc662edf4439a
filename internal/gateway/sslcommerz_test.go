package gateway

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"casino-ledger/internal/config"
	"casino-ledger/internal/model"
)

func testClient() *Client {
	return NewClient(config.GatewayConfig{
		StoreID:       "teststore",
		StorePassword: "testpass",
		Sandbox:       true,
		SandboxURL:    "https://sandbox.sslcommerz.com",
		LiveURL:       "https://securepay.sslcommerz.com",
	})
}

func TestClient_PaymentURL_Sandbox(t *testing.T) {
	client := testClient()
	assert.Equal(t, "https://sandbox.sslcommerz.com/gwprocess/v4/api.php", client.PaymentURL())
}

func TestClient_BuildPaymentFields(t *testing.T) {
	client := testClient()

	trans := &model.Transaction{
		TransactionID: "TXN_1",
		Amount:        decimal.RequireFromString("100.5"),
		Currency:      "USD",
	}
	acct := &model.Account{ID: 42, Email: "player@example.com"}

	fields := client.BuildPaymentFields(trans, acct, "http://localhost:8080")

	assert.Equal(t, "teststore", fields["store_id"])
	assert.Equal(t, "100.50", fields["total_amount"])
	assert.Equal(t, "USD", fields["currency"])
	assert.Equal(t, "TXN_1", fields["tran_id"])
	assert.Equal(t, "42", fields["value_a"])
	assert.Equal(t, "http://localhost:8080/api/v1/payments/ipn", fields["ipn_url"])
	assert.Len(t, fields["signature_key"], 32)
}

func TestClient_VerifyNotification(t *testing.T) {
	client := testClient()

	n := &Notification{
		TranID:   "TXN_1",
		Amount:   "100.00",
		Currency: "USD",
		Status:   StatusValid,
	}
	n.VerifySign = client.NotificationSignature(n.TranID, n.Amount, n.Currency, n.Status)

	assert.NoError(t, client.VerifyNotification(n))
}

func TestClient_VerifyNotification_RejectsTampering(t *testing.T) {
	client := testClient()

	n := &Notification{
		TranID:   "TXN_1",
		Amount:   "100.00",
		Currency: "USD",
		Status:   StatusValid,
	}
	n.VerifySign = client.NotificationSignature(n.TranID, n.Amount, n.Currency, n.Status)

	tampered := *n
	tampered.Status = StatusFailed
	assert.ErrorIs(t, client.VerifyNotification(&tampered), model.ErrInvalidSignature)

	tampered = *n
	tampered.Amount = "999.00"
	assert.ErrorIs(t, client.VerifyNotification(&tampered), model.ErrInvalidSignature)

	tampered = *n
	tampered.VerifySign = ""
	assert.ErrorIs(t, client.VerifyNotification(&tampered), model.ErrInvalidSignature)
}

func TestClient_SignatureDependsOnStorePassword(t *testing.T) {
	a := testClient()
	b := NewClient(config.GatewayConfig{
		StoreID:       "teststore",
		StorePassword: "otherpass",
		Sandbox:       true,
		SandboxURL:    "https://sandbox.sslcommerz.com",
	})

	sigA := a.NotificationSignature("TXN_1", "100.00", "USD", StatusValid)
	sigB := b.NotificationSignature("TXN_1", "100.00", "USD", StatusValid)
	assert.NotEqual(t, sigA, sigB)
}
