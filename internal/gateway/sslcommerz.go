// Package gateway implements the SSLCommerz-style payment gateway
// contract: signed payment initiation payloads plus verification of the
// redirect and IPN notifications the gateway sends back. The signature
// input orderings are part of the provider's documented contract and
// must not be rearranged.
package gateway

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"casino-ledger/internal/config"
	"casino-ledger/internal/model"
)

const ProviderName = "ssl_commerce"

// Notification is a gateway callback, either the browser redirect or the
// out-of-band IPN. Both carry the transaction id the ledger generated.
type Notification struct {
	TranID     string `form:"tran_id" json:"tran_id"`
	Status     string `form:"status" json:"status"`
	ValID      string `form:"val_id" json:"val_id"`
	Amount     string `form:"amount" json:"amount"`
	Currency   string `form:"currency" json:"currency"`
	BankTranID string `form:"bank_tran_id" json:"bank_tran_id"`
	CardType   string `form:"card_type" json:"card_type"`
	StoreID    string `form:"store_id" json:"store_id"`
	VerifySign string `form:"verify_sign" json:"verify_sign"`
	FailReason string `form:"fail_reason" json:"fail_reason"`
}

// Gateway statuses. Anything else is treated as failure.
const (
	StatusValid     = "VALID"
	StatusFailed    = "FAILED"
	StatusCancelled = "CANCELLED"
)

type Client struct {
	storeID       string
	storePassword string
	baseURL       string
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		storeID:       cfg.StoreID,
		storePassword: cfg.StorePassword,
		baseURL:       cfg.BaseURL(),
	}
}

// PaymentURL is the gateway endpoint the browser posts the signed
// payment fields to.
func (c *Client) PaymentURL() string {
	return c.baseURL + "/gwprocess/v4/api.php"
}

// BuildPaymentFields assembles the signed initiation payload for a
// pending deposit. callbackBase is this server's public base URL.
func (c *Client) BuildPaymentFields(trans *model.Transaction, acct *model.Account, callbackBase string) map[string]string {
	successURL := callbackBase + "/api/v1/payments/success"
	failURL := callbackBase + "/api/v1/payments/fail"
	cancelURL := callbackBase + "/api/v1/payments/cancel"
	ipnURL := callbackBase + "/api/v1/payments/ipn"

	fields := map[string]string{
		"store_id":         c.storeID,
		"total_amount":     trans.Amount.StringFixed(2),
		"currency":         trans.Currency,
		"tran_id":          trans.TransactionID,
		"product_category": "casino_gaming",
		"cus_email":        acct.Email,
		"success_url":      successURL,
		"fail_url":         failURL,
		"cancel_url":       cancelURL,
		"ipn_url":          ipnURL,
		"value_a":          fmt.Sprintf("%d", acct.ID),
		"value_b":          "deposit",
	}

	// Documented ordering: store_id, total_amount, currency, tran_id,
	// success_url, fail_url, cancel_url, ipn_url, value_a, value_b.
	hashInput := fields["store_id"] + fields["total_amount"] + fields["currency"] + fields["tran_id"] +
		successURL + failURL + cancelURL + ipnURL + fields["value_a"] + fields["value_b"]
	fields["signature_key"] = md5Hex(hashInput)

	return fields
}

// VerifyNotification authenticates a callback before it is trusted.
// The provider computes verify_sign over store_id, tran_id, amount,
// currency, status and the md5 of the store password, in that order.
func (c *Client) VerifyNotification(n *Notification) error {
	expected := c.NotificationSignature(n.TranID, n.Amount, n.Currency, n.Status)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.VerifySign)) != 1 {
		return model.ErrInvalidSignature
	}
	return nil
}

// NotificationSignature computes the provider-side verify_sign value.
// Exposed for tests and sandbox tooling.
func (c *Client) NotificationSignature(tranID, amount, currency, status string) string {
	return md5Hex(c.storeID + tranID + amount + currency + status + md5Hex(c.storePassword))
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
