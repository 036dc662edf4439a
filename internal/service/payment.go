package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"casino-ledger/internal/gateway"
	"casino-ledger/internal/metrics"
	"casino-ledger/internal/model"
)

// ErrUnknownTransaction marks a gateway callback referencing a
// transaction id the ledger never issued.
var ErrUnknownTransaction = errors.New("gateway notification references unknown transaction")

type PaymentServiceImpl struct {
	settlement SettlementService
	gateway    *gateway.Client
	metrics    *metrics.Metrics
	logger     zerolog.Logger

	callbackBase string
	minDeposit   decimal.Decimal
	maxDeposit   decimal.Decimal
}

func NewPaymentService(
	settlement SettlementService,
	gw *gateway.Client,
	m *metrics.Metrics,
	logger zerolog.Logger,
	callbackBase string,
	minDeposit, maxDeposit decimal.Decimal,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		settlement:   settlement,
		gateway:      gw,
		metrics:      m,
		logger:       logger,
		callbackBase: callbackBase,
		minDeposit:   minDeposit,
		maxDeposit:   maxDeposit,
	}
}

var _ PaymentService = (*PaymentServiceImpl)(nil)

// InitiateDeposit records a pending deposit and returns the signed
// payment fields the client posts to the gateway. The balance is not
// touched until the gateway confirms.
func (s *PaymentServiceImpl) InitiateDeposit(ctx context.Context, acct *model.Account, req *model.DepositRequest) (*model.DepositResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidAmount, err.Error())
	}
	if amount.LessThan(s.minDeposit) || amount.GreaterThan(s.maxDeposit) {
		return nil, fmt.Errorf("%w: deposit must be between %s and %s", model.ErrInvalidAmount,
			s.minDeposit.StringFixed(2), s.maxDeposit.StringFixed(2))
	}

	trans, err := s.settlement.CreatePending(ctx, acct.ID, amount, model.SettlementParams{
		TransactionID: NewTransactionID("TXN"),
		Type:          model.TypeDeposit,
		Description:   "Deposit via " + gateway.ProviderName,
		Method:        model.MethodSSLCommerce,
		Provider:      gateway.ProviderName,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("transaction_id", trans.TransactionID).
		Int64("user_id", acct.ID).
		Str("amount", amount.StringFixed(2)).
		Msg("deposit initiated")

	return &model.DepositResponse{
		TransactionID: trans.TransactionID,
		PaymentURL:    s.gateway.PaymentURL(),
		PaymentData:   s.gateway.BuildPaymentFields(trans, acct, s.callbackBase),
	}, nil
}

// HandleNotification reconciles a gateway callback with the ledger.
// The signature is verified before anything else is trusted; replays of
// an already-settled transaction are no-ops that return the stored row.
func (s *PaymentServiceImpl) HandleNotification(ctx context.Context, n *gateway.Notification) (*model.Transaction, error) {
	if err := s.gateway.VerifyNotification(n); err != nil {
		s.metrics.ObserveGatewayNotification("invalid_signature")
		s.logger.Warn().
			Str("tran_id", n.TranID).
			Str("status", n.Status).
			Msg("gateway notification failed signature check")
		return nil, err
	}

	if _, err := s.settlement.GetTransaction(ctx, n.TranID); err != nil {
		if errors.Is(err, model.ErrTransactionNotFound) {
			s.metrics.ObserveGatewayNotification("unknown_transaction")
			return nil, fmt.Errorf("%w: %s", ErrUnknownTransaction, n.TranID)
		}
		return nil, err
	}

	var (
		trans *model.Transaction
		err   error
	)
	switch n.Status {
	case gateway.StatusValid:
		trans, err = s.settlement.SettleDeposit(ctx, n.TranID, n.ValID)
	case gateway.StatusCancelled:
		trans, err = s.settlement.CancelTransaction(ctx, n.TranID)
	default:
		// FAILED and anything unrecognized.
		reason := n.FailReason
		if reason == "" {
			reason = "gateway reported status " + n.Status
		}
		trans, err = s.settlement.FailTransaction(ctx, n.TranID, reason)
	}
	if err != nil {
		s.metrics.ObserveGatewayNotification("error")
		return nil, err
	}

	s.metrics.ObserveGatewayNotification("processed")
	s.logger.Info().
		Str("tran_id", n.TranID).
		Str("gateway_status", n.Status).
		Str("ledger_status", string(trans.Status)).
		Msg("gateway notification reconciled")

	return trans, nil
}
