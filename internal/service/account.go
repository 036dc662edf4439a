package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"casino-ledger/internal/auth"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

type AccountServiceImpl struct {
	accountRepo repository.AccountRepository
	tokens      *auth.TokenIssuer
	logger      zerolog.Logger
}

func NewAccountService(accountRepo repository.AccountRepository, tokens *auth.TokenIssuer, logger zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		tokens:      tokens,
		logger:      logger,
	}
}

var _ AccountService = (*AccountServiceImpl)(nil)

func (s *AccountServiceImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}

	acct := &model.Account{
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Balance:      decimal.Zero,
		Currency:     currency,
		IsActive:     true,
		TotalWagered: decimal.Zero,
		TotalWon:     decimal.Zero,
	}

	if err := s.accountRepo.CreateAccount(ctx, acct); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(acct.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", acct.ID).Str("email", acct.Email).Msg("account registered")

	return &model.AuthResponse{Token: token, Account: acct}, nil
}

func (s *AccountServiceImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	acct, err := s.accountRepo.GetAccountByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	if acct.IsLocked {
		return nil, model.ErrAccountLocked
	}
	if !acct.IsActive {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(acct.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{Token: token, Account: acct}, nil
}

func (s *AccountServiceImpl) GetAccount(ctx context.Context, userID int64) (*model.Account, error) {
	return s.accountRepo.GetAccount(ctx, userID)
}
