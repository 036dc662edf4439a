package model

import "errors"

var (
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrDuplicateTransaction   = errors.New("duplicate transaction id")
	ErrInvalidState           = errors.New("invalid state")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidGameType        = errors.New("invalid game type")
	ErrInvalidBetAmount       = errors.New("bet amount outside allowed bounds")
	ErrAccountNotFound        = errors.New("account not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrSessionNotFound        = errors.New("game session not found")
	ErrNotReversible          = errors.New("transaction is not reversible")
	ErrAlreadyTerminal        = errors.New("transaction already in terminal status")
	ErrMaxRetriesExceeded     = errors.New("max retries exceeded")
	ErrInvalidSignature       = errors.New("invalid gateway signature")
	ErrStorageUnavailable     = errors.New("storage temporarily unavailable")
	ErrAccountNotVerified     = errors.New("account verification required")
	ErrAccountLocked          = errors.New("account is locked")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailTaken             = errors.New("email already registered")
)
