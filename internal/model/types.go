package model

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeGameWin    TransactionType = "game_win"
	TypeGameLoss   TransactionType = "game_loss"
	TypeBonus      TransactionType = "bonus"
	TypeRefund     TransactionType = "refund"
	TypeFee        TransactionType = "fee"
)

func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TypeDeposit, TypeWithdrawal, TypeGameWin, TypeGameLoss, TypeBonus, TypeRefund, TypeFee:
		return TransactionType(s), nil
	default:
		return "", ErrInvalidTransactionType
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// IsCredit reports whether a completed transaction of this type increases
// the account balance.
func (t TransactionType) IsCredit() bool {
	switch t {
	case TypeDeposit, TypeGameWin, TypeBonus, TypeRefund:
		return true
	default:
		return false
	}
}

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusCancelled  TransactionStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is allowed.
// A failed transaction is terminal for the balance but may still be
// re-queued through the retry flow.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

type GameType string

const (
	GameSlots     GameType = "slots"
	GameBlackjack GameType = "blackjack"
	GameRoulette  GameType = "roulette"
	GamePoker     GameType = "poker"
	GameBaccarat  GameType = "baccarat"
	GameDice      GameType = "dice"
	GameLottery   GameType = "lottery"
)

func ParseGameType(s string) (GameType, error) {
	switch GameType(s) {
	case GameSlots, GameBlackjack, GameRoulette, GamePoker, GameBaccarat, GameDice, GameLottery:
		return GameType(s), nil
	default:
		return "", ErrInvalidGameType
	}
}

func (g GameType) String() string {
	return string(g)
}

type SessionState string

const (
	SessionActive    SessionState = "active"
	SessionCompleted SessionState = "completed"
	SessionCancelled SessionState = "cancelled"
)

type PaymentMethod string

const (
	MethodCreditCard    PaymentMethod = "credit_card"
	MethodDebitCard     PaymentMethod = "debit_card"
	MethodBankTransfer  PaymentMethod = "bank_transfer"
	MethodCrypto        PaymentMethod = "crypto"
	MethodSSLCommerce   PaymentMethod = "ssl_commerce"
	MethodCasinoBalance PaymentMethod = "casino_balance"
)
