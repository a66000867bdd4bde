package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the operation recorded in the ledger history.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "Deposit"
	KindWithdrawal TransactionKind = "Withdrawal"
)

type Transaction struct {
	ID        int             `json:"id"`
	AccountID int             `json:"account_id"`
	Payer     string          `json:"payer"`
	Payee     string          `json:"payee"`
	Kind      TransactionKind `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
