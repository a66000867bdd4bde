package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	Months        int             `json:"months"`
	CreatedAt     time.Time       `json:"created_at"`
}
