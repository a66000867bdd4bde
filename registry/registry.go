// Package registry keeps the in-memory mirror of accounts used for lookup by
// account number during a run. The database remains the authoritative copy;
// the registry is trusted only for balances it mutated itself.
package registry

import (
	"errors"
	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Registry holds account entities for the lifetime of the process. There is
// exactly one mutator, so no locking.
type Registry struct {
	accounts     []*model.Account
	interestRate decimal.Decimal
}

// New creates a Registry with the configured yearly interest rate.
func New(interestRate float64) *Registry {
	return &Registry{
		interestRate: decimal.NewFromFloat(interestRate),
	}
}

// Warm seeds the registry with accounts loaded from the store.
func (r *Registry) Warm(accounts []*model.Account) {
	r.accounts = append(r.accounts, accounts...)
}

// Add appends an account. Uniqueness of the account number is not enforced
// here; the store's unique constraint is authoritative, and a create that
// collides there is simply never added.
func (r *Registry) Add(account *model.Account) {
	r.accounts = append(r.accounts, account)
}

// FindByAccountNumber scans for an exact account number match.
func (r *Registry) FindByAccountNumber(accountNumber string) (*model.Account, bool) {
	for _, acc := range r.accounts {
		if acc.AccountNumber == accountNumber {
			return acc, true
		}
	}
	return nil, false
}

// Remove drops the account from the mirror.
func (r *Registry) Remove(account *model.Account) {
	for i, acc := range r.accounts {
		if acc == account {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return
		}
	}
}

// Deposit increases the balance. The amount must be positive.
func (r *Registry) Deposit(account *model.Account, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	account.Balance = account.Balance.Add(amount)
	return nil
}

// Withdraw decreases the balance. A withdrawal exceeding the balance is
// rejected and leaves the balance unchanged.
func (r *Registry) Withdraw(account *model.Account, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(account.Balance) {
		return ErrInsufficientFunds
	}
	account.Balance = account.Balance.Sub(amount)
	return nil
}

// CalculateInterest returns balance * rate * months / 12. Informational only;
// nothing is applied to the balance.
func (r *Registry) CalculateInterest(account *model.Account) decimal.Decimal {
	months := decimal.NewFromInt(int64(account.Months))
	return account.Balance.Mul(r.interestRate).Mul(months).Div(decimal.NewFromInt(12)).Round(2)
}

// Len reports how many accounts are mirrored.
func (r *Registry) Len() int {
	return len(r.accounts)
}
