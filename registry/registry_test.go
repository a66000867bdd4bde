package registry

import (
	"testing"

	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestAccount(number string, balance string) *model.Account {
	bal, _ := decimal.NewFromString(balance)
	return &model.Account{
		ID:            1,
		Name:          "Alice",
		AccountNumber: number,
		Balance:       bal,
		Months:        12,
	}
}

func TestRegistry_FindByAccountNumber(t *testing.T) {
	reg := New(0.05)
	account := newTestAccount("AC100", "100.00")
	reg.Add(account)

	t.Run("exact match", func(t *testing.T) {
		found, ok := reg.FindByAccountNumber("AC100")
		assert.True(t, ok)
		assert.Same(t, account, found)
	})

	t.Run("unknown number", func(t *testing.T) {
		_, ok := reg.FindByAccountNumber("AC999")
		assert.False(t, ok)
	})

	t.Run("no partial match", func(t *testing.T) {
		_, ok := reg.FindByAccountNumber("AC10")
		assert.False(t, ok)
	})
}

func TestRegistry_Remove(t *testing.T) {
	reg := New(0.05)
	account := newTestAccount("AC100", "100.00")
	other := newTestAccount("AC200", "50.00")
	reg.Add(account)
	reg.Add(other)

	reg.Remove(account)

	_, ok := reg.FindByAccountNumber("AC100")
	assert.False(t, ok)
	_, ok = reg.FindByAccountNumber("AC200")
	assert.True(t, ok)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Deposit(t *testing.T) {
	reg := New(0.05)
	account := newTestAccount("AC100", "100.00")

	t.Run("success", func(t *testing.T) {
		err := reg.Deposit(account, decimal.NewFromFloat(50))
		assert.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(150)), "balance should be 150, got %s", account.Balance)
	})

	t.Run("zero amount", func(t *testing.T) {
		err := reg.Deposit(account, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(150)))
	})

	t.Run("negative amount", func(t *testing.T) {
		err := reg.Deposit(account, decimal.NewFromFloat(-10))
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(150)))
	})
}

func TestRegistry_Withdraw(t *testing.T) {
	reg := New(0.05)

	t.Run("success", func(t *testing.T) {
		account := newTestAccount("AC100", "100.00")
		err := reg.Withdraw(account, decimal.NewFromFloat(40))
		assert.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(60)))
	})

	t.Run("insufficient funds leaves balance unchanged", func(t *testing.T) {
		account := newTestAccount("AC100", "100.00")
		err := reg.Withdraw(account, decimal.NewFromFloat(100.01))
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(100)))
	})

	t.Run("full balance withdrawal reaches zero", func(t *testing.T) {
		account := newTestAccount("AC100", "100.00")
		err := reg.Withdraw(account, decimal.NewFromFloat(100))
		assert.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("non-positive amount", func(t *testing.T) {
		account := newTestAccount("AC100", "100.00")
		err := reg.Withdraw(account, decimal.Zero)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.True(t, account.Balance.Equal(decimal.NewFromFloat(100)))
	})
}

// Deposit followed by an equal withdrawal returns the balance to its original
// value.
func TestRegistry_DepositWithdrawRoundTrip(t *testing.T) {
	reg := New(0.05)
	account := newTestAccount("AC100", "123.45")
	amount := decimal.NewFromFloat(67.89)

	assert.NoError(t, reg.Deposit(account, amount))
	assert.NoError(t, reg.Withdraw(account, amount))
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("123.45")))
}

func TestRegistry_CalculateInterest(t *testing.T) {
	// 1000 * 0.05 * 12 / 12 = 50.00
	reg := New(0.05)
	account := newTestAccount("AC100", "1000.00")
	account.Months = 12

	interest := reg.CalculateInterest(account)
	assert.True(t, interest.Equal(decimal.NewFromFloat(50)), "expected 50, got %s", interest)

	// Half a term halves the interest.
	account.Months = 6
	interest = reg.CalculateInterest(account)
	assert.True(t, interest.Equal(decimal.NewFromFloat(25)), "expected 25, got %s", interest)

	// Interest is informational: the balance is untouched.
	assert.True(t, account.Balance.Equal(decimal.NewFromFloat(1000)))
}

func TestRegistry_Warm(t *testing.T) {
	reg := New(0.05)
	reg.Warm([]*model.Account{
		newTestAccount("AC100", "10.00"),
		newTestAccount("AC200", "20.00"),
	})

	assert.Equal(t, 2, reg.Len())
	_, ok := reg.FindByAccountNumber("AC200")
	assert.True(t, ok)
}
