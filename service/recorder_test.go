package service

import (
	"errors"
	"testing"

	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTransactionRecorder_Record(t *testing.T) {
	account := &model.Account{ID: 1, Name: "Alice", AccountNumber: "AC100"}

	t.Run("holder is both payer and payee", func(t *testing.T) {
		transactionRepo := new(MockTransactionRepository)
		recorder := NewTransactionRecorder(transactionRepo)

		transactionRepo.On("CreateTransaction", mock.MatchedBy(func(tr *model.Transaction) bool {
			return tr.AccountID == 1 &&
				tr.Payer == "Alice" && tr.Payee == "Alice" &&
				tr.Kind == model.KindDeposit &&
				tr.Amount.Equal(decimal.RequireFromString("50.00"))
		})).Return(nil).Once()

		transaction, err := recorder.Record(account, model.KindDeposit, decimal.RequireFromString("50.00"))

		assert.NoError(t, err)
		assert.Equal(t, "Alice", transaction.Payer)
		assert.Equal(t, "Alice", transaction.Payee)
		transactionRepo.AssertExpectations(t)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		transactionRepo := new(MockTransactionRepository)
		recorder := NewTransactionRecorder(transactionRepo)

		storeErr := errors.New("connection reset")
		transactionRepo.On("CreateTransaction", mock.AnythingOfType("*model.Transaction")).
			Return(storeErr).Once()

		_, err := recorder.Record(account, model.KindWithdrawal, decimal.RequireFromString("10.00"))

		assert.ErrorIs(t, err, storeErr)
		transactionRepo.AssertExpectations(t)
	})
}
