package service

import (
	"go-bank-ledger/model"
	"go-bank-ledger/repository"

	"github.com/shopspring/decimal"
)

// TransactionRecorder bridges a successful balance mutation to durable history.
type TransactionRecorder struct {
	transactionRepo repository.ITransactionRepository
}

func NewTransactionRecorder(transactionRepo repository.ITransactionRepository) *TransactionRecorder {
	return &TransactionRecorder{transactionRepo: transactionRepo}
}

// Record appends a history row for the account. This ledger does not model
// transfers between distinct parties, so the account holder is recorded as
// both payer and payee.
func (r *TransactionRecorder) Record(account *model.Account, kind model.TransactionKind, amount decimal.Decimal) (*model.Transaction, error) {
	transaction := &model.Transaction{
		AccountID: account.ID,
		Payer:     account.Name,
		Payee:     account.Name,
		Kind:      kind,
		Amount:    amount,
	}

	if err := r.transactionRepo.CreateTransaction(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}
