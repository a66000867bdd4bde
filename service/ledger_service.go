package service

import (
	"database/sql"
	"errors"
	"fmt"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/registry"
	"go-bank-ledger/repository"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrDuplicateAccountNumber = errors.New("an account with this number already exists")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

func isPqError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}

// LedgerService orchestrates the registry mirror, the durable store and the
// transaction recorder. All operations run on the single operator goroutine.
type LedgerService struct {
	reg             *registry.Registry
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	recorder        *TransactionRecorder
}

func NewLedgerService(reg *registry.Registry, accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository) *LedgerService {
	return &LedgerService{
		reg:             reg,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		recorder:        NewTransactionRecorder(transactionRepo),
	}
}

// WarmRegistry loads every stored account into the in-memory mirror so that
// accounts created in earlier runs stay reachable.
func (s *LedgerService) WarmRegistry() error {
	accounts, err := s.accountRepo.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("could not load accounts into registry: %w", err)
	}
	s.reg.Warm(accounts)
	logger.Log.WithField("accounts", len(accounts)).Info("Registry warmed from store")
	return nil
}

// OpenAccount creates an account in the store and mirrors it. On an account
// number collision the constructed entity is discarded, leaving the mirror
// untouched.
func (s *LedgerService) OpenAccount(name, accountNumber string, initialBalance decimal.Decimal, months int) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"name":           name,
		"account_number": accountNumber,
	})
	log.Info("Opening a new account")

	if initialBalance.IsNegative() {
		return nil, ErrInvalidAmount
	}

	account := &model.Account{
		Name:          name,
		AccountNumber: accountNumber,
		Balance:       initialBalance,
		Months:        months,
	}

	if err := s.accountRepo.CreateAccount(account); err != nil {
		if isPqError(err, pqUniqueViolation) {
			return nil, ErrDuplicateAccountNumber
		}
		return nil, fmt.Errorf("could not create account: %w", err)
	}

	s.reg.Add(account)
	log.WithField("account_id", account.ID).Info("Account opened")
	return account, nil
}

// Deposit increases the balance, persists it, then records history. A failed
// history append is logged and reported but does not undo the already
// persisted balance; the store's balance and history can diverge here.
func (s *LedgerService) Deposit(accountNumber string, amount decimal.Decimal) (*model.Account, error) {
	account, err := s.lookup(accountNumber)
	if err != nil {
		return nil, err
	}

	if err := s.reg.Deposit(account, amount); err != nil {
		return nil, translateRegistryError(err)
	}

	if err := s.accountRepo.UpdateBalance(account.ID, account.Balance); err != nil {
		account.Balance = account.Balance.Sub(amount)
		return nil, translateStoreError(err)
	}

	if _, err := s.recorder.Record(account, model.KindDeposit, amount); err != nil {
		logger.Log.WithError(err).Warn("Balance updated but history row could not be recorded")
	}

	return account, nil
}

// Withdraw decreases the balance if funds suffice, persists it, then records
// history with the same non-rollback policy as Deposit.
func (s *LedgerService) Withdraw(accountNumber string, amount decimal.Decimal) (*model.Account, error) {
	account, err := s.lookup(accountNumber)
	if err != nil {
		return nil, err
	}

	if err := s.reg.Withdraw(account, amount); err != nil {
		return nil, translateRegistryError(err)
	}

	if err := s.accountRepo.UpdateBalance(account.ID, account.Balance); err != nil {
		account.Balance = account.Balance.Add(amount)
		return nil, translateStoreError(err)
	}

	if _, err := s.recorder.Record(account, model.KindWithdrawal, amount); err != nil {
		logger.Log.WithError(err).Warn("Balance updated but history row could not be recorded")
	}

	return account, nil
}

// Balance is a registry read only.
func (s *LedgerService) Balance(accountNumber string) (*model.Account, error) {
	return s.lookup(accountNumber)
}

// History fetches the stored transaction rows for the account, oldest first.
func (s *LedgerService) History(accountNumber string) ([]*model.Transaction, error) {
	account, err := s.lookup(accountNumber)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetTransactionsByAccountID(account.ID)
	if err != nil {
		return nil, fmt.Errorf("could not load transaction history: %w", err)
	}
	return transactions, nil
}

// InterestEstimate returns the interest the account would earn over its term.
func (s *LedgerService) InterestEstimate(accountNumber string) (decimal.Decimal, error) {
	account, err := s.lookup(accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return s.reg.CalculateInterest(account), nil
}

// CloseAccount deletes the account and its owned history from the store, then
// drops it from the mirror.
func (s *LedgerService) CloseAccount(accountNumber string) error {
	account, err := s.lookup(accountNumber)
	if err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(account.ID); err != nil {
		return translateStoreError(err)
	}

	s.reg.Remove(account)
	logger.Log.WithFields(logrus.Fields{
		"account_id":     account.ID,
		"account_number": account.AccountNumber,
	}).Info("Account closed")
	return nil
}

// lookup resolves an account number via the mirror, falling back to the store
// and mirroring on first touch.
func (s *LedgerService) lookup(accountNumber string) (*model.Account, error) {
	if account, ok := s.reg.FindByAccountNumber(accountNumber); ok {
		return account, nil
	}

	account, err := s.accountRepo.GetAccountByNumber(accountNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("could not look up account: %w", err)
	}

	s.reg.Add(account)
	return account, nil
}

func translateRegistryError(err error) error {
	switch {
	case errors.Is(err, registry.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, registry.ErrInvalidAmount):
		return ErrInvalidAmount
	default:
		return err
	}
}

func translateStoreError(err error) error {
	if errors.Is(err, sql.ErrNoRows) || isPqError(err, pqForeignKeyViolation) {
		return ErrAccountNotFound
	}
	return err
}
