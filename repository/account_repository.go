package repository

import (
	"database/sql"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccountByNumber(accountNumber string) (*model.Account, error)
	GetAllAccounts() ([]*model.Account, error)
	UpdateBalance(accountID int, balance decimal.Decimal) error
	DeleteAccount(accountID int) error
}

// AccountRepository implements IAccountRepository over Postgres.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

// CreateAccount adds a new account to the database. A collision on the unique
// account_number column surfaces as a *pq.Error with the unique_violation code,
// which the service layer translates.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"name":           account.Name,
		"account_number": account.AccountNumber,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (name, account_number, balance, months) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.DB.QueryRow(query, account.Name, account.AccountNumber, account.Balance, account.Months).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// GetAccountByNumber retrieves a single account by its account number.
// sql.ErrNoRows passes through for the caller to translate.
func (r *AccountRepository) GetAccountByNumber(accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account by number")

	account := &model.Account{}
	query := `SELECT id, name, account_number, balance, months, created_at FROM accounts WHERE account_number = $1`
	err := r.DB.QueryRow(query, accountNumber).Scan(&account.ID, &account.Name, &account.AccountNumber, &account.Balance, &account.Months, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found")
		} else {
			log.WithError(err).Error("Failed to execute get account by number query")
		}
		return nil, err
	}
	return account, nil
}

// GetAllAccounts retrieves every account, used to warm the registry at startup.
func (r *AccountRepository) GetAllAccounts() ([]*model.Account, error) {
	log := logger.Log
	log.Info("Executing query to get all accounts")

	query := `SELECT id, name, account_number, balance, months, created_at FROM accounts ORDER BY id`
	rows, err := r.DB.Query(query)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for all accounts")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.Name, &acc.AccountNumber, &acc.Balance, &acc.Months, &acc.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, &acc)
	}
	return accounts, rows.Err()
}

// UpdateBalance overwrites the stored balance for an account.
func (r *AccountRepository) UpdateBalance(accountID int, balance decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  accountID,
		"new_balance": balance.String(),
	})
	log.Info("Executing query to update account balance")

	query := `UPDATE accounts SET balance = $1 WHERE id = $2`
	result, err := r.DB.Exec(query, balance, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Info("No account row matched for balance update")
		return sql.ErrNoRows
	}
	return nil
}

// DeleteAccount removes an account and its owned transaction history in a
// single database transaction.
func (r *AccountRepository) DeleteAccount(accountID int) error {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing queries to delete account and its transactions")

	tx, err := r.DB.Begin()
	if err != nil {
		log.WithError(err).Error("Failed to begin delete transaction")
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM transactions WHERE account_id = $1`, accountID); err != nil {
		log.WithError(err).Error("Failed to delete transaction history")
		return err
	}

	result, err := tx.Exec(`DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to delete account row")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Info("No account row matched for delete")
		return sql.ErrNoRows
	}

	return tx.Commit()
}
