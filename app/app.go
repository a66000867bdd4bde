package app

import (
	"os"

	"go-bank-ledger/cli"
	"go-bank-ledger/config"
	"go-bank-ledger/db"
	"go-bank-ledger/logger"
	"go-bank-ledger/registry"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
)

// Run wires every layer together and hands control to the menu loop:
// config → logger → database → schema → repositories → registry → service → CLI.
func Run() error {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	// The ledger cannot operate without its schema.
	if err := db.EnsureSchema("file://db/migrations", db.ConnString()); err != nil {
		logger.Log.Fatalf("Error preparing the database schema: %v", err)
	}

	accountRepo := repository.NewAccountRepository(database)
	transactionRepo := repository.NewTransactionRepository(database)

	reg := registry.New(config.AppConfig.Bank.InterestRate)
	ledgerService := service.NewLedgerService(reg, accountRepo, transactionRepo)
	if err := ledgerService.WarmRegistry(); err != nil {
		logger.Log.Fatalf("Error warming the account registry: %v", err)
	}

	menu := cli.NewMenu(ledgerService, os.Stdin, os.Stdout)
	menu.Run()

	logger.Log.Info("Session ended")
	return nil
}
