// Package cli implements the interactive numbered menu the operator drives.
// It is a thin I/O wrapper: every menu action prompts for its fields, calls
// the ledger service and prints the outcome.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-bank-ledger/common"
	"go-bank-ledger/service"

	"github.com/shopspring/decimal"
)

// Menu reads operator choices from in and writes prompts and results to out.
type Menu struct {
	svc *service.LedgerService
	in  *bufio.Scanner
	out io.Writer
}

func NewMenu(svc *service.LedgerService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

type openAccountRequest struct {
	Name          string `validate:"required"`
	AccountNumber string `validate:"required,max=20"`
}

// Run loops until the operator exits or input ends. Every action returns to
// the menu; an unrecognized choice has no side effects.
func (m *Menu) Run() {
	for {
		m.printMenu()
		choice, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out, "Exiting.")
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.createAccount()
		case "2":
			m.deposit()
		case "3":
			m.withdraw()
		case "4":
			m.checkBalance()
		case "5":
			m.viewHistory()
		case "6":
			m.interestEstimate()
		case "7":
			m.closeAccount()
		case "0":
			fmt.Fprintln(m.out, "Exiting.")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "1. Create a bank account")
	fmt.Fprintln(m.out, "2. Deposit funds")
	fmt.Fprintln(m.out, "3. Withdraw funds")
	fmt.Fprintln(m.out, "4. Check balance")
	fmt.Fprintln(m.out, "5. View transaction history")
	fmt.Fprintln(m.out, "6. Interest estimate")
	fmt.Fprintln(m.out, "7. Close account")
	fmt.Fprintln(m.out, "0. Exit")
	fmt.Fprint(m.out, "Enter your choice: ")
}

func (m *Menu) createAccount() {
	name, ok := m.prompt("Enter account holder's name: ")
	if !ok {
		return
	}
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}

	req := openAccountRequest{Name: name, AccountNumber: number}
	if err := common.ValidateInput(req); err != nil {
		fmt.Fprintf(m.out, "Invalid input: %v\n", err)
		return
	}

	balance, ok := m.promptDecimal("Enter initial balance: ")
	if !ok {
		return
	}
	months, ok := m.promptInt("Enter the number of months for interest calculation: ")
	if !ok {
		return
	}

	account, err := m.svc.OpenAccount(name, number, balance, months)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Account created with ID: %d\n", account.ID)
}

func (m *Menu) deposit() {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptDecimal("Enter the deposit amount: ")
	if !ok {
		return
	}

	account, err := m.svc.Deposit(number, amount)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Deposit successful. New balance: $%s\n", account.Balance.StringFixed(2))
}

func (m *Menu) withdraw() {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}
	amount, ok := m.promptDecimal("Enter the withdrawal amount: ")
	if !ok {
		return
	}

	account, err := m.svc.Withdraw(number, amount)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Withdrawal successful. New balance: $%s\n", account.Balance.StringFixed(2))
}

func (m *Menu) checkBalance() {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}

	account, err := m.svc.Balance(number)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Account balance: $%s\n", account.Balance.StringFixed(2))
}

func (m *Menu) viewHistory() {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}

	transactions, err := m.svc.History(number)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintf(m.out, "Transaction History for Account: %s\n", number)
	if len(transactions) == 0 {
		fmt.Fprintln(m.out, "No transactions recorded.")
		return
	}
	for _, t := range transactions {
		fmt.Fprintf(m.out, "ID: %d, Payee: %s, Payer: %s, Type: %s, Amount: $%s, Date: %s\n",
			t.ID, t.Payee, t.Payer, t.Kind, t.Amount.StringFixed(2), t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func (m *Menu) interestEstimate() {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}

	interest, err := m.svc.InterestEstimate(number)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Estimated interest over the term: $%s\n", interest.StringFixed(2))
}

func (m *Menu) closeAccount() {
	number, ok := m.prompt("Enter account number: ")
	if !ok {
		return
	}

	if err := m.svc.CloseAccount(number); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "Account closed successfully.")
}

func (m *Menu) printError(err error) {
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		fmt.Fprintln(m.out, "Account not found.")
	case errors.Is(err, service.ErrInsufficientFunds):
		fmt.Fprintln(m.out, "Insufficient funds.")
	case errors.Is(err, service.ErrDuplicateAccountNumber):
		fmt.Fprintln(m.out, "An account with this number already exists.")
	case errors.Is(err, service.ErrInvalidAmount):
		fmt.Fprintln(m.out, "Amount must be greater than zero.")
	default:
		fmt.Fprintf(m.out, "Operation failed: %v\n", err)
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptDecimal(label string) (decimal.Decimal, bool) {
	line, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintf(m.out, "Invalid amount: %s\n", strings.TrimSpace(line))
		return decimal.Zero, false
	}
	return value, true
}

func (m *Menu) promptInt(label string) (int, bool) {
	line, ok := m.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintf(m.out, "Invalid number: %s\n", strings.TrimSpace(line))
		return 0, false
	}
	return value, true
}

// readLine reads the next input line; false means end of input, which behaves
// like Exit.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
