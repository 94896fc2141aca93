/**
 * @description
 * This file defines the core domain models for the voice-agent-service.
 * These structs represent the banking entities the voice agent reads out to
 * customers: profiles, accounts, transactions and loans.
 *
 * @notes
 * - Money amounts use shopspring/decimal to avoid floating-point inaccuracies
 *   with financial data. Decimals marshal as JSON strings.
 * - The directory is illustrative sample data, not a ledger of truth: nothing
 *   links a transaction's balance_after to the account balance.
 */

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the supported account products.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

// AccountStatus enumerates account lifecycle states.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "Active"
	AccountStatusInactive AccountStatus = "Inactive"
	AccountStatusClosed   AccountStatus = "Closed"
)

// CustomerProfile is one customer's full record in the directory. Profiles are
// immutable for the lifetime of the process; no write endpoints exist.
type CustomerProfile struct {
	CustomerID   string        `json:"customer_id"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Accounts     []Account     `json:"accounts"`
	Transactions []Transaction `json:"transactions"`
	Loans        []Loan        `json:"loans"`
}

// Account represents a single deposit account within a profile.
type Account struct {
	AccountNumber string          `json:"account_number"`
	AccountType   AccountType     `json:"account_type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Status        AccountStatus   `json:"status"`
	OpenedDate    string          `json:"opened_date"` // ISO date, e.g. "2020-03-15"
}

// Transaction is one ledger line on a customer's account. Negative amounts are
// debits, positive amounts are credits.
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountNumber string          `json:"account_number"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Type          string          `json:"type"` // "debit" or "credit"
	BalanceAfter  decimal.Decimal `json:"balance_after"`
	Merchant      string          `json:"merchant,omitempty"`
}

// Loan represents an outstanding loan product. Outstanding balance is an
// independent field, not derived from transaction history.
type Loan struct {
	LoanID             string          `json:"loan_id"`
	LoanType           string          `json:"loan_type"`
	PrincipalAmount    decimal.Decimal `json:"principal_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	MonthlyPayment     decimal.Decimal `json:"monthly_payment"`
	NextDueDate        string          `json:"next_due_date"` // ISO date
	InterestRate       float64         `json:"interest_rate"`
}

// KnowledgeBase holds the static banking knowledge excerpts the agent can
// quote to customers: product descriptions, fee schedule and service hours.
type KnowledgeBase struct {
	AccountTypes map[string]string `json:"account_types"`
	Fees         map[string]string `json:"fees"`
	Hours        map[string]string `json:"hours"`
}
