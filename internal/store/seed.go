/**
 * @description
 * Sample customer directory and banking knowledge base used to seed the
 * in-memory repository. This is demo data for exercising the voice agent, not
 * a ledger of truth.
 */

package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/voice-agent-service/internal/domain"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ts(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedCustomers returns the sample customer profiles.
func SeedCustomers() []domain.CustomerProfile {
	return []domain.CustomerProfile{
		{
			CustomerID: "CUST001",
			Name:       "John Smith",
			Phone:      "+1234567890",
			Email:      "john.smith@email.com",
			Accounts: []domain.Account{
				{
					AccountNumber: "ACC123456789",
					AccountType:   domain.AccountTypeSavings,
					Balance:       money("15750.50"),
					Currency:      "USD",
					Status:        domain.AccountStatusActive,
					OpenedDate:    "2020-03-15",
				},
				{
					AccountNumber: "ACC987654321",
					AccountType:   domain.AccountTypeChecking,
					Balance:       money("3250.75"),
					Currency:      "USD",
					Status:        domain.AccountStatusActive,
					OpenedDate:    "2020-03-15",
				},
			},
			Transactions: []domain.Transaction{
				{
					TransactionID: "TXN001",
					AccountNumber: "ACC123456789",
					Date:          ts("2025-09-01T10:30:00"),
					Amount:        money("-50.00"),
					Description:   "ATM Withdrawal",
					Type:          "debit",
					BalanceAfter:  money("15750.50"),
					Merchant:      "Chase ATM #1234",
				},
				{
					TransactionID: "TXN002",
					AccountNumber: "ACC123456789",
					Date:          ts("2025-08-30T14:22:00"),
					Amount:        money("2500.00"),
					Description:   "Salary Deposit",
					Type:          "credit",
					BalanceAfter:  money("15800.50"),
					Merchant:      "ABC Corp Payroll",
				},
				{
					TransactionID: "TXN003",
					AccountNumber: "ACC987654321",
					Date:          ts("2025-08-29T09:15:00"),
					Amount:        money("-120.35"),
					Description:   "Grocery Purchase",
					Type:          "debit",
					BalanceAfter:  money("3250.75"),
					Merchant:      "Whole Foods Market",
				},
			},
			Loans: []domain.Loan{
				{
					LoanID:             "LOAN001",
					LoanType:           "Home Mortgage",
					PrincipalAmount:    money("250000.00"),
					OutstandingBalance: money("187500.00"),
					MonthlyPayment:     money("1850.00"),
					NextDueDate:        "2025-09-15",
					InterestRate:       3.5,
				},
			},
		},
		{
			CustomerID: "CUST002",
			Name:       "Sarah Johnson",
			Phone:      "+1987654321",
			Email:      "sarah.johnson@email.com",
			Accounts: []domain.Account{
				{
					AccountNumber: "ACC555666777",
					AccountType:   domain.AccountTypeChecking,
					Balance:       money("8900.25"),
					Currency:      "USD",
					Status:        domain.AccountStatusActive,
					OpenedDate:    "2019-07-10",
				},
			},
			Transactions: []domain.Transaction{
				{
					TransactionID: "TXN004",
					AccountNumber: "ACC555666777",
					Date:          ts("2025-09-02T08:45:00"),
					Amount:        money("-75.50"),
					Description:   "Utility Bill Payment",
					Type:          "debit",
					BalanceAfter:  money("8900.25"),
					Merchant:      "City Electric Company",
				},
			},
			Loans: []domain.Loan{},
		},
		{
			CustomerID: "CUST003",
			Name:       "Rahul Sharma",
			Phone:      "+919876543210",
			Email:      "rahul.sharma@email.com",
			Accounts: []domain.Account{
				{
					AccountNumber: "ACC111222333",
					AccountType:   domain.AccountTypeSavings,
					Balance:       money("85000.00"),
					Currency:      "INR",
					Status:        domain.AccountStatusActive,
					OpenedDate:    "2021-01-10",
				},
			},
			Transactions: []domain.Transaction{
				{
					TransactionID: "TXN005",
					AccountNumber: "ACC111222333",
					Date:          ts("2025-09-02T15:30:00"),
					Amount:        money("-5000.00"),
					Description:   "UPI Payment",
					Type:          "debit",
					BalanceAfter:  money("85000.00"),
					Merchant:      "PhonePe",
				},
			},
			Loans: []domain.Loan{},
		},
	}
}

// SeedKnowledge returns the static banking knowledge base the agent quotes
// from: product descriptions, fee schedule and service hours.
func SeedKnowledge() domain.KnowledgeBase {
	return domain.KnowledgeBase{
		AccountTypes: map[string]string{
			"savings":  "Savings accounts earn interest and are ideal for long-term savings goals.",
			"checking": "Checking accounts are designed for daily transactions and bill payments.",
		},
		Fees: map[string]string{
			"atm_withdrawal": "$2.50 for out-of-network ATMs",
			"overdraft":      "$35.00 per overdraft transaction",
			"wire_transfer":  "$25.00 domestic, $45.00 international",
		},
		Hours: map[string]string{
			"branches":         "Monday-Friday: 9:00 AM - 5:00 PM, Saturday: 9:00 AM - 2:00 PM",
			"customer_service": "24/7 phone support available",
		},
	}
}
