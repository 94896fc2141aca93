package store

import (
	"context"
	"errors"
	"testing"
)

func TestFindByPhoneMatchesEverySeededCustomer(t *testing.T) {
	repo := NewMemoryRepository(SeedCustomers(), SeedKnowledge())

	for _, want := range SeedCustomers() {
		got, err := repo.FindByPhone(context.Background(), want.Phone)
		if err != nil {
			t.Fatalf("FindByPhone(%q) returned error: %v", want.Phone, err)
		}
		if got.CustomerID != want.CustomerID {
			t.Fatalf("FindByPhone(%q) = %q, want %q", want.Phone, got.CustomerID, want.CustomerID)
		}
	}
}

func TestFindByPhoneUnknownNumber(t *testing.T) {
	repo := NewMemoryRepository(SeedCustomers(), SeedKnowledge())

	tests := []string{"", "+10000000000", "1234567890", "+1234567890 "}
	for _, phone := range tests {
		if _, err := repo.FindByPhone(context.Background(), phone); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("FindByPhone(%q) error = %v, want ErrCustomerNotFound", phone, err)
		}
	}
}

func TestFindByIDUnknownCustomer(t *testing.T) {
	repo := NewMemoryRepository(SeedCustomers(), SeedKnowledge())

	if _, err := repo.FindByID(context.Background(), "CUST999"); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("FindByID error = %v, want ErrCustomerNotFound", err)
	}
}

func TestKnowledgeCarriesAllSections(t *testing.T) {
	repo := NewMemoryRepository(nil, SeedKnowledge())

	kb := repo.Knowledge()
	if len(kb.Hours) == 0 || len(kb.Fees) == 0 || len(kb.AccountTypes) == 0 {
		t.Fatalf("knowledge base incomplete: %+v", kb)
	}
	if kb.Fees["overdraft"] != "$35.00 per overdraft transaction" {
		t.Fatalf("unexpected overdraft fee entry: %q", kb.Fees["overdraft"])
	}
}
