/**
 * @description
 * This file defines the `CustomerRepository` interface, the contract for every
 * read the service performs against the customer directory. The interface
 * decouples the application service from the in-memory implementation so tests
 * can substitute their own fixtures.
 */

package store

import (
	"context"
	"errors"

	"github.com/meridianbank/voice-agent-service/internal/domain"
)

// ErrCustomerNotFound is returned when no profile matches the given
// customer id or phone number.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the read operations over the customer directory.
// The directory is read-only at request time; there are no write methods.
type CustomerRepository interface {
	// FindByPhone returns the first profile whose phone number exactly equals
	// the given string.
	FindByPhone(ctx context.Context, phone string) (*domain.CustomerProfile, error)

	// FindByID returns the profile with the given customer id.
	FindByID(ctx context.Context, customerID string) (*domain.CustomerProfile, error)

	// Knowledge returns the static banking knowledge base.
	Knowledge() domain.KnowledgeBase
}
