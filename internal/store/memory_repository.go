/**
 * @description
 * In-memory implementation of the CustomerRepository. The directory is built
 * once at startup from seed data and never mutated afterwards, so lookups need
 * no locking. Profiles are keyed by customer id; phone lookup is a linear scan
 * in insertion order, first exact match wins.
 */

package store

import (
	"context"

	"github.com/meridianbank/voice-agent-service/internal/domain"
)

// MemoryRepository is a read-only, process-lifetime customer directory.
type MemoryRepository struct {
	profiles  map[string]*domain.CustomerProfile
	order     []string // customer ids in insertion order, for stable phone scans
	knowledge domain.KnowledgeBase
}

// NewMemoryRepository builds a directory from the given profiles and knowledge
// base. The slice order is preserved for phone-number scans.
func NewMemoryRepository(profiles []domain.CustomerProfile, kb domain.KnowledgeBase) *MemoryRepository {
	repo := &MemoryRepository{
		profiles:  make(map[string]*domain.CustomerProfile, len(profiles)),
		order:     make([]string, 0, len(profiles)),
		knowledge: kb,
	}
	for i := range profiles {
		p := profiles[i]
		repo.profiles[p.CustomerID] = &p
		repo.order = append(repo.order, p.CustomerID)
	}
	return repo
}

// FindByPhone scans all profiles for an exact phone-number match.
func (r *MemoryRepository) FindByPhone(_ context.Context, phone string) (*domain.CustomerProfile, error) {
	for _, id := range r.order {
		if r.profiles[id].Phone == phone {
			return r.profiles[id], nil
		}
	}
	return nil, ErrCustomerNotFound
}

// FindByID returns the profile for the given customer id.
func (r *MemoryRepository) FindByID(_ context.Context, customerID string) (*domain.CustomerProfile, error) {
	p, ok := r.profiles[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return p, nil
}

// Knowledge returns the static banking knowledge base.
func (r *MemoryRepository) Knowledge() domain.KnowledgeBase {
	return r.knowledge
}
