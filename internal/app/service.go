/**
 * @description
 * This file contains the core application service for the voice-agent-service.
 * It orchestrates customer-directory reads, outbound call initiation through
 * the ElevenLabs probe client (with a deterministic mock path when provider
 * credentials are absent), and call-status lookups.
 *
 * @dependencies
 * - internal/store: customer directory access.
 * - pkg/elevenlabs: provider client types and probe.
 * - github.com/prometheus/client_golang: call outcome counter.
 */

package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/meridianbank/voice-agent-service/internal/domain"
	"github.com/meridianbank/voice-agent-service/internal/store"
	"github.com/meridianbank/voice-agent-service/pkg/elevenlabs"
)

var callOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "voice_agent_call_initiations_total",
	Help: "Outbound call initiation attempts by outcome",
}, []string{"outcome"})

const mockCallPrefix = "MOCK_"

// DefaultTransactionLimit is used when a transactions read does not specify
// how many items to return.
const DefaultTransactionLimit = 5

// VoiceDialer is the subset of the provider client the service depends on.
type VoiceDialer interface {
	ProbeOutboundCall(ctx context.Context, call elevenlabs.OutboundCallRequest) (*elevenlabs.OutboundCallResult, error)
	CallStatus(ctx context.Context, callID string) (map[string]interface{}, error)
}

// Service implements the application operations behind the HTTP facade.
type Service struct {
	repo     store.CustomerRepository
	dialer   VoiceDialer
	mockMode bool
	now      func() time.Time
}

// NewService creates the application service. mockMode must be true whenever
// the provider credentials are unset or placeholders; the dialer is never
// invoked in mock mode.
func NewService(repo store.CustomerRepository, dialer VoiceDialer, mockMode bool) *Service {
	return &Service{
		repo:     repo,
		dialer:   dialer,
		mockMode: mockMode,
		now:      time.Now,
	}
}

// AuthResult is the outcome of a phone-number authentication.
type AuthResult struct {
	CustomerID string
	Name       string
}

// AuthenticateByPhone resolves a customer by exact phone-number match.
func (s *Service) AuthenticateByPhone(ctx context.Context, phone string) (*AuthResult, error) {
	profile, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return &AuthResult{CustomerID: profile.CustomerID, Name: profile.Name}, nil
}

// CustomerAccounts returns the customer's display name and accounts.
func (s *Service) CustomerAccounts(ctx context.Context, customerID string) (string, []domain.Account, error) {
	profile, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return "", nil, err
	}
	return profile.Name, profile.Accounts, nil
}

// RecentTransactions returns up to limit of the customer's most recent
// transactions across all accounts combined, newest first. Ties keep their
// original insertion order. A limit below zero is treated as the default.
func (s *Service) RecentTransactions(ctx context.Context, customerID string, limit int) (string, []domain.Transaction, error) {
	profile, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return "", nil, err
	}
	if limit < 0 {
		limit = DefaultTransactionLimit
	}

	txns := make([]domain.Transaction, len(profile.Transactions))
	copy(txns, profile.Transactions)
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	if limit < len(txns) {
		txns = txns[:limit]
	}
	return profile.Name, txns, nil
}

// CustomerLoans returns the customer's display name and loans.
func (s *Service) CustomerLoans(ctx context.Context, customerID string) (string, []domain.Loan, error) {
	profile, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return "", nil, err
	}
	return profile.Name, profile.Loans, nil
}

// Knowledge returns the static banking knowledge base.
func (s *Service) Knowledge() domain.KnowledgeBase {
	return s.repo.Knowledge()
}

// MakeCall initiates an outbound call to the given phone number. In mock mode
// it synthesizes a deterministic result without touching the network.
// Otherwise it assembles customer context (missing or unknown customer ids are
// not an error) and runs the provider probe.
func (s *Service) MakeCall(ctx context.Context, phoneNumber, customerID string) (*domain.CallResult, error) {
	log.Info().
		Str("component", "app").
		Str("phone_number", phoneNumber).
		Str("customer_id", customerID).
		Msg("call initiation requested")

	if s.mockMode {
		callOutcomes.WithLabelValues("mock").Inc()
		return &domain.CallResult{
			Success: true,
			Message: fmt.Sprintf("Mock call initiated to %s", phoneNumber),
			CallID:  fmt.Sprintf("MOCK_CALL_%d", s.now().Unix()),
			Status:  "initiated",
			Note:    "This is a mock response. Set ELEVENLABS_API_KEY and ELEVENLABS_AGENT_ID environment variables for real calls.",
		}, nil
	}

	result, err := s.dialer.ProbeOutboundCall(ctx, elevenlabs.OutboundCallRequest{
		PhoneNumber: phoneNumber,
		Context:     s.buildCallContext(ctx, phoneNumber, customerID),
	})
	if err != nil {
		if err == elevenlabs.ErrContractUnresolved {
			callOutcomes.WithLabelValues("contract_unresolved").Inc()
		} else {
			callOutcomes.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	callOutcomes.WithLabelValues("initiated").Inc()
	return &domain.CallResult{
		Success:          true,
		Message:          fmt.Sprintf("Call initiated to %s", phoneNumber),
		CallID:           result.CallID,
		Status:           result.Status,
		ProviderResponse: result.ProviderResponse,
		EndpointUsed:     result.EndpointUsed,
	}, nil
}

// buildCallContext looks up the optional customer id and packages the data the
// voice agent can reference mid-call. An absent or unknown id yields an empty
// context.
func (s *Service) buildCallContext(ctx context.Context, phoneNumber, customerID string) map[string]interface{} {
	callContext := map[string]interface{}{}
	if customerID == "" {
		return callContext
	}

	profile, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if err != store.ErrCustomerNotFound {
			log.Warn().Str("component", "app").Str("customer_id", customerID).Err(err).Msg("customer context lookup failed")
		}
		return callContext
	}

	callContext["customer_name"] = profile.Name
	callContext["customer_id"] = profile.CustomerID
	callContext["phone_number"] = phoneNumber
	callContext["accounts"] = profile.Accounts
	return callContext
}

// CallStatus reports the status of a call. Mock call ids are answered with a
// fixed synthesized payload and never reach the provider.
func (s *Service) CallStatus(ctx context.Context, callID string) (*domain.CallStatus, error) {
	if strings.HasPrefix(callID, mockCallPrefix) {
		return &domain.CallStatus{
			Success: true,
			CallData: map[string]interface{}{
				"call_id":  callID,
				"status":   "completed",
				"duration": 120,
				"note":     "This is mock call status data",
			},
		}, nil
	}

	data, err := s.dialer.CallStatus(ctx, callID)
	if err != nil {
		return nil, err
	}
	return &domain.CallStatus{Success: true, CallData: data}, nil
}
