/**
 * @description
 * This file contains the HTTP handlers for the voice-agent-service's API
 * endpoints. Handlers parse incoming requests, call the application service,
 * and write the HTTP response, bridging the web layer and the business logic.
 *
 * @dependencies
 * - encoding/json, net/http: Standard Go libraries.
 * - internal/app, internal/domain, internal/store: service logic, models, errors.
 * - pkg/elevenlabs: provider error types surfaced by call status.
 */

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/meridianbank/voice-agent-service/internal/app"
	"github.com/meridianbank/voice-agent-service/internal/domain"
	"github.com/meridianbank/voice-agent-service/internal/store"
	"github.com/meridianbank/voice-agent-service/pkg/elevenlabs"
)

// Handlers holds the application service the HTTP handlers delegate to.
type Handlers struct {
	service   *app.Service
	staticDir string
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *app.Service, staticDir string) *Handlers {
	return &Handlers{service: service, staticDir: staticDir}
}

type authenticateCustomerRequest struct {
	PhoneNumber string `json:"phone_number"`
	PIN         string `json:"pin,omitempty"` // accepted but not checked
}

type authenticateCustomerResponse struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

type makeCallRequest struct {
	PhoneNumber string `json:"phone_number"`
	CustomerID  string `json:"customer_id,omitempty"`
}

type accountsResponse struct {
	Success      bool             `json:"success"`
	CustomerName string           `json:"customer_name"`
	Accounts     []domain.Account `json:"accounts"`
}

type transactionsResponse struct {
	Success      bool                 `json:"success"`
	CustomerName string               `json:"customer_name"`
	Transactions []domain.Transaction `json:"transactions"`
}

type loansResponse struct {
	Success      bool          `json:"success"`
	CustomerName string        `json:"customer_name"`
	Loans        []domain.Loan `json:"loans"`
}

// Health handles the liveness probe at the root path.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Banking API is running!",
		"status":  "healthy",
	})
}

// Index serves the bundled front-end entry page.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

// AuthenticateCustomer resolves a customer by phone number. Public endpoint:
// the front-end calls it before any agent token exists.
func (h *Handlers) AuthenticateCustomer(w http.ResponseWriter, r *http.Request) {
	var req authenticateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := h.service.AuthenticateByPhone(r.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrCustomerNotFound) {
			respondError(w, http.StatusNotFound, "Customer not found")
			return
		}
		log.Error().Str("component", "api").Str("endpoint", "authenticate_customer").Err(err).Msg("lookup failed")
		respondError(w, http.StatusInternalServerError, "Authentication failed")
		return
	}

	respondJSON(w, http.StatusOK, authenticateCustomerResponse{
		Success:    true,
		CustomerID: result.CustomerID,
		Name:       result.Name,
		Message:    fmt.Sprintf("Welcome back, %s!", result.Name),
	})
}

// MakeCall initiates an outbound call through the voice provider. Public by
// design; see the router for the documented asymmetry.
func (h *Handlers) MakeCall(w http.ResponseWriter, r *http.Request) {
	var req makeCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.PhoneNumber == "" {
		respondError(w, http.StatusBadRequest, "phone_number is required")
		return
	}

	result, err := h.service.MakeCall(r.Context(), req.PhoneNumber, req.CustomerID)
	if err != nil {
		var urlErr *url.Error
		switch {
		case errors.Is(err, elevenlabs.ErrContractUnresolved):
			respondError(w, http.StatusNotFound, "Could not find correct ElevenLabs API endpoint. Please check your Agent ID and API documentation.")
		case errors.As(err, &urlErr):
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Network error: %v", err))
		default:
			log.Error().Str("component", "api").Str("endpoint", "make_call").Err(err).Msg("call initiation failed")
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to initiate call: %v", err))
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// CallStatus reports the status of a previously initiated call.
func (h *Handlers) CallStatus(w http.ResponseWriter, r *http.Request) {
	callID := chi.URLParam(r, "call_id")

	status, err := h.service.CallStatus(r.Context(), callID)
	if err != nil {
		var statusErr *elevenlabs.StatusError
		if errors.As(err, &statusErr) {
			respondError(w, statusErr.StatusCode, statusErr.Body)
			return
		}
		respondError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get call status: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// CustomerAccounts lists all accounts for a customer.
func (h *Handlers) CustomerAccounts(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")

	name, accounts, err := h.service.CustomerAccounts(r.Context(), customerID)
	if err != nil {
		h.respondDirectoryError(w, "accounts", err)
		return
	}

	respondJSON(w, http.StatusOK, accountsResponse{
		Success:      true,
		CustomerName: name,
		Accounts:     accounts,
	})
}

// CustomerTransactions lists the customer's most recent transactions. The
// optional limit query parameter defaults to 5.
func (h *Handlers) CustomerTransactions(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")

	limit := app.DefaultTransactionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	name, txns, err := h.service.RecentTransactions(r.Context(), customerID, limit)
	if err != nil {
		h.respondDirectoryError(w, "transactions", err)
		return
	}

	respondJSON(w, http.StatusOK, transactionsResponse{
		Success:      true,
		CustomerName: name,
		Transactions: txns,
	})
}

// CustomerLoans lists all loans for a customer.
func (h *Handlers) CustomerLoans(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customer_id")

	name, loans, err := h.service.CustomerLoans(r.Context(), customerID)
	if err != nil {
		h.respondDirectoryError(w, "loans", err)
		return
	}

	respondJSON(w, http.StatusOK, loansResponse{
		Success:      true,
		CustomerName: name,
		Loans:        loans,
	})
}

// BankingHours returns branch and service hours.
func (h *Handlers) BankingHours(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Knowledge().Hours)
}

// FeeSchedule returns the current fee structure.
func (h *Handlers) FeeSchedule(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Knowledge().Fees)
}

// AccountTypes returns the product descriptions for account types.
func (h *Handlers) AccountTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Knowledge().AccountTypes)
}

func (h *Handlers) respondDirectoryError(w http.ResponseWriter, endpoint string, err error) {
	if errors.Is(err, store.ErrCustomerNotFound) {
		respondError(w, http.StatusNotFound, "Customer not found")
		return
	}
	log.Error().Str("component", "api").Str("endpoint", endpoint).Err(err).Msg("directory read failed")
	respondError(w, http.StatusInternalServerError, "Internal server error")
}
