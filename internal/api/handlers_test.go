package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/meridianbank/voice-agent-service/internal/app"
	"github.com/meridianbank/voice-agent-service/internal/store"
)

const testAgentToken = "banking_agent_secure_token_2025"

// newTestServer spins up the full router over the seeded directory with the
// voice provider in mock mode, mirroring an unconfigured deployment.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := store.NewMemoryRepository(store.SeedCustomers(), store.SeedKnowledge())
	service := app.NewService(repo, nil, true)
	handlers := NewHandlers(service, t.TempDir())
	srv := httptest.NewServer(Routes(handlers, NewStaticTokenVerifier(testAgentToken), t.TempDir()))
	t.Cleanup(srv.Close)
	return srv
}

// doJSON performs a request, checks the status code and decodes the response.
func doJSON(t *testing.T, method, url, token string, body any, wantCode int, out any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantCode {
		t.Fatalf("%s %s: code=%d want=%d", method, url, resp.StatusCode, wantCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var got map[string]string
	doJSON(t, http.MethodGet, srv.URL+"/", "", nil, http.StatusOK, &got)
	if got["status"] != "healthy" {
		t.Fatalf("status = %q, want healthy", got["status"])
	}
}

func TestAuthenticateCustomerKnownPhone(t *testing.T) {
	srv := newTestServer(t)

	var got authenticateCustomerResponse
	doJSON(t, http.MethodPost, srv.URL+"/authenticate_customer", "",
		map[string]string{"phone_number": "+1234567890"}, http.StatusOK, &got)

	if !got.Success || got.CustomerID != "CUST001" || got.Name != "John Smith" {
		t.Fatalf("response = %+v", got)
	}
	if !strings.Contains(got.Message, "John Smith") {
		t.Fatalf("message = %q, want greeting with the customer name", got.Message)
	}
}

func TestAuthenticateCustomerUnknownPhone(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/authenticate_customer", "",
		map[string]string{"phone_number": "+10000000000"}, http.StatusNotFound, nil)
}

func TestBearerGateRejectsEverythingButTheSecret(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "empty bearer", header: "Bearer "},
		{name: "wrong scheme", header: "Token " + testAgentToken},
		{name: "bare token without scheme", header: testAgentToken},
		{name: "near miss suffix", header: "Bearer " + testAgentToken + "x"},
		{name: "near miss prefix", header: "Bearer x" + testAgentToken},
		{name: "near miss case", header: "Bearer " + strings.ToUpper(testAgentToken)},
		{name: "truncated", header: "Bearer " + testAgentToken[:len(testAgentToken)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/customer/CUST001/accounts", nil)
			if err != nil {
				t.Fatalf("new request: %v", err)
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request error: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Fatalf("code = %d, want 401", resp.StatusCode)
			}
		})
	}
}

func TestCustomerAccountsWithToken(t *testing.T) {
	srv := newTestServer(t)

	var got accountsResponse
	doJSON(t, http.MethodGet, srv.URL+"/customer/CUST001/accounts", testAgentToken, nil, http.StatusOK, &got)

	if !got.Success || got.CustomerName != "John Smith" {
		t.Fatalf("response = %+v", got)
	}
	if len(got.Accounts) != 2 {
		t.Fatalf("accounts = %d, want 2", len(got.Accounts))
	}
}

func TestCustomerLoansEmptyForSarahJohnson(t *testing.T) {
	srv := newTestServer(t)

	var got loansResponse
	doJSON(t, http.MethodGet, srv.URL+"/customer/CUST002/loans", testAgentToken, nil, http.StatusOK, &got)

	if !got.Success || got.CustomerName != "Sarah Johnson" {
		t.Fatalf("response = %+v", got)
	}
	if got.Loans == nil || len(got.Loans) != 0 {
		t.Fatalf("loans = %v, want empty list", got.Loans)
	}
}

func TestCustomerTransactionsLimit(t *testing.T) {
	srv := newTestServer(t)

	var all transactionsResponse
	doJSON(t, http.MethodGet, srv.URL+"/customer/CUST001/transactions", testAgentToken, nil, http.StatusOK, &all)
	if len(all.Transactions) != 3 {
		t.Fatalf("default limit returned %d transactions, want 3", len(all.Transactions))
	}
	if all.Transactions[0].TransactionID != "TXN001" {
		t.Fatalf("newest first: got %q", all.Transactions[0].TransactionID)
	}

	var one transactionsResponse
	doJSON(t, http.MethodGet, srv.URL+"/customer/CUST001/transactions?limit=1", testAgentToken, nil, http.StatusOK, &one)
	if len(one.Transactions) != 1 {
		t.Fatalf("limit=1 returned %d transactions", len(one.Transactions))
	}

	doJSON(t, http.MethodGet, srv.URL+"/customer/CUST001/transactions?limit=abc", testAgentToken, nil, http.StatusBadRequest, nil)
}

func TestCustomerReadsUnknownCustomer(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/customer/CUST404/accounts", "/customer/CUST404/transactions", "/customer/CUST404/loans"} {
		doJSON(t, http.MethodGet, srv.URL+path, testAgentToken, nil, http.StatusNotFound, nil)
	}
}

func TestKnowledgeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	var hours map[string]string
	doJSON(t, http.MethodGet, srv.URL+"/knowledge/hours", testAgentToken, nil, http.StatusOK, &hours)
	if hours["customer_service"] != "24/7 phone support available" {
		t.Fatalf("hours = %v", hours)
	}

	var fees map[string]string
	doJSON(t, http.MethodGet, srv.URL+"/knowledge/fees", testAgentToken, nil, http.StatusOK, &fees)
	if fees["atm_withdrawal"] == "" {
		t.Fatalf("fees = %v", fees)
	}

	doJSON(t, http.MethodGet, srv.URL+"/knowledge/hours", "", nil, http.StatusUnauthorized, nil)
}

func TestMakeCallIsPublicAndMocksWithoutCredentials(t *testing.T) {
	srv := newTestServer(t)

	var got map[string]any
	doJSON(t, http.MethodPost, srv.URL+"/make_call", "",
		map[string]string{"phone_number": "+1234567890", "customer_id": "CUST001"}, http.StatusOK, &got)

	if got["success"] != true {
		t.Fatalf("response = %v", got)
	}
	callID, _ := got["call_id"].(string)
	if !strings.HasPrefix(callID, "MOCK_CALL_") {
		t.Fatalf("call_id = %q, want MOCK_CALL_ prefix", callID)
	}
	if got["status"] != "initiated" {
		t.Fatalf("status = %v", got["status"])
	}
}

func TestMakeCallRequiresPhoneNumber(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/make_call", "", map[string]string{}, http.StatusBadRequest, nil)
}

func TestCallStatusMockID(t *testing.T) {
	srv := newTestServer(t)

	var got map[string]any
	doJSON(t, http.MethodGet, srv.URL+"/call_status/MOCK_CALL_123", "", nil, http.StatusOK, &got)

	data, _ := got["call_data"].(map[string]any)
	if data["status"] != "completed" {
		t.Fatalf("call_data = %v", data)
	}
	if data["duration"] != float64(120) {
		t.Fatalf("duration = %v, want 120", data["duration"])
	}
}
