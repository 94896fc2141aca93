/**
 * @description
 * This package provides a client for the ElevenLabs conversational-voice API.
 * The outbound-call contract is not reliably documented, so the client probes a
 * fixed, ordered set of endpoint URL and payload shape candidates until one
 * succeeds. It also fetches call status for provider-issued call ids.
 *
 * @dependencies
 * - bytes, context, encoding/json, fmt, io, net/http, time: Standard Go libraries.
 * - github.com/google/uuid: correlation id tying one probe's log lines together.
 * - github.com/rs/zerolog/log: per-attempt diagnostics.
 */
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production ElevenLabs API host.
const DefaultBaseURL = "https://api.elevenlabs.io"

const (
	callTimeout   = 30 * time.Second
	statusTimeout = 10 * time.Second
)

// ErrContractUnresolved is returned when every candidate endpoint/payload
// combination has been tried without a single HTTP 200.
var ErrContractUnresolved = errors.New("no working elevenlabs endpoint and payload combination found")

// StatusError carries a non-200 provider response from the call-status
// endpoint so the caller can surface the provider's own code and body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("elevenlabs status request failed: status %d: %s", e.StatusCode, e.Body)
}

// Client is a client for the ElevenLabs API.
type Client struct {
	BaseURL    string
	APIKey     string
	AgentID    string
	HTTPClient *http.Client
}

// NewClient creates a new ElevenLabs API client. An empty baseURL selects the
// production host.
func NewClient(baseURL, apiKey, agentID string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		AgentID: agentID,
		HTTPClient: &http.Client{
			Timeout: callTimeout,
		},
	}
}

// OutboundCallRequest describes one outbound call to place. Context carries
// optional customer data the agent can reference during the conversation.
type OutboundCallRequest struct {
	PhoneNumber string
	Context     map[string]interface{}
}

// OutboundCallResult is the outcome of a successful probe.
type OutboundCallResult struct {
	CallID           string
	Status           string
	EndpointUsed     string
	PayloadShape     string
	Attempts         int
	ProviderResponse map[string]interface{}
}

// ProbeOutboundCall tries every candidate endpoint/payload combination in
// fixed order (URL-major) until the provider answers 200. A 404 means the
// endpoint shape is wrong; any other failure is logged and the search moves
// on. Candidates are never retried.
func (c *Client) ProbeOutboundCall(ctx context.Context, call OutboundCallRequest) (*OutboundCallResult, error) {
	probeID := uuid.NewString()
	attempt := 0

	for _, endpoint := range c.EndpointCandidates() {
		for _, shape := range PayloadShapes() {
			attempt++

			payload := shape.Build(call.PhoneNumber, c.AgentID, call.Context)
			body, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal call payload %q: %w", shape.Name, err)
			}

			log.Debug().
				Str("component", "elevenlabs_client").
				Str("probe_id", probeID).
				Int("attempt", attempt).
				Str("url", endpoint).
				Str("payload_shape", shape.Name).
				Msg("trying candidate")

			status, respBody, err := c.post(ctx, endpoint, body)
			if err != nil {
				log.Warn().
					Str("component", "elevenlabs_client").
					Str("probe_id", probeID).
					Int("attempt", attempt).
					Str("url", endpoint).
					Err(err).
					Msg("candidate request failed; trying next")
				continue
			}

			switch {
			case status == http.StatusOK:
				result := &OutboundCallResult{
					Status:       "initiated",
					EndpointUsed: endpoint,
					PayloadShape: shape.Name,
					Attempts:     attempt,
				}
				var parsed map[string]interface{}
				if err := json.Unmarshal(respBody, &parsed); err == nil {
					result.ProviderResponse = parsed
					if id, ok := parsed["call_id"].(string); ok && id != "" {
						result.CallID = id
					}
				}
				if result.CallID == "" {
					result.CallID = fmt.Sprintf("EL_CALL_%d", time.Now().Unix())
				}
				log.Info().
					Str("component", "elevenlabs_client").
					Str("probe_id", probeID).
					Int("attempt", attempt).
					Str("url", endpoint).
					Str("payload_shape", shape.Name).
					Str("call_id", result.CallID).
					Msg("outbound call initiated")
				return result, nil

			case status == http.StatusNotFound:
				// Wrong endpoint shape; move on quietly.
				log.Debug().
					Str("component", "elevenlabs_client").
					Str("probe_id", probeID).
					Int("attempt", attempt).
					Str("url", endpoint).
					Msg("endpoint not found; trying next")

			default:
				// Possibly the right endpoint with the wrong payload.
				log.Warn().
					Str("component", "elevenlabs_client").
					Str("probe_id", probeID).
					Int("attempt", attempt).
					Str("url", endpoint).
					Str("payload_shape", shape.Name).
					Int("status", status).
					Str("body", string(respBody)).
					Msg("non-404 provider error; trying next")
			}
		}
	}

	log.Warn().
		Str("component", "elevenlabs_client").
		Str("probe_id", probeID).
		Int("attempts", attempt).
		Msg("contract exhausted")
	return nil, ErrContractUnresolved
}

// post performs a single candidate POST and returns the status code and body.
func (c *Client) post(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create call request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read call response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// CallStatus fetches the status of a provider-issued call id. A 200 body is
// returned verbatim (decoded); any other status becomes a *StatusError.
func (c *Client) CallStatus(ctx context.Context, callID string) (map[string]interface{}, error) {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	url := c.BaseURL + "/v1/convai/calls/" + callID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create status request: %w", err)
	}
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute status request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read status response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode status response: %w", err)
	}
	return data, nil
}
