package domain

// CallResult is the normalized outcome of a call-initiation request, covering
// both the mock path and a live provider success.
type CallResult struct {
	Success          bool                   `json:"success"`
	Message          string                 `json:"message"`
	CallID           string                 `json:"call_id"`
	Status           string                 `json:"status"`
	Note             string                 `json:"note,omitempty"`
	ProviderResponse map[string]interface{} `json:"elevenlabs_response,omitempty"`
	EndpointUsed     string                 `json:"endpoint_used,omitempty"`
}

// CallStatus wraps the status payload for a single call, either synthesized
// for mock call ids or fetched live from the provider.
type CallStatus struct {
	Success  bool                   `json:"success"`
	CallData map[string]interface{} `json:"call_data"`
}
