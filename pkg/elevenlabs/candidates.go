package elevenlabs

// The outbound-call contract has shifted between ElevenLabs API revisions, so
// the client keeps an explicit, ordered list of hypotheses about it: four URL
// shapes (convai vs legacy path, "phone" vs "call" resource) crossed with
// three payload field conventions. Probe order is URL-major, payload-minor.

// PayloadShape is one hypothesis about the request body convention.
type PayloadShape struct {
	Name  string
	Build func(phoneNumber, agentID string, context map[string]interface{}) map[string]interface{}
}

// EndpointCandidates returns the candidate outbound-call URLs for this
// client's agent, in probe order.
func (c *Client) EndpointCandidates() []string {
	return []string{
		c.BaseURL + "/v1/convai/agents/" + c.AgentID + "/phone",
		c.BaseURL + "/v1/convai/agents/" + c.AgentID + "/call",
		c.BaseURL + "/v1/agents/" + c.AgentID + "/phone",
		c.BaseURL + "/v1/agents/" + c.AgentID + "/call",
	}
}

// PayloadShapes returns the candidate payload conventions, in probe order.
func PayloadShapes() []PayloadShape {
	return []PayloadShape{
		{
			Name: "phone_number_context",
			Build: func(phoneNumber, _ string, context map[string]interface{}) map[string]interface{} {
				return map[string]interface{}{
					"phone_number": phoneNumber,
					"context":      context,
				}
			},
		},
		{
			Name: "to_agent_id_context",
			Build: func(phoneNumber, agentID string, context map[string]interface{}) map[string]interface{} {
				return map[string]interface{}{
					"to":       phoneNumber,
					"agent_id": agentID,
					"context":  context,
				}
			},
		},
		{
			Name: "phone_number_agent_id_metadata",
			Build: func(phoneNumber, agentID string, context map[string]interface{}) map[string]interface{} {
				return map[string]interface{}{
					"phone_number": phoneNumber,
					"agent_id":     agentID,
					"metadata":     context,
				}
			},
		},
	}
}
