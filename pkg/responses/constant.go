package responses

const (
	// DefaultAPIVersion matches the project control plane preview version.
	DefaultAPIVersion = "2025-05-15-preview"

	// AgentReferenceType marks a request as targeting a provisioned agent.
	AgentReferenceType = "agent_reference"

	// Streamed event types the toolkit reacts to. Anything else is skipped.
	EventResponseCreated   = "response.created"
	EventOutputTextDelta   = "response.output_text.delta"
	EventResponseCompleted = "response.completed"

	// ToolChoiceRequired forces tool use on every request.
	ToolChoiceRequired = "required"
)
