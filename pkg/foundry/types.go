package foundry

// AgentVersion is one provisioned version of a named agent.
type AgentVersion struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PromptAgentDefinition describes the agent configuration to provision.
type PromptAgentDefinition struct {
	Kind           string          `json:"kind"`
	Model          string          `json:"model"`
	Instructions   string          `json:"instructions"`
	Tools          []any           `json:"tools,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// MCPTool binds a remote MCP server (e.g. a knowledge base) to an agent.
type MCPTool struct {
	Type                string   `json:"type"`
	ServerLabel         string   `json:"server_label"`
	ServerURL           string   `json:"server_url"`
	RequireApproval     string   `json:"require_approval,omitempty"`
	AllowedTools        []string `json:"allowed_tools,omitempty"`
	ProjectConnectionID string   `json:"project_connection_id,omitempty"`
}

// FabricAgentTool binds a Microsoft Fabric data agent to an agent.
type FabricAgentTool struct {
	Type            string                    `json:"type"`
	FabricDataAgent FabricDataAgentParameters `json:"fabric_dataagent_preview"`
}

// FabricDataAgentParameters carries the Fabric project connections.
type FabricDataAgentParameters struct {
	ProjectConnections []ToolProjectConnection `json:"project_connections"`
}

// ToolProjectConnection references a project connection by id.
type ToolProjectConnection struct {
	ProjectConnectionID string `json:"project_connection_id"`
}

// ResponseFormat requests structured output from the agent.
type ResponseFormat struct {
	Type       string     `json:"type"`
	JSONSchema JSONSchema `json:"json_schema"`
}

// JSONSchema is a named, optionally strict schema document.
type JSONSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// createVersionRequest is the body for creating an agent version.
type createVersionRequest struct {
	Definition PromptAgentDefinition `json:"definition"`
}

// listVersionsResponse wraps the version list, newest first.
type listVersionsResponse struct {
	Value []AgentVersion `json:"value"`
}

// Connection is a named project connection resource.
type Connection struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// telemetryResponse carries the Application Insights connection string.
type telemetryResponse struct {
	ConnectionString string `json:"connectionString"`
}

// ARMConnectionRequest is the management-plane connection payload.
type ARMConnectionRequest struct {
	Properties ARMConnectionProperties `json:"properties"`
}

// ARMConnectionProperties describes a remote-tool connection.
type ARMConnectionProperties struct {
	AuthType                    string            `json:"authType"`
	Category                    string            `json:"category"`
	Group                       string            `json:"group"`
	Target                      string            `json:"target"`
	IsSharedToAll               bool              `json:"isSharedToAll"`
	UseWorkspaceManagedIdentity bool              `json:"useWorkspaceManagedIdentity"`
	Credentials                 ARMCredentials    `json:"credentials"`
	Metadata                    map[string]string `json:"metadata,omitempty"`
}

// ARMCredentials carries CustomKeys credentials.
type ARMCredentials struct {
	Keys map[string]string `json:"keys"`
}

// ARMResult reports the raw provisioning outcome for display.
type ARMResult struct {
	StatusCode int
	Body       string
}
