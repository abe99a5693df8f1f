package setup

// IntentAgentInput provisions the intent-detection agent.
type IntentAgentInput struct {
	AgentName string
	Model     string
}

// PromptAgentInput provisions a prompt agent with a knowledge-base MCP tool.
type PromptAgentInput struct {
	AgentName      string
	Model          string
	MCPURL         string
	ConnectionName string
}

// FabricAgentInput provisions a prompt agent with the Fabric data tool.
type FabricAgentInput struct {
	AgentName      string
	Model          string
	ConnectionName string
}

// ConnectionInput provisions the knowledge-base MCP project connection.
type ConnectionInput struct {
	ProjectResourceID string
	ConnectionName    string
	MCPURL            string
	SearchAPIKey      string
}

// KnowledgeBaseInput provisions the full retrieval pipeline.
type KnowledgeBaseInput struct {
	IndexName           string
	KnowledgeSourceName string
	KnowledgeBaseName   string
	BlobResourceID      string
	BlobContainerName   string
	OpenAIEndpoint      string
	EmbeddingDeployment string
	EmbeddingModel      string
	EmbeddingDimensions int
	ChatDeployment      string
}
