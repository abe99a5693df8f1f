package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all toolkit configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	Project   ProjectConfig
	Agents    AgentsConfig
	Knowledge KnowledgeConfig
	Search    SearchConfig
	OpenAI    OpenAIConfig
	Identity  IdentityConfig
	Telemetry TelemetryConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ProjectConfig points at the Foundry project control plane.
type ProjectConfig struct {
	Endpoint   string // e.g. https://my-resource.services.ai.azure.com/api/projects/my-project
	ResourceID string // ARM resource id, used for connection provisioning
	APIVersion string
	Model      string // model deployment name, e.g. gpt-4o
}

// AgentsConfig names the provisioned agents the call loops reference.
type AgentsConfig struct {
	PromptAgentName string
	IntentAgentName string
	FabricAgentName string
}

// KnowledgeConfig describes the knowledge-base MCP tool binding.
type KnowledgeConfig struct {
	MCPURL               string // knowledge base MCP server URL
	ConnectionName       string // project connection carrying the MCP credential
	FabricConnectionName string // project connection for the Fabric data agent
}

// SearchConfig describes the search service and the retrieval pipeline names.
type SearchConfig struct {
	Endpoint            string
	APIKey              string
	APIVersion          string
	IndexName           string
	KnowledgeSourceName string
	KnowledgeBaseName   string
	BlobResourceID      string
	BlobContainerName   string
}

// OpenAIConfig covers the embedding/chat deployments the pipeline binds to.
type OpenAIConfig struct {
	Endpoint            string
	EmbeddingDeployment string
	EmbeddingModel      string
	EmbeddingDimensions int
	ChatDeployment      string
}

// IdentityConfig selects how tokens are acquired.
type IdentityConfig struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	StaticToken  string // overrides the OAuth2 flow when set
}

type TelemetryConfig struct {
	OTLPEndpoint     string
	Debug            bool
	ContentRecording bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/foundryctl/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/foundryctl/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Project control plane
	cfg.Project.Endpoint = viper.GetString("project.endpoint")
	cfg.Project.ResourceID = viper.GetString("project.resource_id")
	cfg.Project.APIVersion = viper.GetString("project.api_version")
	cfg.Project.Model = viper.GetString("project.model")
	if v := viper.GetString("azure_ai_project_endpoint"); v != "" {
		cfg.Project.Endpoint = v
	}
	if v := viper.GetString("azure_ai_project_resource_id"); v != "" {
		cfg.Project.ResourceID = v
	}
	if v := viper.GetString("azure_ai_model_deployment_name"); v != "" {
		cfg.Project.Model = v
	}

	// Agent names
	cfg.Agents.PromptAgentName = viper.GetString("agents.prompt_agent_name")
	cfg.Agents.IntentAgentName = viper.GetString("agents.intent_agent_name")
	cfg.Agents.FabricAgentName = viper.GetString("agents.fabric_agent_name")
	if v := viper.GetString("prompt_agent_name"); v != "" {
		cfg.Agents.PromptAgentName = v
	}
	if v := viper.GetString("detect_intent_agent_name"); v != "" {
		cfg.Agents.IntentAgentName = v
	}
	if v := viper.GetString("fabric_agent_name"); v != "" {
		cfg.Agents.FabricAgentName = v
	}

	// Knowledge base / Fabric tool bindings
	cfg.Knowledge.MCPURL = viper.GetString("knowledge.mcp_url")
	cfg.Knowledge.ConnectionName = viper.GetString("knowledge.connection_name")
	cfg.Knowledge.FabricConnectionName = viper.GetString("knowledge.fabric_connection_name")
	if v := viper.GetString("foundry_knowledge_base_mcp_url"); v != "" {
		cfg.Knowledge.MCPURL = v
	}
	if v := viper.GetString("mcp_tool_connection_name"); v != "" {
		cfg.Knowledge.ConnectionName = v
	}
	if v := viper.GetString("fabric_project_connection_name"); v != "" {
		cfg.Knowledge.FabricConnectionName = v
	}

	// Search service + retrieval pipeline
	cfg.Search.Endpoint = viper.GetString("search.endpoint")
	cfg.Search.APIKey = viper.GetString("search.api_key")
	cfg.Search.APIVersion = viper.GetString("search.api_version")
	cfg.Search.IndexName = viper.GetString("search.index_name")
	cfg.Search.KnowledgeSourceName = viper.GetString("search.knowledge_source_name")
	cfg.Search.KnowledgeBaseName = viper.GetString("search.knowledge_base_name")
	cfg.Search.BlobResourceID = viper.GetString("search.blob_resource_id")
	cfg.Search.BlobContainerName = viper.GetString("search.blob_container_name")
	if v := viper.GetString("azure_search_endpoint"); v != "" {
		cfg.Search.Endpoint = v
	}
	if v := viper.GetString("ai_search_api_key"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := viper.GetString("azure_search_index_name"); v != "" {
		cfg.Search.IndexName = v
	}
	if v := viper.GetString("azure_search_knowledge_source_name"); v != "" {
		cfg.Search.KnowledgeSourceName = v
	}
	if v := viper.GetString("azure_search_knowledge_base_name"); v != "" {
		cfg.Search.KnowledgeBaseName = v
	}
	if v := viper.GetString("azure_blob_storage_resource_id"); v != "" {
		cfg.Search.BlobResourceID = v
	}
	if v := viper.GetString("azure_blob_container_name"); v != "" {
		cfg.Search.BlobContainerName = v
	}

	// Azure OpenAI deployments used by the pipeline
	cfg.OpenAI.Endpoint = viper.GetString("openai.endpoint")
	cfg.OpenAI.EmbeddingDeployment = viper.GetString("openai.embedding_deployment")
	cfg.OpenAI.EmbeddingModel = viper.GetString("openai.embedding_model")
	cfg.OpenAI.EmbeddingDimensions = viper.GetInt("openai.embedding_dimensions")
	cfg.OpenAI.ChatDeployment = viper.GetString("openai.chat_deployment")
	if v := viper.GetString("azure_openai_endpoint"); v != "" {
		cfg.OpenAI.Endpoint = v
	}
	if v := viper.GetString("azure_openai_embedding_deployment"); v != "" {
		cfg.OpenAI.EmbeddingDeployment = v
	}
	if v := viper.GetString("azure_openai_embedding_model"); v != "" {
		cfg.OpenAI.EmbeddingModel = v
	}
	if v := viper.GetInt("embedding_dimensions"); v != 0 {
		cfg.OpenAI.EmbeddingDimensions = v
	}

	// Identity
	cfg.Identity.TenantID = viper.GetString("identity.tenant_id")
	cfg.Identity.ClientID = viper.GetString("identity.client_id")
	cfg.Identity.ClientSecret = viper.GetString("identity.client_secret")
	cfg.Identity.StaticToken = viper.GetString("identity.static_token")
	if v := viper.GetString("azure_tenant_id"); v != "" {
		cfg.Identity.TenantID = v
	}
	if v := viper.GetString("azure_client_id"); v != "" {
		cfg.Identity.ClientID = v
	}
	if v := viper.GetString("azure_client_secret"); v != "" {
		cfg.Identity.ClientSecret = v
	}
	if v := viper.GetString("foundry_access_token"); v != "" {
		cfg.Identity.StaticToken = v
	}

	// Telemetry
	cfg.Telemetry.OTLPEndpoint = viper.GetString("telemetry.otlp_endpoint")
	cfg.Telemetry.Debug = viper.GetBool("telemetry.debug")
	cfg.Telemetry.ContentRecording = viper.GetBool("telemetry.content_recording")
	if v := viper.GetString("otel_exporter_otlp_endpoint"); v != "" {
		cfg.Telemetry.OTLPEndpoint = v
	}
	if viper.GetBool("azure_tracing_gen_ai_content_recording_enabled") {
		cfg.Telemetry.ContentRecording = true
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("project.api_version", "2025-05-15-preview")
	viper.SetDefault("project.model", "gpt-4o")

	viper.SetDefault("agents.intent_agent_name", "DetectUserIntentAgent")
	viper.SetDefault("agents.fabric_agent_name", "FabricDataAgent")

	viper.SetDefault("search.api_version", "2025-08-01-preview")
	viper.SetDefault("search.index_name", "workforce-documents")
	viper.SetDefault("search.knowledge_source_name", "workforce-knowledge-source")
	viper.SetDefault("search.knowledge_base_name", "workforce-knowledge-base")
	viper.SetDefault("search.blob_container_name", "workforce-documents")

	viper.SetDefault("openai.embedding_deployment", "text-embedding-3-large")
	viper.SetDefault("openai.embedding_model", "text-embedding-3-large")
	viper.SetDefault("openai.embedding_dimensions", 3072)
	viper.SetDefault("openai.chat_deployment", "gpt-4o")

	viper.SetDefault("telemetry.content_recording", true)
}

type requiredVar struct {
	name  string
	value string
}

// RequireProject validates the settings every command needs before any
// network call is made.
func (c *Config) RequireProject() error {
	return requireAll([]requiredVar{
		{"AZURE_AI_PROJECT_ENDPOINT", c.Project.Endpoint},
	})
}

// RequireModel validates the settings agent provisioning needs.
func (c *Config) RequireModel() error {
	return requireAll([]requiredVar{
		{"AZURE_AI_PROJECT_ENDPOINT", c.Project.Endpoint},
		{"AZURE_AI_MODEL_DEPLOYMENT_NAME", c.Project.Model},
	})
}

// RequireSearch validates the knowledge-base pipeline settings.
func (c *Config) RequireSearch() error {
	return requireAll([]requiredVar{
		{"AZURE_SEARCH_ENDPOINT", c.Search.Endpoint},
		{"AZURE_BLOB_STORAGE_RESOURCE_ID", c.Search.BlobResourceID},
		{"AZURE_OPENAI_ENDPOINT", c.OpenAI.Endpoint},
	})
}

func requireAll(vars []requiredVar) error {
	var missing []string
	for _, v := range vars {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
