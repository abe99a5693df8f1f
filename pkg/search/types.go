package search

// Index is a search index with vector and semantic configuration.
type Index struct {
	Name           string          `json:"name"`
	Fields         []Field         `json:"fields"`
	VectorSearch   *VectorSearch   `json:"vectorSearch,omitempty"`
	SemanticSearch *SemanticSearch `json:"semantic,omitempty"`
}

// Field is one index field definition.
type Field struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	Key                 bool   `json:"key,omitempty"`
	Searchable          bool   `json:"searchable,omitempty"`
	Filterable          bool   `json:"filterable,omitempty"`
	Sortable            bool   `json:"sortable,omitempty"`
	Stored              *bool  `json:"stored,omitempty"`
	Dimensions          int    `json:"dimensions,omitempty"`
	VectorSearchProfile string `json:"vectorSearchProfile,omitempty"`
}

// VectorSearch configures vector profiles, algorithms and vectorizers.
type VectorSearch struct {
	Profiles    []VectorProfile    `json:"profiles"`
	Algorithms  []VectorAlgorithm  `json:"algorithms"`
	Vectorizers []VectorVectorizer `json:"vectorizers,omitempty"`
}

// VectorProfile ties an algorithm and vectorizer together under a name.
type VectorProfile struct {
	Name       string `json:"name"`
	Algorithm  string `json:"algorithm"`
	Vectorizer string `json:"vectorizer,omitempty"`
}

// VectorAlgorithm names an ANN algorithm configuration.
type VectorAlgorithm struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// VectorVectorizer configures query-time embedding.
type VectorVectorizer struct {
	Name       string               `json:"name"`
	Kind       string               `json:"kind"`
	Parameters VectorizerParameters `json:"azureOpenAIParameters"`
}

// VectorizerParameters points at the embedding deployment.
type VectorizerParameters struct {
	ResourceURI  string `json:"resourceUri"`
	DeploymentID string `json:"deploymentId"`
	ModelName    string `json:"modelName"`
}

// SemanticSearch configures semantic ranking.
type SemanticSearch struct {
	Configurations []SemanticConfiguration `json:"configurations"`
}

// SemanticConfiguration prioritizes fields for the semantic ranker.
type SemanticConfiguration struct {
	Name              string            `json:"name"`
	PrioritizedFields PrioritizedFields `json:"prioritizedFields"`
}

// PrioritizedFields names the title and content fields.
type PrioritizedFields struct {
	TitleField    *SemanticField  `json:"titleField,omitempty"`
	ContentFields []SemanticField `json:"prioritizedContentFields,omitempty"`
}

// SemanticField references an index field by name.
type SemanticField struct {
	FieldName string `json:"fieldName"`
}

// DataSource connects the indexer to a storage container.
type DataSource struct {
	Name        string                `json:"name"`
	Type        string                `json:"type"`
	Credentials DataSourceCredentials `json:"credentials"`
	Container   DataContainer         `json:"container"`
}

// DataSourceCredentials uses a managed-identity resource id connection string.
type DataSourceCredentials struct {
	ConnectionString string `json:"connectionString"`
}

// DataContainer names the blob container.
type DataContainer struct {
	Name string `json:"name"`
}

// Skillset chains the split and embedding skills with index projections.
type Skillset struct {
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	Skills           []any             `json:"skills"`
	IndexProjections *IndexProjections `json:"indexProjections,omitempty"`
}

// SplitSkill chunks documents into pages.
type SplitSkill struct {
	ODataType         string         `json:"@odata.type"`
	Context           string         `json:"context"`
	TextSplitMode     string         `json:"textSplitMode"`
	MaximumPageLength int            `json:"maximumPageLength"`
	PageOverlapLength int            `json:"pageOverlapLength"`
	Inputs            []SkillMapping `json:"inputs"`
	Outputs           []SkillMapping `json:"outputs"`
}

// EmbeddingSkill embeds chunks with an Azure OpenAI deployment.
type EmbeddingSkill struct {
	ODataType    string         `json:"@odata.type"`
	Context      string         `json:"context"`
	ResourceURI  string         `json:"resourceUri"`
	DeploymentID string         `json:"deploymentId"`
	ModelName    string         `json:"modelName"`
	Dimensions   int            `json:"dimensions"`
	Inputs       []SkillMapping `json:"inputs"`
	Outputs      []SkillMapping `json:"outputs"`
}

// SkillMapping maps a skill input or output.
type SkillMapping struct {
	Name       string `json:"name"`
	Source     string `json:"source,omitempty"`
	TargetName string `json:"targetName,omitempty"`
}

// IndexProjections routes chunked output into the target index.
type IndexProjections struct {
	Selectors  []ProjectionSelector  `json:"selectors"`
	Parameters *ProjectionParameters `json:"parameters,omitempty"`
}

// ProjectionSelector maps the chunk context into index fields.
type ProjectionSelector struct {
	TargetIndexName    string         `json:"targetIndexName"`
	ParentKeyFieldName string         `json:"parentKeyFieldName"`
	SourceContext      string         `json:"sourceContext"`
	Mappings           []SkillMapping `json:"mappings"`
}

// ProjectionParameters tunes projection behavior.
type ProjectionParameters struct {
	ProjectionMode string `json:"projectionMode,omitempty"`
}

// Indexer binds a data source to an index through a skillset.
type Indexer struct {
	Name            string `json:"name"`
	DataSourceName  string `json:"dataSourceName"`
	TargetIndexName string `json:"targetIndexName"`
	SkillsetName    string `json:"skillsetName,omitempty"`
}

// KnowledgeSource exposes an index for agentic retrieval.
type KnowledgeSource struct {
	Name                  string                     `json:"name"`
	Kind                  string                     `json:"kind"`
	SearchIndexParameters *KnowledgeSourceParameters `json:"searchIndexParameters,omitempty"`
}

// KnowledgeSourceParameters references the index fields retrieval reads.
type KnowledgeSourceParameters struct {
	SearchIndexName  string           `json:"searchIndexName"`
	SourceDataFields []FieldReference `json:"sourceDataFields,omitempty"`
}

// FieldReference names one index field.
type FieldReference struct {
	Name string `json:"name"`
}

// KnowledgeBase wraps knowledge sources for retrieval-augmented answers.
type KnowledgeBase struct {
	Name             string                     `json:"name"`
	KnowledgeSources []KnowledgeSourceReference `json:"knowledgeSources"`
	OutputMode       string                     `json:"outputMode,omitempty"`
	ReasoningEffort  string                     `json:"reasoningEffort,omitempty"`
	ChatModel        *ChatModel                 `json:"completionModel,omitempty"`
}

// KnowledgeSourceReference names a knowledge source.
type KnowledgeSourceReference struct {
	Name string `json:"name"`
}

// ChatModel is the deployment the knowledge base plans queries with.
type ChatModel struct {
	ResourceURI  string `json:"resourceUri"`
	DeploymentID string `json:"deploymentId"`
	ModelName    string `json:"modelName"`
}
