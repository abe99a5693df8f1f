package setup

import (
	"context"
	"fmt"

	"foundry-agent-toolkit/pkg/search"
)

// CreateKnowledgeBase provisions the retrieval pipeline in dependency
// order: index, data source, skillset, indexer, knowledge source,
// knowledge base. The first failure aborts; nothing is rolled back, each
// step is an idempotent PUT.
func (uc *UseCase) CreateKnowledgeBase(ctx context.Context, in KnowledgeBaseInput) error {
	if uc.search == nil {
		return fmt.Errorf("setup: search client is not configured")
	}
	if in.IndexName == "" || in.KnowledgeSourceName == "" || in.KnowledgeBaseName == "" {
		return fmt.Errorf("setup: index, knowledge source and knowledge base names are required")
	}
	if in.BlobResourceID == "" {
		return fmt.Errorf("setup: blob storage resource id is required")
	}
	if in.EmbeddingDimensions <= 0 {
		return fmt.Errorf("setup: embedding dimensions must be positive")
	}

	dataSourceName := in.IndexName + "-datasource"
	skillsetName := in.IndexName + "-skillset"
	indexerName := in.IndexName + "-indexer"

	if err := uc.search.CreateOrUpdateIndex(ctx, uc.buildIndex(in)); err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	fmt.Fprintf(uc.out, "Search index '%s' created or updated.\n", in.IndexName)

	if err := uc.search.CreateOrUpdateDataSource(ctx, search.DataSource{
		Name: dataSourceName,
		Type: "azureblob",
		Credentials: search.DataSourceCredentials{
			ConnectionString: "ResourceId=" + in.BlobResourceID + ";",
		},
		Container: search.DataContainer{Name: in.BlobContainerName},
	}); err != nil {
		return fmt.Errorf("failed to create data source: %w", err)
	}
	fmt.Fprintf(uc.out, "Data source '%s' created or updated.\n", dataSourceName)

	if err := uc.search.CreateOrUpdateSkillset(ctx, uc.buildSkillset(in, skillsetName)); err != nil {
		return fmt.Errorf("failed to create skillset: %w", err)
	}
	fmt.Fprintf(uc.out, "Skillset '%s' created or updated.\n", skillsetName)

	if err := uc.search.CreateOrUpdateIndexer(ctx, search.Indexer{
		Name:            indexerName,
		DataSourceName:  dataSourceName,
		TargetIndexName: in.IndexName,
		SkillsetName:    skillsetName,
	}); err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}
	fmt.Fprintf(uc.out, "Indexer '%s' created or updated. Ingestion runs in the service.\n", indexerName)

	if err := uc.search.CreateOrUpdateKnowledgeSource(ctx, search.KnowledgeSource{
		Name: in.KnowledgeSourceName,
		Kind: "searchIndex",
		SearchIndexParameters: &search.KnowledgeSourceParameters{
			SearchIndexName: in.IndexName,
			SourceDataFields: []search.FieldReference{
				{Name: "chunk_id"}, {Name: "chunk"}, {Name: "title"},
			},
		},
	}); err != nil {
		return fmt.Errorf("failed to create knowledge source: %w", err)
	}
	fmt.Fprintf(uc.out, "Knowledge source '%s' created or updated.\n", in.KnowledgeSourceName)

	if err := uc.search.CreateOrUpdateKnowledgeBase(ctx, search.KnowledgeBase{
		Name:             in.KnowledgeBaseName,
		KnowledgeSources: []search.KnowledgeSourceReference{{Name: in.KnowledgeSourceName}},
		OutputMode:       "extractiveData",
		ReasoningEffort:  "minimal",
		ChatModel: &search.ChatModel{
			ResourceURI:  in.OpenAIEndpoint,
			DeploymentID: in.ChatDeployment,
			ModelName:    in.ChatDeployment,
		},
	}); err != nil {
		return fmt.Errorf("failed to create knowledge base: %w", err)
	}
	fmt.Fprintf(uc.out, "Knowledge base '%s' created or updated.\n", in.KnowledgeBaseName)

	uc.l.Infof(ctx, "knowledge base pipeline provisioned: index=%s kb=%s", in.IndexName, in.KnowledgeBaseName)
	return nil
}

func (uc *UseCase) buildIndex(in KnowledgeBaseInput) search.Index {
	notStored := false
	return search.Index{
		Name: in.IndexName,
		Fields: []search.Field{
			{Name: "chunk_id", Type: "Edm.String", Key: true, Filterable: true, Sortable: true},
			{Name: "parent_id", Type: "Edm.String", Filterable: true, Sortable: true},
			{Name: "chunk", Type: "Edm.String", Searchable: true},
			{Name: "title", Type: "Edm.String", Searchable: true, Filterable: true, Sortable: true},
			{
				Name:                "text_vector",
				Type:                "Collection(Edm.Single)",
				Searchable:          true,
				Stored:              &notStored,
				Dimensions:          in.EmbeddingDimensions,
				VectorSearchProfile: "vector-profile",
			},
			{Name: "metadata_storage_path", Type: "Edm.String", Filterable: true},
		},
		VectorSearch: &search.VectorSearch{
			Profiles: []search.VectorProfile{
				{Name: "vector-profile", Algorithm: "hnsw-config", Vectorizer: "aoai-vectorizer"},
			},
			Algorithms: []search.VectorAlgorithm{
				{Name: "hnsw-config", Kind: "hnsw"},
			},
			Vectorizers: []search.VectorVectorizer{
				{
					Name: "aoai-vectorizer",
					Kind: "azureOpenAI",
					Parameters: search.VectorizerParameters{
						ResourceURI:  in.OpenAIEndpoint,
						DeploymentID: in.EmbeddingDeployment,
						ModelName:    in.EmbeddingModel,
					},
				},
			},
		},
		SemanticSearch: &search.SemanticSearch{
			Configurations: []search.SemanticConfiguration{
				{
					Name: "semantic-config",
					PrioritizedFields: search.PrioritizedFields{
						TitleField:    &search.SemanticField{FieldName: "title"},
						ContentFields: []search.SemanticField{{FieldName: "chunk"}},
					},
				},
			},
		},
	}
}

func (uc *UseCase) buildSkillset(in KnowledgeBaseInput, name string) search.Skillset {
	split := search.SplitSkill{
		ODataType:         "#Microsoft.Skills.Text.SplitSkill",
		Context:           "/document",
		TextSplitMode:     "pages",
		MaximumPageLength: 2000,
		PageOverlapLength: 500,
		Inputs: []search.SkillMapping{
			{Name: "text", Source: "/document/content"},
		},
		Outputs: []search.SkillMapping{
			{Name: "textItems", TargetName: "pages"},
		},
	}

	embed := search.EmbeddingSkill{
		ODataType:    "#Microsoft.Skills.Text.AzureOpenAIEmbeddingSkill",
		Context:      "/document/pages/*",
		ResourceURI:  in.OpenAIEndpoint,
		DeploymentID: in.EmbeddingDeployment,
		ModelName:    in.EmbeddingModel,
		Dimensions:   in.EmbeddingDimensions,
		Inputs: []search.SkillMapping{
			{Name: "text", Source: "/document/pages/*"},
		},
		Outputs: []search.SkillMapping{
			{Name: "embedding", TargetName: "text_vector"},
		},
	}

	return search.Skillset{
		Name:        name,
		Description: "Chunk blob documents and embed each chunk for retrieval.",
		Skills:      []any{split, embed},
		IndexProjections: &search.IndexProjections{
			Selectors: []search.ProjectionSelector{
				{
					TargetIndexName:    in.IndexName,
					ParentKeyFieldName: "parent_id",
					SourceContext:      "/document/pages/*",
					Mappings: []search.SkillMapping{
						{Name: "chunk", Source: "/document/pages/*"},
						{Name: "title", Source: "/document/metadata_storage_name"},
						{Name: "text_vector", Source: "/document/pages/*/text_vector"},
						{Name: "metadata_storage_path", Source: "/document/metadata_storage_path"},
					},
				},
			},
			Parameters: &search.ProjectionParameters{
				ProjectionMode: "skipIndexingParentDocuments",
			},
		},
	}
}
