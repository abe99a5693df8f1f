package search

import "context"

// Admin is the provisioning surface of the search service.
type Admin interface {
	CreateOrUpdateIndex(ctx context.Context, index Index) error
	CreateOrUpdateDataSource(ctx context.Context, ds DataSource) error
	CreateOrUpdateSkillset(ctx context.Context, ss Skillset) error
	CreateOrUpdateIndexer(ctx context.Context, ix Indexer) error
	CreateOrUpdateKnowledgeSource(ctx context.Context, ks KnowledgeSource) error
	CreateOrUpdateKnowledgeBase(ctx context.Context, kb KnowledgeBase) error
}
