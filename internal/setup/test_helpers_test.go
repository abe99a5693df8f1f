package setup_test

import (
	"context"

	"foundry-agent-toolkit/pkg/foundry"
	"foundry-agent-toolkit/pkg/search"
)

type mockControlPlane struct {
	createVersionFunc func(ctx context.Context, agentName string, def foundry.PromptAgentDefinition) (*foundry.AgentVersion, error)
	getConnectionFunc func(ctx context.Context, name string) (*foundry.Connection, error)
	armFunc           func(ctx context.Context, resourceID, name string, req foundry.ARMConnectionRequest) (*foundry.ARMResult, error)
}

func (m *mockControlPlane) CreateAgentVersion(ctx context.Context, agentName string, def foundry.PromptAgentDefinition) (*foundry.AgentVersion, error) {
	return m.createVersionFunc(ctx, agentName, def)
}

func (m *mockControlPlane) ListAgentVersions(_ context.Context, _ string) ([]foundry.AgentVersion, error) {
	return nil, nil
}

func (m *mockControlPlane) LatestAgentVersion(_ context.Context, _ string) (*foundry.AgentVersion, error) {
	return nil, nil
}

func (m *mockControlPlane) GetConnection(ctx context.Context, name string) (*foundry.Connection, error) {
	return m.getConnectionFunc(ctx, name)
}

func (m *mockControlPlane) GetAppInsightsConnectionString(_ context.Context) (string, error) {
	return "", nil
}

func (m *mockControlPlane) CreateARMConnection(ctx context.Context, resourceID, name string, req foundry.ARMConnectionRequest) (*foundry.ARMResult, error) {
	return m.armFunc(ctx, resourceID, name, req)
}

// mockSearchAdmin records the order of pipeline PUTs; any step can be
// failed by name.
type mockSearchAdmin struct {
	calls    []string
	failStep string
	err      error
}

func (m *mockSearchAdmin) step(name string) error {
	m.calls = append(m.calls, name)
	if name == m.failStep {
		return m.err
	}
	return nil
}

func (m *mockSearchAdmin) CreateOrUpdateIndex(_ context.Context, _ search.Index) error {
	return m.step("index")
}

func (m *mockSearchAdmin) CreateOrUpdateDataSource(_ context.Context, _ search.DataSource) error {
	return m.step("datasource")
}

func (m *mockSearchAdmin) CreateOrUpdateSkillset(_ context.Context, _ search.Skillset) error {
	return m.step("skillset")
}

func (m *mockSearchAdmin) CreateOrUpdateIndexer(_ context.Context, _ search.Indexer) error {
	return m.step("indexer")
}

func (m *mockSearchAdmin) CreateOrUpdateKnowledgeSource(_ context.Context, _ search.KnowledgeSource) error {
	return m.step("knowledgesource")
}

func (m *mockSearchAdmin) CreateOrUpdateKnowledgeBase(_ context.Context, _ search.KnowledgeBase) error {
	return m.step("knowledgebase")
}
