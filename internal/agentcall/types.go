package agentcall

// Target identifies the provisioned agent a session talks to.
type Target struct {
	Name    string
	Version string
	ID      string
}

// attrID returns the span-attribute form of the agent id.
func (t Target) attrID() string {
	if t.ID == "" {
		return "unknown"
	}
	return t.ID
}
