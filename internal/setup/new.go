package setup

import (
	"io"

	"foundry-agent-toolkit/pkg/foundry"
	pkgLog "foundry-agent-toolkit/pkg/log"
	"foundry-agent-toolkit/pkg/search"
)

// UseCase provisions agents, connections and the retrieval pipeline.
// Results live only in the remote service; each method prints its
// confirmation to out and is safe to re-run.
type UseCase struct {
	l      pkgLog.Logger
	cp     foundry.ControlPlane
	search search.Admin
	out    io.Writer
}

// New creates the setup use case. search may be nil when only agent or
// connection provisioning is used.
func New(l pkgLog.Logger, cp foundry.ControlPlane, searchAdmin search.Admin, out io.Writer) *UseCase {
	return &UseCase{
		l:      l,
		cp:     cp,
		search: searchAdmin,
		out:    out,
	}
}
