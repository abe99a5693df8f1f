package agentcall

import (
	"io"

	"foundry-agent-toolkit/internal/telemetry"
	pkgLog "foundry-agent-toolkit/pkg/log"
	"foundry-agent-toolkit/pkg/responses"
)

// UseCase runs one agent turn per user line: build the request, call the
// invocation plane, render the reply, record a span.
type UseCase struct {
	l                pkgLog.Logger
	invoker          responses.Invoker
	out              io.Writer
	contentRecording bool
}

// New creates the call use case.
func New(l pkgLog.Logger, invoker responses.Invoker, out io.Writer, contentRecording bool) *UseCase {
	return &UseCase{
		l:                l,
		invoker:          invoker,
		out:              out,
		contentRecording: contentRecording,
	}
}

// tracer is resolved lazily so tests installing a provider are honored.
var tracer = telemetry.Tracer
