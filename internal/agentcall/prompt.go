package agentcall

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"foundry-agent-toolkit/internal/session"
	"foundry-agent-toolkit/pkg/responses"
)

// StreamedTurn returns a turn function that streams the agent's answer
// token by token. spanName distinguishes the prompt and fabric loops;
// toolChoice is empty or responses.ToolChoiceRequired.
func (uc *UseCase) StreamedTurn(target Target, spanName, toolChoice string) session.TurnFunc {
	return func(ctx context.Context, input string) error {
		ctx, span := tracer().Start(ctx, spanName)
		defer span.End()

		uc.setTurnAttributes(span, target, input)

		fmt.Fprint(uc.out, "\nAgent: ")

		var full string
		err := uc.invoker.Stream(ctx, responses.Request{
			Input:      input,
			ToolChoice: toolChoice,
			Agent:      &responses.AgentReference{Name: target.Name, Type: responses.AgentReferenceType},
		}, func(e responses.StreamEvent) {
			switch e.Type {
			case responses.EventResponseCreated:
				if e.Response != nil {
					span.SetAttributes(attribute.String("response.id", e.Response.ID))
				}
			case responses.EventOutputTextDelta:
				fmt.Fprint(uc.out, e.Delta)
				full += e.Delta
			case responses.EventResponseCompleted:
				span.SetAttributes(attribute.Int("response.output_length", len(full)))
			}
		})
		fmt.Fprintln(uc.out)

		if err != nil {
			span.SetAttributes(attribute.String("error", err.Error()))
			uc.l.Errorf(ctx, "agent turn failed: %v", err)
			return err
		}
		return nil
	}
}

func (uc *UseCase) setTurnAttributes(span trace.Span, target Target, input string) {
	span.SetAttributes(
		attribute.String("agent.name", target.Name),
		attribute.String("agent.version", target.Version),
		attribute.String("agent.id", target.attrID()),
		attribute.String("turn.id", uuid.NewString()),
	)
	if uc.contentRecording {
		span.SetAttributes(attribute.String("user.question", input))
	}
}
