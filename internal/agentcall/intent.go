package agentcall

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"foundry-agent-toolkit/internal/intent"
	"foundry-agent-toolkit/internal/session"
	"foundry-agent-toolkit/pkg/responses"
)

const intentRule = "----------------------------------------"

// IntentTurn returns a turn function that classifies one message and
// renders the routing decision. A payload that is not JSON is shown raw
// and does not fail the turn; the loop moves on without a routing decision.
func (uc *UseCase) IntentTurn(target Target) session.TurnFunc {
	return func(ctx context.Context, input string) error {
		ctx, span := tracer().Start(ctx, "detect_intent_agent_call")
		defer span.End()

		uc.setTurnAttributes(span, target, input)

		resp, err := uc.invoker.Create(ctx, responses.Request{
			Input: input,
			Agent: &responses.AgentReference{Name: target.Name, Type: responses.AgentReferenceType},
		})
		if err != nil {
			span.SetAttributes(attribute.String("error", err.Error()))
			uc.l.Errorf(ctx, "intent turn failed: %v", err)
			return err
		}

		raw := resp.OutputText()
		if uc.contentRecording {
			span.SetAttributes(attribute.String("response.raw", raw))
		}

		result, err := intent.Parse(raw)
		if err != nil {
			fmt.Fprintf(uc.out, "\nAgent Response (not JSON): %s\n", raw)
			span.SetAttributes(attribute.String("error", "Invalid JSON response"))
			return nil
		}

		uc.renderResult(result)

		span.SetAttributes(
			attribute.String("intent.category", result.IntentOrUnknown()),
			attribute.String("intent.next_agent", result.NextAgentOrUnknown()),
			attribute.Float64("intent.confidence", result.ConfidenceOrZero()),
		)
		return nil
	}
}

func (uc *UseCase) renderResult(result *intent.Result) {
	var b strings.Builder
	b.WriteString("\n" + intentRule + "\n")
	b.WriteString("Intent Classification Result:\n")
	b.WriteString(intentRule + "\n")
	fmt.Fprintf(&b, "  Intent: %s\n", result.IntentDisplay())
	fmt.Fprintf(&b, "  Next Agent: %s\n", result.NextAgentDisplay())
	fmt.Fprintf(&b, "  Confidence: %s\n", result.ConfidenceDisplay())
	fmt.Fprintf(&b, "  Reasoning: %s\n", result.ReasoningDisplay())
	if result.RequiresMultipleAgents {
		fmt.Fprintf(&b, "  Additional Agents: %s\n", result.AdditionalAgentsDisplay())
	}
	b.WriteString(intentRule + "\n")
	fmt.Fprint(uc.out, b.String())
}
