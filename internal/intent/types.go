package intent

// Intent categories. Closed set; the provisioning schema and the consumer
// share these constants so the enumeration lives in exactly one place.
const (
	IntentWorkforceQuery  = "workforce_query"
	IntentSiteDataQuery   = "site_data_query"
	IntentCombinedQuery   = "combined_query"
	IntentDispatchRequest = "dispatch_request"
	IntentDispatchConfirm = "dispatch_confirm"
	IntentWeatherQuery    = "weather_query"
	IntentGeneralQuery    = "general_query"
)

// Downstream agents a classified turn can route to. Closed set.
const (
	AgentWorkforce        = "WorkforceAgent"
	AgentConstructionSite = "ConstructionSiteAgent"
	AgentWeather          = "WeatherAgent"
	AgentCommunication    = "CommunicationAgent"
)

// NotAvailable is the sentinel shown for any field the agent omitted.
const NotAvailable = "N/A"

// SchemaName names the structured-output schema on the provisioned agent.
const SchemaName = "intent_classification"

// Intents returns the closed set of intent categories, in schema order.
func Intents() []string {
	return []string{
		IntentWorkforceQuery,
		IntentSiteDataQuery,
		IntentCombinedQuery,
		IntentDispatchRequest,
		IntentDispatchConfirm,
		IntentWeatherQuery,
		IntentGeneralQuery,
	}
}

// Agents returns the closed set of routable agents, in schema order.
func Agents() []string {
	return []string{
		AgentWorkforce,
		AgentConstructionSite,
		AgentWeather,
		AgentCommunication,
	}
}

// Schema builds the strict JSON schema the intent agent is provisioned
// with. confidence is intentionally an unconstrained number and the
// requiresMultipleAgents/additionalAgents pair is not cross-validated;
// both follow the source contract as-is.
func Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type":        "string",
				"description": "The classified intent category",
				"enum":        Intents(),
			},
			"nextAgent": map[string]any{
				"type":        "string",
				"description": "The agent to route the request to",
				"enum":        Agents(),
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Confidence score between 0 and 1",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief explanation of the classification decision",
			},
			"requiresMultipleAgents": map[string]any{
				"type":        "boolean",
				"description": "Whether multiple agents are needed",
			},
			"additionalAgents": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "List of additional agents if multiple are needed",
			},
		},
		"required":             []string{"intent", "nextAgent", "confidence", "reasoning"},
		"additionalProperties": false,
	}
}
