package orchestrator

const (
	// HandlerName is the registry name for the routing handler.
	HandlerName = "router_agent"

	handlerDescription = "Classifies requests and routes them to specialized handlers"

	// handlerPriority is informational: the router is the entry point and is
	// never selected by intent (it lists no intents).
	handlerPriority = 10

	// maxFanOut caps parallel dispatch. Only an exact priority tie adds the
	// second handler.
	maxFanOut = 2
)

const (
	// directFallbackResponse is returned when the small-talk reply cannot be
	// generated.
	directFallbackResponse = "Hello! How can I help you today? / Olá! Como posso ajudar você hoje?"

	// catchAllResponseFormat wraps the failure cause for the client.
	catchAllResponseFormat = "Error processing request: %s / Erro ao processar solicitação: %s"
)

const classifyPromptTemplate = `Classify the user message into exactly one of these intents:
%s- casual_greeting: greetings, thanks and small talk that needs no specialist

User message: %s

Respond in exactly this format:
intent: one of the labels above
needs_agent: true if a specialist handler should answer, false for small talk`

const directReplyPromptTemplate = `You are a friendly customer support assistant. The user sent a casual message, not a support question. Reply briefly and warmly in the same language the user wrote in.

User message: %s`

const synthesizePromptTemplate = `Combine the following answers from specialized support handlers into one coherent reply for the user. Do not mention the handlers. Keep every concrete fact, drop duplicates, and answer in the same language the user wrote in.

User message: %s

Answers:
%s`
