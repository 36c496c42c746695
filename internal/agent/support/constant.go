package support

const (
	// HandlerName is the registry name for this handler.
	HandlerName = "support_agent"

	handlerDescription = "Handles account questions and support actions using customer tools"

	// Priority 5: account questions beat the documentation handler on ties.
	handlerPriority = 5

	// maxToolIterations bounds the tool-calling loop so a looping model
	// cannot hold a request forever.
	maxToolIterations = 5
)

const (
	// missingUserResponse is returned when an account request arrives
	// without an identified user.
	missingUserResponse = "To help with account questions I need to identify you first. Please provide your user ID. / Para ajudar com questões da sua conta, preciso identificar você primeiro. Por favor, informe seu ID de usuário."

	// errorResponse is returned when the model or a tool chain fails.
	errorResponse = "I couldn't complete that support request right now. Please try again. / Não consegui concluir essa solicitação de suporte agora. Tente novamente."
)

const systemInstruction = `You are a customer support agent. Use the available tools to look up account data, transactions, tickets and service status for the current user. Never invent account data: if a tool fails or returns nothing, say so. Answer in the same language the user wrote in.`
