package knowledge

const (
	// HandlerName is the registry name for this handler.
	HandlerName = "knowledge_agent"

	handlerDescription = "Answers product and general questions from the documentation index"

	// Priority 3: preferred over the probe handler, below account support.
	handlerPriority = 3
)

const (
	// noContextResponse is returned when retrieval yields nothing usable.
	noContextResponse = "I couldn't find information about that in our documentation. Could you rephrase your question? / Não encontrei informações sobre isso em nossa documentação. Você poderia reformular sua pergunta?"

	// errorResponse is returned when retrieval or generation fails.
	errorResponse = "I'm having trouble accessing the knowledge base right now. Please try again in a moment. / Estou com dificuldade para acessar a base de conhecimento agora. Tente novamente em instantes."
)

const answerPromptTemplate = `You are a helpful customer support assistant. Answer the user's question using ONLY the documentation excerpts below. If the excerpts do not contain the answer, say you don't have that information. Answer in the same language the user asked in.

Documentation excerpts:
%s

Sources:
%s

User question: %s

Answer:`
