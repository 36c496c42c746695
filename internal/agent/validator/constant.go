package validator

const (
	// HandlerName is the registry name for this handler.
	HandlerName = "testing_agent"

	handlerDescription = "Replays the validation suite against the answering pipeline and judges the results"

	// Priority 1: the probe handler never outranks a production handler.
	handlerPriority = 1

	// targetHandler is the handler the suite replays against.
	targetHandler = "knowledge_agent"

	// passConfidenceThreshold: a semantic match below this confidence still
	// fails the case.
	passConfidenceThreshold = 0.7
)

// Case statuses.
const (
	StatusPass  = "PASS"
	StatusFail  = "FAIL"
	StatusError = "ERROR"
)

// defaultVerdictReason is used when the judge reply cannot be parsed. The
// unparseable reply fails the case rather than erroring it.
const defaultVerdictReason = "Could not parse comparison"

const comparePromptTemplate = `You are evaluating a customer support system. Compare the actual answer against the expected answer and judge whether they convey the same information.

Question: %s

Expected answer:
%s

Actual answer:
%s

Respond in exactly this format:
match: true or false
confidence: a number between 0.0 and 1.0
differences: comma-separated list, or "none"
similarities: comma-separated list, or "none"
reason: one sentence explaining your judgment`
