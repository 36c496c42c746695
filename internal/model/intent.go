package model

// IntentCategory is the closed set of request intents. New intents are added
// here, never as free text.
type IntentCategory string

const (
	IntentProductInfo     IntentCategory = "product_info"
	IntentCustomerSupport IntentCategory = "customer_support"
	IntentGeneralQuestion IntentCategory = "general_question"
	IntentSystemTesting   IntentCategory = "system_testing"
)

// CasualGreetingLabel is a reserved classifier label for small talk. It is
// not an IntentCategory: the classifier may emit it, and it maps to
// IntentGeneralQuestion with no handler needed.
const CasualGreetingLabel = "casual_greeting"
