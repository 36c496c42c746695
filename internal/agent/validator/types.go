package validator

// TestCase is one entry of the validation suite.
type TestCase struct {
	ID             string `json:"id"`
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	SourceURL      string `json:"source_url,omitempty"`
}

// Verdict is the judge's structured comparison of expected vs actual.
type Verdict struct {
	Match        bool     `json:"match"`
	Confidence   float64  `json:"confidence"`
	Differences  []string `json:"differences,omitempty"`
	Similarities []string `json:"similarities,omitempty"`
	Reason       string   `json:"reason"`
}

// CaseResult is the outcome of replaying one test case.
type CaseResult struct {
	CaseID           string  `json:"case_id"`
	Question         string  `json:"question"`
	Status           string  `json:"status"` // PASS, FAIL or ERROR
	Expected         string  `json:"expected"`
	Actual           string  `json:"actual,omitempty"`
	Verdict          Verdict `json:"verdict"`
	Error            string  `json:"error,omitempty"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
}

// SuiteResult aggregates a full suite run. Cases keep corpus order.
type SuiteResult struct {
	Total       int          `json:"total"`
	Passed      int          `json:"passed"`
	Failed      int          `json:"failed"`
	Errored     int          `json:"errored"`
	PassRate    float64      `json:"pass_rate"` // fraction 0..1, 0 for an empty suite
	TotalTimeMs int64        `json:"total_time_ms"`
	Cases       []CaseResult `json:"cases"`
}
