package validator

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// suiteFile is the on-disk shape of the validation suite.
type suiteFile struct {
	TestCases []TestCase `json:"test_cases"`
}

// LoadSuite reads the validation suite from path. A missing file is not an
// error: the service still boots, with probing disabled until a suite exists.
func LoadSuite(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("validator: read suite %s: %w", path, err)
	}

	var file suiteFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("validator: parse suite %s: %w", path, err)
	}
	return file.TestCases, nil
}

// findCase matches a message against suite questions, case-insensitively and
// ignoring surrounding whitespace.
func (v *Validator) findCase(message string) (TestCase, bool) {
	key := normalize(message)
	for _, tc := range v.suite {
		if normalize(tc.Question) == key {
			return tc, true
		}
	}
	return TestCase{}, false
}

// Suite returns the loaded test cases in corpus order.
func (v *Validator) Suite() []TestCase {
	return v.suite
}

// CaseByID returns the suite case with the given id.
func (v *Validator) CaseByID(id string) (TestCase, bool) {
	for _, tc := range v.suite {
		if tc.ID == id {
			return tc, true
		}
	}
	return TestCase{}, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
