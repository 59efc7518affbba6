package framework

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ExecutionResult is the outcome of one Test.Execute call. It is transient:
// produced by Execute, consumed immediately by Report, never stored.
type ExecutionResult struct {
	Passed  bool
	Message string // empty when passed; newline-joined when several procedures failed
	Site    CallSite
}

// TestOutcome is the recorded outcome of one test, as kept in a CaseResult
// for machine-readable export.
type TestOutcome struct {
	Name    string              `json:"name"`
	Passed  bool                `json:"passed"`
	Message string              `json:"message,omitempty"`
	Source  string              `json:"source,omitempty"`
	Line    ldvalue.OptionalInt `json:"line"`
}

// CaseResult is the tally for one executed Case.
type CaseResult struct {
	Name   string        `json:"name"`
	Total  int           `json:"total"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Tests  []TestOutcome `json:"tests"`
}

func (r CaseResult) OK() bool {
	return r.Failed == 0
}

// RunSummary aggregates the results of a whole run across cases.
type RunSummary struct {
	Timestamp string       `json:"timestamp"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
	Cases     []CaseResult `json:"cases"`
}

func (s RunSummary) OK() bool {
	return s.Failed == 0
}

// Add appends a case result and updates the aggregate tallies.
func (s *RunSummary) Add(r CaseResult) {
	s.Cases = append(s.Cases, r)
	s.Passed += r.Passed
	s.Failed += r.Failed
}

// NewRunSummary creates an empty summary stamped with the current time.
func NewRunSummary() RunSummary {
	return RunSummary{Timestamp: time.Now().Format(time.RFC3339)}
}

func outcomeFromResult(name string, r ExecutionResult) TestOutcome {
	o := TestOutcome{
		Name:    name,
		Passed:  r.Passed,
		Message: r.Message,
	}
	if r.Site.Known() {
		o.Source = r.Site.Source
		o.Line = ldvalue.NewOptionalInt(r.Site.Line)
	}
	return o
}
