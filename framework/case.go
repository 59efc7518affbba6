package framework

import "fmt"

// Case is an ordered group of tests reported together under one banner and
// summary. Construction wires each contained test's back-reference to the
// case; order of tests is execution and report order.
type Case struct {
	name        string
	tests       []*Test
	resolver    *CallSiteResolver
	debugLogger Logger
}

// NewCase creates a case containing the given tests, in order, and sets
// each test's owner back-reference.
func NewCase(name string, tests ...*Test) *Case {
	c := &Case{
		name:        name,
		tests:       tests,
		resolver:    DefaultCallSiteResolver(),
		debugLogger: NullLogger(),
	}
	for _, t := range tests {
		t.owner = c
	}
	return c
}

// Name returns the case's name.
func (c *Case) Name() string {
	return c.name
}

// Tests returns the contained tests in execution order.
func (c *Case) Tests() []*Test {
	return append([]*Test(nil), c.tests...)
}

// SetDebugLogger directs per-test trace output somewhere other than the
// default of discarding it.
func (c *Case) SetDebugLogger(logger Logger) {
	if logger == nil {
		logger = NullLogger()
	}
	c.debugLogger = logger
}

// Execute runs and reports every contained test in order, framed by a
// banner and a summary. A configuration error from any test aborts the
// whole call, skipping the remaining tests and the summary; test failures
// never do.
func (c *Case) Execute(w LineWriter) (CaseResult, error) {
	result := CaseResult{Name: c.name, Total: len(c.tests)}

	banner := c.name
	if site, ok := c.resolver.Resolve(); ok {
		banner += ", " + site.String()
	}
	w.WriteLine(rule("="))
	w.WriteLine(banner)
	w.WriteLine(rule("="))

	for _, t := range c.tests {
		c.debugLogger.Printf("running test %q", t.Name())
		r, err := t.Execute()
		if err != nil {
			return result, err
		}
		if r.Passed {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Tests = append(result.Tests, outcomeFromResult(t.Name(), r))
		t.Report(w, r)
	}

	w.WriteLine(rule("-"))
	// Guards against a future partial-execution mode failing to run every
	// test; with the sequential loop above the counts always add up.
	if result.Passed+result.Failed != result.Total {
		w.WriteLine(fmt.Sprintf("WARNING: only %d of %d tests were run",
			result.Passed+result.Failed, result.Total))
	}
	w.WriteLine("")
	w.WriteLine(summaryLine(result))
	w.WriteLine(rule("="))

	return result, nil
}

func summaryLine(r CaseResult) string {
	noun := "tests"
	if r.Total == 1 {
		noun = "test"
	}
	return fmt.Sprintf("%d %s run. %d passed, %d failed.", r.Total, noun, r.Passed, r.Failed)
}
