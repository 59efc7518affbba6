package framework

import "fmt"

const (
	passedMarker = "PASSED"
	failedMarker = "FAILED"
)

// Procedure is a single test procedure. It receives the Test it belongs to,
// performs its checks through the assert package (or any code that raises a
// Failure), and returns normally on success.
type Procedure func(t *Test)

type procShape int

const (
	procNone procShape = iota
	procSingle
	procMany
)

// Test is the smallest executable unit: one or more procedures run and
// reported together under one name. The shape of the procedure set (single
// vs. group) is fixed at construction.
type Test struct {
	name       string
	shape      procShape
	single     Procedure
	group      []Procedure
	owner      *Case
	resolver   *CallSiteResolver
	normalizer *MessageNormalizer
}

// NewTest creates a test with a single procedure.
func NewTest(name string, proc Procedure) *Test {
	t := newTest(name)
	if proc != nil {
		t.shape = procSingle
		t.single = proc
	}
	return t
}

// NewTestGroup creates a test whose procedures all run in one pass, so that
// a single report surfaces every sub-failure at once.
func NewTestGroup(name string, procs ...Procedure) *Test {
	t := newTest(name)
	if len(procs) > 0 {
		t.shape = procMany
		t.group = procs
	}
	return t
}

func newTest(name string) *Test {
	return &Test{
		name:       name,
		resolver:   DefaultCallSiteResolver(),
		normalizer: DefaultMessageNormalizer(),
	}
}

// Name returns the test's human-readable name.
func (t *Test) Name() string {
	return t.name
}

// Owner returns the Case this test belongs to, or nil for a standalone
// test. The back-reference is set once, by NewCase; it is lookup only and
// implies no ownership of lifetime.
func (t *Test) Owner() *Case {
	return t.owner
}

// Execute runs the test's procedures and captures their outcome. Assertion
// failures and other panics from procedures are recovered and recorded, not
// propagated; the returned error is non-nil only for a fatal configuration
// error (a test with no procedures), which aborts the run instead of being
// counted as a failed test.
//
// Executing the same Test again is legal and re-runs the procedures fresh.
func (t *Test) Execute() (ExecutionResult, error) {
	var result ExecutionResult
	switch t.shape {
	case procSingle:
		failed, message := t.runProcedure(t.single)
		result.Passed = !failed
		result.Message = message
	case procMany:
		// Run every procedure; stopping at the first failure would hide
		// the rest of them until the next run.
		result.Passed = true
		combined := ""
		for _, proc := range t.group {
			failed, message := t.runProcedure(proc)
			if failed {
				result.Passed = false
				if combined != "" {
					combined += "\n"
				}
				combined += message
			}
		}
		result.Message = combined
	default:
		return ExecutionResult{}, &ConfigError{TestName: t.name, Problem: "it has no test procedures"}
	}
	result.Site, _ = t.resolver.Resolve()
	return result, nil
}

// runProcedure invokes one procedure, converting a raised Failure (or any
// other panic from user code) into a normalized failure message.
func (t *Test) runProcedure(proc Procedure) (failed bool, message string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		failed = true
		message = t.normalizer.Normalize(panicMessage(r))
	}()
	proc(t)
	return false, ""
}

func panicMessage(r interface{}) string {
	switch v := r.(type) {
	case Failure:
		return v.Message
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}

// Report writes the one-test report block for a result. A standalone test
// shows its own call site in the header and closes its block with a
// separator; a test inside a Case shows the case name instead, and leaves
// block boundaries to the Case.
func (t *Test) Report(w LineWriter, r ExecutionResult) {
	w.WriteLine(rule("-"))

	marker := passedMarker
	if !r.Passed {
		marker = failedMarker
	}
	header := padToWidth(fmt.Sprintf("%s | %s", marker, t.name))
	if t.owner != nil {
		header += t.owner.Name()
	} else if r.Site.Known() {
		header += r.Site.String()
	}
	w.WriteLine(header)

	if !r.Passed {
		w.WriteLine(r.Message)
	}
	if t.owner == nil {
		w.WriteLine(rule("-"))
	}
}
