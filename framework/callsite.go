package framework

import (
	"fmt"
	"runtime"
	"strings"
)

// callSiteMaxDepth is how many stack frames the resolver will inspect above
// its starting point before giving up.
const callSiteMaxDepth = 10

// DefaultInternalSources are the source files that make up the framework's
// own call layers between a failing user line and the report: the assertion
// module, the individual-test module, and the test-case module. Frames from
// these files are never reported as a call site.
var DefaultInternalSources = []string{"assert.go", "test.go", "case.go"}

// CallSite identifies a location in user code. The zero value means the
// location could not be determined.
type CallSite struct {
	Source string
	Line   int
}

func (c CallSite) Known() bool {
	return c.Source != ""
}

func (c CallSite) String() string {
	if !c.Known() {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", c.Source, c.Line)
}

// StackFrameAt is the stack-inspection capability the resolver depends on.
// Depth 0 is the frame of the function that invoked the resolver's Resolve
// method; it returns ok=false when depth exceeds the active stack.
type StackFrameAt func(depth int) (source string, line int, ok bool)

// RuntimeStackFrameAt implements StackFrameAt on top of runtime.Caller.
func RuntimeStackFrameAt(depth int) (string, int, bool) {
	// +2 skips this function's own frame and Resolve's frame, so that
	// depth 0 means Resolve's caller.
	_, file, line, ok := runtime.Caller(depth + 2)
	return file, line, ok
}

// CallSiteResolver finds the nearest stack frame that does not belong to the
// framework's internals. Assertion and test execution are themselves call
// layers between the user's failing line and the report, so a naive
// immediate-caller lookup would always land inside the framework; the
// resolver walks upward until it leaves the internal source set.
type CallSiteResolver struct {
	frameAt  StackFrameAt
	internal map[string]bool
}

// NewCallSiteResolver creates a resolver that treats frames from the given
// source files as internal. Passing nil for frameAt uses runtime.Caller.
func NewCallSiteResolver(frameAt StackFrameAt, internalSources []string) *CallSiteResolver {
	if frameAt == nil {
		frameAt = RuntimeStackFrameAt
	}
	internal := make(map[string]bool, len(internalSources))
	for _, s := range internalSources {
		internal[s] = true
	}
	return &CallSiteResolver{frameAt: frameAt, internal: internal}
}

var defaultResolver = NewCallSiteResolver(nil, DefaultInternalSources)

// DefaultCallSiteResolver returns the shared resolver configured with
// DefaultInternalSources.
func DefaultCallSiteResolver() *CallSiteResolver {
	return defaultResolver
}

// Resolve walks the stack starting two levels above the resolver's own frame
// (skipping Resolve and its immediate framework caller) for up to
// callSiteMaxDepth additional levels. It returns the first frame whose
// source, stripped of leading directories, is not in the internal set. When
// the walk is exhausted it returns ok=false; callers must treat that as
// "location unknown", not as an error.
func (r *CallSiteResolver) Resolve() (CallSite, bool) {
	for depth := 1; depth <= callSiteMaxDepth; depth++ {
		source, line, ok := r.frameAt(depth)
		if !ok {
			break
		}
		base := sourceBase(source)
		if r.internal[base] {
			continue
		}
		return CallSite{Source: base, Line: line}, true
	}
	return CallSite{}, false
}

// sourceBase strips any leading directory path from a source identifier,
// leaving just the final component. Source identifiers may use either
// separator style, or be synthetic names with no separator at all.
func sourceBase(source string) string {
	if i := strings.LastIndexAny(source, `/\`); i >= 0 {
		return source[i+1:]
	}
	return source
}
