// Package framework contains the test execution and reporting engine.
//
// The general model is:
//
// 1. A Test owns one or more test procedures under a single name. Executing
// it runs the procedures, capturing assertion failures rather than letting
// them propagate, and produces a transient ExecutionResult.
//
// 2. A Case owns an ordered list of Tests and reports them together under a
// banner, with a pass/fail summary at the end. Report layout is line-based
// and strictly ordered, so all output goes through a LineWriter.
//
// 3. Failures are located in user code by walking the call stack past the
// framework's own internal layers (see CallSiteResolver), and failure
// messages are cleaned of redundant framework location tags (see
// MessageNormalizer).
//
// The assertion predicates themselves live in the higher-level assert
// package; this package only defines the Failure type they raise.
package framework
