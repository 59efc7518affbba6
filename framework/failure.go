package framework

import "fmt"

// Failure is the panic payload raised by assertion predicates. Test.Execute
// recovers it at the procedure boundary and records it as a failed result;
// it never propagates out of the framework.
type Failure struct {
	Message string
}

func (f Failure) Error() string {
	return f.Message
}

// Raise panics with a Failure carrying the given message.
func Raise(message string) {
	panic(Failure{Message: message})
}

// ConfigError indicates a malformed test definition, such as a test with no
// procedures. This is a mistake in the test suite itself, not a failed test,
// so it is returned as an ordinary error and aborts the whole run.
type ConfigError struct {
	TestName string
	Problem  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("test %q is misconfigured: %s", e.TestName, e.Problem)
}
