// Package assert provides the predicate checks used inside test procedures.
//
// Each predicate either returns normally (the check passed) or raises a
// framework.Failure carrying a message of the fixed shape
//
//	<ASSERT_TAG>: <subject> <predicate> <object>.   <source>:<line>
//
// where the trailing location suffix is padded so that the ":<line>" marker
// lands at column 80 when it fits. The raised message is additionally
// prefixed with the raise site inside this package; the framework's message
// normalizer strips that prefix before reporting.
package assert

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/mkchai/minitest/framework"
)

// suffixColumn is where the ":<line>" marker of the location suffix is
// aligned, matching the overall report width.
const suffixColumn = 80

var resolver = framework.NewCallSiteResolver(nil, framework.DefaultInternalSources)

// Equal raises ASSERT_EQUAL unless got equals want (deep equality).
func Equal(got, want interface{}) {
	if !reflect.DeepEqual(got, want) {
		fail(fmt.Sprintf("ASSERT_EQUAL: %v is not equal to %v.", got, want))
	}
}

// NotEqual raises ASSERT_NOT_EQUAL when got equals want.
func NotEqual(got, want interface{}) {
	if reflect.DeepEqual(got, want) {
		fail(fmt.Sprintf("ASSERT_NOT_EQUAL: %v is equal to %v.", got, want))
	}
}

// True raises ASSERT_TRUE unless the condition holds.
func True(condition bool) {
	if !condition {
		fail("ASSERT_TRUE: false is not true.")
	}
}

// False raises ASSERT_FALSE when the condition holds.
func False(condition bool) {
	if condition {
		fail("ASSERT_FALSE: true is not false.")
	}
}

// Nil raises ASSERT_NIL unless the value is nil.
func Nil(value interface{}) {
	if !isNil(value) {
		fail(fmt.Sprintf("ASSERT_NIL: %v is not nil.", value))
	}
}

// NotNil raises ASSERT_NOT_NIL when the value is nil.
func NotNil(value interface{}) {
	if isNil(value) {
		fail("ASSERT_NOT_NIL: value is nil.")
	}
}

// Raises runs fn, expecting it to raise. It recovers any panic from fn and
// treats that as success; a normal return raises ASSERT_ERROR.
func Raises(fn func()) {
	if !didPanic(fn) {
		fail("ASSERT_ERROR: no error was raised.")
	}
}

func didPanic(fn func()) (raised bool) {
	defer func() {
		if recover() != nil {
			raised = true
		}
	}()
	fn()
	return false
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// fail raises a framework.Failure whose message carries the failure body,
// the aligned user call-site suffix, and the raise-site prefix from this
// file.
func fail(body string) {
	message := withLocationSuffix(body)
	_, file, line, ok := runtime.Caller(1)
	if ok {
		message = fmt.Sprintf("%s:%d: %s", sourceBase(file), line, message)
	}
	framework.Raise(message)
}

// withLocationSuffix appends the user call site, padded so the ":<line>"
// marker sits at the suffix column. A body too long for the alignment gets
// the suffix after a single space instead.
func withLocationSuffix(body string) string {
	site, ok := resolver.Resolve()
	if !ok {
		return body
	}
	line := fmt.Sprintf(":%d", site.Line)
	target := suffixColumn - 1 - len(site.Source)
	if len(body) < target {
		return body + strings.Repeat(" ", target-len(body)) + site.Source + line
	}
	return body + " " + site.Source + line
}

func sourceBase(source string) string {
	if i := strings.LastIndexAny(source, `/\`); i >= 0 {
		return source[i+1:]
	}
	return source
}
