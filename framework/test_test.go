package framework

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passingProc(*Test) {}

func failingProc(message string) Procedure {
	return func(*Test) {
		Raise(message)
	}
}

func TestExecuteSinglePassingProcedure(t *testing.T) {
	test := NewTest("Addition", passingProc)

	r, err := test.Execute()
	require.NoError(t, err)
	assert.True(t, r.Passed)
	assert.Equal(t, "", r.Message)
	require.True(t, r.Site.Known())
	assert.Equal(t, "test_test.go", r.Site.Source)
}

func TestExecuteSingleFailingProcedure(t *testing.T) {
	test := NewTest("BadAdd", failingProc("assert.go:12: ASSERT_EQUAL: 4 is not equal to 5."))

	r, err := test.Execute()
	require.NoError(t, err)
	assert.False(t, r.Passed)
	assert.Equal(t, "ASSERT_EQUAL: 4 is not equal to 5.", r.Message)
}

func TestExecuteRecoversArbitraryPanic(t *testing.T) {
	test := NewTest("Panicky", func(*Test) {
		panic(errors.New("kaboom"))
	})

	r, err := test.Execute()
	require.NoError(t, err)
	assert.False(t, r.Passed)
	assert.Equal(t, "kaboom", r.Message)
}

func TestExecuteGroupRunsEveryProcedure(t *testing.T) {
	var ran []string
	test := NewTestGroup("Group",
		func(*Test) { ran = append(ran, "a") },
		func(*Test) { ran = append(ran, "b"); Raise("first problem") },
		func(*Test) { ran = append(ran, "c") },
		func(*Test) { ran = append(ran, "d"); Raise("second problem") },
	)

	r, err := test.Execute()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ran)
	assert.False(t, r.Passed)
	assert.Equal(t, []string{"first problem", "second problem"}, strings.Split(r.Message, "\n"))
}

func TestExecuteGroupAllPassing(t *testing.T) {
	test := NewTestGroup("Group", passingProc, passingProc)

	r, err := test.Execute()
	require.NoError(t, err)
	assert.True(t, r.Passed)
	assert.Equal(t, "", r.Message)
}

func TestExecuteWithoutProceduresIsFatal(t *testing.T) {
	for name, test := range map[string]*Test{
		"nil single":  NewTest("Empty", nil),
		"empty group": NewTestGroup("Empty"),
	} {
		_, err := test.Execute()
		require.Error(t, err, name)
		var confErr *ConfigError
		require.True(t, errors.As(err, &confErr), name)
		assert.Equal(t, "Empty", confErr.TestName, name)
		assert.Contains(t, err.Error(), "Empty")
	}
}

func TestExecuteTwiceGivesEqualResults(t *testing.T) {
	test := NewTest("Stable", failingProc("always the same"))

	r1, err := test.Execute()
	require.NoError(t, err)
	r2, err := test.Execute()
	require.NoError(t, err)

	assert.Equal(t, r1.Passed, r2.Passed)
	assert.Equal(t, r1.Message, r2.Message)
	assert.Equal(t, r1.Site.Source, r2.Site.Source)
}

func TestReportStandaloneTest(t *testing.T) {
	test := NewTest("Solo", passingProc)
	var buf LineBuffer
	test.Report(&buf, ExecutionResult{Passed: true, Site: CallSite{Source: "spec.go", Line: 7}})

	lines := buf.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", 80), lines[0])
	assert.Equal(t, "PASSED | Solo", strings.TrimRight(lines[1][:80], " "))
	assert.Equal(t, "spec.go:7", lines[1][80:])
	assert.Equal(t, strings.Repeat("-", 80), lines[2])
}

func TestReportFailureInsideCase(t *testing.T) {
	test := NewTest("BadAdd", passingProc)
	NewCase("Math", test)

	var buf LineBuffer
	test.Report(&buf, ExecutionResult{Passed: false, Message: "ASSERT_EQUAL: 4 is not equal to 5."})

	lines := buf.Lines()
	// No closing separator: the case manages block boundaries.
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat("-", 80), lines[0])
	assert.Equal(t, "FAILED | BadAdd", strings.TrimRight(lines[1][:80], " "))
	assert.Equal(t, "Math", lines[1][80:])
	assert.Equal(t, "ASSERT_EQUAL: 4 is not equal to 5.", lines[2])
}

func TestReportHeaderPadding(t *testing.T) {
	shortTest := NewTest("Short", passingProc)
	var buf LineBuffer
	shortTest.Report(&buf, ExecutionResult{Passed: true, Site: CallSite{Source: "s.go", Line: 1}})
	header := buf.Lines()[1]
	assert.Equal(t, 80+len("s.go:1"), len(header))

	longName := strings.Repeat("x", 100)
	longTest := NewTest(longName, passingProc)
	buf = LineBuffer{}
	longTest.Report(&buf, ExecutionResult{Passed: true, Site: CallSite{Source: "s.go", Line: 1}})
	header = buf.Lines()[1]
	// Headers at or over the layout width are not padded or truncated.
	assert.Equal(t, "PASSED | "+longName+"s.go:1", header)
}

func TestOwnerBackReference(t *testing.T) {
	inCase := NewTest("A", passingProc)
	standalone := NewTest("B", passingProc)
	c := NewCase("Case", inCase)

	assert.Equal(t, c, inCase.Owner())
	assert.Nil(t, standalone.Owner())
}
