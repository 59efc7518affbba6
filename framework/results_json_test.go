package framework

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestWriteAndReadResultsFile(t *testing.T) {
	summary := NewRunSummary()
	summary.Add(CaseResult{
		Name:   "Math",
		Total:  2,
		Passed: 1,
		Failed: 1,
		Tests: []TestOutcome{
			{Name: "Addition", Passed: true, Source: "main.go", Line: ldvalue.NewOptionalInt(10)},
			{Name: "BadAdd", Passed: false, Message: "ASSERT_EQUAL: 4 is not equal to 5."},
		},
	})

	path := filepath.Join(t.TempDir(), "nested", "results.json")
	require.NoError(t, WriteResultsFile(path, summary))

	got, err := ReadResultsFile(path)
	require.NoError(t, err)
	assert.Equal(t, summary, got)
	assert.Equal(t, 1, got.Passed)
	assert.Equal(t, 1, got.Failed)
	assert.False(t, got.OK())

	require.True(t, got.Cases[0].Tests[0].Line.IsDefined())
	assert.Equal(t, 10, got.Cases[0].Tests[0].Line.IntValue())
	assert.False(t, got.Cases[0].Tests[1].Line.IsDefined())
}

func TestReadResultsFileMissing(t *testing.T) {
	_, err := ReadResultsFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestRunSummaryTallies(t *testing.T) {
	summary := NewRunSummary()
	assert.True(t, summary.OK())

	summary.Add(CaseResult{Name: "A", Total: 3, Passed: 3})
	summary.Add(CaseResult{Name: "B", Total: 2, Passed: 1, Failed: 1})

	assert.Equal(t, 4, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.OK())
	require.Len(t, summary.Cases, 2)
}
