package main

import (
	"strings"

	"github.com/mkchai/minitest/assert"
	"github.com/mkchai/minitest/framework"
)

// sampleCases builds the bundled demonstration suite, leaving out any test
// whose qualified "case/test" name is excluded by the filter.
func sampleCases(filter framework.Filter) []*framework.Case {
	var cases []*framework.Case
	for _, def := range []struct {
		name  string
		tests []*framework.Test
	}{
		{"Arithmetic", arithmeticTests()},
		{"Strings", stringTests()},
	} {
		var included []*framework.Test
		for _, t := range def.tests {
			if filter(def.name + "/" + t.Name()) {
				included = append(included, t)
			}
		}
		if len(included) > 0 {
			cases = append(cases, framework.NewCase(def.name, included...))
		}
	}
	return cases
}

func arithmeticTests() []*framework.Test {
	return []*framework.Test{
		framework.NewTest("Addition", func(t *framework.Test) {
			assert.Equal(2+2, 4)
		}),
		framework.NewTestGroup("Multiplication",
			func(t *framework.Test) {
				assert.Equal(6*7, 42)
			},
			func(t *framework.Test) {
				assert.NotEqual(6*9, 42)
			},
		),
		framework.NewTest("DivisionByZero", func(t *framework.Test) {
			zero := 0
			assert.Raises(func() {
				_ = 1 / zero
			})
		}),
	}
}

func stringTests() []*framework.Test {
	return []*framework.Test{
		framework.NewTest("Concat", func(t *framework.Test) {
			assert.Equal("mini"+"test", "minitest")
		}),
		framework.NewTestGroup("Fields",
			func(t *framework.Test) {
				assert.Equal(len(strings.Fields("a b c")), 3)
			},
			func(t *framework.Test) {
				assert.True(strings.Contains("minitest", "test"))
			},
			func(t *framework.Test) {
				assert.False(strings.Contains("minitest", "maxi"))
			},
		),
		framework.NewTest("Empty", func(t *framework.Test) {
			assert.Nil(nil)
			assert.NotNil("")
			assert.Equal(strings.TrimSpace("  "), "")
		}),
	}
}
