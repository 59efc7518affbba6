// Command minitest runs the framework's bundled sample suite. It exists to
// demonstrate the report layout and the runner conventions; the framework
// and assert packages are the real deliverable.
package main

import (
	"fmt"
	"os"

	"github.com/mkchai/minitest/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	framework.PrintFilterDescription(os.Stdout, params.filters)

	cases := sampleCases(params.filters.AsFilter)
	if len(cases) == 0 {
		fmt.Fprintln(os.Stderr, "no tests matched the filter criteria")
		os.Exit(1)
	}

	writer := framework.NewConsoleWriter(os.Stdout, !params.noColor)
	summary := framework.NewRunSummary()
	var failedNames []string

	for _, c := range cases {
		var debugLog framework.CapturingLogger
		if params.debug {
			c.SetDebugLogger(&debugLog)
		}

		result, err := c.Execute(writer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
			os.Exit(1)
		}
		summary.Add(result)
		for _, outcome := range result.Tests {
			if !outcome.Passed {
				failedNames = append(failedNames, result.Name+"/"+outcome.Name)
			}
		}
		if params.debug && !result.OK() {
			debugLog.Output().Dump(os.Stdout, "  DEBUG ")
		}
		fmt.Println()
	}

	if params.jsonPath != "" {
		if err := framework.WriteResultsFile(params.jsonPath, summary); err != nil {
			fmt.Fprintf(os.Stderr, "could not write results: %s\n", err)
			os.Exit(1)
		}
	}

	if !summary.OK() {
		fmt.Println("To re-run only the failed tests:")
		fmt.Printf("  %s\n", rerunHint(os.Args[0], failedNames))
		os.Exit(1)
	}
}
