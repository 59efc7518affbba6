package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mkchai/minitest/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters  framework.RegexFilters
	jsonPath string
	noColor  bool
	debug    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.jsonPath, "json", "", "also write results to this file as JSON")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colorized report output")
	fs.BoolVar(&c.debug, "debug", false, "show debug trace output for failed cases")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunHint builds a command line that re-runs only the named tests.
func rerunHint(program string, failedNames []string) string {
	var b commandBuilder
	b.add(program)
	for _, name := range failedNames {
		b.add("-run", "^"+regexp.QuoteMeta(name)+"$")
	}
	return b.String()
}
