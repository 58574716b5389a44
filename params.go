package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
)

type commandParams struct {
	envFile        string
	serviceURL     string
	mock           bool
	filters        apitest.RegexFilters
	skipFile       string
	recordFailures string
	debug          bool
	debugAll       bool
	jUnitFile      string
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.envFile, "env-file", apiconfig.DefaultEnvFile, "dotenv file with the API URL and credentials")
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the API, overriding "+apiconfig.EnvURL)
	fs.BoolVar(&c.mock, "mock", false, "run against the built-in mock API instead of a real one")
	fs.Var(&c.filters.Run, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.Skip, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-from", "", "file with test IDs to skip, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "write the IDs of failed tests to this file")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.mock && c.serviceURL != "" {
		fmt.Fprintln(os.Stderr, "-mock and -url cannot be used together")
		fs.Usage()
		return false
	}
	return true
}
