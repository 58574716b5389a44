package apitests

import (
	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
)

// APITestContext is the application-defined context of a suite run.
type APITestContext struct {
	harness *harness.TestHarness
}

func requireContext(t *apitest.T) APITestContext {
	if c, ok := t.Context().(APITestContext); ok {
		return c
	}
	panic("APITestContext was not included in the global test configuration!" +
		" This is a basic mistake in the initialization logic.")
}

// client returns an HTTP client that logs every request to the debug output of t.
func (c APITestContext) client(t *apitest.T) *harness.Client {
	return c.harness.Client(t.DebugLogger())
}

func (c APITestContext) config() apiconfig.Config {
	return c.harness.Config()
}
