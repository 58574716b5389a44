package apitests

import (
	"fmt"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
)

// RunAPITestSuite runs every scenario against the API that the harness is connected to.
func RunAPITestSuite(
	harness *harness.TestHarness,
	filter apitest.Filter,
	testLogger apitest.TestLogger,
) apitest.Results {
	capabilities := harness.ServiceInfo().Capabilities

	fmt.Println()
	if rf, ok := filter.(apitest.RegexFilters); ok {
		for _, line := range apitest.DescribeFilters(rf, apiconfig.AllCapabilities(), capabilities) {
			fmt.Println(line)
		}
	}

	config := apitest.TestConfiguration{
		Filter:       filter,
		Capabilities: capabilities,
		TestLogger:   testLogger,
		Context: APITestContext{
			harness: harness,
		},
	}

	return apitest.Run(config, doAllTests)
}

func doAllTests(t *apitest.T) {
	t.Run("brands", doBrandTests)
	t.Run("brand lifecycle", doBrandLifecycleTests)
	t.Run("products", doProductTests)
	t.Run("auth", doAuthTests)
}
