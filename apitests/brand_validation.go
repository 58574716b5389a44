package apitests

import (
	"fmt"

	"github.com/toolshop-qa/api-test-harness/data"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	"github.com/stretchr/testify/require"
)

func doBrandValidationTests(t *apitest.T) {
	cases, err := data.LoadBrandValidationCases()
	require.NoError(t, err)

	for _, c := range cases {
		t.Run(c.Name, func(t *apitest.T) { doBrandValidationTest(t, c) })
	}
}

func doBrandValidationTest(t *apitest.T, c data.BrandValidationCase) {
	ctx := requireContext(t)
	t.Debug("payload: %s", c.Payload)

	resp := postBrand(t, harness.RawBody(c.Payload))

	softassert.Run(t, "POST brand with invalid payload", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, c.ExpectedStatus)
		for _, field := range c.ExpectedFields() {
			checkFirstMessage(a, resp, field, c.ExpectedErrors[field])
		}
		for _, field := range c.UnexpectedFields {
			a.NotHasKey(fmt.Sprintf("no %q validation message", field), resp.Root(), field)
		}
	})
}
