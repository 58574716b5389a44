package apitests

import (
	"fmt"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/tidwall/gjson"
)

// checkStatus records whether the response has the expected status code.
func checkStatus(a *softassert.Assertions, resp harness.Response, expected int) bool {
	return a.Equal(fmt.Sprintf("status code of %s %s", resp.Method, resp.URL), expected, resp.StatusCode)
}

// checkJSONHeaders records the header properties promised for every JSON response.
func checkJSONHeaders(a *softassert.Assertions, resp harness.Response) {
	a.HeaderEqual("cache-control header", resp.Header, "Cache-Control", apidef.CacheControlValue)
	a.HeaderOneOf("content-type header", resp.Header, "Content-Type", apidef.AllowedJSONContentTypes()...)
}

// checkLatency records whether the response arrived within the configured bound.
func checkLatency(a *softassert.Assertions, ctx APITestContext, resp harness.Response) {
	a.AtMost("response time", resp.Elapsed, ctx.config().MaxLatency)
}

// checkErrorResponse records the status, the body format, the headers and the latency of a
// negative-path response.
func checkErrorResponse(a *softassert.Assertions, ctx APITestContext, resp harness.Response, status int) {
	checkStatus(a, resp, status)
	a.True("error body is JSON", resp.IsJSON())
	checkJSONHeaders(a, resp)
	checkLatency(a, ctx, resp)
}

// checkFirstMessage records whether the first validation message for field is as expected.
func checkFirstMessage(a *softassert.Assertions, resp harness.Response, field, expected string) {
	a.That(fmt.Sprintf("first %q validation message", field), resp, FirstValidationMessage(field).Should(m.Equal(expected)))
}

// responseValues returns the string forms of the property values of a JSON object body, in
// document order.
func responseValues(resp harness.Response) []string {
	var ret []string
	resp.Root().ForEach(func(_, v gjson.Result) bool {
		ret = append(ret, v.String())
		return true
	})
	return ret
}
