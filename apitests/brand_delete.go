package apitests

import (
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	"github.com/stretchr/testify/require"
)

func doBrandDeleteTests(t *apitest.T, sessions *Sessions) {
	t.Run("by admin", func(t *apitest.T) { doBrandDeleteByAdminTest(t, sessions) })
	t.Run("nonexistent id", func(t *apitest.T) { doBrandDeleteNonexistentTest(t, sessions) })
	t.Run("without token", doBrandDeleteWithoutTokenTest)
	t.Run("with invalid token", doBrandDeleteWithInvalidTokenTest)
	t.Run("with insufficient permission", func(t *apitest.T) { doBrandDeleteAsUserTest(t, sessions) })
}

func doBrandDeleteByAdminTest(t *apitest.T, sessions *Sessions) {
	ctx := requireContext(t)
	client := ctx.client(t)
	token := sessions.Token(t, Admin)
	fixture := NewBrandFixture(t)

	resp, err := client.Delete(apidef.BrandPath(fixture.ID()), harness.BearerToken(token))
	require.NoError(t, err)
	after, err := client.Get(apidef.BrandPath(fixture.ID()))
	require.NoError(t, err)

	softassert.Run(t, "DELETE brand as admin", func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusNoContent)
		a.HeaderAbsent("server header", resp.Header, "Server")
		a.HeaderEqual("access-control-allow-origin header", resp.Header, "Access-Control-Allow-Origin",
			apidef.AllowOriginValue)
		a.HeaderEqual("cache-control header", resp.Header, "Cache-Control", apidef.CacheControlValue)
		checkLatency(a, ctx, resp)
		checkStatus(a, after, http.StatusNotFound)
	})
}

func doBrandDeleteNonexistentTest(t *apitest.T, sessions *Sessions) {
	ctx := requireContext(t)
	token := sessions.Token(t, Admin)

	resp, err := ctx.client(t).Delete(apidef.BrandPath(apidef.NonexistentID), harness.BearerToken(token))
	require.NoError(t, err)

	softassert.Run(t, "DELETE nonexistent brand", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnprocessableEntity)
		checkFirstMessage(a, resp, "id", apidef.MessageInvalidID)
	})
}

func doBrandDeleteWithoutTokenTest(t *apitest.T) {
	doBrandDeleteUnauthorizedTest(t)
}

func doBrandDeleteWithInvalidTokenTest(t *apitest.T) {
	doBrandDeleteUnauthorizedTest(t, harness.BearerToken("fake_token"))
}

func doBrandDeleteUnauthorizedTest(t *apitest.T, options ...harness.RequestOption) {
	ctx := requireContext(t)
	client := ctx.client(t)
	fixture := NewBrandFixture(t)

	resp, err := client.Delete(apidef.BrandPath(fixture.ID()), options...)
	require.NoError(t, err)
	after, err := client.Get(apidef.BrandPath(fixture.ID()))
	require.NoError(t, err)

	softassert.Run(t, "DELETE brand without valid token", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnauthorized)
		a.JSONEqual("body", apidef.MessageResponse{Message: apidef.MessageUnauthorized}, resp.Body)
		a.Equal("brand still exists", http.StatusOK, after.StatusCode)
	})
}

func doBrandDeleteAsUserTest(t *apitest.T, sessions *Sessions) {
	ctx := requireContext(t)
	client := ctx.client(t)
	token := sessions.Token(t, User1)
	fixture := NewBrandFixture(t)

	resp, err := client.Delete(apidef.BrandPath(fixture.ID()), harness.BearerToken(token))
	require.NoError(t, err)
	after, err := client.Get(apidef.BrandPath(fixture.ID()))
	require.NoError(t, err)

	softassert.Run(t, "DELETE brand as non-admin user", func(a *softassert.Assertions) {
		a.That("status code", resp, StatusIn(http.StatusUnauthorized, http.StatusForbidden))
		a.Kind("message", resp.Get("message"), softassert.String)
		checkJSONHeaders(a, resp)
		checkLatency(a, ctx, resp)
		a.Equal("brand still exists", http.StatusOK, after.StatusCode)
	})
}
