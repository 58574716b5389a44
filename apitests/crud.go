package apitests

import (
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/data"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	"github.com/launchdarkly/go-test-helpers/v2/jsonhelpers"
	"github.com/stretchr/testify/require"
)

// doBrandLifecycleTests walks one brand through create, update and delete. Unlike the other
// brand tests these steps are chained within a single scenario.
func doBrandLifecycleTests(t *apitest.T) {
	sessions := NewSessions(requireContext(t).harness)

	t.Run("list is not empty", doBrandListNotEmptyTest)
	t.Run("create then update", doBrandCreateThenUpdateTest)
	t.Run("create then delete", func(t *apitest.T) { doBrandCreateThenDeleteTest(t, sessions) })
}

func doBrandListNotEmptyTest(t *apitest.T) {
	resp, err := requireContext(t).client(t).Get(apidef.PathBrands)
	require.NoError(t, err)

	softassert.Run(t, "GET "+apidef.PathBrands, func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		a.True("brand list is not empty", len(resp.Root().Array()) > 0)
	})
}

func doBrandCreateThenUpdateTest(t *apitest.T) {
	client := requireContext(t).client(t)
	payload := data.UniqueBrandParams()

	created := postBrand(t, harness.JSONBody(payload))
	require.Equal(t, http.StatusCreated, created.StatusCode, "create failed: %s", created.Body)
	id := int(created.Get("id").Int())

	update := data.UpdatedBrandParams(payload)
	t.Debug("updating brand %d to %s", id, jsonhelpers.ToJSONString(update))
	updated, err := client.Put(apidef.BrandPath(id), harness.JSONBody(update))
	require.NoError(t, err)
	after, err := client.Get(apidef.BrandPath(id))
	require.NoError(t, err)

	softassert.Run(t, "create then update brand", func(a *softassert.Assertions) {
		a.Equal("created name", payload.Name, created.Get("name").String())
		a.Equal("created slug", payload.Slug, created.Get("slug").String())
		checkStatus(a, updated, http.StatusOK)
		a.JSONEqual("update body", apidef.SuccessResponse{Success: true}, updated.Body)
		checkStatus(a, after, http.StatusOK)
		a.Equal("updated name", update.Name, after.Get("name").String())
		a.Equal("updated slug", update.Slug, after.Get("slug").String())
	})
}

func doBrandCreateThenDeleteTest(t *apitest.T, sessions *Sessions) {
	client := requireContext(t).client(t)
	token := sessions.Token(t, Admin)

	created := postBrand(t, harness.JSONBody(data.UniqueBrandParams()))
	require.Equal(t, http.StatusCreated, created.StatusCode, "create failed: %s", created.Body)
	id := int(created.Get("id").Int())

	deleted, err := client.Delete(apidef.BrandPath(id), harness.BearerToken(token))
	require.NoError(t, err)

	softassert.Run(t, "create then delete brand", func(a *softassert.Assertions) {
		checkStatus(a, deleted, http.StatusNoContent)
		a.Equal("empty body", "", string(deleted.Body))
	})
}
