package apitests

import (
	"net/http"
	"strconv"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/data"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/require"
)

func doBrandTests(t *apitest.T) {
	sessions := NewSessions(requireContext(t).harness)

	t.Run("list", doBrandListTest)
	t.Run("get by id", doBrandGetTest)
	t.Run("get nonexistent id", doBrandGetNonexistentTest)
	t.Run("search", doBrandSearchTest)
	t.Run("create", doBrandCreateTest)
	t.Run("duplicate slug", doBrandDuplicateSlugTest)
	t.Run("duplicate name", doBrandDuplicateNameTest)
	t.Run("duplicate name and slug", doBrandDuplicateNameAndSlugTest)
	t.Run("update to existing name and slug", doBrandUpdateToExistingTest)
	t.Run("validation", doBrandValidationTests)
	t.Run("POST on search route", doBrandSearchWrongMethodTest)
	t.Run("delete", func(t *apitest.T) { doBrandDeleteTests(t, sessions) })
}

func doBrandListTest(t *apitest.T) {
	ctx := requireContext(t)
	client := ctx.client(t)

	resp, err := client.Get(apidef.PathBrands)
	require.NoError(t, err)
	resp2, err := client.Get(apidef.PathBrands)
	require.NoError(t, err)

	softassert.Run(t, "GET "+apidef.PathBrands, func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		a.Kind("body", resp.Root(), softassert.Array)
		a.True("brand list is not empty", len(resp.Root().Array()) > 0)
		a.Kind("first brand id", resp.Get("0.id"), softassert.Int)
		a.Kind("first brand name", resp.Get("0.name"), softassert.String)
		a.Kind("first brand slug", resp.Get("0.slug"), softassert.String)
		a.HeaderEqual("cache-control header", resp.Header, "Cache-Control", apidef.CacheControlValue)
		a.HeaderEqual("content-type header", resp.Header, "Content-Type", apidef.ContentTypeJSONCharset)
		checkLatency(a, ctx, resp)
		a.Equal("second read returns the same body", string(resp.Body), string(resp2.Body))
	})
}

func doBrandGetTest(t *apitest.T) {
	ctx := requireContext(t)
	fixture := NewBrandFixture(t)

	resp, err := ctx.client(t).Get(apidef.BrandPath(fixture.ID()))
	require.NoError(t, err)

	softassert.Run(t, "GET brand by id", func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		a.Kind("id", resp.Get("id"), softassert.Int)
		a.Equal("id", int64(fixture.ID()), resp.Get("id").Int())
		a.Equal("name", fixture.Brand().Name, resp.Get("name").String())
		a.Equal("slug", fixture.Brand().Slug, resp.Get("slug").String())
		checkJSONHeaders(a, resp)
		checkLatency(a, ctx, resp)
	})
}

func doBrandGetNonexistentTest(t *apitest.T) {
	ctx := requireContext(t)

	resp, err := ctx.client(t).Get(apidef.BrandPath(apidef.NonexistentID))
	require.NoError(t, err)

	softassert.Run(t, "GET nonexistent brand", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusNotFound)
		a.That("message", resp, ResponseProperty("message").Should(m.Equal(apidef.MessageNotFound)))
	})
}

func doBrandSearchTest(t *apitest.T) {
	ctx := requireContext(t)
	fixture := NewBrandFixture(t)

	resp, err := ctx.client(t).Get(apidef.PathBrandsSearch, harness.Query("q", fixture.Brand().Name))
	require.NoError(t, err)

	softassert.Run(t, "GET "+apidef.PathBrandsSearch, func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		a.Kind("body", resp.Root(), softassert.Array)
		a.Contains("matching brand names", resp.Strings("#.name"), fixture.Brand().Name)
		a.Contains("matching brand ids", resp.Strings("#.id"), strconv.Itoa(fixture.ID()))
		checkJSONHeaders(a, resp)
		checkLatency(a, ctx, resp)
	})
}

func doBrandCreateTest(t *apitest.T) {
	ctx := requireContext(t)
	payload := data.UniqueBrandParams()

	resp := postBrand(t, harness.JSONBody(payload))

	softassert.Run(t, "POST "+apidef.PathBrands, func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusCreated)
		a.Kind("id", resp.Get("id"), softassert.Int)
		a.Equal("name is echoed", payload.Name, resp.Get("name").String())
		a.Equal("slug is echoed", payload.Slug, resp.Get("slug").String())
		checkJSONHeaders(a, resp)
		checkLatency(a, ctx, resp)
	})
}

func doBrandDuplicateSlugTest(t *apitest.T) {
	ctx := requireContext(t)
	fixture := NewBrandFixture(t)
	payload := data.UniqueBrandParams()
	payload.Slug = fixture.Params().Slug

	resp := postBrand(t, harness.JSONBody(payload))

	softassert.Run(t, "POST brand with existing slug", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnprocessableEntity)
		checkFirstMessage(a, resp, "slug", apidef.MessageBrandSlugExists)
	})
}

func doBrandDuplicateNameTest(t *apitest.T) {
	ctx := requireContext(t)
	fixture := NewBrandFixture(t)
	payload := data.UniqueBrandParams()
	payload.Name = fixture.Params().Name

	resp := postBrand(t, harness.JSONBody(payload))

	softassert.Run(t, "POST brand with existing name", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnprocessableEntity)
		checkFirstMessage(a, resp, "name", apidef.MessageBrandNameExists)
	})
}

func doBrandDuplicateNameAndSlugTest(t *apitest.T) {
	ctx := requireContext(t)
	fixture := NewBrandFixture(t)

	// The payload is the fixture as the API returned it, minus the id.
	payload := fixture.Params()
	resp := postBrand(t, harness.JSONBody(payload))

	softassert.Run(t, "POST brand with existing name and slug", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnprocessableEntity)
		checkFirstMessage(a, resp, "slug", apidef.MessageBrandSlugExists)
	})
}

func doBrandUpdateToExistingTest(t *apitest.T) {
	ctx := requireContext(t)
	client := ctx.client(t)

	listResp, err := client.Get(apidef.PathBrands)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var existing []apidef.Brand
	require.NoError(t, listResp.DecodeJSON(&existing))
	require.NotEmpty(t, existing, "brand list is empty")

	fixture := NewBrandFixture(t)
	resp, err := client.Put(apidef.BrandPath(fixture.ID()), harness.JSONBody(existing[0].Params()))
	require.NoError(t, err)

	softassert.Run(t, "PUT brand with another brand's name and slug", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnprocessableEntity)
		a.Equal("message", apidef.MessageDuplicateEntry, resp.Get("message").String())
	})
}

func doBrandSearchWrongMethodTest(t *apitest.T) {
	ctx := requireContext(t)

	resp, err := ctx.client(t).Post(apidef.PathBrandsSearch, harness.Query("q", "new"))
	require.NoError(t, err)

	softassert.Run(t, "POST "+apidef.PathBrandsSearch, func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusMethodNotAllowed)
		a.Contains("response values", responseValues(resp), apidef.MessageMethodNotAllowed)
	})
}

// postBrand posts a brand payload. If the API creates a brand, even one that the test
// expected to be rejected, its deletion is registered with the test scope.
func postBrand(t *apitest.T, body harness.RequestOption) harness.Response {
	resp, err := requireContext(t).client(t).Post(apidef.PathBrands, body)
	require.NoError(t, err)
	if id := resp.Get("id").Int(); resp.StatusCode == http.StatusCreated && id != 0 {
		releaseBrand(t, int(id))
	}
	return resp
}
