package apitests

import (
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	"github.com/stretchr/testify/require"
)

const productSortByName = "name,asc"

type schemaField struct {
	path  string
	kinds []softassert.Kind
}

func field(path string, kinds ...softassert.Kind) schemaField {
	return schemaField{path: path, kinds: kinds}
}

// productSchema is the JSON type of every property of a product. The two flags are accepted as
// booleans or as 0/1 integers.
func productSchema() []schemaField {
	return []schemaField{
		field("id", softassert.Int),
		field("name", softassert.String),
		field("description", softassert.String),
		field("stock", softassert.Int),
		field("price", softassert.Float),
		field("is_location_offer", softassert.Bool, softassert.Int),
		field("is_rental", softassert.Bool, softassert.Int),
		field("brand_id", softassert.Int),
		field("category_id", softassert.Int),
		field("product_image_id", softassert.Int),
		field("product_image", softassert.Object),
		field("product_image.id", softassert.Int),
		field("product_image.by_name", softassert.String),
		field("product_image.by_url", softassert.String),
		field("product_image.source_name", softassert.String),
		field("product_image.source_url", softassert.String),
		field("product_image.file_name", softassert.String),
		field("product_image.title", softassert.String),
		field("category", softassert.Object),
		field("category.id", softassert.Int),
		field("category.parent_id", softassert.Int),
		field("category.name", softassert.String),
		field("category.slug", softassert.String),
		field("brand", softassert.Object),
		field("brand.id", softassert.Int),
		field("brand.name", softassert.String),
		field("brand.slug", softassert.String),
	}
}

func doProductTests(t *apitest.T) {
	t.Run("list sorted by name", doProductListTest)
	t.Run("get by id", doProductGetTest)
	t.Run("get nonexistent id", doProductGetNonexistentTest)
}

func doProductListTest(t *apitest.T) {
	ctx := requireContext(t)
	client := ctx.client(t)

	resp, err := client.Get(apidef.PathProducts, harness.Query("sort", productSortByName))
	require.NoError(t, err)
	resp2, err := client.Get(apidef.PathProducts, harness.Query("sort", productSortByName))
	require.NoError(t, err)

	softassert.Run(t, "GET "+apidef.PathProducts, func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		a.Kind("body", resp.Root(), softassert.Object)
		a.Kind("data", resp.Get("data"), softassert.Array)
		first := resp.Get("data.0")
		for _, f := range productSchema() {
			a.Kind("first product "+f.path, first.Get(f.path), f.kinds...)
		}
		a.LessOrEqual("products on the page", float64(len(resp.Get("data").Array())), resp.Get("per_page").Float())
		a.Sorted("product names", resp.Strings("data.#.name"))
		a.HeaderEqual("cache-control header", resp.Header, "Cache-Control", apidef.CacheControlValue)
		a.HeaderEqual("content-type header", resp.Header, "Content-Type", apidef.ContentTypeJSONCharset)
		checkLatency(a, ctx, resp)
		a.Equal("second read returns the same body", string(resp.Body), string(resp2.Body))
	})
}

func doProductGetTest(t *apitest.T) {
	ctx := requireContext(t)
	client := ctx.client(t)

	listResp, err := client.Get(apidef.PathProducts, harness.Query("sort", productSortByName))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var page apidef.ProductPage
	require.NoError(t, listResp.DecodeJSON(&page))
	require.NotEmpty(t, page.Data, "product list is empty")
	expected := page.Data[0]

	resp, err := client.Get(apidef.ProductPath(expected.ID))
	require.NoError(t, err)

	softassert.Run(t, "GET product by id", func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		for _, f := range productSchema() {
			a.Kind(f.path, resp.Get(f.path), f.kinds...)
		}
		a.Equal("id", int64(expected.ID), resp.Get("id").Int())
		a.Equal("name", expected.Name, resp.Get("name").String())
		a.Equal("price", expected.Price, resp.Get("price").Float())
		checkJSONHeaders(a, resp)
		checkLatency(a, ctx, resp)
	})
}

func doProductGetNonexistentTest(t *apitest.T) {
	ctx := requireContext(t)

	resp, err := ctx.client(t).Get(apidef.ProductPath(apidef.NonexistentID))
	require.NoError(t, err)

	softassert.Run(t, "GET nonexistent product", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusNotFound)
		a.Equal("message", apidef.MessageNotFound, resp.Get("message").String())
	})
}
