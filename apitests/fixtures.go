package apitests

import (
	"fmt"
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/data"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"

	"github.com/stretchr/testify/require"
)

// BrandFixture is a brand created for one test. Its id is captured when it is created, so the
// release always deletes the right brand whatever the test does with the values it reads.
type BrandFixture struct {
	brand apidef.Brand
}

// NewBrandFixture creates a brand with a random name and slug, and registers its deletion with
// the test scope. The test fails immediately if the brand cannot be created, and is skipped if
// no admin account is configured, since the brand could not be deleted afterward.
func NewBrandFixture(t *apitest.T) *BrandFixture {
	t.Helper()
	t.RequireCapability(Admin.capability())
	client := requireContext(t).client(t)

	params := data.NewBrandParams()
	resp, err := client.Post(apidef.PathBrands, harness.JSONBody(params))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "creating fixture brand: %s", resp.Body)
	id := int(resp.Get("id").Int())
	require.NotZero(t, id, "created brand has no id: %s", resp.Body)
	releaseBrand(t, id)

	var brand apidef.Brand
	require.NoError(t, resp.DecodeJSON(&brand))

	t.Debug("created fixture brand %d (%s)", brand.ID, brand.Name)
	return &BrandFixture{brand: brand}
}

// ID returns the id of the brand.
func (f *BrandFixture) ID() int { return f.brand.ID }

// Brand returns a copy of the brand as it was created.
func (f *BrandFixture) Brand() apidef.Brand { return f.brand }

// Params returns a new copy of the name and slug the brand was created with.
func (f *BrandFixture) Params() apidef.BrandParams { return f.brand.Params() }

// releaseBrand registers the deletion of a brand when the test scope ends. The release logs in
// as admin on its own, rather than reusing any session of the test, and treats a brand that is
// already gone as deleted.
func releaseBrand(t *apitest.T, id int) {
	ctx := requireContext(t)
	client := ctx.client(t)
	admin := ctx.config().Admin
	t.Release(fmt.Sprintf("delete brand %d", id), func() error {
		token, err := harness.Login(client, admin)
		if err != nil {
			return err
		}
		resp, err := client.Delete(apidef.BrandPath(id), harness.BearerToken(token))
		if err != nil {
			return err
		}
		switch resp.StatusCode {
		case http.StatusNoContent:
			return nil
		case http.StatusNotFound, http.StatusUnprocessableEntity:
			t.Debug("brand %d was already deleted", id)
			return nil
		default:
			return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, resp.Body)
		}
	})
}
