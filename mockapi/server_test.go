package mockapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework/harness"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/tidwall/gjson"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withMockAPI(t *testing.T, action func(*Server, *harness.Client), options ...Option) {
	s := NewServer(options...)
	httphelpers.WithServer(s, func(server *httptest.Server) {
		action(s, harness.NewClient(server.URL, time.Second*5, nil))
	})
}

func adminToken(t *testing.T, s *Server, client *harness.Client) string {
	token, err := harness.Login(client, s.Admin())
	require.NoError(t, err)
	return token
}

func assertContractHeaders(t *testing.T, resp harness.Response) {
	t.Helper()
	assert.Equal(t, apidef.CacheControlValue, resp.Header.Get("Cache-Control"))
	assert.Equal(t, apidef.AllowOriginValue, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Server"))
}

func TestListBrands(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.PathBrands)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, apidef.ContentTypeJSONCharset, resp.Header.Get("Content-Type"))
		assertContractHeaders(t, resp)

		var brands []apidef.Brand
		require.NoError(t, resp.DecodeJSON(&brands))
		assert.Equal(t, s.Brands(), brands)
		assert.Equal(t, gjson.Number, resp.Get("0.id").Type)
	})
}

func TestGetBrand(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		first := s.Brands()[0]
		resp, err := client.Get(apidef.BrandPath(first.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, first.Name, resp.Get("name").String())

		resp, err = client.Get(apidef.BrandPath(apidef.NonexistentID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, apidef.MessageNotFound, resp.Get("message").String())
	})
}

func TestSearchBrands(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.PathBrandsSearch, harness.Query("q", "forge"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"ForgeFlex Tools"}, resp.Strings("#.name"))
	})
}

func TestPostOnSearchRouteIsNotAllowed(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Post(apidef.PathBrandsSearch, harness.Query("q", "new"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, apidef.MessageMethodNotAllowed, resp.Get("message").String())
		assert.Equal(t, apidef.ContentTypeJSON, resp.Header.Get("Content-Type"))
		assertContractHeaders(t, resp)
	})
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get("/nothing-here")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assertContractHeaders(t, resp)
	})
}

func TestCreateBrand(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		params := apidef.BrandParams{Name: "new brand abcdef", Slug: "new-brand-abcdef"}
		resp, err := client.Post(apidef.PathBrands, harness.JSONBody(params))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var created apidef.Brand
		require.NoError(t, resp.DecodeJSON(&created))
		assert.Equal(t, params, created.Params())
		assert.Contains(t, s.Brands(), created)
	})
}

func TestCreateBrandWithDuplicates(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		existing := s.Brands()[0]

		resp, err := client.Post(apidef.PathBrands, harness.JSONBody(apidef.BrandParams{Name: "other", Slug: existing.Slug}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, apidef.MessageBrandSlugExists, resp.Get("slug.0").String())
		assert.False(t, resp.Get("name").Exists())

		resp, err = client.Post(apidef.PathBrands, harness.JSONBody(apidef.BrandParams{Name: existing.Name, Slug: "other"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, apidef.MessageBrandNameExists, resp.Get("name.0").String())

		resp, err = client.Post(apidef.PathBrands, harness.JSONBody(existing.Params()))
		require.NoError(t, err)
		assert.Equal(t, apidef.MessageBrandNameExists, resp.Get("name.0").String())
		assert.Equal(t, apidef.MessageBrandSlugExists, resp.Get("slug.0").String())
		assert.Len(t, s.Brands(), len(seedBrands()))
	})
}

func TestUpdateBrand(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		existing := s.Brands()
		resp, err := client.Put(apidef.BrandPath(existing[1].ID),
			harness.JSONBody(apidef.BrandParams{Name: "renamed", Slug: "renamed"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, resp.Get("success").Bool())
		assert.Equal(t, "renamed", s.Brands()[1].Name)

		resp, err = client.Put(apidef.BrandPath(existing[1].ID), harness.JSONBody(existing[0].Params()))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, apidef.MessageDuplicateEntry, resp.Get("message").String())

		resp, err = client.Put(apidef.BrandPath(apidef.NonexistentID), harness.JSONBody(apidef.BrandParams{Name: "x"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateNonexistentBrandIsNotFoundBeforeValidation(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Put(apidef.BrandPath(apidef.NonexistentID), harness.RawBody([]byte(`{"name":"x","slug":""}`)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, apidef.MessageNotFound, resp.Get("message").String())

		resp, err = client.Put(apidef.BrandPath(s.Brands()[0].ID), harness.RawBody([]byte(`{"name":"x","slug":""}`)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, apidef.RequiredMessage("slug"), resp.Get("slug.0").String())
	})
}

func TestUpdateBrandWithOwnValuesIsNotAConflict(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		b := s.Brands()[0]
		resp, err := client.Put(apidef.BrandPath(b.ID), harness.JSONBody(b.Params()))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestDeleteBrandAuthorization(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		id := s.Brands()[0].ID

		resp, err := client.Delete(apidef.BrandPath(id))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Unauthorized"}`, string(resp.Body))

		resp, err = client.Delete(apidef.BrandPath(id), harness.BearerToken("fake_token"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		userToken, err := harness.Login(client, s.Users()[0])
		require.NoError(t, err)
		resp, err = client.Delete(apidef.BrandPath(id), harness.BearerToken(userToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		assert.Len(t, s.Brands(), len(seedBrands()))
	})
}

func TestDeleteBrandAsAdmin(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		token := adminToken(t, s, client)
		id := s.Brands()[0].ID

		resp, err := client.Delete(apidef.BrandPath(id), harness.BearerToken(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Empty(t, resp.Body)
		assertContractHeaders(t, resp)

		resp, err = client.Get(apidef.BrandPath(id))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = client.Delete(apidef.BrandPath(id), harness.BearerToken(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, apidef.MessageInvalidID, resp.Get("id.0").String())
	})
}

func TestListProductsSortedByName(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.PathProducts, harness.Query("sort", "name,asc"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, apidef.ContentTypeJSONCharset, resp.Header.Get("Content-Type"))

		var page apidef.ProductPage
		require.NoError(t, resp.DecodeJSON(&page))
		assert.Equal(t, 1, page.CurrentPage)
		assert.Equal(t, ProductsPerPage, page.PerPage)
		assert.Equal(t, len(productSeeds), page.Total)
		require.Len(t, page.Data, ProductsPerPage)
		for i := 1; i < len(page.Data); i++ {
			assert.LessOrEqual(t, page.Data[i-1].Name, page.Data[i].Name)
		}
		first := page.Data[0]
		require.NotNil(t, first.Category)
		assert.NotNil(t, first.Category.ParentID)
		assert.Equal(t, gjson.Number, resp.Get("data.0.price").Type)
		assert.Contains(t, resp.Get("data.0.price").Raw, ".")
	})
}

func TestListProductsPaging(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.PathProducts, harness.Query("page", "2"))
		require.NoError(t, err)
		var page apidef.ProductPage
		require.NoError(t, resp.DecodeJSON(&page))
		assert.Equal(t, 2, page.CurrentPage)
		assert.Equal(t, ProductsPerPage+1, page.From)
		assert.Equal(t, len(productSeeds), page.To)
		assert.Len(t, page.Data, len(productSeeds)-ProductsPerPage)

		resp, err = client.Get(apidef.PathProducts, harness.Query("page", "99"))
		require.NoError(t, err)
		require.NoError(t, resp.DecodeJSON(&page))
		assert.Empty(t, page.Data)
	})
}

func TestGetProduct(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.ProductPath(1))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, productSeeds[0].name, resp.Get("name").String())

		resp, err = client.Get(apidef.ProductPath(apidef.NonexistentID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Post(apidef.PathLogin, harness.JSONBody(apidef.LoginParams{
			Email: s.Admin().Email, Password: s.Admin().Password,
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Get("access_token").String())
		assert.Equal(t, "bearer", resp.Get("token_type").String())

		resp, err = client.Post(apidef.PathLogin, harness.JSONBody(apidef.LoginParams{
			Email: s.Admin().Email, Password: "wrong",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, apidef.MessageUnauthorized, resp.Get("error").String())
	})
}

func TestWithUsers(t *testing.T) {
	admin := apiconfig.Credentials{Email: "boss@example.com", Password: "pw"}
	withMockAPI(t, func(s *Server, client *harness.Client) {
		assert.Equal(t, admin, s.Admin())
		assert.Empty(t, s.Users())
		_, err := harness.Login(client, admin)
		assert.NoError(t, err)
		_, err = harness.Login(client, DefaultAdmin())
		assert.Error(t, err)
	}, WithUsers(admin))
}

func TestConfigForServer(t *testing.T) {
	s := NewServer()
	c := s.Config("http://localhost:1234")
	assert.NoError(t, c.Validate())
	assert.Equal(t, s.Admin(), c.Admin)
	assert.Equal(t, s.Users(), c.Users)
}

func TestWithLatency(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.PathBrands)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, resp.Elapsed, 50*time.Millisecond)
	}, WithLatency(50*time.Millisecond))
}

func TestWithBrokenContract(t *testing.T) {
	withMockAPI(t, func(s *Server, client *harness.Client) {
		resp, err := client.Get(apidef.PathBrands)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEqual(t, apidef.CacheControlValue, resp.Header.Get("Cache-Control"))
		assert.NotEmpty(t, resp.Header.Get("Server"))
		assert.Equal(t, gjson.String, resp.Get("0.id").Type)
	}, WithBrokenContract())
}
