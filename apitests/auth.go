package apitests

import (
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/data"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	"github.com/stretchr/testify/require"
)

func doAuthTests(t *apitest.T) {
	t.Run("login", func(t *apitest.T) {
		for _, identity := range []Identity{Admin, User1, User2} {
			t.Run(string(identity), func(t *apitest.T) { doLoginTest(t, identity) })
		}
	})
	t.Run("login with wrong password", doLoginWrongPasswordTest)
	t.Run("session reuse", doSessionReuseTest)
}

func doLoginTest(t *apitest.T, identity Identity) {
	t.RequireCapability(identity.capability())
	ctx := requireContext(t)
	creds := identity.credentials(ctx.config())

	resp, err := ctx.client(t).Post(apidef.PathLogin,
		harness.JSONBody(apidef.LoginParams{Email: creds.Email, Password: creds.Password}))
	require.NoError(t, err)

	softassert.Run(t, "POST "+apidef.PathLogin, func(a *softassert.Assertions) {
		checkStatus(a, resp, http.StatusOK)
		a.Kind("access_token", resp.Get("access_token"), softassert.String)
		a.True("access_token is not empty", resp.Get("access_token").String() != "")
		a.Kind("token_type", resp.Get("token_type"), softassert.String)
		a.Kind("expires_in", resp.Get("expires_in"), softassert.Int)
		checkJSONHeaders(a, resp)
		checkLatency(a, ctx, resp)
	})
}

func doLoginWrongPasswordTest(t *apitest.T) {
	t.RequireCapability(Admin.capability())
	ctx := requireContext(t)

	resp, err := ctx.client(t).Post(apidef.PathLogin, harness.JSONBody(apidef.LoginParams{
		Email:    ctx.config().Admin.Email,
		Password: "wrong-" + data.RandomString(8),
	}))
	require.NoError(t, err)

	softassert.Run(t, "POST "+apidef.PathLogin+" with wrong password", func(a *softassert.Assertions) {
		checkErrorResponse(a, ctx, resp, http.StatusUnauthorized)
		a.NotHasKey("no access_token", resp.Root(), "access_token")
	})
}

// doSessionReuseTest checks that a token obtained once in a scope is accepted by a later call
// in the same scope.
func doSessionReuseTest(t *apitest.T) {
	sessions := NewSessions(requireContext(t).harness)
	first := ""
	t.Run("first use", func(t *apitest.T) {
		first = sessions.Token(t, Admin)
	})
	t.Run("second use", func(t *apitest.T) {
		ctx := requireContext(t)
		token := sessions.Token(t, Admin)
		resp, err := ctx.client(t).Delete(apidef.BrandPath(apidef.NonexistentID), harness.BearerToken(token))
		require.NoError(t, err)

		softassert.Run(t, "reused token", func(a *softassert.Assertions) {
			a.Equal("token is reused", first, token)
			a.NotEqual("token is accepted", http.StatusUnauthorized, resp.StatusCode)
		})
	})
}
