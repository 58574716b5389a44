package apitests

import (
	"fmt"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/data"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
)

// Identity names one of the configured accounts.
type Identity string

const (
	Admin Identity = "admin"
	User1 Identity = "user1"
	User2 Identity = "user2"
)

func (i Identity) capability() string {
	switch i {
	case User1:
		return apiconfig.CapabilityUserCredentials
	case User2:
		return apiconfig.CapabilitySecondUserCredentials
	default:
		return apiconfig.CapabilityAdminCredentials
	}
}

func (i Identity) credentials(config apiconfig.Config) apiconfig.Credentials {
	switch i {
	case User1:
		return config.User(0)
	case User2:
		return config.User(1)
	default:
		return config.Admin
	}
}

type loginResult struct {
	token string
	err   error
}

// Sessions is the token cache of one test scope. Each identity logs in at most once per
// Sessions; if that login fails, the failure is remembered and every test in the scope that
// needs the identity fails with it. Tokens are never refreshed.
type Sessions struct {
	tokens *data.MemoizingFactory[Identity, loginResult]
}

// NewSessions creates an empty token cache. Logins use the harness's own client, so they
// appear in process-level debug output rather than in any one test's output.
func NewSessions(h *harness.TestHarness) *Sessions {
	client := h.Client(nil)
	config := h.Config()
	return &Sessions{
		tokens: data.NewMemoizingFactory(func(identity Identity) loginResult {
			token, err := harness.Login(client, identity.credentials(config))
			return loginResult{token: token, err: err}
		}),
	}
}

// Token returns the bearer token for identity. The test is skipped if the identity is not
// configured, and fails immediately if it cannot log in.
func (s *Sessions) Token(t *apitest.T, identity Identity) string {
	t.Helper()
	t.RequireCapability(identity.capability())
	_, cached := s.tokens.Get(identity)
	result := s.tokens.GetOrCreate(identity)
	if result.err != nil {
		t.Errorf("%s", describeLoginFailure(identity, result.err, cached))
		t.FailNow()
	}
	if !cached {
		t.Debug("logged in as %s", identity)
	}
	return result.token
}

func describeLoginFailure(identity Identity, err error, cached bool) string {
	if cached {
		return fmt.Sprintf("login as %s failed earlier in this scope: %s", identity, err)
	}
	return fmt.Sprintf("login as %s failed: %s", identity, err)
}
