package apitests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/mockapi"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/require"
)

// scenarioEnv runs ad hoc scenarios against a mock API and counts the logins it received.
type scenarioEnv struct {
	server  *mockapi.Server
	harness *harness.TestHarness
	logins  *loginCounter
}

// loginCounter passes every request through unchanged, counting the logins.
type loginCounter struct {
	handler http.Handler
	count   atomic.Int32
}

func (c *loginCounter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == apidef.PathLogin {
		c.count.Add(1)
	}
	c.handler.ServeHTTP(w, r)
}

func withScenarioEnv(
	t *testing.T,
	configure func(*apiconfig.Config),
	action func(env scenarioEnv),
	options ...mockapi.Option,
) {
	server := mockapi.NewServer(options...)
	logins := &loginCounter{handler: server}
	httphelpers.WithServer(logins, func(s *httptest.Server) {
		config := server.Config(s.URL)
		if configure != nil {
			configure(&config)
		}
		h, err := harness.NewTestHarness(config, time.Second, nil, io.Discard)
		require.NoError(t, err)
		action(scenarioEnv{server: server, harness: h, logins: logins})
	})
}

func (e scenarioEnv) run(action func(*apitest.T)) apitest.Results {
	return apitest.Run(apitest.TestConfiguration{
		Capabilities: e.harness.ServiceInfo().Capabilities,
		Context:      APITestContext{harness: e.harness},
	}, action)
}

// loginCount returns how many logins the mock has received so far.
func (e scenarioEnv) loginCount() int {
	return int(e.logins.count.Load())
}
