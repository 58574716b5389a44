package harness

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configFor(url string) apiconfig.Config {
	return apiconfig.Config{
		BaseURL:        url,
		Admin:          adminCreds,
		Users:          []apiconfig.Credentials{{Email: "customer@practicesoftwaretesting.com", Password: "welcome01"}},
		RequestTimeout: time.Second,
		MaxLatency:     time.Second,
	}
}

func TestNewTestHarness(t *testing.T) {
	httphelpers.WithServer(jsonHandler(200, `[]`), func(server *httptest.Server) {
		var out bytes.Buffer
		h, err := NewTestHarness(configFor(server.URL), time.Second, nil, &out)
		require.NoError(t, err)

		info := h.ServiceInfo()
		assert.Equal(t, server.URL, info.BaseURL)
		assert.Equal(t, framework.Capabilities{
			apiconfig.CapabilityAdminCredentials, apiconfig.CapabilityUserCredentials,
		}, info.Capabilities)
		assert.NotEmpty(t, info.RunID)
		assert.Equal(t, 200, info.StatusCode)
		assert.Contains(t, out.String(), "Connecting to API at "+server.URL)
		assert.Contains(t, out.String(), "API is responding")
		assert.Equal(t, server.URL, h.Client(nil).BaseURL())
	})
}

func TestNewTestHarnessWaitsForService(t *testing.T) {
	handler := httphelpers.SequentialHandler(
		httphelpers.BrokenConnectionHandler(),
		jsonHandler(200, `[]`),
	)
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var out bytes.Buffer
		_, err := NewTestHarness(configFor(server.URL), 5*time.Second, nil, &out)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "..")
	})
}

func TestNewTestHarnessRejectsErrorStatus(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(503), func(server *httptest.Server) {
		var out bytes.Buffer
		_, err := NewTestHarness(configFor(server.URL), time.Second, nil, &out)
		assert.Error(t, err)
	})
}

func TestNewTestHarnessTimesOut(t *testing.T) {
	httphelpers.WithServer(httphelpers.BrokenConnectionHandler(), func(server *httptest.Server) {
		var out bytes.Buffer
		_, err := NewTestHarness(configFor(server.URL), 50*time.Millisecond, nil, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out")
	})
}

func TestNewTestHarnessValidatesConfig(t *testing.T) {
	var out bytes.Buffer
	_, err := NewTestHarness(apiconfig.Config{}, time.Second, nil, &out)
	assert.Error(t, err)
}

func TestConfigCannotBeModifiedThroughHarness(t *testing.T) {
	httphelpers.WithServer(jsonHandler(200, `[]`), func(server *httptest.Server) {
		config := configFor(server.URL)
		h, err := NewTestHarness(config, time.Second, nil, io.Discard)
		require.NoError(t, err)

		h.Config().Users[0].Email = "changed@example.com"
		config.Users[0].Email = "also-changed@example.com"
		assert.Equal(t, "customer@practicesoftwaretesting.com", h.Config().User(0).Email)
	})
}
