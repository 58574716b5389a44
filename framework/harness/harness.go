package harness

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework"
	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

const statusQueryInterval = 100 * time.Millisecond

// ServiceInfo describes the API under test and this run against it.
type ServiceInfo struct {
	BaseURL      string
	Capabilities framework.Capabilities
	// RunID identifies this run in reports.
	RunID string
	// StatusCode is what the API returned to the startup query.
	StatusCode int
}

// TestHarness holds what every scenario needs to talk to the API: the configuration and an
// HTTP client. It contains no scenario logic.
type TestHarness struct {
	config      apiconfig.Config
	client      *Client
	serviceInfo ServiceInfo
	logger      framework.Logger
}

// NewTestHarness creates a TestHarness and verifies that the API is answering, by querying
// its brand list until it responds or statusQueryTimeout elapses. Progress is written to
// startupOutput.
func NewTestHarness(
	config apiconfig.Config,
	statusQueryTimeout time.Duration,
	debugLogger framework.Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	client := NewClient(config.BaseURL, config.RequestTimeout, debugLogger)

	status, err := queryServiceStatus(client, statusQueryTimeout, startupOutput)
	if err != nil {
		return nil, err
	}

	h := &TestHarness{
		config: config.Clone(),
		client: client,
		serviceInfo: ServiceInfo{
			BaseURL:      config.BaseURL,
			Capabilities: config.Capabilities(),
			RunID:        uuid.NewString(),
			StatusCode:   status,
		},
		logger: debugLogger,
	}
	debugLogger.Printf("Test run %s: %s", h.serviceInfo.RunID, config.Redacted())
	return h, nil
}

func queryServiceStatus(client *Client, timeout time.Duration, output io.Writer) (int, error) {
	fmt.Fprintf(output, "Connecting to API at %s", client.BaseURL())
	var resp Response
	var err error
	connected := helpers.PollForSpecificResultValue(func() bool {
		fmt.Fprintf(output, ".")
		resp, err = client.Get(apidef.PathBrands)
		return err == nil
	}, timeout, statusQueryInterval, true)
	fmt.Fprintln(output)
	if !connected {
		return 0, fmt.Errorf("timed out, result of last query was: %w", err)
	}
	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("API returned status code %d for %s", resp.StatusCode, apidef.PathBrands)
	}
	fmt.Fprintf(output, "API is responding (%s)\n", resp.Elapsed.Round(time.Millisecond))
	return resp.StatusCode, nil
}

// Config returns the configuration of the run.
func (h *TestHarness) Config() apiconfig.Config {
	return h.config.Clone()
}

// Client returns an HTTP client for the API that logs to the given logger, or to the
// harness's own logger if it is nil.
func (h *TestHarness) Client(logger framework.Logger) *Client {
	if logger == nil {
		return h.client
	}
	return h.client.WithLogger(logger)
}

// ServiceInfo returns what was learned about the API at startup.
func (h *TestHarness) ServiceInfo() ServiceInfo {
	return h.serviceInfo
}
