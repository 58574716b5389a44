package main

import (
	"bufio"
	_ "embed" // this is required in order for go:embed to work
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/apitests"
	"github.com/toolshop-qa/api-test-harness/framework"
	"github.com/toolshop-qa/api-test-harness/framework/apitest"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/mockapi"
)

const statusQueryTimeout = time.Second * 10

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("api-test-harness v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (*apitest.Results, error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return nil, err
		}
	}

	processLogger, err := framework.NewProcessLogger(params.debugAll)
	if err != nil {
		return nil, fmt.Errorf("cannot create logger: %w", err)
	}
	defer func() { _ = processLogger.Sync() }()
	mainDebugLogger := framework.ZapLogger(processLogger, zapcore.DebugLevel)

	var config apiconfig.Config
	if params.mock {
		mock, stop, err := startMockAPI(mainDebugLogger)
		if err != nil {
			return nil, err
		}
		defer stop()
		config = mock
		processLogger.Info("running against the built-in mock API", zap.String("url", config.BaseURL))
	} else {
		var overrides []apiconfig.Option
		if params.serviceURL != "" {
			overrides = append(overrides, apiconfig.WithBaseURL(params.serviceURL))
		}
		config, err = apiconfig.Load(params.envFile, overrides...)
		if err != nil {
			return nil, err
		}
	}

	harness, err := harness.NewTestHarness(
		config,
		statusQueryTimeout,
		mainDebugLogger,
		os.Stdout,
	)
	if err != nil {
		return nil, err
	}

	var testLogger apitest.TestLogger
	consoleLogger := apitest.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	if params.jUnitFile == "" {
		testLogger = consoleLogger
	} else {
		testLogger = &apitest.MultiTestLogger{Loggers: []apitest.TestLogger{
			consoleLogger,
			apitest.NewJUnitTestLogger(params.jUnitFile, harness.ServiceInfo(), params.filters),
		}}
	}

	results := apitests.RunAPITestSuite(harness, params.filters, testLogger)

	fmt.Println()
	if logErr := testLogger.EndLog(results); logErr != nil {
		return nil, fmt.Errorf("error writing log: %w", logErr)
	}
	for _, c := range results.CleanupFailures {
		processLogger.Warn("resource was not released", zap.Stringer("test", c.TestID), zap.Error(c.Err))
	}

	if params.recordFailures != "" {
		f, err := os.Create(params.recordFailures)
		if err != nil {
			return nil, fmt.Errorf("cannot create suppression file: %w", err)
		}
		for _, test := range results.Failures {
			fmt.Fprintln(f, test.TestID)
		}
		_ = f.Close()
	}

	return &results, nil
}

// startMockAPI serves the built-in mock API on a free local port.
func startMockAPI(logger framework.Logger) (apiconfig.Config, func(), error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return apiconfig.Config{}, nil, fmt.Errorf("cannot start mock API: %w", err)
	}
	mock := mockapi.NewServer(mockapi.WithLogger(logger))
	server := &http.Server{Handler: mock, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("mock API stopped: %s", err)
		}
	}()
	return mock.Config("http://" + listener.Addr().String()), func() { _ = server.Close() }, nil
}

func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %w", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.Skip.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse suppression: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %w", err)
	}
	return nil
}
