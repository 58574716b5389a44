// Package apiconfig loads the settings for a test run: the base URL of the API under test
// and the credentials of the accounts the scenarios log in as.
package apiconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/toolshop-qa/api-test-harness/framework"
	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

// Names of the configuration variables. They can come from the process environment or from a
// dotenv file; the environment takes precedence.
const (
	EnvURL            = "URL"
	EnvAdmin          = "ADMIN"
	EnvUser1          = "USER1"
	EnvUser2          = "USER2"
	EnvPassword       = "PASSWORD"
	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxLatency     = "MAX_LATENCY"
)

const (
	DefaultEnvFile        = ".env"
	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxLatency     = 800 * time.Millisecond
)

// Capabilities derived from which accounts are configured.
const (
	CapabilityAdminCredentials      = "admin-credentials"
	CapabilityUserCredentials       = "user-credentials"
	CapabilitySecondUserCredentials = "second-user-credentials"
)

// AllCapabilities lists every capability a Config can provide.
func AllCapabilities() []string {
	return []string{CapabilityAdminCredentials, CapabilityUserCredentials, CapabilitySecondUserCredentials}
}

// Credentials identify one account of the API under test.
type Credentials struct {
	Email    string
	Password string
}

// IsDefined returns true if both the email and the password are set.
func (c Credentials) IsDefined() bool {
	return c.Email != "" && c.Password != ""
}

func (c Credentials) String() string {
	if c.Email == "" {
		return "(none)"
	}
	return c.Email
}

// Config is the immutable configuration of a test run.
type Config struct {
	BaseURL string
	Admin   Credentials
	// Users are the non-admin accounts by position: index 0 is USER1 and index 1 is USER2. An
	// unset account is left as undefined Credentials, so it never shifts the other one.
	Users          []Credentials
	RequestTimeout time.Duration
	MaxLatency     time.Duration
}

// User returns the non-admin account at index i, or undefined Credentials.
func (c Config) User(i int) Credentials {
	if i < 0 || i >= len(c.Users) {
		return Credentials{}
	}
	return c.Users[i]
}

// Clone returns a copy that shares no mutable state with c.
func (c Config) Clone() Config {
	c.Users = helpers.CopyOf(c.Users)
	return c
}

// Capabilities reports which kinds of account are available to scenarios.
func (c Config) Capabilities() framework.Capabilities {
	var ret framework.Capabilities
	if c.Admin.IsDefined() {
		ret = append(ret, CapabilityAdminCredentials)
	}
	if c.User(0).IsDefined() {
		ret = append(ret, CapabilityUserCredentials)
	}
	if c.User(1).IsDefined() {
		ret = append(ret, CapabilitySecondUserCredentials)
	}
	return ret
}

// Validate checks that the configuration can be used for a test run.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%s is required", EnvURL)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", EnvURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http or https URL, got %q", EnvURL, c.BaseURL)
	}
	if c.Admin.Email == "" {
		return fmt.Errorf("%s is required", EnvAdmin)
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("%s is required", EnvPassword)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvRequestTimeout)
	}
	if c.MaxLatency <= 0 {
		return fmt.Errorf("%s must be positive", EnvMaxLatency)
	}
	return nil
}

// Redacted describes the configuration for log output, without the password.
func (c Config) Redacted() string {
	users := make([]string, 0, len(c.Users))
	for _, u := range c.Users {
		users = append(users, u.String())
	}
	return fmt.Sprintf("url=%s admin=%s users=[%s] password=%s timeout=%s max-latency=%s",
		c.BaseURL, c.Admin, strings.Join(users, ", "),
		helpers.IfElse(c.Admin.Password == "", "(none)", "****"),
		c.RequestTimeout, c.MaxLatency)
}

// Option changes a Config after it has been read from the environment.
type Option interface {
	Configure(*Config) error
}

type optionFunc func(*Config) error

func (f optionFunc) Configure(c *Config) error { return f(c) }

// WithBaseURL replaces the base URL, as the -url and -mock flags do.
func WithBaseURL(baseURL string) Option {
	return optionFunc(func(c *Config) error {
		c.BaseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	})
}

// WithRequestTimeout replaces the per-request timeout.
func WithRequestTimeout(timeout time.Duration) Option {
	return optionFunc(func(c *Config) error {
		c.RequestTimeout = timeout
		return nil
	})
}

type lookupOption struct {
	lookup func(string) (string, bool)
}

func (lookupOption) Configure(*Config) error { return nil }

// WithLookup replaces the process environment as the source of variables. Load reads it
// before any other option is applied.
func WithLookup(lookup func(string) (string, bool)) Option {
	return lookupOption{lookup: lookup}
}

// Load builds a Config from a dotenv file and the process environment, then applies the
// overrides and validates the result.
//
// An empty envFile skips the file. A missing file is only an error if it is not the default
// ".env", since a CI job usually sets the variables directly.
func Load(envFile string, overrides ...Option) (Config, error) {
	lookup := os.LookupEnv
	for _, o := range overrides {
		if lo, ok := o.(lookupOption); ok {
			lookup = lo.lookup
		}
	}

	values := make(map[string]string)
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			values = fileValues
		case errors.Is(err, fs.ErrNotExist) && envFile == DefaultEnvFile:
		default:
			return Config{}, fmt.Errorf("cannot read %s: %w", envFile, err)
		}
	}
	for _, name := range []string{EnvURL, EnvAdmin, EnvUser1, EnvUser2, EnvPassword, EnvRequestTimeout, EnvMaxLatency} {
		if v, ok := lookup(name); ok {
			values[name] = v
		}
	}

	config := Config{
		BaseURL: strings.TrimSuffix(strings.TrimSpace(values[EnvURL]), "/"),
		Admin:   Credentials{Email: values[EnvAdmin], Password: values[EnvPassword]},
	}
	for _, name := range []string{EnvUser1, EnvUser2} {
		var user Credentials
		if email := values[name]; email != "" {
			user = Credentials{Email: email, Password: values[EnvPassword]}
		}
		config.Users = append(config.Users, user)
	}

	var err error
	if config.RequestTimeout, err = parseDuration(EnvRequestTimeout, values[EnvRequestTimeout], DefaultRequestTimeout); err != nil {
		return Config{}, err
	}
	if config.MaxLatency, err = parseDuration(EnvMaxLatency, values[EnvMaxLatency], DefaultMaxLatency); err != nil {
		return Config{}, err
	}

	if err := helpers.ApplyOptions(&config, overrides...); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// parseDuration accepts a Go duration string such as "1.5s", or a plain number of
// milliseconds.
func parseDuration(name, value string, defaultValue time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, nil
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s is not a valid duration: %q", name, value)
	}
	return d, nil
}
