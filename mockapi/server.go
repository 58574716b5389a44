// Package mockapi is an in-process stand-in for the Toolshop REST API. It implements the
// brand, product and login endpoints closely enough for the contract suite to pass against
// it, and can be configured to break parts of the contract so that the suite's failure
// reporting can itself be tested.
package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework"
	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

// Server implements the mock API as an http.Handler.
type Server struct {
	store       *store
	auth        *authenticator
	latency     time.Duration
	broken      bool
	debugLogger framework.Logger
	handler     http.Handler
}

// Option is an option for NewServer.
type Option helpers.ConfigOption[Server]

type serverOptionLatency time.Duration

func (o serverOptionLatency) Configure(s *Server) error {
	s.latency = time.Duration(o)
	return nil
}

// WithLatency delays every response by the given duration.
func WithLatency(latency time.Duration) Option {
	return serverOptionLatency(latency)
}

type serverOptionUsers struct {
	admin apiconfig.Credentials
	users []apiconfig.Credentials
}

func (o serverOptionUsers) Configure(s *Server) error {
	s.auth = newAuthenticator(o.admin, o.users...)
	return nil
}

// WithUsers replaces the default accounts.
func WithUsers(admin apiconfig.Credentials, users ...apiconfig.Credentials) Option {
	return serverOptionUsers{admin: admin, users: users}
}

type serverOptionBrokenContract struct{}

func (serverOptionBrokenContract) Configure(s *Server) error {
	s.broken = true
	return nil
}

// WithBrokenContract makes the server violate several parts of the contract at once: brand
// ids are serialized as strings, responses are publicly cacheable and carry a Server header,
// and product listings ignore the requested sort order.
func WithBrokenContract() Option {
	return serverOptionBrokenContract{}
}

type serverOptionLogger struct{ logger framework.Logger }

func (o serverOptionLogger) Configure(s *Server) error {
	s.debugLogger = o.logger
	return nil
}

// WithLogger sends a line for every request to the given logger.
func WithLogger(logger framework.Logger) Option {
	return serverOptionLogger{logger}
}

// NewServer creates a Server with seeded data.
func NewServer(options ...Option) *Server {
	s := &Server{
		store:       newStore(),
		auth:        newAuthenticator(DefaultAdmin(), DefaultUsers()...),
		debugLogger: framework.NullLogger(),
	}
	_ = helpers.ApplyOptions(s, options...)
	if s.debugLogger == nil {
		s.debugLogger = framework.NullLogger()
	}

	router := mux.NewRouter()
	router.HandleFunc(apidef.PathBrands, s.listBrands).Methods(http.MethodGet)
	router.HandleFunc(apidef.PathBrands, s.createBrand).Methods(http.MethodPost)
	router.HandleFunc(apidef.PathBrandsSearch, s.searchBrands).Methods(http.MethodGet)
	router.HandleFunc(apidef.PathBrands+"/{id:[0-9]+}", s.getBrand).Methods(http.MethodGet)
	router.HandleFunc(apidef.PathBrands+"/{id:[0-9]+}", s.updateBrand).Methods(http.MethodPut)
	router.HandleFunc(apidef.PathBrands+"/{id:[0-9]+}", s.deleteBrand).Methods(http.MethodDelete)
	router.HandleFunc(apidef.PathProducts, s.listProducts).Methods(http.MethodGet)
	router.HandleFunc(apidef.PathProducts+"/{id:[0-9]+}", s.getProduct).Methods(http.MethodGet)
	router.HandleFunc(apidef.PathLogin, s.login).Methods(http.MethodPost)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusNotFound, apidef.ContentTypeJSON, apidef.MessageResponse{Message: apidef.MessageNotFound})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusMethodNotAllowed, apidef.ContentTypeJSON,
			apidef.MessageResponse{Message: apidef.MessageMethodNotAllowed})
	})
	s.handler = s.contractHeaders(router)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Admin returns the administrator account.
func (s *Server) Admin() apiconfig.Credentials { return s.auth.admin }

// Users returns the non-admin accounts.
func (s *Server) Users() []apiconfig.Credentials { return helpers.CopyOf(s.auth.users) }

// Config returns a configuration for running the suite against this server at baseURL.
func (s *Server) Config(baseURL string) apiconfig.Config {
	return apiconfig.Config{
		BaseURL:        baseURL,
		Admin:          s.auth.admin,
		Users:          s.Users(),
		RequestTimeout: apiconfig.DefaultRequestTimeout,
		MaxLatency:     apiconfig.DefaultMaxLatency,
	}
}

// Brands returns a snapshot of every stored brand in id order.
func (s *Server) Brands() []apidef.Brand {
	return s.store.listBrands()
}

// contractHeaders adds the headers that every response carries, and applies the configured
// latency before the request is handled.
func (s *Server) contractHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.debugLogger.Printf("mock API received %s %s", r.Method, r.URL.RequestURI())
		if s.latency > 0 {
			timer := time.NewTimer(s.latency)
			select {
			case <-timer.C:
			case <-r.Context().Done():
				timer.Stop()
				return
			}
		}
		if s.broken {
			w.Header().Set("Cache-Control", "public, max-age=60")
			w.Header().Set("Server", "mockapi")
		} else {
			w.Header().Set("Cache-Control", apidef.CacheControlValue)
		}
		w.Header().Set("Access-Control-Allow-Origin", apidef.AllowOriginValue)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, contentType string, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.debugLogger.Printf("mock API could not serialize response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeData is for successful reads, which the live service labels with an explicit charset.
func (s *Server) writeData(w http.ResponseWriter, status int, body interface{}) {
	s.writeJSON(w, status, apidef.ContentTypeJSONCharset, body)
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, apidef.ContentTypeJSON, apidef.MessageResponse{Message: message})
}

func (s *Server) writeValidationErrors(w http.ResponseWriter, errs apidef.ValidationErrors) {
	s.writeJSON(w, http.StatusUnprocessableEntity, apidef.ContentTypeJSON, errs)
}
