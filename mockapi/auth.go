package mockapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
)

// DefaultPassword is the password of every default account.
const DefaultPassword = "welcome01"

// DefaultAdmin returns the default administrator account.
func DefaultAdmin() apiconfig.Credentials {
	return apiconfig.Credentials{Email: "admin@practicesoftwaretesting.com", Password: DefaultPassword}
}

// DefaultUsers returns the default customer accounts.
func DefaultUsers() []apiconfig.Credentials {
	return []apiconfig.Credentials{
		{Email: "customer@practicesoftwaretesting.com", Password: DefaultPassword},
		{Email: "customer2@practicesoftwaretesting.com", Password: DefaultPassword},
	}
}

type role string

const (
	roleAdmin role = "admin"
	roleUser  role = "user"
)

// tokenLifetimeSeconds is reported as expires_in; tokens never actually expire.
const tokenLifetimeSeconds = 300

type authenticator struct {
	admin  apiconfig.Credentials
	users  []apiconfig.Credentials
	tokens map[string]role
	lock   sync.Mutex
}

func newAuthenticator(admin apiconfig.Credentials, users ...apiconfig.Credentials) *authenticator {
	return &authenticator{admin: admin, users: users, tokens: make(map[string]role)}
}

// login returns a new token if the credentials match an account.
func (a *authenticator) login(email, password string) (string, bool) {
	var r role
	switch {
	case a.admin.IsDefined() && email == a.admin.Email && password == a.admin.Password:
		r = roleAdmin
	default:
		for _, u := range a.users {
			if u.IsDefined() && email == u.Email && password == u.Password {
				r = roleUser
				break
			}
		}
	}
	if r == "" {
		return "", false
	}
	token := uuid.NewString()
	a.lock.Lock()
	a.tokens[token] = r
	a.lock.Unlock()
	return token, true
}

// roleOf returns the role of the bearer token in the request, or "" if there is no valid token.
func (a *authenticator) roleOf(r *http.Request) role {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return ""
	}
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.tokens[token]
}
