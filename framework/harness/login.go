package harness

import (
	"fmt"
	"net/http"

	"github.com/toolshop-qa/api-test-harness/apiconfig"
	"github.com/toolshop-qa/api-test-harness/apidef"
	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

// LoginError means that the API answered a login request but did not issue a token.
type LoginError struct {
	Email      string
	StatusCode int
	Body       string
}

func (e *LoginError) Error() string {
	if e.StatusCode == http.StatusOK {
		return fmt.Sprintf("login as %s returned no access token: %s", e.Email, helpers.TruncatedString(e.Body, maxBodyInError))
	}
	return fmt.Sprintf("login as %s failed with status %d: %s", e.Email, e.StatusCode, helpers.TruncatedString(e.Body, maxBodyInError))
}

// Login exchanges credentials for a bearer token. It makes exactly one attempt.
func Login(client *Client, creds apiconfig.Credentials) (string, error) {
	resp, err := client.Post(apidef.PathLogin,
		JSONBody(apidef.LoginParams{Email: creds.Email, Password: creds.Password}))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", &LoginError{Email: creds.Email, StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	var body apidef.LoginResponse
	if err := resp.DecodeJSON(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", &LoginError{Email: creds.Email, StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return body.AccessToken, nil
}
