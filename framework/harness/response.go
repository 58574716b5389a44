package harness

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/tidwall/gjson"
)

// Response is a snapshot of one HTTP exchange. The client never modifies it after it is
// returned.
type Response struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	// Elapsed is the time from sending the request until the response headers arrived. It
	// does not include reading the body.
	Elapsed time.Duration
}

// JSON parses the body as an arbitrary JSON value. A body that is not valid JSON gives
// ldvalue.Null().
func (r Response) JSON() ldvalue.Value {
	return ldvalue.Parse(r.Body)
}

// IsJSON returns true if the body is a well-formed JSON document.
func (r Response) IsJSON() bool {
	return gjson.ValidBytes(r.Body)
}

// Get queries the body with a gjson path such as "data.0.brand.slug" or "data.#.name".
func (r Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

// Root returns the whole body as a gjson value, for checks that need the raw JSON types.
func (r Response) Root() gjson.Result {
	return gjson.ParseBytes(r.Body)
}

// DecodeJSON unmarshals the body into target. It returns a *DecodeError if that fails.
func (r Response) DecodeJSON(target interface{}) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return &DecodeError{Method: r.Method, URL: r.URL, Body: r.Body, Err: err}
	}
	return nil
}

// Strings returns every string at a gjson path that yields an array, such as "data.#.name".
func (r Response) Strings(path string) []string {
	var ret []string
	for _, v := range r.Get(path).Array() {
		ret = append(ret, v.String())
	}
	return ret
}

func (r Response) String() string {
	return fmt.Sprintf("%s %s -> %d in %s", r.Method, r.URL, r.StatusCode, r.Elapsed.Round(time.Millisecond))
}
