package harness

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/toolshop-qa/api-test-harness/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsRequest(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(201))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL+"/", time.Second, nil)
		resp, err := client.Post("/brands",
			JSONBody(map[string]string{"name": "Hammer"}),
			Query("sort", "name,asc"),
			BearerToken("abc"),
			Header("X-Run", "1"))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.Equal(t, "POST", resp.Method)

		r := <-requests
		assert.Equal(t, "POST", r.Request.Method)
		assert.Equal(t, "/brands", r.Request.URL.Path)
		assert.Equal(t, "name,asc", r.Request.URL.Query().Get("sort"))
		assert.Equal(t, "Bearer abc", r.Request.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Request.Header.Get("Accept"))
		assert.Equal(t, "1", r.Request.Header.Get("X-Run"))
		assert.JSONEq(t, `{"name":"Hammer"}`, string(r.Body))
	})
}

func TestClientSendsRawBodyUnchanged(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(422))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, time.Second, nil)
		_, err := client.Put("brands/3", RawBody([]byte(`{"name":null}`)))
		require.NoError(t, err)
		r := <-requests
		assert.Equal(t, "/brands/3", r.Request.URL.Path)
		assert.Equal(t, `{"name":null}`, string(r.Body))
	})
}

func TestClientReturnsErrorStatusAsResponse(t *testing.T) {
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Cache-Control", "no-cache, private")
	handler := httphelpers.HandlerWithResponse(401, header, []byte(`{"message":"Unauthorized"}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, time.Second, nil)
		resp, err := client.Delete("/brands/1")
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "no-cache, private", resp.Header.Get("Cache-Control"))
		assert.Equal(t, "Unauthorized", resp.Get("message").String())
		assert.Equal(t, "Unauthorized", resp.JSON().GetByKey("message").StringValue())
		assert.True(t, resp.IsJSON())
		assert.Greater(t, int64(resp.Elapsed), int64(0))
	})
}

func TestClientTimeoutIsTransportError(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.WriteHeader(200)
	})
	httphelpers.WithServer(slow, func(server *httptest.Server) {
		client := NewClient(server.URL, time.Second, nil)
		_, err := client.Get("/brands", Timeout(20*time.Millisecond))
		require.Error(t, err)
		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.True(t, te.Timeout())
		assert.Equal(t, "GET", te.Method)
		assert.True(t, IsTransportError(err))
	})
}

func TestClientBrokenConnectionIsTransportError(t *testing.T) {
	httphelpers.WithServer(httphelpers.BrokenConnectionHandler(), func(server *httptest.Server) {
		client := NewClient(server.URL, time.Second, nil)
		_, err := client.Get("/brands")
		require.Error(t, err)
		assert.True(t, IsTransportError(err))
	})
}

func TestClientDefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient("http://localhost", 0, nil).Timeout())
	assert.Equal(t, time.Second, NewClient("http://localhost", time.Second, nil).Timeout())
}

func TestClientLogsRequests(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(204), func(server *httptest.Server) {
		var logger framework.CapturingLogger
		client := NewClient(server.URL, time.Second, nil).WithLogger(&logger)
		_, err := client.Delete("/brands/1")
		require.NoError(t, err)
		output := logger.Output()
		require.Len(t, output, 1)
		assert.Contains(t, output[0].Message, "DELETE "+server.URL+"/brands/1 -> 204 in ")
	})
}

func TestResponseDecodeJSON(t *testing.T) {
	resp := Response{Method: "GET", URL: "http://x/brands", Body: []byte(`[{"id":1,"name":"A"}]`)}
	var brands []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, resp.DecodeJSON(&brands))
	assert.Equal(t, 1, brands[0].ID)
	assert.Equal(t, []string{"A"}, resp.Strings("#.name"))

	bad := Response{Method: "GET", URL: "http://x/brands", Body: []byte(`<html>`)}
	err := bad.DecodeJSON(&brands)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Contains(t, err.Error(), "<html>")
	assert.False(t, bad.IsJSON())
}
