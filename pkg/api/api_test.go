package api_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopctl/pkg/api"
)

func TestFirstMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"array takes first element", `{"message":["Name must be unique","second"]}`, "Name must be unique"},
		{"empty array falls back", `{"message":[]}`, api.GenericError},
		{"empty first element falls back", `{"message":[""]}`, api.GenericError},
		{"plain string message", `{"message":"Forbidden resource"}`, "Forbidden resource"},
		{"missing message falls back", `{"statusCode":500}`, api.GenericError},
		{"non-JSON body falls back", `<html>Bad Gateway</html>`, api.GenericError},
		{"empty body falls back", ``, api.GenericError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := &api.Response{StatusCode: 400, Raw: []byte(tc.body)}
			assert.Equal(t, tc.want, resp.FirstMessage())
		})
	}
}

func TestResponseOK(t *testing.T) {
	assert.True(t, (&api.Response{StatusCode: 200}).OK())
	assert.True(t, (&api.Response{StatusCode: 204}).OK())
	assert.False(t, (&api.Response{StatusCode: 301}).OK())
	assert.False(t, (&api.Response{StatusCode: 404}).OK())
}

// roundTripFunc lets a test capture the outgoing request.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestClientAttachesBearerToken(t *testing.T) {
	var seen *http.Request
	api.DefaultClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`[]`)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})
	t.Cleanup(api.ResetTransport)

	client := api.NewClient("http://shop.test", staticToken("tok-123"))
	resp, err := client.Get(context.Background(), "/online-shop/categories")
	require.NoError(t, err)
	assert.True(t, resp.OK())

	require.NotNil(t, seen)
	assert.Equal(t, "Bearer tok-123", seen.Header.Get("Authorization"))
	assert.Equal(t, "application/json", seen.Header.Get("Content-Type"))
	assert.Equal(t, "http://shop.test/online-shop/categories", seen.URL.String())
}

func TestClientAnonymousWithoutTokenSource(t *testing.T) {
	var seen *http.Request
	api.DefaultClient.Transport = roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`[]`)),
			Header:     make(http.Header),
			Request:    req,
		}, nil
	})
	t.Cleanup(api.ResetTransport)

	client := api.NewClient("http://shop.test", nil)
	_, err := client.Get(context.Background(), "/online-shop/suppliers")
	require.NoError(t, err)
	assert.Empty(t, seen.Header.Get("Authorization"))
}
