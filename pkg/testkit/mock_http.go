// Package testkit provides the HTTP mocking used by client-side tests.
package testkit

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/shashiranjanraj/shopctl/pkg/api"
)

// Step describes one expected outgoing request and the synthetic response to
// return for it. Empty Method or URL match anything; URL is a prefix match.
type Step struct {
	Method string
	URL    string
	Status int
	Body   string
}

// Call records one request the transport saw.
type Call struct {
	Method string
	URL    string
	Body   string
}

// MockTransport implements http.RoundTripper. It matches outgoing requests
// against its steps in order and returns synthetic responses instead of
// making real network calls.
//
//	mt := testkit.Mock(t, steps...)
//	// ... run test ...
//	mt.AssertAllCalled(t)
type MockTransport struct {
	mu    sync.Mutex
	steps []stepEntry
	calls []Call
}

type stepEntry struct {
	step      Step
	callCount int
}

// NewMockTransport builds a transport from the given steps.
func NewMockTransport(steps ...Step) *MockTransport {
	mt := &MockTransport{}
	for _, s := range steps {
		mt.steps = append(mt.steps, stepEntry{step: s})
	}
	return mt
}

// Mock installs a MockTransport on the shared client and restores the real
// transport when the test finishes.
func Mock(t testing.TB, steps ...Step) *MockTransport {
	t.Helper()
	mt := NewMockTransport(steps...)
	api.DefaultClient.Transport = mt
	t.Cleanup(api.ResetTransport)
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	var body string
	if req.Body != nil {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
		body = string(raw)
	}
	mt.calls = append(mt.calls, Call{Method: req.Method, URL: req.URL.String(), Body: body})

	for i := range mt.steps {
		entry := &mt.steps[i]
		if !matches(req, entry.step) {
			continue
		}

		entry.callCount++
		return buildResponse(req, entry.step), nil
	}

	return nil, fmt.Errorf("testkit: unexpected outgoing HTTP call %s %s — no matching step", req.Method, req.URL)
}

// AssertAllCalled fails the test if any step was never triggered.
func (mt *MockTransport) AssertAllCalled(t testing.TB) {
	t.Helper()
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, e := range mt.steps {
		if e.callCount == 0 {
			t.Errorf("testkit: step %s %s was never called", e.step.Method, e.step.URL)
		}
	}
}

// Calls returns the requests seen so far, in order.
func (mt *MockTransport) Calls() []Call {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	out := make([]Call, len(mt.calls))
	copy(out, mt.calls)
	return out
}

func matches(req *http.Request, s Step) bool {
	if s.Method != "" && !strings.EqualFold(s.Method, req.Method) {
		return false
	}
	if s.URL != "" && !strings.HasPrefix(req.URL.String(), s.URL) {
		return false
	}
	return true
}

func buildResponse(req *http.Request, s Step) *http.Response {
	code := s.Status
	if code == 0 {
		code = http.StatusOK
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Body:       io.NopCloser(strings.NewReader(s.Body)),
		Header:     header,
		Request:    req,
	}
}
