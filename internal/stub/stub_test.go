package stub_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/app/pages"
	"github.com/shashiranjanraj/shopctl/internal/stub"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
	"github.com/shashiranjanraj/shopctl/pkg/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(stub.NewServer(stub.NewStore()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

// login authenticates against the stub with the seeded demo account.
func login(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	body := bytes.NewBufferString(`{"username":"tungnt@aptech","password":"123456789"}`)
	resp, err := http.Post(ts.URL+"/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

func do(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestLoginRejectsBadPassword(t *testing.T) {
	ts := newTestServer(t)

	body := bytes.NewBufferString(`{"username":"tungnt@aptech","password":"nope"}`)
	resp, err := http.Post(ts.URL+"/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	out := decode[map[string][]string](t, resp)
	assert.Equal(t, []string{"Invalid username or password"}, out["message"])
}

func TestRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/online-shop/categories", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/online-shop/categories", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCategoryLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)
	base := ts.URL + "/online-shop/categories"

	resp := do(t, http.MethodGet, base, token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	seeded := decode[[]models.Category](t, resp)
	require.NotEmpty(t, seeded)

	resp = do(t, http.MethodPost, base, token, `{"name":"Drinks","description":""}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.Category](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Drinks", created.Name)

	// Partial patch keeps the fields it does not name.
	resp = do(t, http.MethodPatch, base+"/"+itoa(created.ID), token, `{"description":"Cold and hot"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	patched := decode[models.Category](t, resp)
	assert.Equal(t, "Drinks", patched.Name)
	assert.Equal(t, "Cold and hot", patched.Description)

	resp = do(t, http.MethodDelete, base+"/"+itoa(created.ID), token, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, base+"/"+itoa(created.ID), token, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decode[map[string][]string](t, resp)
	assert.Equal(t, []string{"Not found"}, out["message"])
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp := do(t, http.MethodPost, ts.URL+"/online-shop/suppliers", token,
		`{"name":"ACME","email":"not-an-email","address":"","phoneNumber":"123"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[map[string][]string](t, resp)
	require.NotEmpty(t, out["message"])
	joined := ""
	for _, m := range out["message"] {
		joined += m + "\n"
	}
	assert.Contains(t, joined, "email")
	assert.Contains(t, joined, "address")
}

func TestProductCreateEmbedsReferences(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)
	base := ts.URL + "/online-shop/products"

	resp := do(t, http.MethodPost, base, token,
		`{"name":"Green Tea","description":"Loose leaf","price":"12.50","discount":"0.1","stock":5,"categoriesId":1,"supplierId":1}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decode[models.Product](t, resp)
	assert.Equal(t, 1, created.Categories.ID)
	assert.NotEmpty(t, created.Categories.Name, "category snapshot is embedded")
	assert.Equal(t, 1, created.Supplier.ID)
	assert.NotEmpty(t, created.Supplier.Name, "supplier snapshot is embedded")

	resp = do(t, http.MethodPost, base, token,
		`{"name":"Ghost","description":"x","price":"1","discount":"0","stock":1,"categoriesId":99,"supplierId":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNonNumericIDIsRejected(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	resp := do(t, http.MethodGet, ts.URL+"/online-shop/customers/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestPageAgainstStub drives the real client and page controller against the
// stub over HTTP, end to end.
func TestPageAgainstStub(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	sess := &session.Session{AccessToken: token, Username: "tungnt@aptech"}
	client := api.NewClient(ts.URL, sess)
	rec := &notify.Recorder{}
	page := pages.Categories(client, rec)

	ctx := context.Background()
	require.NoError(t, page.Load(ctx))
	before := len(page.Items())
	require.NotZero(t, before)

	created, err := page.Create(ctx, models.CategoryDraft{Name: "Snacks", Description: "Crunchy"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Len(t, page.Items(), before+1)
	assert.Equal(t, []string{"Category created"}, rec.Successes)

	require.NoError(t, page.Delete(ctx, created.ID))
	assert.Len(t, page.Items(), before)
}

func itoa(n int) string { return strconv.Itoa(n) }
