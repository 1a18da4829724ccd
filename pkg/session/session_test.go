package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopctl/pkg/session"
	"github.com/shashiranjanraj/shopctl/pkg/testkit"
)

const baseURL = "http://shop.test"

func TestBypassLoginSkipsNetwork(t *testing.T) {
	mt := testkit.Mock(t) // any outgoing call fails the test

	sess, err := session.Login(context.Background(), baseURL, "tungnt@aptech", "123456789")
	require.NoError(t, err)

	assert.True(t, sess.Bypass)
	assert.Equal(t, "tungnt@aptech", sess.Username)
	assert.Empty(t, sess.Token(), "bypass holds no server token")
	assert.False(t, sess.Expired())
	assert.Empty(t, mt.Calls())
}

func TestLoginValidatesBeforeRequesting(t *testing.T) {
	mt := testkit.Mock(t)

	_, err := session.Login(context.Background(), baseURL, "not-an-email", "x")
	var verr *session.ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
	assert.Empty(t, mt.Calls())
}

func TestLoginSuccess(t *testing.T) {
	mt := testkit.Mock(t, testkit.Step{
		Method: "POST",
		URL:    baseURL + "/auth/login",
		Body:   `{"access_token":"tok-abc","loggedInUser":{"username":"admin@shop.example","name":"Admin"}}`,
	})

	sess, err := session.Login(context.Background(), baseURL, "admin@shop.example", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "tok-abc", sess.Token())
	assert.Equal(t, "admin@shop.example", sess.Username)
	assert.False(t, sess.Bypass)

	calls := mt.Calls()
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0].Body, `"username":"admin@shop.example"`)
}

func TestLoginRejectedCredentials(t *testing.T) {
	testkit.Mock(t, testkit.Step{Method: "POST", Status: 401, Body: `{"message":["Unauthorized"]}`})

	_, err := session.Login(context.Background(), baseURL, "admin@shop.example", "wrongpass")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginRequiresUserInResponse(t *testing.T) {
	testkit.Mock(t, testkit.Step{Method: "POST", Body: `{"access_token":"tok-abc"}`})

	_, err := session.Login(context.Background(), baseURL, "admin@shop.example", "secret123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user in response")
}

func TestSaveLoadClearRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")

	_, err := session.Load(path)
	require.ErrorIs(t, err, session.ErrNotLoggedIn)

	sess := &session.Session{AccessToken: "tok-abc", Username: "admin@shop.example"}
	require.NoError(t, sess.Save(path))

	loaded, err := session.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", loaded.Token())
	assert.Equal(t, "admin@shop.example", loaded.Username)

	require.NoError(t, session.Clear(path))
	_, err = session.Load(path)
	require.ErrorIs(t, err, session.ErrNotLoggedIn)

	require.NoError(t, session.Clear(path), "clearing twice is fine")
}
