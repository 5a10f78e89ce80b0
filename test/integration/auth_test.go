//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	server := newTestServer(t)

	registerUser(t, server, "alice", "secret123", "user")
	token := loginUser(t, server, "alice", "secret123")

	// Decode the issued token and check the subject claim.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, float64(1), claims["id"])
	assert.Equal(t, "user", claims["role"])
}

func TestRegisterReturnsMessage(t *testing.T) {
	server := newTestServer(t)

	payload, err := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/auth/", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, "User created successfully", body["message"])
}

func TestRegisterDuplicateConflict(t *testing.T) {
	server := newTestServer(t)

	registerUser(t, server, "alice", "secret123", "user")

	payload, err := json.Marshal(map[string]string{
		"username": "alice",
		"email":    "different@example.com",
		"password": "secret123",
	})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/auth/", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/auth/", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeJSON[struct {
		Detail string            `json:"detail"`
		Fields map[string]string `json:"fields"`
	}](t, resp)
	assert.Contains(t, body.Fields, "username")
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "password")
}

func TestLoginWrongPassword(t *testing.T) {
	server := newTestServer(t)

	registerUser(t, server, "alice", "secret123", "user")

	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	resp, err := http.Post(server.URL+"/auth/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, "Could not validate credentials", body["detail"])
}

// Unknown username and wrong password produce byte-identical responses.
func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	server := newTestServer(t)

	registerUser(t, server, "alice", "secret123", "user")

	responses := make([]string, 0, 2)
	statuses := make([]int, 0, 2)
	for _, creds := range []url.Values{
		{"username": {"nobody"}, "password": {"secret123"}},
		{"username": {"alice"}, "password": {"wrong"}},
	} {
		resp, err := http.Post(server.URL+"/auth/token", "application/x-www-form-urlencoded", strings.NewReader(creds.Encode()))
		require.NoError(t, err)
		raw := decodeJSON[map[string]string](t, resp)
		resp.Body.Close()

		statuses = append(statuses, resp.StatusCode)
		responses = append(responses, raw["detail"])
	}

	assert.Equal(t, statuses[0], statuses[1])
	assert.Equal(t, responses[0], responses[1])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/todos/", "/admin/todo", "/user/"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSON[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}
