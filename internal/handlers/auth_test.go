package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/auth"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleRegister(t *testing.T) {
	h := NewAuthHandler(&mockUserService{userID: "user-1"}, auth.NewTokenIssuer("test-secret"), zap.NewNop())

	rec := postJSON(t, h.HandleRegister, "/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User registered successfully", decodeBody(t, rec)["message"])
}

func TestHandleRegisterConflict(t *testing.T) {
	h := NewAuthHandler(&mockUserService{registerErr: apperr.ErrConflict}, auth.NewTokenIssuer("test-secret"), zap.NewNop())

	rec := postJSON(t, h.HandleRegister, "/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User already exists", decodeBody(t, rec)["message"])
}

func TestHandleRegisterMissingFields(t *testing.T) {
	h := NewAuthHandler(&mockUserService{userID: "user-1"}, auth.NewTokenIssuer("test-secret"), zap.NewNop())

	rec := postJSON(t, h.HandleRegister, "/api/register", map[string]string{
		"username": "alice",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLoginIssuesVerifiableToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("test-secret")
	h := NewAuthHandler(&mockUserService{userID: "user-1"}, tokens, zap.NewNop())

	rec := postJSON(t, h.HandleLogin, "/api/login", map[string]string{
		"username": "alice",
		"password": "hunter22",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"]
	require.NotEmpty(t, token)

	userID, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestHandleLoginInvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockUserService{authErr: apperr.ErrUnauthorized}, auth.NewTokenIssuer("test-secret"), zap.NewNop())

	rec := postJSON(t, h.HandleLogin, "/api/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
}
