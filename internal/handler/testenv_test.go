package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/config"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/repository"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/router"
)

// testEnv runs the full route table against the in-memory store so tests
// exercise the same gates and handlers as production, minus MySQL and Redis.
type testEnv struct {
	e     *echo.Echo
	store *repository.MemoryStore
	cfg   config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Config{
		Env:            "test",
		Port:           "0",
		StoreDriver:    config.DriverMemory,
		JWTSecret:      "test-secret",
		AccessTTLMin:   5,
		RefreshTTLDays: 1,
		BcryptCost:     4, // bcrypt.MinCost keeps the suite fast
		AdminUsername:  "admin",
		AdminPassword:  "adminpass",
	}
	store := repository.NewMemoryStore()
	require.NoError(t, repository.EnsureAdmin(context.Background(), store,
		cfg.AdminUsername, cfg.AdminPassword, cfg.BcryptCost))

	e := echo.New()
	router.RegisterRoutes(e, cfg, store.Stores(), nil)
	return &testEnv{e: e, store: store, cfg: cfg}
}

// do issues a JSON request against the in-process server. An empty token
// leaves the request unauthenticated.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// register creates an account through the API and returns its access token.
func (env *testEnv) register(t *testing.T, username, password string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/v1/auth/register", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return accessToken(t, rec)
}

// login authenticates an existing account and returns its access token.
func (env *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/v1/auth/login", "",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return accessToken(t, rec)
}

func accessToken(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	return resp.Access.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
