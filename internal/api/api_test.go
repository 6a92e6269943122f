package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rohits-web03/sociogram/internal/api"
	"github.com/rohits-web03/sociogram/internal/api/handlers"
	"github.com/rohits-web03/sociogram/internal/config"
	"github.com/rohits-web03/sociogram/internal/repositories"
)

const testPassword = "Abcdef1"

func newTestAPI(t *testing.T) (http.Handler, *repositories.Store) {
	t.Helper()
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store := repositories.NewStore(db)
	require.NoError(t, store.Migrate())

	cfg := config.Config{
		JWTSecret:  "api-test-secret",
		CorsConfig: config.CorsConfig(),
	}
	return api.SetupRouter(handlers.New(store, nil, cfg)), store
}

// do runs one request through the full router. token may be empty for
// public endpoints.
func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "body: %s", rr.Body.String())
	return out
}

func register(t *testing.T, h http.Handler, login string, public bool) {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"login":       login,
		"email":       login + "@example.com",
		"password":    testPassword,
		"countryCode": "RU",
		"isPublic":    public,
	})
	require.Equal(t, http.StatusCreated, rr.Code, "register %s: %s", login, rr.Body.String())
}

func signIn(t *testing.T, h http.Handler, login, password string) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/auth/sign-in", "", map[string]any{
		"login":    login,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rr.Code, "sign-in %s: %s", login, rr.Body.String())
	token, ok := decode(t, rr)["token"].(string)
	require.True(t, ok)
	return token
}

// registerAndSignIn is the common two-step setup most scenarios need.
func registerAndSignIn(t *testing.T, h http.Handler, login string, public bool) string {
	t.Helper()
	register(t, h, login, public)
	return signIn(t, h, login, testPassword)
}

// befriend creates the directed edge from→to via the API.
func befriend(t *testing.T, h http.Handler, fromToken, toLogin string) {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/friends/add", fromToken, map[string]any{"login": toLogin})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func createPost(t *testing.T, h http.Handler, token, content string) string {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/posts/new", token, map[string]any{
		"content": content,
		"tags":    []string{"test"},
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	id, ok := decode(t, rr)["id"].(string)
	require.True(t, ok)
	return id
}
