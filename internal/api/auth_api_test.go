package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSignInProfileRoundTrip(t *testing.T) {
	h, _ := newTestAPI(t)

	rr := do(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"login":       "alice",
		"email":       "alice@example.com",
		"password":    "Abcdef1",
		"countryCode": "RU",
		"isPublic":    true,
		"phone":       "+71234567890",
		"image":       "https://cdn.example.com/alice.png",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	profile, ok := decode(t, rr)["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"login":       "alice",
		"email":       "alice@example.com",
		"countryCode": "RU",
		"isPublic":    true,
		"phone":       "+71234567890",
		"image":       "https://cdn.example.com/alice.png",
	}, profile)

	token := signIn(t, h, "alice", "Abcdef1")

	rr = do(t, h, http.MethodGet, "/api/me/profile", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, profile, decode(t, rr))
}

func TestRegisterOmitsUnsetOptionalFields(t *testing.T) {
	h, _ := newTestAPI(t)
	register(t, h, "alice", false)
	token := signIn(t, h, "alice", testPassword)

	rr := do(t, h, http.MethodGet, "/api/me/profile", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	assert.NotContains(t, body, "phone")
	assert.NotContains(t, body, "image")
	assert.NotContains(t, body, "hashed_password")
}

func TestRegisterConflicts(t *testing.T) {
	h, _ := newTestAPI(t)

	rr := do(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"login":       "alice",
		"email":       "alice@example.com",
		"password":    "Abcdef1",
		"countryCode": "RU",
		"isPublic":    true,
		"phone":       "+71234567890",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	cases := []map[string]any{
		{"login": "alice", "email": "other@example.com", "password": "Abcdef1", "countryCode": "RU", "isPublic": true},
		{"login": "bob", "email": "alice@example.com", "password": "Abcdef1", "countryCode": "RU", "isPublic": true},
		{"login": "bob", "email": "bob@example.com", "password": "Abcdef1", "countryCode": "RU", "isPublic": true, "phone": "+71234567890"},
	}
	for _, body := range cases {
		rr := do(t, h, http.MethodPost, "/api/auth/register", "", body)
		assert.Equal(t, http.StatusConflict, rr.Code, rr.Body.String())
		assert.Contains(t, decode(t, rr), "reason")
	}
}

func TestRegisterValidation(t *testing.T) {
	h, _ := newTestAPI(t)

	base := func() map[string]any {
		return map[string]any{
			"login":       "alice",
			"email":       "alice@example.com",
			"password":    "Abcdef1",
			"countryCode": "RU",
			"isPublic":    true,
		}
	}

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"login with illegal chars", func(m map[string]any) { m["login"] = "bad login!" }},
		{"login too long", func(m map[string]any) { m["login"] = repeat('a', 31) }},
		{"email too long", func(m map[string]any) { m["email"] = repeat('a', 45) + "@example.com" }},
		{"weak password", func(m map[string]any) { m["password"] = "abcdefg" }},
		{"unknown country", func(m map[string]any) { m["countryCode"] = "XX" }},
		{"phone without plus", func(m map[string]any) { m["phone"] = "71234567890" }},
		{"image too long", func(m map[string]any) { m["image"] = "https://" + repeat('x', 200) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := base()
			tc.mutate(body)
			rr := do(t, h, http.MethodPost, "/api/auth/register", "", body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
			assert.Contains(t, decode(t, rr), "reason")
		})
	}
}

func TestSignInFailures(t *testing.T) {
	h, _ := newTestAPI(t)
	register(t, h, "alice", false)

	rr := do(t, h, http.MethodPost, "/api/auth/sign-in", "", map[string]any{
		"login": "nobody", "password": "Abcdef1",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/auth/sign-in", "", map[string]any{
		"login": "alice", "password": "WrongPass1",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthGate(t *testing.T) {
	h, _ := newTestAPI(t)
	registerAndSignIn(t, h, "alice", false)

	// No header at all.
	rr := do(t, h, http.MethodGet, "/api/me/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Wrong scheme.
	req := httptest.NewRequest(http.MethodGet, "/api/me/profile", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	rr = do(t, h, http.MethodGet, "/api/me/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestTokenForDeletedUserRejected(t *testing.T) {
	h, store := newTestAPI(t)
	token := registerAndSignIn(t, h, "alice", false)

	// Simulate the account disappearing after issuance; the signature is
	// still fine but the credential reload fails.
	require.NoError(t, store.DeleteUser("alice"))

	rr := do(t, h, http.MethodGet, "/api/me/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPasswordChangeInvalidatesOldTokens(t *testing.T) {
	h, _ := newTestAPI(t)
	oldToken := registerAndSignIn(t, h, "alice", false)

	rr := do(t, h, http.MethodPost, "/api/me/updatePassword", oldToken, map[string]any{
		"oldPassword": testPassword,
		"newPassword": "Newpass2",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "ok", decode(t, rr)["status"])

	// The old token still has a valid signature and expiry, but its
	// embedded password no longer verifies against the stored hash.
	rr = do(t, h, http.MethodGet, "/api/me/profile", oldToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Old password no longer signs in; the new one does.
	rr = do(t, h, http.MethodPost, "/api/auth/sign-in", "", map[string]any{
		"login": "alice", "password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	newToken := signIn(t, h, "alice", "Newpass2")
	rr = do(t, h, http.MethodGet, "/api/me/profile", newToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUpdatePasswordChecks(t *testing.T) {
	h, _ := newTestAPI(t)
	token := registerAndSignIn(t, h, "alice", false)

	rr := do(t, h, http.MethodPost, "/api/me/updatePassword", token, map[string]any{
		"oldPassword": "Wrong1pass",
		"newPassword": "Newpass2",
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/me/updatePassword", token, map[string]any{
		"oldPassword": testPassword,
		"newPassword": "weak",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPing(t *testing.T) {
	h, _ := newTestAPI(t)
	rr := do(t, h, http.MethodGet, "/api/ping", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode(t, rr)["status"])
}

func repeat(c byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
