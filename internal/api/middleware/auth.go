package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rohits-web03/sociogram/internal/auth"
	"github.com/rohits-web03/sociogram/internal/models"
	"github.com/rohits-web03/sociogram/internal/repositories"
	"github.com/rohits-web03/sociogram/internal/utils"
)

type contextKey string

const identityKey contextKey = "identity"

const bearerPrefix = "Bearer "

// Auth gates every protected route. Beyond verifying the token signature
// and expiry it reloads the account on every request and re-checks the
// embedded credentials against the stored hash, so deleted accounts and
// changed passwords reject previously issued tokens immediately. The fresh
// row becomes the request identity; nothing is cached between requests.
func Auth(store *repositories.Store, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				utils.JSONError(w, http.StatusUnauthorized, "missing or malformed authorization header")
				return
			}

			claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "invalid authentication token")
				return
			}

			user, err := store.GetUser(claims.Login)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "token credentials are stale or unknown")
				return
			}

			if user.Login != claims.Login || !auth.CheckPassword(claims.Password, user.HashedPassword) {
				utils.JSONError(w, http.StatusUnauthorized, "token credentials are stale or unknown")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the authenticated user placed by Auth. Panics when
// called outside a protected route, which is a routing bug.
func Identity(r *http.Request) *models.User {
	return r.Context().Value(identityKey).(*models.User)
}
