package api

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/rohits-web03/sociogram/internal/api/handlers"
	"github.com/rohits-web03/sociogram/internal/api/middleware"
)

// SetupRouter builds the full route table. Everything outside ping,
// countries and the two auth endpoints sits behind the bearer-token gate.
func SetupRouter(h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(h.Config.CorsConfig)
	protect := middleware.Auth(h.Store, h.Config.JWTSecret)

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /api/ping", h.Ping)
	mux.HandleFunc("GET /api/countries", h.ListCountries)
	mux.HandleFunc("GET /api/countries/{alpha2}", h.GetCountry)
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/sign-in", h.SignIn)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("GET /api/me/profile", protect(http.HandlerFunc(h.MyProfile)))
	mux.Handle("PATCH /api/me/profile", protect(http.HandlerFunc(h.UpdateProfile)))
	mux.Handle("POST /api/me/updatePassword", protect(http.HandlerFunc(h.UpdatePassword)))
	mux.Handle("POST /api/me/avatar", protect(http.HandlerFunc(h.PresignAvatarUpload)))
	mux.Handle("GET /api/me/avatar", protect(http.HandlerFunc(h.PresignAvatarDownload)))
	mux.Handle("GET /api/profiles/{login}", protect(http.HandlerFunc(h.GetProfile)))

	mux.Handle("POST /api/friends/add", protect(http.HandlerFunc(h.AddFriend)))
	mux.Handle("POST /api/friends/remove", protect(http.HandlerFunc(h.RemoveFriend)))
	mux.Handle("GET /api/friends", protect(http.HandlerFunc(h.ListFriends)))

	mux.Handle("POST /api/posts/new", protect(http.HandlerFunc(h.CreatePost)))
	mux.Handle("GET /api/posts/{postId}", protect(http.HandlerFunc(h.GetPost)))
	mux.Handle("GET /api/posts/feed/my", protect(http.HandlerFunc(h.MyFeed)))
	mux.Handle("GET /api/posts/feed/{login}", protect(http.HandlerFunc(h.UserFeed)))
	mux.Handle("POST /api/posts/{postId}/like", protect(http.HandlerFunc(h.LikePost)))
	mux.Handle("POST /api/posts/{postId}/dislike", protect(http.HandlerFunc(h.DislikePost)))

	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
