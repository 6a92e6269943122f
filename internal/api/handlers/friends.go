package handlers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/rohits-web03/sociogram/internal/api/middleware"
	"github.com/rohits-web03/sociogram/internal/models"
	"github.com/rohits-web03/sociogram/internal/utils"
)

// POST /api/friends/add
//
// Adding yourself or an existing friend is a no-op success; only a
// nonexistent target is an error.
func (h *Handler) AddFriend(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	var input struct {
		Login string `json:"login"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	friends, err := h.Store.FriendLogins(identity.Login)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if input.Login == identity.Login || contains(friends, input.Login) {
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	_, err = h.Store.GetUser(input.Login)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	edge := models.FriendEdge{
		FromLogin: identity.Login,
		ToLogin:   input.Login,
		AddedAt:   time.Now().UTC().Format(timeLayout),
	}
	if err := h.Store.AddFriend(&edge); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database insert failed")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// POST /api/friends/remove
func (h *Handler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	var input struct {
		Login string `json:"login"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := h.Store.RemoveFriend(identity.Login, input.Login); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database delete failed")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/friends?offset&limit
func (h *Handler) ListFriends(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	offset, limit, ok := pageParams(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid offset or limit")
		return
	}

	edges, err := h.Store.FriendsPage(identity.Login, offset, limit)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	// Pages are cut by friend login, then the page itself is shown newest
	// first.
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].AddedAt > edges[j].AddedAt
	})
	if edges == nil {
		edges = []models.FriendEdge{}
	}
	utils.JSON(w, http.StatusOK, edges)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
