package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohits-web03/sociogram/internal/api/middleware"
	"github.com/rohits-web03/sociogram/internal/auth"
	"github.com/rohits-web03/sociogram/internal/models"
	"github.com/rohits-web03/sociogram/internal/utils"
)

// POST /api/posts/new
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	var input struct {
		Content string   `json:"content"`
		Tags    []string `json:"tags"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if len(input.Content) > 1000 {
		utils.JSONError(w, http.StatusBadRequest, "content exceeds 1000 characters")
		return
	}
	for _, tag := range input.Tags {
		if len(tag) > 20 {
			utils.JSONError(w, http.StatusBadRequest, "tag exceeds 20 characters")
			return
		}
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}

	post := models.Post{
		ID:        uuid.NewString(),
		Content:   input.Content,
		Author:    identity.Login,
		Tags:      models.Tags(input.Tags),
		CreatedAt: time.Now().UTC().Format(timeLayout),
	}
	if err := h.Store.CreatePost(&post); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database insert failed")
		return
	}
	utils.JSON(w, http.StatusOK, post)
}

// GET /api/posts/{postId}
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	post, ok := h.loadVisiblePost(w, r.PathValue("postId"), identity.Login)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, post)
}

// GET /api/posts/feed/my
func (h *Handler) MyFeed(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	offset, limit, ok := pageParams(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid offset or limit")
		return
	}

	h.writeFeed(w, identity.Login, offset, limit)
}

// GET /api/posts/feed/{login}
func (h *Handler) UserFeed(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)
	login := r.PathValue("login")

	owner, err := h.Store.GetUser(login)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	case err != nil:
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	offset, limit, ok := pageParams(r)
	if !ok {
		utils.JSONError(w, http.StatusBadRequest, "invalid offset or limit")
		return
	}

	friends, err := h.Store.FriendLogins(owner.Login)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if !auth.CanView(identity.Login, owner.Login, owner.IsPublic, friends) {
		utils.JSONError(w, http.StatusNotFound, "no access to this feed")
		return
	}

	h.writeFeed(w, owner.Login, offset, limit)
}

// POST /api/posts/{postId}/like
func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ReactionLike)
}

// POST /api/posts/{postId}/dislike
func (h *Handler) DislikePost(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ReactionDislike)
}

// react runs the per-(user,post) reaction transition. Repeating the current
// reaction is a no-op; switching moves one unit between the counters, so
// counts never go negative. The reaction row change and the counter write
// are two separate statements, matching the store's per-statement atomicity
// model.
func (h *Handler) react(w http.ResponseWriter, r *http.Request, kind string) {
	identity := middleware.Identity(r)

	post, ok := h.loadVisiblePost(w, r.PathValue("postId"), identity.Login)
	if !ok {
		return
	}

	current, err := h.Store.GetReaction(post.ID, identity.Login)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if current == kind {
		utils.JSON(w, http.StatusOK, post)
		return
	}

	if current == "" {
		err = h.Store.InsertReaction(post.ID, identity.Login, kind)
	} else {
		// Switching: take the unit back from the previous reaction.
		if current == models.ReactionLike {
			post.LikesCount--
		} else {
			post.DislikesCount--
		}
		err = h.Store.UpdateReaction(post.ID, identity.Login, kind)
	}
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	if kind == models.ReactionLike {
		post.LikesCount++
	} else {
		post.DislikesCount++
	}
	if err := h.Store.UpdatePostCounts(post.ID, post.LikesCount, post.DislikesCount); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database update failed")
		return
	}
	utils.JSON(w, http.StatusOK, post)
}

// loadVisiblePost fetches a post and applies the visibility rule against
// its author. Both a missing post and a denied one surface as 404 so
// strangers cannot probe for private content.
func (h *Handler) loadVisiblePost(w http.ResponseWriter, postID, viewer string) (*models.Post, bool) {
	post, err := h.Store.GetPost(postID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusNotFound, "post not found")
		return nil, false
	case err != nil:
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return nil, false
	}

	author, err := h.Store.GetUser(post.Author)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return nil, false
	}
	friends, err := h.Store.FriendLogins(author.Login)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return nil, false
	}
	if !auth.CanView(viewer, author.Login, author.IsPublic, friends) {
		utils.JSONError(w, http.StatusNotFound, "no access to this post")
		return nil, false
	}
	return post, true
}

func (h *Handler) writeFeed(w http.ResponseWriter, author string, offset, limit int) {
	posts, err := h.Store.FeedByAuthor(author, offset, limit)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	utils.JSON(w, http.StatusOK, posts)
}
