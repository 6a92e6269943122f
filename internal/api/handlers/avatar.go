package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rohits-web03/sociogram/internal/api/middleware"
	"github.com/rohits-web03/sociogram/internal/utils"
)

const presignTTL = 15 * time.Minute

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// POST /api/me/avatar
//
// Hands out a presigned PUT URL for a new profile image. The client uploads
// directly to the bucket, then PATCHes the returned imageUrl into the
// profile's image field.
func (h *Handler) PresignAvatarUpload(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	if h.Objects == nil {
		utils.JSONError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}

	var input struct {
		Filename string `json:"filename"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	if !allowedImageExts[ext] {
		utils.JSONError(w, http.StatusBadRequest, "unsupported image type")
		return
	}

	key := fmt.Sprintf("avatars/%s/%s%s", identity.Login, uuid.NewString(), ext)
	uploadURL, err := h.Objects.PresignPut(r.Context(), key, presignTTL)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to generate upload URL")
		return
	}

	imageURL := h.Objects.PublicURL(key)
	if len(imageURL) > 200 {
		utils.JSONError(w, http.StatusInternalServerError, "generated image URL is too long")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{
		"uploadUrl": uploadURL,
		"imageUrl":  imageURL,
	})
}

// GET /api/me/avatar
//
// Returns a presigned GET URL for the caller's current image when it lives
// in our bucket.
func (h *Handler) PresignAvatarDownload(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	if h.Objects == nil {
		utils.JSONError(w, http.StatusServiceUnavailable, "object storage is not configured")
		return
	}
	if identity.Image == nil {
		utils.JSONError(w, http.StatusNotFound, "no profile image set")
		return
	}

	key, ok := h.Objects.KeyFromURL(*identity.Image)
	if !ok {
		utils.JSONError(w, http.StatusNotFound, "profile image is not stored here")
		return
	}

	url, err := h.Objects.PresignGet(r.Context(), key, presignTTL)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to generate download URL")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"url": url})
}
