package handlers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/rohits-web03/sociogram/internal/api/middleware"
	"github.com/rohits-web03/sociogram/internal/auth"
	"github.com/rohits-web03/sociogram/internal/utils"
)

// GET /api/me/profile
func (h *Handler) MyProfile(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, middleware.Identity(r))
}

// PATCH /api/me/profile
//
// Partial update: nil means "field not sent". The one exception is
// isPublic, which is always rewritten from the coerced flag value, so a
// request that omits it resets the profile to private. That reset is part
// of the observable contract and must stay.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	var input struct {
		CountryCode *string `json:"countryCode"`
		IsPublic    *bool   `json:"isPublic"`
		Phone       *string `json:"phone"`
		Image       *string `json:"image"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if input.Phone != nil {
		taken, err := h.Store.PhoneTakenByOther(identity.Login, *input.Phone)
		if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "database query failed")
			return
		}
		if taken {
			utils.JSONError(w, http.StatusConflict, "this phone number is already taken")
			return
		}
	}

	updated := *identity
	fields := map[string]interface{}{}

	if input.CountryCode != nil {
		codeOK, err := h.Store.CountryExists(*input.CountryCode)
		if err != nil {
			utils.JSONError(w, http.StatusInternalServerError, "database query failed")
			return
		}
		if !codeOK {
			utils.JSONError(w, http.StatusBadRequest, "invalid country code")
			return
		}
		updated.CountryCode = *input.CountryCode
		fields["country_code"] = *input.CountryCode
	}
	if input.Phone != nil {
		if !phoneRe.MatchString(*input.Phone) {
			utils.JSONError(w, http.StatusBadRequest, "invalid phone number")
			return
		}
		updated.Phone = input.Phone
		fields["phone"] = *input.Phone
	}
	if input.Image != nil {
		if len(*input.Image) > 200 {
			utils.JSONError(w, http.StatusBadRequest, "invalid image")
			return
		}
		updated.Image = input.Image
		fields["image"] = *input.Image
	}

	updated.IsPublic = input.IsPublic != nil && *input.IsPublic
	fields["is_public"] = updated.IsPublic

	if err := h.Store.UpdateProfile(identity.Login, fields); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	utils.JSON(w, http.StatusOK, updated)
}

// GET /api/profiles/{login}
//
// Unlike the post and feed paths, denial here is a 403 for both a missing
// target and a visibility failure.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)
	login := r.PathValue("login")

	target, err := h.Store.GetUser(login)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusForbidden, "user not found")
		return
	case err != nil:
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	friends, err := h.Store.FriendLogins(target.Login)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	if !auth.CanView(identity.Login, target.Login, target.IsPublic, friends) {
		utils.JSONError(w, http.StatusForbidden, "no access to this user")
		return
	}
	utils.JSON(w, http.StatusOK, target)
}

// POST /api/me/updatePassword
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity := middleware.Identity(r)

	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if !auth.CheckPassword(input.OldPassword, identity.HashedPassword) {
		utils.JSONError(w, http.StatusForbidden, "old password does not match")
		return
	}
	if !auth.ValidPassword(input.NewPassword) {
		utils.JSONError(w, http.StatusBadRequest, "invalid password")
		return
	}

	hashed, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}
	if err := h.Store.UpdatePassword(identity.Login, hashed); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database update failed")
		return
	}

	// Tokens issued before this point now fail re-verification in the auth
	// middleware; no revocation list is needed.
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
