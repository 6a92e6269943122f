package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"gorm.io/gorm"

	"github.com/rohits-web03/sociogram/internal/auth"
	"github.com/rohits-web03/sociogram/internal/models"
	"github.com/rohits-web03/sociogram/internal/utils"
)

var (
	loginRe = regexp.MustCompile(`^[a-zA-Z0-9-]{1,30}$`)
	phoneRe = regexp.MustCompile(`^\+\d+$`)
)

// POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Login       string  `json:"login"`
		Email       string  `json:"email"`
		Password    string  `json:"password"`
		CountryCode string  `json:"countryCode"`
		IsPublic    bool    `json:"isPublic"`
		Phone       *string `json:"phone"`
		Image       *string `json:"image"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	taken, err := h.Store.IdentityTaken(input.Login, input.Email, input.Phone)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	if taken {
		utils.JSONError(w, http.StatusConflict, "a user with the same login, email or phone already exists")
		return
	}

	// Validation order is contractual: the first failing rule decides the
	// error message.
	codeOK, err := h.Store.CountryExists(input.CountryCode)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	switch {
	case !loginRe.MatchString(input.Login):
		utils.JSONError(w, http.StatusBadRequest, "invalid login")
		return
	case len(input.Email) > 50:
		utils.JSONError(w, http.StatusBadRequest, "invalid email")
		return
	case !auth.ValidPassword(input.Password):
		utils.JSONError(w, http.StatusBadRequest, "invalid password")
		return
	case !codeOK:
		utils.JSONError(w, http.StatusBadRequest, "invalid country code")
		return
	case input.Phone != nil && !phoneRe.MatchString(*input.Phone):
		utils.JSONError(w, http.StatusBadRequest, "invalid phone number")
		return
	case input.Image != nil && len(*input.Image) > 200:
		utils.JSONError(w, http.StatusBadRequest, "invalid image")
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Login:          input.Login,
		Email:          input.Email,
		HashedPassword: hashed,
		CountryCode:    input.CountryCode,
		IsPublic:       input.IsPublic,
		Phone:          input.Phone,
		Image:          input.Image,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database insert failed")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{"profile": user})
}

// POST /api/auth/sign-in
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &input); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	user, err := h.Store.GetUser(input.Login)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusUnauthorized, "user not found")
		return
	case err != nil:
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}

	if !auth.CheckPassword(input.Password, user.HashedPassword) {
		utils.JSONError(w, http.StatusUnauthorized, "wrong password")
		return
	}

	token, err := auth.IssueToken(h.Config.JWTSecret, input.Login, input.Password)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create token")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"token": token})
}
