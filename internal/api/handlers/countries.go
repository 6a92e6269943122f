package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/rohits-web03/sociogram/internal/models"
	"github.com/rohits-web03/sociogram/internal/utils"
)

// GET /api/ping
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /api/countries?region=
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region != "" && !models.ValidRegion(region) {
		utils.JSONError(w, http.StatusBadRequest, "unknown region")
		return
	}

	countries, err := h.Store.ListCountries(region)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
		return
	}
	utils.JSON(w, http.StatusOK, countries)
}

// GET /api/countries/{alpha2}
func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	alpha2 := strings.ToUpper(r.PathValue("alpha2"))

	country, err := h.Store.GetCountry(alpha2)
	switch {
	case err == nil:
		utils.JSON(w, http.StatusOK, country)
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusNotFound, "country not found")
	default:
		utils.JSONError(w, http.StatusInternalServerError, "database query failed")
	}
}
