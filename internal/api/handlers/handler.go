package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rohits-web03/sociogram/internal/config"
	"github.com/rohits-web03/sociogram/internal/repositories"
)

// timeLayout is the wire format for addedAt/createdAt timestamps.
const timeLayout = "2006-01-02T15:04:05Z"

// Handler carries the injected collaborators every endpoint needs. Objects
// may be nil when object storage is not configured; only the avatar
// endpoints care.
type Handler struct {
	Store   *repositories.Store
	Objects *repositories.ObjectStorage
	Config  config.Config
}

func New(store *repositories.Store, objects *repositories.ObjectStorage, cfg config.Config) *Handler {
	return &Handler{Store: store, Objects: objects, Config: cfg}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pageParams parses offset/limit with the shared defaults and bounds:
// offset ≥ 0, limit in [0,50], defaults 0 and 5.
func pageParams(r *http.Request) (offset, limit int, ok bool) {
	offset, limit = 0, 5
	var err error
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil {
			return 0, 0, false
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return 0, 0, false
		}
	}
	if limit > 50 || limit < 0 || offset < 0 {
		return 0, 0, false
	}
	return offset, limit, true
}
