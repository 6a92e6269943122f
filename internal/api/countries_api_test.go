package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCountries(t *testing.T) {
	h, _ := newTestAPI(t)

	rr := do(t, h, http.MethodGet, "/api/countries", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	all := decodeList(t, rr)
	assert.NotEmpty(t, all)

	rr = do(t, h, http.MethodGet, "/api/countries?region=Oceania", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	oceania := decodeList(t, rr)
	require.NotEmpty(t, oceania)
	assert.Less(t, len(oceania), len(all))
	for _, c := range oceania {
		assert.Equal(t, "Oceania", c["region"])
	}
}

func TestListCountriesUnknownRegion(t *testing.T) {
	h, _ := newTestAPI(t)

	rr := do(t, h, http.MethodGet, "/api/countries?region=Atlantis", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetCountry(t *testing.T) {
	h, _ := newTestAPI(t)

	rr := do(t, h, http.MethodGet, "/api/countries/RU", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, "RU", body["alpha2"])
	assert.Equal(t, "RUS", body["alpha3"])

	// Lookup is case-insensitive.
	rr = do(t, h, http.MethodGet, "/api/countries/ru", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "RU", decode(t, rr)["alpha2"])

	rr = do(t, h, http.MethodGet, "/api/countries/XX", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
