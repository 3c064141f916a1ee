package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"beer-market/internal/fixtures"
)

func TestBeerDetails(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/beer/"+fixtures.DemoBeerID+"/details", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var beer map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &beer))
	require.Equal(t, fixtures.DemoBeerID, beer["id"])
	require.Equal(t, "bottle", beer["packing"])
}

func TestBeerDetailsNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "GET", "/beer/t_unknown/details", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")
	require.Equal(t, "Beer t_unknown not found", decodeErr(t, w).Message)
}

func TestAddingNewBeer(t *testing.T) {
	r, _ := setupRouter(t)
	before := countOf(t, r, "/beers")

	w := httpDo(r, "POST", "/beer/add", map[string]interface{}{
		"brand":   "Test Brand",
		"name":    "Test Beer",
		"volume":  355,
		"alcohol": 4.5,
		"packing": "bottle",
	})
	require.Equal(t, http.StatusNoContent, w.Code)

	require.Equal(t, before+1, countOf(t, r, "/beers"))
}

func TestAddingNewBeerWithIncorrectRequest(t *testing.T) {
	r, _ := setupRouter(t)
	before := countOf(t, r, "/beers")

	w := httpDo(r, "POST", "/beer/add", map[string]interface{}{
		"brand": "Test Brand",
		"name":  "Test Beer",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decodeErr(t, w)
	require.Equal(t, "Incorrect request", e.Message)
	require.Equal(t, "Missing following params: volume, alcohol, packing", e.Details)

	require.Equal(t, before, countOf(t, r, "/beers"))
}

func TestAddingNewBeerWithIncorrectPacking(t *testing.T) {
	r, _ := setupRouter(t)
	before := countOf(t, r, "/beers")

	w := httpDo(r, "POST", "/beer/add", map[string]interface{}{
		"brand":   "Test Brand",
		"name":    "Test Beer",
		"volume":  355,
		"alcohol": 4.5,
		"packing": "paper bag",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decodeErr(t, w)
	require.Equal(t, "Incorrect request", e.Message)
	require.Equal(t, "Incorrect packing type - allowed values: can, bottle", e.Details)

	require.Equal(t, before, countOf(t, r, "/beers"))
}

func TestAddingNewBeerPackingCaseInsensitive(t *testing.T) {
	r, _ := setupRouter(t)

	w := httpDo(r, "POST", "/beer/add", map[string]interface{}{
		"brand":   "Test Brand",
		"name":    "Test Beer",
		"volume":  500,
		"alcohol": 6.0,
		"packing": "CAN",
	})
	require.Equal(t, http.StatusNoContent, w.Code)
}
