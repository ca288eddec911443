package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	resolvemodels "github.com/redade943-code/FabiansWelt/internal/models/resolve_country"
)

func resolveRequest(t *testing.T, router *gin.Engine, payload string) (*httptest.ResponseRecorder, resolvemodels.ResolveCountryResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/countries/resolve", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp resolvemodels.ResolveCountryResponse
	if w.Code == http.StatusOK {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func newCountryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCountryHandler(zap.NewNop().Sugar())
	router.POST("/api/v1/countries/resolve", h.ResolveCountry)
	return router
}

func TestResolveCountry(t *testing.T) {
	router := newCountryRouter()

	w, resp := resolveRequest(t, router, `{"properties":{"ISO_A2":"US","ADMIN":"United States of America"}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "US", resp.Code)
	assert.Equal(t, "United States of America", resp.Name)
	assert.Equal(t, "\U0001F1FA\U0001F1F8", resp.Flag)
}

func TestResolveCountryFallbacksAndNonStrings(t *testing.T) {
	router := newCountryRouter()

	// Non-string values are ignored; fallback keys kick in.
	w, resp := resolveRequest(t, router, `{"properties":{"ISO_A2":42,"iso_a2":"jp","name":"Japan","POP_EST":125000000}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jp", resp.Code)
	assert.Equal(t, "Japan", resp.Name)
}

func TestResolveCountryEmptyBag(t *testing.T) {
	router := newCountryRouter()

	w, resp := resolveRequest(t, router, `{"properties":{}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", resp.Code)
	assert.Equal(t, "Unbenannt", resp.Name)
	assert.Equal(t, "", resp.Flag)
}

func TestResolveCountryInvalidJSON(t *testing.T) {
	router := newCountryRouter()

	w, _ := resolveRequest(t, router, `{"properties":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
