package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/com2u/CryptoRRSView/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeSentimentStore struct {
	records        []model.SentimentRecord
	sourceCounts   []model.SourceCount
	securityCounts []model.SecurityCount
	err            error

	gotStart      string
	gotEnd        string
	gotSources    string
	gotSecurities string
}

func (f *fakeSentimentStore) List(start, end, sources, securities string) ([]model.SentimentRecord, error) {
	f.gotStart = start
	f.gotEnd = end
	f.gotSources = sources
	f.gotSecurities = securities
	return f.records, f.err
}

func (f *fakeSentimentStore) SourceCounts() ([]model.SourceCount, error) {
	return f.sourceCounts, f.err
}

func (f *fakeSentimentStore) SecurityCounts() ([]model.SecurityCount, error) {
	return f.securityCounts, f.err
}

func newSentimentTestRouter(store SentimentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSentimentHandler(store)
	r.GET("/api/sentiment", h.GetSentiment)
	r.GET("/api/sentiment/sources", h.GetSentimentSources)
	r.GET("/api/sentiment/securities", h.GetSentimentSecurities)
	return r
}

func TestGetSentiment_ReturnsRecords(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	store := &fakeSentimentStore{
		records: []model.SentimentRecord{
			{
				SecurityName:     "BTC",
				Source:           "reuters",
				Date:             date,
				PredictShortTerm: sql.NullFloat64{Float64: 0.8, Valid: true},
			},
		},
	}
	r := newSentimentTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sentiment", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []SentimentResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "BTC", res[0].SecurityName)
	assert.Equal(t, "2024-03-01T00:00:00Z", res[0].Date)
	assert.Equal(t, 0.8, *res[0].PredictShortTerm)
	if res[0].PredictMidTerm != nil {
		t.Errorf("expected null mid-term prediction, got %v", *res[0].PredictMidTerm)
	}
}

func TestGetSentiment_PassesFilters(t *testing.T) {
	store := &fakeSentimentStore{}
	r := newSentimentTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sentiment?start=2024-01-01&end=2024-02-01&sources=reuters&securities=BTC,ETH", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, "2024-01-01", store.gotStart)
	assert.Equal(t, "2024-02-01", store.gotEnd)
	assert.Equal(t, "reuters", store.gotSources)
	assert.Equal(t, "BTC,ETH", store.gotSecurities)
}

func TestGetSentiment_EmptyResultEncodesArray(t *testing.T) {
	store := &fakeSentimentStore{}
	r := newSentimentTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sentiment", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetSentiment_DBError(t *testing.T) {
	store := &fakeSentimentStore{err: errors.New("DB down")}
	r := newSentimentTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sentiment", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Internal server error", res.Error)
}

func TestGetSentimentSources_ReturnsCounts(t *testing.T) {
	store := &fakeSentimentStore{
		sourceCounts: []model.SourceCount{
			{Source: "reuters", Count: 40},
			{Source: "coindesk", Count: 15},
		},
	}
	r := newSentimentTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sentiment/sources", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []SourceCountResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, len(res))
	assert.Equal(t, 40, res[0].Count)
}

func TestGetSentimentSecurities_ReturnsCounts(t *testing.T) {
	store := &fakeSentimentStore{
		securityCounts: []model.SecurityCount{
			{SecurityName: "BTC", Count: 30},
		},
	}
	r := newSentimentTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sentiment/securities", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []SecurityCountResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res))
	assert.Equal(t, "BTC", res[0].SecurityName)
	assert.Equal(t, 30, res[0].Count)
}

func TestGetSentimentSummaries_DBError(t *testing.T) {
	store := &fakeSentimentStore{err: errors.New("DB down")}
	r := newSentimentTestRouter(store)

	for _, path := range []string{"/api/sentiment/sources", "/api/sentiment/securities"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}
}
