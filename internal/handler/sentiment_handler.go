package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/com2u/CryptoRRSView/internal/model"
	"github.com/gin-gonic/gin"
)

type SentimentStore interface {
	List(start, end, sources, securities string) ([]model.SentimentRecord, error)
	SourceCounts() ([]model.SourceCount, error)
	SecurityCounts() ([]model.SecurityCount, error)
}

type SentimentHandler struct {
	repository SentimentStore
}

func NewSentimentHandler(repository SentimentStore) *SentimentHandler {
	return &SentimentHandler{repository: repository}
}

// GetSentiment serves the filtered prediction list as a bare array. The
// row cap lives in the repository query; there is no pagination
// metadata on this endpoint.
func (h *SentimentHandler) GetSentiment(c *gin.Context) {
	records, err := h.repository.List(
		c.Query("start"),
		c.Query("end"),
		c.Query("sources"),
		c.Query("securities"),
	)
	if err != nil {
		internalError(c, "/api/sentiment", err)
		return
	}

	res := []SentimentResponse{}
	for _, s := range records {
		res = append(res, SentimentResponse{
			SecurityName:     s.SecurityName,
			Source:           s.Source,
			Date:             s.Date.UTC().Format(time.RFC3339),
			PredictShortTerm: nullableFloat(s.PredictShortTerm),
			PredictMidTerm:   nullableFloat(s.PredictMidTerm),
			PredictLongTerm:  nullableFloat(s.PredictLongTerm),
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *SentimentHandler) GetSentimentSources(c *gin.Context) {
	counts, err := h.repository.SourceCounts()
	if err != nil {
		internalError(c, "/api/sentiment/sources", err)
		return
	}

	res := []SourceCountResponse{}
	for _, s := range counts {
		res = append(res, SourceCountResponse{Source: s.Source, Count: s.Count})
	}

	c.JSON(http.StatusOK, res)
}

func (h *SentimentHandler) GetSentimentSecurities(c *gin.Context) {
	counts, err := h.repository.SecurityCounts()
	if err != nil {
		internalError(c, "/api/sentiment/securities", err)
		return
	}

	res := []SecurityCountResponse{}
	for _, s := range counts {
		res = append(res, SecurityCountResponse{SecurityName: s.SecurityName, Count: s.Count})
	}

	c.JSON(http.StatusOK, res)
}

func nullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
