package handler

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/com2u/CryptoRRSView/internal/model"
	"github.com/gin-gonic/gin"
)

type NewsStore interface {
	List(sources, order string, page, limit int) ([]model.NewsItem, error)
	Count(sources string) (int, error)
	SourceCounts() ([]model.SourceCount, error)
}

type NewsHandler struct {
	repository NewsStore
}

func NewNewsHandler(repository NewsStore) *NewsHandler {
	return &NewsHandler{repository: repository}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	page := getQueryPage(c)
	limit := getQueryLimit(c)
	sources := c.Query("sources")
	order := c.DefaultQuery("order", "desc")

	total, err := h.repository.Count(sources)
	if err != nil {
		internalError(c, "/api/news", err)
		return
	}

	items, err := h.repository.List(sources, order, page, limit)
	if err != nil {
		internalError(c, "/api/news", err)
		return
	}

	itemRes := []NewsItemResponse{}
	for _, n := range items {
		itemRes = append(itemRes, NewsItemResponse{
			ID:          n.ID,
			Source:      n.Source,
			Title:       n.Title,
			Description: n.Description,
			Link:        n.Link,
			Published:   formatTimestamp(n.FetchedAt),
		})
	}

	c.JSON(http.StatusOK, NewsFeedResponse{
		Total: total,
		Items: itemRes,
	})
}

func (h *NewsHandler) GetSources(c *gin.Context) {
	counts, err := h.repository.SourceCounts()
	if err != nil {
		internalError(c, "/api/sources", err)
		return
	}

	res := []SourceCountResponse{}
	for _, s := range counts {
		res = append(res, SourceCountResponse{Source: s.Source, Count: s.Count})
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.Count("")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// internalError converts any handler failure into the 500 envelope the
// frontend keys off; nothing propagates past the handler boundary.
func internalError(c *gin.Context, route string, err error) {
	slog.Error("request failed", "route", route, "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryPage(c *gin.Context) int {
	const defaultPage = 1

	page := getQueryInt("page", defaultPage, c)
	if page < 1 {
		slog.Warn("invalid query parameter, using default", "param", "page", "value", page, "default", defaultPage)
		return defaultPage
	}
	return page
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

// formatTimestamp maps a nullable fetch timestamp to the RFC3339 string
// served as "published", or nil when the row carries no usable value.
func formatTimestamp(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.UTC().Format(time.RFC3339)
	return &s
}
