package handler

import (
	"net/http"
	"time"

	"github.com/com2u/CryptoRRSView/internal/model"
	"github.com/gin-gonic/gin"
)

type SecurityStore interface {
	Series(name string) ([]model.SecurityBar, error)
}

type SecurityHandler struct {
	repository SecurityStore
}

func NewSecurityHandler(repository SecurityStore) *SecurityHandler {
	return &SecurityHandler{repository: repository}
}

// GetSecuritySeries serves the full ascending OHLC series for one
// security. An unknown name returns 200 with an empty array.
func (h *SecurityHandler) GetSecuritySeries(c *gin.Context) {
	name := c.Param("name")

	bars, err := h.repository.Series(name)
	if err != nil {
		internalError(c, "/api/securities", err)
		return
	}

	res := []SecurityBarResponse{}
	for _, b := range bars {
		res = append(res, SecurityBarResponse{
			SecurityName: b.SecurityName,
			Date:         b.Date.UTC().Format(time.RFC3339),
			Open:         b.Open,
			High:         b.High,
			Low:          b.Low,
			Close:        b.Close,
			Volume:       b.Volume,
		})
	}

	c.JSON(http.StatusOK, res)
}
