package handler

type NewsItemResponse struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Published   *string `json:"published"`
}

// NewsFeedResponse is the envelope for the paginated news list; Total
// always reflects the full filtered set, not the current page.
type NewsFeedResponse struct {
	Total int                `json:"total"`
	Items []NewsItemResponse `json:"items"`
}

type SourceCountResponse struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type SecurityCountResponse struct {
	SecurityName string `json:"security_name"`
	Count        int    `json:"count"`
}

type SentimentResponse struct {
	SecurityName     string   `json:"security_name"`
	Source           string   `json:"source"`
	Date             string   `json:"date"`
	PredictShortTerm *float64 `json:"predict_short_term"`
	PredictMidTerm   *float64 `json:"predict_mid_term"`
	PredictLongTerm  *float64 `json:"predict_long_term"`
}

type SecurityBarResponse struct {
	SecurityName string  `json:"security_name"`
	Date         string  `json:"date"`
	Open         float64 `json:"open"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	Close        float64 `json:"close"`
	Volume       int64   `json:"volume"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
