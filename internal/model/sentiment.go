package model

import (
	"database/sql"
	"time"
)

// SentimentRecord is one prediction row from the sentiment database,
// keyed upstream by (security_name, source, date). Predictions may be
// NULL per horizon.
type SentimentRecord struct {
	SecurityName     string
	Source           string
	Date             time.Time
	PredictShortTerm sql.NullFloat64
	PredictMidTerm   sql.NullFloat64
	PredictLongTerm  sql.NullFloat64
}

// SecurityCount is the per-security sentiment row count aggregate.
type SecurityCount struct {
	SecurityName string
	Count        int
}
