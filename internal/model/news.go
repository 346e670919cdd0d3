package model

import "database/sql"

// NewsItem is one RSS headline row from the news database. FetchedAt is
// the sole sort key and is exposed to clients as "published".
type NewsItem struct {
	ID          int64
	Source      string
	Title       string
	Description string
	FetchedAt   sql.NullTime
	Link        string
}

// SourceCount is the per-source row count aggregate, computed per
// request and never persisted.
type SourceCount struct {
	Source string
	Count  int
}
