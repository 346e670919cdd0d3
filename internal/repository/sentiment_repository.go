package repository

import (
	"database/sql"
	"fmt"

	"github.com/com2u/CryptoRRSView/internal/model"
	"github.com/com2u/CryptoRRSView/internal/query"
)

// sentimentListCap bounds /api/sentiment result size regardless of
// filters; the endpoint has no pagination.
const sentimentListCap = 500

type SentimentRepository struct {
	db *sql.DB
}

func NewSentimentRepository(db *sql.DB) *SentimentRepository {
	return &SentimentRepository{db: db}
}

// EnsureTable creates the sentiment table if it does not exist. Runs
// once at startup; safe to repeat.
func (r *SentimentRepository) EnsureTable() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS sentiment (
			security_name VARCHAR(50) NOT NULL,
			source TEXT NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			predict_short_term NUMERIC,
			predict_mid_term NUMERIC,
			predict_long_term NUMERIC,
			PRIMARY KEY (security_name, source, date)
		)
	`)
	return err
}

// List returns sentiment records under the given optional filters,
// newest first, capped at sentimentListCap rows.
func (r *SentimentRepository) List(start, end, sources, securities string) ([]model.SentimentRecord, error) {
	var b query.Builder
	b.AtLeast("date", start)
	b.AtMost("date", end)
	b.In("source", sources)
	b.In("security_name", securities)

	q := "SELECT security_name, source, date, predict_short_term, predict_mid_term, predict_long_term FROM sentiment" +
		b.Where() + fmt.Sprintf(" ORDER BY date DESC LIMIT %d", sentimentListCap)

	rows, err := r.db.Query(q, b.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.SentimentRecord{}
	for rows.Next() {
		var s model.SentimentRecord
		err := rows.Scan(&s.SecurityName, &s.Source, &s.Date,
			&s.PredictShortTerm, &s.PredictMidTerm, &s.PredictLongTerm)
		if err != nil {
			return nil, err
		}
		records = append(records, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// SourceCounts returns one row per distinct source, descending by count.
func (r *SentimentRepository) SourceCounts() ([]model.SourceCount, error) {
	rows, err := r.db.Query(`
		SELECT source, COUNT(*) as count
		FROM sentiment
		GROUP BY source
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []model.SourceCount{}
	for rows.Next() {
		var c model.SourceCount
		if err := rows.Scan(&c.Source, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// SecurityCounts returns one row per distinct security, descending by
// count.
func (r *SentimentRepository) SecurityCounts() ([]model.SecurityCount, error) {
	rows, err := r.db.Query(`
		SELECT security_name, COUNT(*) as count
		FROM sentiment
		GROUP BY security_name
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []model.SecurityCount{}
	for rows.Next() {
		var c model.SecurityCount
		if err := rows.Scan(&c.SecurityName, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// Total is a startup diagnostic; serving does not depend on it.
func (r *SentimentRepository) Total() (int, error) {
	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM sentiment").Scan(&total)
	return total, err
}
