package repository

import (
	"database/sql"

	"github.com/com2u/CryptoRRSView/internal/model"
	"github.com/com2u/CryptoRRSView/internal/query"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// newsFilter builds the shared predicate for List and Count so both
// always see the same filtered set.
func newsFilter(sources string) *query.Builder {
	var b query.Builder
	b.In("source", sources)
	return &b
}

// List returns one page of news items, ordered by fetch timestamp
// (descending unless order is "asc").
func (r *NewsRepository) List(sources, order string, page, limit int) ([]model.NewsItem, error) {
	b := newsFilter(sources)
	limitClause, args := b.Paginate(page, limit)

	q := "SELECT id, source, title, description, fetched_at, link FROM news" +
		b.Where() + query.OrderBy("fetched_at", order) + limitClause

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.NewsItem{}
	for rows.Next() {
		var n model.NewsItem
		err := rows.Scan(&n.ID, &n.Source, &n.Title, &n.Description, &n.FetchedAt, &n.Link)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Count returns the total row count under the same predicate List uses.
func (r *NewsRepository) Count(sources string) (int, error) {
	b := newsFilter(sources)

	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM news"+b.Where(), b.Args()...).Scan(&total)
	return total, err
}

// SourceCounts returns one row per distinct source, ascending by name.
func (r *NewsRepository) SourceCounts() ([]model.SourceCount, error) {
	rows, err := r.db.Query(`
		SELECT source, COUNT(*) as count
		FROM news
		GROUP BY source
		ORDER BY source ASC
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

// Total is a startup diagnostic; serving does not depend on it.
func (r *NewsRepository) Total() (int, error) {
	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM news").Scan(&total)
	return total, err
}
