package repository

import (
	"database/sql"

	"github.com/com2u/CryptoRRSView/internal/model"
)

type SecurityRepository struct {
	db *sql.DB
}

func NewSecurityRepository(db *sql.DB) *SecurityRepository {
	return &SecurityRepository{db: db}
}

// Series returns the full OHLC series for one security, ascending by
// date for charting. An unknown name yields an empty series, not an
// error.
func (r *SecurityRepository) Series(name string) ([]model.SecurityBar, error) {
	rows, err := r.db.Query(`
		SELECT security_name, date, open, high, low, close, volume
		FROM securities
		WHERE security_name = $1
		ORDER BY date ASC
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bars := []model.SecurityBar{}
	for rows.Next() {
		var b model.SecurityBar
		err := rows.Scan(&b.SecurityName, &b.Date, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bars, nil
}

// Total is a startup diagnostic; serving does not depend on it.
func (r *SecurityRepository) Total() (int, error) {
	var total int
	err := r.db.QueryRow("SELECT COUNT(*) FROM securities").Scan(&total)
	return total, err
}
