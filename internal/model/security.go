package model

import "time"

// SecurityBar is one OHLC row from the price-series database, one per
// (security_name, date) upstream.
type SecurityBar struct {
	SecurityName string
	Date         time.Time
	Open         float64
	High         float64
	Low          float64
	Close        float64
	Volume       int64
}
