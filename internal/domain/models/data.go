package models

// ArbitraryData is an opaque blob stored under a well-known key.
type ArbitraryData struct {
	ID    string `gorm:"primaryKey"`
	Value []byte
}
