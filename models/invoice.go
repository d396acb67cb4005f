package models

import "time"

// Invoice records a rendered PDF artifact on disk. Created once at checkout,
// never mutated; cleanup of old files is a manual concern.
type Invoice struct {
	FileName    string      `json:"fileName"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
}
