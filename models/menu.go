package models

// MenuItem is a sellable item on the café menu. The catalog is the sole
// writer; items are created and updated by admin requests and never deleted.
type MenuItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"` // stored file name, empty when no image was uploaded
}
