package domain

// Product is a catalog entry owned by a farmer account. Created and edited
// only through the farmer dashboard; listed read-only to consumers.
type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}
