package dto

// ProductRequest describes catalog create/update payload.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    *int64  `json:"quantity"`
	Image       string  `json:"image"`
}

// ProductResponse describes a catalog entry.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Quantity    *int64  `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}
