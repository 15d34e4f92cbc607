package handler

import "time"

type createProductRequest struct {
	Name string `json:"name" validate:"required"`
	// Price is a pointer so an absent field is distinguishable from an
	// explicit 0: missing fails required, zero is a legal price.
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

// productResponse is the transport shape of a catalog entry, kept separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
