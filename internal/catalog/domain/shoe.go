package domain

import "errors"

var ErrShoeNotFound = errors.New("shoe not found")

// Shoe is a single catalog listing. Field names follow the persisted
// store document; ids are assigned externally at seed time.
type Shoe struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes,omitempty"`
	IsSoldOut   bool     `json:"isSoldOut"`
	IsFeatured  bool     `json:"isFeatured,omitempty"`
}
