package model

import "time"

// Product represents a grocery product in the catalogue. Optional
// columns are pointers so absent values serialise as omitted fields,
// matching the storefront's camelCase projection.
type Product struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   string    `json:"description" db:"description"`
	Price         float64   `json:"price" db:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" db:"original_price"`
	Image         string    `json:"image" db:"image"`
	Category      string    `json:"category" db:"category"`
	Brand         string    `json:"brand" db:"brand"`
	Rating        *float64  `json:"rating,omitempty" db:"rating"`
	ReviewCount   int       `json:"reviewCount" db:"review_count"`
	Tag           *string   `json:"tag,omitempty" db:"tag"`
	Weight        *string   `json:"weight,omitempty" db:"weight"`
	Flavour       *string   `json:"flavour,omitempty" db:"flavour"`
	DietType      *string   `json:"dietType,omitempty" db:"diet_type"`
	Speciality    *string   `json:"speciality,omitempty" db:"speciality"`
	Info          *string   `json:"info,omitempty" db:"info"`
	Items         int       `json:"items" db:"items"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
}

// Product tags form a small fixed set.
const (
	TagSale = "Sale"
	TagNew  = "New"
	TagHot  = "Hot"
)
