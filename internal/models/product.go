package models

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Content    []Product `json:"content"`
	TotalPages int       `json:"totalPages"`
}
