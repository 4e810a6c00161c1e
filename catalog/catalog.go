package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the catalog has no product or category with that id.
	ErrNotFound = errors.New("catalog: not found")
	// ErrUpstream means the backing catalog API could not be reached or
	// answered with a server error.
	ErrUpstream = errors.New("catalog: upstream unavailable")
)

type Product struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Category pairs the normalized id used in URLs with a display name.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Provider is the source of product and category data. The in-memory and
// remote-proxy implementations are swappable behind this contract.
type Provider interface {
	ListCategories() ([]Category, error)
	ListByCategory(categoryID string) ([]Product, error)
	GetProduct(productID uint) (Product, error)
}

// Slugify normalizes a category name into its URL id: lowercase, apostrophes
// stripped, spaces replaced with underscores. Slugifying an already-slugged
// id is a no-op.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "'", "")
	return strings.ReplaceAll(s, " ", "_")
}
