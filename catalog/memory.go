package catalog

import (
	"strings"
	"unicode"
)

// MemoryProvider serves a fixed product list. The slice is populated once at
// package init and never mutated, so concurrent reads are safe.
type MemoryProvider struct{}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{}
}

func (m *MemoryProvider) ListCategories() ([]Category, error) {
	seen := make(map[string]bool)
	out := make([]Category, 0, 4)
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, Category{ID: Slugify(p.Category), Name: titleCase(p.Category)})
	}
	return out, nil
}

// ListByCategory returns every product whose category normalizes to the given
// id. Unknown categories yield an empty slice, not an error.
func (m *MemoryProvider) ListByCategory(categoryID string) ([]Product, error) {
	want := Slugify(categoryID)
	out := []Product{}
	for _, p := range products {
		if Slugify(p.Category) == want {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryProvider) GetProduct(productID uint) (Product, error) {
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

var products = []Product{
	// Electronics
	{
		ID:          1,
		Title:       "WD 2TB Elements Portable External Hard Drive - USB 3.0",
		Price:       64.00,
		Description: "USB 3.0 and USB 2.0 compatibility. Fast data transfers and high capacity.",
		Category:    "electronics",
		Image:       "/images/electronics-1.png",
	},
	{
		ID:          2,
		Title:       "SanDisk SSD PLUS 1TB Internal SSD - SATA III 6 Gb/s",
		Price:       109.00,
		Description: "Easy upgrade for faster boot-up, shutdown, and application response.",
		Category:    "electronics",
		Image:       "/images/electronics-2.png",
	},
	{
		ID:          3,
		Title:       "Silicon Power 256GB SSD 3D NAND A55",
		Price:       109.00,
		Description: "High transfer speeds and reliable performance.",
		Category:    "electronics",
		Image:       "/images/electronics-3.png",
	},
	{
		ID:          4,
		Title:       "WD 4TB Gaming Drive Works with Playstation 4",
		Price:       114.00,
		Description: "Expand your PS4 gaming experience with high-capacity storage.",
		Category:    "electronics",
		Image:       "/images/electronics-4.png",
	},
	{
		ID:          5,
		Title:       "Acer SB220Q 21.5-inch Full HD Monitor",
		Price:       599.00,
		Description: "IPS display, ultra-thin design, great for work and play.",
		Category:    "electronics",
		Image:       "/images/electronics-5.png",
	},
	{
		ID:          6,
		Title:       "Samsung 49-Inch CHG90 144Hz Ultrawide Gaming Monitor",
		Price:       999.99,
		Description: "Super ultrawide QLED gaming monitor with immersive performance.",
		Category:    "electronics",
		Image:       "/images/electronics-6.png",
	},

	// Jewelery
	{
		ID:          7,
		Title:       "John Hardy Women's Legends Naga Gold & Silver Dragon Bracelet",
		Price:       695.00,
		Description: "Inspired by the mythical water dragon, symbol of protection.",
		Category:    "jewelery",
		Image:       "/images/jewelery-1.png",
	},
	{
		ID:          8,
		Title:       "Solid Gold Petite Micropave Ring",
		Price:       168.00,
		Description: "Classic, elegant design with brilliant finish.",
		Category:    "jewelery",
		Image:       "/images/jewelery-2.png",
	},
	{
		ID:          9,
		Title:       "White Gold Plated Princess Ring",
		Price:       9.99,
		Description: "Engagement-style solitaire ring at an affordable price.",
		Category:    "jewelery",
		Image:       "/images/jewelery-3.png",
	},
	{
		ID:          10,
		Title:       "Pierced Owl Rose Gold Stainless Steel Earrings",
		Price:       10.99,
		Description: "Rose gold-plated stainless steel double flare plugs.",
		Category:    "jewelery",
		Image:       "/images/jewelery-4.png",
	},

	// Men's clothing
	{
		ID:          11,
		Title:       "Fjallraven - Foldpack No.1 Backpack",
		Price:       109.95,
		Description: "Perfect for everyday carry with a stylish and durable build.",
		Category:    "men's clothing",
		Image:       "/images/mens-1.png",
	},
	{
		ID:          12,
		Title:       "Men's Casual Premium Slim Fit T-Shirt",
		Price:       22.30,
		Description: "Slim-fit style with soft, comfortable fabric.",
		Category:    "men's clothing",
		Image:       "/images/mens-2.png",
	},
	{
		ID:          13,
		Title:       "Men's Cotton Jacket",
		Price:       55.99,
		Description: "Great outerwear jacket for versatile outdoor use.",
		Category:    "men's clothing",
		Image:       "/images/mens-3.png",
	},
	{
		ID:          14,
		Title:       "Men's Casual Slim Fit Long Sleeve",
		Price:       15.99,
		Description: "Soft and warm, ideal for cooler weather.",
		Category:    "men's clothing",
		Image:       "/images/mens-4.png",
	},

	// Women's clothing
	{
		ID:          15,
		Title:       "BIYLACLESEN Women's 3-in-1 Snowboard Jacket",
		Price:       56.99,
		Description: "Warm, waterproof jacket suitable for winter sports.",
		Category:    "women's clothing",
		Image:       "/images/womens-1.png",
	},
	{
		ID:          16,
		Title:       "Lock and Love Women's Faux Leather Moto Jacket",
		Price:       29.95,
		Description: "Faux leather moto jacket with removable hood.",
		Category:    "women's clothing",
		Image:       "/images/womens-2.png",
	},
	{
		ID:          17,
		Title:       "Women's Windbreaker Raincoat",
		Price:       39.99,
		Description: "Lightweight rain jacket perfect for outdoor activities.",
		Category:    "women's clothing",
		Image:       "/images/womens-3.png",
	},
	{
		ID:          18,
		Title:       "MBJ Women's Solid Short Sleeve Boat Neck Tee",
		Price:       9.85,
		Description: "Soft and breathable everyday top.",
		Category:    "women's clothing",
		Image:       "/images/womens-4.png",
	},
	{
		ID:          19,
		Title:       "Opna Women's Short Sleeve Moisture-Wicking Shirt",
		Price:       7.95,
		Description: "Moisture-wicking interlock fabric great for workouts.",
		Category:    "women's clothing",
		Image:       "/images/womens-5.png",
	},
	{
		ID:          20,
		Title:       "DANVOUY Women's T-Shirt Casual Cotton Top",
		Price:       12.99,
		Description: "Soft cotton t-shirt with a flattering fit.",
		Category:    "women's clothing",
		Image:       "/images/womens-6.png",
	},
}
