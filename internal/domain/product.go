package domain

import "strings"

// LowStockThreshold is the stock level below which a product is flagged as running low.
const LowStockThreshold = 5

type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryTablet     Category = "Tablet"
	CategoryAccessory  Category = "Accessory"
	CategoryWearable   Category = "Wearable"
)

var categories = []Category{
	CategorySmartphone,
	CategoryTablet,
	CategoryAccessory,
	CategoryWearable,
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range categories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, true
		}
	}
	return "", false
}

func (c Category) String() string {
	return string(c)
}

type Specs struct {
	Screen  string `json:"screen"`
	RAM     string `json:"ram"`
	Battery string `json:"battery"`
	Storage string `json:"storage"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    Category `json:"category"`
	Price       Money    `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Stock       int      `json:"stock"`
	Specs       Specs    `json:"specs"`
	Rating      float64  `json:"rating"`
}

// IsLowStock is derived from the current stock on every call.
func (p Product) IsLowStock() bool {
	return p.Stock < LowStockThreshold
}
