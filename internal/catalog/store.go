package catalog

import (
	"errors"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
)

// Common errors returned by the store
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidSort      = errors.New("invalid sort order")
	ErrInvalidCategory  = errors.New("invalid category")
)

// Store defines the catalog operations the storefront depends on
type Store interface {
	// List returns products matching the query, ordered as requested
	List(q Query) ([]domain.Product, error)

	// Get returns a single product by id
	Get(productID string) (domain.Product, error)

	// UpdateStock sets stock to max(0, newStock) and returns the updated product
	UpdateStock(productID string, newStock int) (domain.Product, error)

	// AdjustStock adds delta to the current stock, clamped at zero
	AdjustStock(productID string, delta int) (domain.Product, error)

	// LowStock returns products whose current stock is below the low-stock threshold
	LowStock() []domain.Product
}
