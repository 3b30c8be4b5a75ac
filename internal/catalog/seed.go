package catalog

import "github.com/Chahethsen12/MobiTech-Elite/internal/domain"

// SeedProducts returns the sample catalog the storefront starts with.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro Max",
			Brand:       "Apple",
			Category:    domain.CategorySmartphone,
			Price:       domain.USDFromInt(1199),
			Description: "The ultimate iPhone with Titanium design and A17 Pro chip.",
			Image:       "https://picsum.photos/seed/iphone15/400/300",
			Stock:       12,
			Specs:       domain.Specs{Screen: `6.7" OLED`, RAM: "8GB", Battery: "4441mAh", Storage: "256GB"},
			Rating:      4.9,
		},
		{
			ID:          "2",
			Name:        "Samsung Galaxy S24 Ultra",
			Brand:       "Samsung",
			Category:    domain.CategorySmartphone,
			Price:       domain.USDFromInt(1299),
			Description: "Galaxy AI is here. Experience the ultimate Android flagship.",
			Image:       "https://picsum.photos/seed/s24u/400/300",
			Stock:       8,
			Specs:       domain.Specs{Screen: `6.8" AMOLED`, RAM: "12GB", Battery: "5000mAh", Storage: "512GB"},
			Rating:      4.8,
		},
		{
			ID:          "3",
			Name:        "Google Pixel 8 Pro",
			Brand:       "Google",
			Category:    domain.CategorySmartphone,
			Price:       domain.USDFromInt(999),
			Description: "The best camera in any smartphone, powered by Google AI.",
			Image:       "https://picsum.photos/seed/p8p/400/300",
			Stock:       15,
			Specs:       domain.Specs{Screen: `6.7" LTPO`, RAM: "12GB", Battery: "5050mAh", Storage: "128GB"},
			Rating:      4.7,
		},
		{
			ID:          "4",
			Name:        "Sony WH-1000XM5",
			Brand:       "Sony",
			Category:    domain.CategoryAccessory,
			Price:       domain.USDFromInt(349),
			Description: "Industry-leading noise cancellation for premium audio.",
			Image:       "https://picsum.photos/seed/sony/400/300",
			Stock:       20,
			Specs:       domain.Specs{Screen: "N/A", RAM: "N/A", Battery: "30h", Storage: "N/A"},
			Rating:      4.9,
		},
		{
			ID:          "5",
			Name:        "iPad Pro M2",
			Brand:       "Apple",
			Category:    domain.CategoryTablet,
			Price:       domain.USDFromInt(1099),
			Description: "Performance beyond limits with the M2 chip.",
			Image:       "https://picsum.photos/seed/ipad/400/300",
			Stock:       5,
			Specs:       domain.Specs{Screen: `12.9" Liquid Retina`, RAM: "16GB", Battery: "10758mAh", Storage: "1TB"},
			Rating:      4.9,
		},
		{
			ID:          "6",
			Name:        "Nothing Phone (2)",
			Brand:       "Nothing",
			Category:    domain.CategorySmartphone,
			Price:       domain.USDFromInt(599),
			Description: "The unique Glyph Interface meets premium hardware.",
			Image:       "https://picsum.photos/seed/nothing/400/300",
			Stock:       10,
			Specs:       domain.Specs{Screen: `6.7" OLED`, RAM: "12GB", Battery: "4700mAh", Storage: "256GB"},
			Rating:      4.5,
		},
	}
}
