package domain

import "time"

const (
	EstimatedDelivery        = "3-5 Business Days"
	ShipmentStatusProcessing = "Processing"
)

// OrderConfirmation is the read-only projection shown once checkout reaches
// success. Totals and lines are captured before the cart is cleared.
type OrderConfirmation struct {
	OrderID           string     `json:"order_id"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	Lines             []CartLine `json:"lines"`
	Totals            Totals     `json:"totals"`
	MaskedCardNumber  string     `json:"masked_card_number"`
	EstimatedDelivery string     `json:"estimated_delivery"`
	ShipmentStatus    string     `json:"shipment_status"`
	PlacedAt          time.Time  `json:"placed_at"`
}
