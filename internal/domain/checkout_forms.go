package domain

import "strings"

type ShippingForm struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// MissingFields lists required fields that are blank. Presence only: no
// format or address verification.
func (f ShippingForm) MissingFields() []string {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"postal_code", f.PostalCode},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// PaymentForm is never checked against a payment network.
type PaymentForm struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

func (f PaymentForm) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(f.CardNumber) == "" {
		missing = append(missing, "card_number")
	}
	if strings.TrimSpace(f.Expiry) == "" {
		missing = append(missing, "expiry")
	}
	if strings.TrimSpace(f.CVV) == "" {
		missing = append(missing, "cvv")
	}
	return missing
}

// MaskedCardNumber replaces every digit except the last four with '*'.
func (f PaymentForm) MaskedCardNumber() string {
	card := strings.TrimSpace(f.CardNumber)
	digits := 0
	for _, r := range card {
		if r >= '0' && r <= '9' {
			digits++
		}
	}

	var b strings.Builder
	seen := 0
	for _, r := range card {
		if r >= '0' && r <= '9' {
			seen++
			if digits-seen >= 4 {
				b.WriteRune('*')
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
