package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an amount in a single currency. All storefront prices are USD.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func USD(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currency.USD}
}

func USDFromInt(amount int64) Money {
	return USD(decimal.NewFromInt(amount))
}

func ZeroUSD() Money {
	return USD(decimal.Zero)
}

func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.unit()}
}

func (m Money) Times(quantity int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(quantity))), Currency: m.unit()}
}

func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(rate), Currency: m.unit()}
}

// RoundCents rounds half away from zero to two decimal places.
func (m Money) RoundCents() Money {
	return Money{Amount: m.Amount.Round(2), Currency: m.unit()}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) GreaterThan(other Money) bool {
	return m.Amount.GreaterThan(other.Amount)
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.unit() == other.unit()
}

// String formats the amount the way the storefront displays it, e.g. "$2048.76".
func (m Money) String() string {
	if m.unit() == currency.USD {
		return "$" + m.Amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", m.unit(), m.Amount.StringFixed(2))
}

func (m Money) unit() currency.Unit {
	if m.Currency == (currency.Unit{}) {
		return currency.USD
	}
	return m.Currency
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.Amount,
		Currency: m.unit().String(),
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal money: %w", err)
	}

	unit := currency.USD
	if raw.Currency != "" {
		parsed, err := currency.ParseISO(raw.Currency)
		if err != nil {
			return fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
		}
		unit = parsed
	}

	m.Amount = raw.Amount
	m.Currency = unit
	return nil
}
