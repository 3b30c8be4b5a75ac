package cart

import (
	"encoding/json"
	"testing"

	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fakeProduct(t *testing.T, price int64) domain.Product {
	t.Helper()
	return domain.Product{
		ID:       gofakeit.UUID(),
		Name:     gofakeit.ProductName(),
		Brand:    gofakeit.Company(),
		Category: domain.CategorySmartphone,
		Price:    domain.USDFromInt(price),
		Image:    gofakeit.URL(),
		Stock:    gofakeit.IntRange(0, 50),
		Rating:   4.5,
	}
}

func TestAdd_AccumulatesIntoOneLine(t *testing.T) {
	for range 20 {
		c := New()
		p := fakeProduct(t, 10)
		n := gofakeit.IntRange(1, 40)

		for range n {
			c.Add(p)
		}

		require.Equal(t, 1, c.Len())
		line, ok := c.Line(p.ID)
		require.True(t, ok)
		assert.Equal(t, n, line.Quantity)
		assert.Equal(t, n, c.Count())
	}
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	c := New()
	a, b, d := fakeProduct(t, 1), fakeProduct(t, 2), fakeProduct(t, 3)

	c.Add(a)
	c.Add(b)
	c.Add(a)
	c.Add(d)

	var got []string
	for _, l := range c.Lines() {
		got = append(got, l.ProductID)
	}
	assert.Equal(t, []string{a.ID, b.ID, d.ID}, got)
}

func TestAdd_SnapshotsPrice(t *testing.T) {
	c := New()
	p := fakeProduct(t, 1199)
	c.Add(p)

	p.Price = domain.USDFromInt(1)
	p.Name = "renamed"
	c.Add(p)

	line, ok := c.Line(p.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "$1199.00", line.Price.String())
	assert.NotEqual(t, "renamed", line.Name)
}

func TestUpdateQuantity_NeverBelowOne(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{name: "increment", start: 1, delta: 1, want: 2},
		{name: "decrement", start: 3, delta: -1, want: 2},
		{name: "decrement at floor", start: 1, delta: -1, want: 1},
		{name: "large negative", start: 5, delta: -1000, want: 1},
		{name: "zero delta", start: 4, delta: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			p := fakeProduct(t, 10)
			for range tt.start {
				c.Add(p)
			}

			c.UpdateQuantity(p.ID, tt.delta)

			line, ok := c.Line(p.ID)
			require.True(t, ok)
			assert.Equal(t, tt.want, line.Quantity)
		})
	}
}

func TestUpdateQuantity_RandomDeltas(t *testing.T) {
	c := New()
	p := fakeProduct(t, 10)
	c.Add(p)

	for range 200 {
		c.UpdateQuantity(p.ID, gofakeit.IntRange(-50, 50))
		line, ok := c.Line(p.ID)
		require.True(t, ok)
		require.GreaterOrEqual(t, line.Quantity, 1)
	}
}

func TestUnknownProduct_NoOp(t *testing.T) {
	c := New()
	p := fakeProduct(t, 10)
	c.Add(p)
	before := c.Lines()

	c.UpdateQuantity("missing", 5)
	c.Remove("missing")

	assert.Empty(t, cmp.Diff(before, c.Lines(), cmp.Comparer(func(a, b domain.Money) bool { return a.Equal(b) })))
}

func TestRemoveThenAdd_ResetsQuantity(t *testing.T) {
	c := New()
	p := fakeProduct(t, 10)
	c.Add(p)
	c.Add(p)
	c.Add(p)

	c.Remove(p.ID)
	assert.True(t, c.IsEmpty())

	c.Add(p)
	line, ok := c.Line(p.ID)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
}

func TestClear(t *testing.T) {
	c := New()
	for range 5 {
		c.Add(fakeProduct(t, 10))
	}

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Count())
	assert.True(t, c.Totals().Subtotal.IsZero())
}

func TestTotals_Examples(t *testing.T) {
	t.Run("free shipping above threshold", func(t *testing.T) {
		c := New()
		phone := fakeProduct(t, 1199)
		headphones := fakeProduct(t, 349)
		c.Add(phone)
		c.Add(headphones)
		c.Add(headphones)

		totals := c.Totals()
		assert.Equal(t, "$1897.00", totals.Subtotal.String())
		assert.Equal(t, "$0.00", totals.Shipping.String())
		assert.Equal(t, "$151.76", totals.Tax.String())
		assert.Equal(t, "$2048.76", totals.Total.String())
	})

	t.Run("flat shipping", func(t *testing.T) {
		c := New()
		c.Add(fakeProduct(t, 100))

		totals := c.Totals()
		assert.Equal(t, "$100.00", totals.Subtotal.String())
		assert.Equal(t, "$25.00", totals.Shipping.String())
		assert.Equal(t, "$8.00", totals.Tax.String())
		assert.Equal(t, "$133.00", totals.Total.String())
	})
}

func TestTotals_RecomputedOnRead(t *testing.T) {
	c := New()
	p := fakeProduct(t, 600)
	c.Add(p)
	assert.False(t, c.Totals().FreeShipping())

	c.UpdateQuantity(p.ID, 1)
	assert.True(t, c.Totals().FreeShipping())

	c.UpdateQuantity(p.ID, -1)
	assert.False(t, c.Totals().FreeShipping())
}

func TestTotals_Invariants(t *testing.T) {
	for range 100 {
		c := New()
		for range gofakeit.IntRange(0, 6) {
			p := fakeProduct(t, int64(gofakeit.IntRange(0, 1500)))
			for range gofakeit.IntRange(1, 4) {
				c.Add(p)
			}
		}

		totals := c.Totals()
		assert.Equal(t, totals.Subtotal.GreaterThan(domain.FreeShippingThreshold), totals.Shipping.IsZero())
		assert.True(t, totals.Tax.Equal(totals.Subtotal.MulRate(domain.TaxRate).RoundCents()))
		assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Shipping).Add(totals.Tax)))
	}
}

func TestJSON_Normalizes(t *testing.T) {
	data := []byte(`{"lines":[
		{"product_id":"1","name":"iPhone 15 Pro Max","price":{"amount":"1199","currency":"USD"},"quantity":2},
		{"product_id":"4","name":"Sony WH-1000XM5","price":{"amount":"349","currency":"USD"},"quantity":0},
		{"product_id":"1","name":"iPhone 15 Pro Max","price":{"amount":"1199","currency":"USD"},"quantity":1}
	]}`)

	c := New()
	require.NoError(t, json.Unmarshal(data, c))

	require.Equal(t, 2, c.Len())
	iphone, _ := c.Line("1")
	sony, _ := c.Line("4")
	assert.Equal(t, 3, iphone.Quantity)
	assert.Equal(t, 1, sony.Quantity)

	out, err := json.Marshal(c)
	require.NoError(t, err)

	restored := New()
	require.NoError(t, json.Unmarshal(out, restored))
	assert.Equal(t, c.Count(), restored.Count())
	assert.True(t, c.Totals().Total.Equal(restored.Totals().Total))
}

func TestJSON_EmptyCart(t *testing.T) {
	out, err := json.Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, `{"lines":[]}`, string(out))
}
