package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/assistant"
	"github.com/Chahethsen12/MobiTech-Elite/internal/auth"
	"github.com/Chahethsen12/MobiTech-Elite/internal/catalog"
	"github.com/Chahethsen12/MobiTech-Elite/internal/domain"
	"github.com/Chahethsen12/MobiTech-Elite/internal/events"
	"github.com/Chahethsen12/MobiTech-Elite/internal/service"
	"github.com/Chahethsen12/MobiTech-Elite/internal/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, string) (assistant.Answer, error) {
	return assistant.Answer{Text: "The Pixel 8 Pro has the best camera."}, nil
}

type apiClient struct {
	t         *testing.T
	handler   http.Handler
	sessionID string
}

func setupRouter(t *testing.T) *apiClient {
	t.Helper()

	store, err := catalog.NewMemoryStore(catalog.SeedProducts())
	require.NoError(t, err)

	svc := service.NewStorefront(
		store,
		session.NewManager(session.NewMemoryStore(0)),
		auth.New(),
		events.NewLogPublisher(zerolog.Nop()),
		assistant.New(stubGenerator{}, time.Second, zerolog.Nop()),
		zerolog.Nop(),
	)

	handler := NewRouter(svc, zerolog.Nop(), RouterConfig{
		RequestTimeout: 5 * time.Second,
		AssistantRPS:   1,
		AssistantBurst: 2,
	})

	c := &apiClient{t: t, handler: handler}
	rec := c.do(http.MethodPost, "/api/v1/session", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created CreateSessionResponseDTO
	c.decode(rec, &created)
	require.NotEmpty(t, created.SessionID)
	require.Equal(t, created.SessionID, rec.Header().Get(SessionHeader))
	c.sessionID = created.SessionID

	return c
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.sessionID != "" {
		req.Header.Set(SessionHeader, c.sessionID)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

func (c *apiClient) decode(rec *httptest.ResponseRecorder, dst any) {
	c.t.Helper()
	require.NoError(c.t, json.NewDecoder(rec.Body).Decode(dst), rec.Body.String())
}

func (c *apiClient) errorCode(rec *httptest.ResponseRecorder) string {
	c.t.Helper()
	var resp ErrorResponse
	c.decode(rec, &resp)
	return resp.Code
}

func TestHealth(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestProducts(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodGet, "/api/v1/products?category=Smartphone&sort=price-low", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []domain.Product
	c.decode(rec, &products)
	require.Len(t, products, 4)
	assert.Equal(t, "Nothing Phone (2)", products[0].Name)

	rec = c.do(http.MethodGet, "/api/v1/products?q=apple", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &products)
	assert.Len(t, products, 2)

	rec = c.do(http.MethodGet, "/api/v1/products?sort=newest", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_query", c.errorCode(rec))

	rec = c.do(http.MethodGet, "/api/v1/products/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product domain.Product
	c.decode(rec, &product)
	assert.Equal(t, "Google Pixel 8 Pro", product.Name)

	rec = c.do(http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product_not_found", c.errorCode(rec))
}

func TestSessionRequired(t *testing.T) {
	c := setupRouter(t)
	c.sessionID = ""

	rec := c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing_session", c.errorCode(rec))

	c.sessionID = "unknown"
	rec = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session_not_found", c.errorCode(rec))
}

func TestCartEndpoints(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "1"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "4"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do(http.MethodPatch, "/api/v1/cart/items/4", UpdateQuantityRequestDTO{Delta: 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var view service.CartView
	c.decode(rec, &view)
	assert.Equal(t, 3, view.Count)
	assert.Equal(t, "$1897.00", view.Totals.Subtotal.String())
	assert.Equal(t, "$0.00", view.Totals.Shipping.String())
	assert.Equal(t, "$151.76", view.Totals.Tax.String())
	assert.Equal(t, "$2048.76", view.Totals.Total.String())
	assert.True(t, view.FreeShipping)

	rec = c.do(http.MethodPatch, "/api/v1/cart/items/4", UpdateQuantityRequestDTO{Delta: -10})
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &view)
	assert.Equal(t, 2, view.Count)

	rec = c.do(http.MethodDelete, "/api/v1/cart/items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &view)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, "$25.00", view.Totals.Shipping.String())
	assert.Equal(t, "$401.92", view.Totals.Total.String())

	rec = c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "999"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutEndpoints(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodGet, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view service.CheckoutView
	c.decode(rec, &view)
	assert.False(t, view.CanCheckout)

	rec = c.do(http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "empty_cart", c.errorCode(rec))

	rec = c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "2"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &view)
	assert.Equal(t, domain.CheckoutStepShipping, view.Step)

	rec = c.do(http.MethodPost, "/api/v1/checkout/payment", domain.PaymentForm{CardNumber: "4111111111111111", Expiry: "12/28", CVV: "123"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "illegal_transition", c.errorCode(rec))

	rec = c.do(http.MethodPost, "/api/v1/checkout/shipping", domain.ShippingForm{Name: "Alex"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp ErrorResponse
	c.decode(rec, &errResp)
	assert.Equal(t, "validation_failed", errResp.Code)
	assert.Equal(t, "email,phone,address,city,postal_code", errResp.Details)

	shipping := domain.ShippingForm{
		Name:       "Alex Johnson",
		Email:      "alex@example.com",
		Phone:      "555-0100",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
	}
	rec = c.do(http.MethodPost, "/api/v1/checkout/shipping", shipping)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/checkout/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &view)
	assert.Equal(t, domain.CheckoutStepShipping, view.Step)
	assert.Equal(t, shipping, *view.Shipping)

	rec = c.do(http.MethodPost, "/api/v1/checkout/shipping", shipping)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/checkout/payment", domain.PaymentForm{CardNumber: "4111111111111111", Expiry: "12/28", CVV: "123"})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "4111111111111111")
	assert.NotContains(t, body, `"cvv"`)

	var conf domain.OrderConfirmation
	require.NoError(t, json.Unmarshal([]byte(body), &conf))
	assert.Regexp(t, `^MTE-\d+$`, conf.OrderID)
	assert.Equal(t, "$1402.92", conf.Totals.Total.String())
	assert.Equal(t, "************1111", conf.MaskedCardNumber)

	rec = c.do(http.MethodGet, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &view)
	assert.True(t, view.CanCheckout)
	assert.Equal(t, domain.CheckoutStepSuccess, view.Step)
	assert.Equal(t, conf.OrderID, view.Confirmation.OrderID)
	assert.Zero(t, view.Cart.Count)
}

func TestAbandonCheckout(t *testing.T) {
	c := setupRouter(t)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "6"}).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/v1/checkout", nil).Code)

	rec := c.do(http.MethodDelete, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view service.CheckoutView
	c.decode(rec, &view)
	assert.Empty(t, view.Step)
	assert.Equal(t, 1, view.Cart.Count)
}

func TestAuthAndAdmin(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodGet, "/api/v1/admin/products", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{Email: "admin@mobitech.com", Password: "nope", Admin: true})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid_credentials", c.errorCode(rec))

	rec = c.do(http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{Email: "", Password: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_credentials", c.errorCode(rec))

	rec = c.do(http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{Email: "admin@mobitech.com", Password: "admin123", Admin: true})
	require.Equal(t, http.StatusOK, rec.Code)
	var userResp UserResponseDTO
	c.decode(rec, &userResp)
	assert.Equal(t, domain.RoleAdmin, userResp.User.Role)

	rec = c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &userResp)
	assert.Equal(t, "System Administrator", userResp.User.Name)

	rec = c.do(http.MethodGet, "/api/v1/admin/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var report service.InventoryReport
	c.decode(rec, &report)
	assert.Len(t, report.Products, 6)

	stock := -4
	rec = c.do(http.MethodPut, "/api/v1/admin/products/1/stock", UpdateStockRequestDTO{Stock: &stock})
	require.Equal(t, http.StatusOK, rec.Code)
	var product service.ProductView
	c.decode(rec, &product)
	assert.Equal(t, 0, product.Stock)
	assert.True(t, product.LowStock)

	rec = c.do(http.MethodPut, "/api/v1/admin/products/1/stock", UpdateStockRequestDTO{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.do(http.MethodPost, "/api/v1/admin/products/1/stock/adjust", AdjustStockRequestDTO{Delta: 7})
	require.Equal(t, http.StatusOK, rec.Code)
	c.decode(rec, &product)
	assert.Equal(t, 7, product.Stock)
	assert.False(t, product.LowStock)

	rec = c.do(http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/admin/products", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegister(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodPost, "/api/v1/auth/register", RegisterRequestDTO{Name: "Jamie", Email: "jamie@example.com", Password: "pw"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var userResp UserResponseDTO
	c.decode(rec, &userResp)
	assert.Equal(t, domain.RoleCustomer, userResp.User.Role)
	assert.Regexp(t, `^user_\d+$`, userResp.User.ID)
}

func TestAssistant(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodGet, "/api/v1/assistant", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var greeting GreetingResponseDTO
	c.decode(rec, &greeting)
	assert.Equal(t, assistant.Greeting, greeting.Greeting)

	rec = c.do(http.MethodPost, "/api/v1/assistant", AskRequestDTO{Question: "best camera?"})
	require.Equal(t, http.StatusOK, rec.Code)
	var reply assistant.Reply
	c.decode(rec, &reply)
	assert.Equal(t, "The Pixel 8 Pro has the best camera.", reply.Text)

	rec = c.do(http.MethodPost, "/api/v1/assistant", AskRequestDTO{Question: " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "empty_question", c.errorCode(rec))

	// burst of 2 is spent
	rec = c.do(http.MethodPost, "/api/v1/assistant", AskRequestDTO{Question: "again?"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", c.errorCode(rec))
}

func TestAssistant_UnknownSessionsRejected(t *testing.T) {
	c := setupRouter(t)

	for range 50 {
		c.sessionID = uuid.NewString()
		rec := c.do(http.MethodPost, "/api/v1/assistant", AskRequestDTO{Question: "best camera?"})
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "session_not_found", c.errorCode(rec))
	}
}

func TestCheckout_CartEmptiedMidCheckout(t *testing.T) {
	c := setupRouter(t)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "1"}).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/v1/checkout", nil).Code)
	require.Equal(t, http.StatusOK, c.do(http.MethodDelete, "/api/v1/cart/items/1", nil).Code)

	rec := c.do(http.MethodPost, "/api/v1/checkout", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "empty_cart", c.errorCode(rec))

	shipping := domain.ShippingForm{
		Name:       "Alex Johnson",
		Email:      "alex@example.com",
		Phone:      "555-0100",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
	}
	rec = c.do(http.MethodPost, "/api/v1/checkout/shipping", shipping)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "empty_cart", c.errorCode(rec))

	rec = c.do(http.MethodGet, "/api/v1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view service.CheckoutView
	c.decode(rec, &view)
	assert.False(t, view.CanCheckout)
	assert.Equal(t, domain.CheckoutStepShipping, view.Step)
}

func TestUpdateProfile(t *testing.T) {
	c := setupRouter(t)

	rec := c.do(http.MethodPatch, "/api/v1/auth/me", UpdateProfileRequestDTO{Name: "Sam", Email: "sam@example.com"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "not_signed_in", c.errorCode(rec))

	rec = c.do(http.MethodPost, "/api/v1/auth/login", LoginRequestDTO{Email: "alex@example.com", Password: "pw"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodPatch, "/api/v1/auth/me", UpdateProfileRequestDTO{Name: "Sam", Email: " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_credentials", c.errorCode(rec))

	rec = c.do(http.MethodPatch, "/api/v1/auth/me", UpdateProfileRequestDTO{Name: "Sam Rivera", Email: "sam@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var userResp UserResponseDTO
	c.decode(rec, &userResp)
	assert.Equal(t, "Sam Rivera", userResp.User.Name)
	assert.Equal(t, "sam@example.com", userResp.User.Email)
	assert.Equal(t, "user_1", userResp.User.ID)
	assert.Equal(t, domain.RoleCustomer, userResp.User.Role)
}

func TestEndSession(t *testing.T) {
	c := setupRouter(t)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: "1"}).Code)

	rec := c.do(http.MethodDelete, "/api/v1/session", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "session_not_found", c.errorCode(rec))
}

func TestInvalidJSON(t *testing.T) {
	c := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewBufferString("{"))
	req.Header.Set(SessionHeader, c.sessionID)
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", c.errorCode(rec))
}
