package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
	AssistantRPS       float64
	AssistantBurst     int
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.MaxRequestBodySize <= 0 {
		c.MaxRequestBodySize = 1 << 20 // 1MB
	}
	if c.AssistantRPS <= 0 {
		c.AssistantRPS = 1
	}
	if c.AssistantBurst <= 0 {
		c.AssistantBurst = 5
	}
	return c
}

func NewRouter(svc Storefront, logger zerolog.Logger, cfg RouterConfig) http.Handler {
	cfg = cfg.withDefaults()
	h := NewHandler(svc)
	assistantLimiter := NewRateLimiter(cfg.AssistantRPS, cfg.AssistantBurst)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(MaxBodySizeMiddleware(cfg.MaxRequestBodySize))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", h.CreateSession)
		r.With(SessionMiddleware).Delete("/session", h.EndSession)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.GetProduct)
		})

		r.Get("/assistant", h.Greeting)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Post("/items", h.AddItem)
				r.Patch("/items/{product_id}", h.UpdateQuantity)
				r.Delete("/items/{product_id}", h.RemoveItem)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Get("/", h.GetCheckout)
				r.Post("/", h.BeginCheckout)
				r.Delete("/", h.AbandonCheckout)
				r.Post("/shipping", h.SubmitShipping)
				r.Post("/back", h.BackToShipping)
				r.Post("/payment", h.SubmitPayment)
			})

			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", h.Login)
				r.Post("/register", h.Register)
				r.Post("/logout", h.Logout)
				r.Get("/me", h.Me)
				r.Patch("/me", h.UpdateProfile)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(AdminMiddleware(svc))
				r.Get("/products", h.Inventory)
				r.Put("/products/{id}/stock", h.UpdateStock)
				r.Post("/products/{id}/stock/adjust", h.AdjustStock)
			})

			r.With(KnownSessionMiddleware(svc), assistantLimiter.Middleware).Post("/assistant", h.Ask)
		})
	})

	return r
}
