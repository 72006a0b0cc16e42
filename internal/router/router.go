package router

import (
	"net/http"

	"food-kart/internal/handler"
	"food-kart/internal/middleware"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Food    *handler.FoodHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Profile *handler.ProfileHandler
}

// New creates a new HTTP router with all routes and middleware configured.
// Customer routes require a bearer token; admin routes require the API key.
func New(h Handlers, verifier middleware.TokenVerifier, adminAPIKey string, logger zerolog.Logger) http.Handler {
	mux := &routeMux{ServeMux: http.NewServeMux()}

	user := func(fn http.HandlerFunc) http.Handler {
		return middleware.JWTAuth(verifier, logger)(fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return middleware.APIKeyAuth(adminAPIKey, logger)(fn)
	}

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalogue
	mux.HandleFunc("GET /api/foods", h.Food.GetAll)
	mux.HandleFunc("GET /api/foods/{id}", h.Food.GetByID)
	mux.Handle("GET /api/foods/{id}/safety", user(h.Food.CheckSafety))

	// Cart
	mux.Handle("GET /api/cart", user(h.Cart.Get))
	mux.Handle("PUT /api/cart", user(h.Cart.Set))
	mux.Handle("DELETE /api/cart", user(h.Cart.Clear))
	mux.Handle("POST /api/cart/items", user(h.Cart.AddItem))
	mux.Handle("PUT /api/cart/items/{foodId}", user(h.Cart.UpdateItem))

	// Orders
	mux.Handle("POST /api/orders", user(h.Order.Create))
	mux.Handle("GET /api/orders", user(h.Order.List))
	mux.Handle("GET /api/orders/{id}", user(h.Order.GetByID))

	// Health profile
	mux.Handle("GET /api/profile", user(h.Profile.Get))
	mux.Handle("PUT /api/profile", user(h.Profile.Put))

	// Back office
	mux.Handle("PATCH /api/admin/orders/{id}/status", admin(h.Order.UpdateStatus))

	// Apply middleware in order: RequestID -> Logging -> CORS -> Recovery
	var handler http.Handler = mux
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)

	// Spans start as "HTTP <method>" and are renamed to the matched route
	// pattern, so path parameters never leak into span names.
	return otelhttp.NewHandler(handler, "food-kart",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "HTTP " + r.Method
		}),
	)
}

// routeMux names the active span after the matched pattern of every route.
type routeMux struct {
	*http.ServeMux
}

func (m *routeMux) Handle(pattern string, h http.Handler) {
	m.ServeMux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace.SpanFromContext(r.Context()).SetName(r.Pattern)
		h.ServeHTTP(w, r)
	}))
}

func (m *routeMux) HandleFunc(pattern string, fn func(http.ResponseWriter, *http.Request)) {
	m.Handle(pattern, http.HandlerFunc(fn))
}
