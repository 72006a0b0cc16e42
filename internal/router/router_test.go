package router

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-kart/internal/handler"
	"food-kart/internal/middleware"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type rejectingVerifier struct{}

func (rejectingVerifier) Verify(string) (string, error) {
	return "", errors.New("token rejected")
}

func newTestRouter() http.Handler {
	logger := zerolog.Nop()
	return New(Handlers{
		Food:    handler.NewFoodHandler(nil, logger),
		Cart:    handler.NewCartHandler(nil, logger),
		Order:   handler.NewOrderHandler(nil, logger),
		Profile: handler.NewProfileHandler(nil, logger),
	}, rejectingVerifier{}, "admin-key", logger)
}

func TestRouter_Health(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRouter_Authentication(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		headers        map[string]string
		expectedStatus int
	}{
		{name: "Cart requires token", method: http.MethodGet, path: "/api/cart", expectedStatus: http.StatusUnauthorized},
		{name: "Checkout requires token", method: http.MethodPost, path: "/api/orders", expectedStatus: http.StatusUnauthorized},
		{name: "Safety requires token", method: http.MethodGet, path: "/api/foods/F001/safety", expectedStatus: http.StatusUnauthorized},
		{name: "Profile rejects bad token", method: http.MethodPut, path: "/api/profile",
			headers: map[string]string{"Authorization": "Bearer nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "Admin requires key", method: http.MethodPatch, path: "/api/admin/orders/abc/status", expectedStatus: http.StatusUnauthorized},
		{name: "Admin rejects token instead of key", method: http.MethodPatch, path: "/api/admin/orders/abc/status",
			headers: map[string]string{"Authorization": "Bearer nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "Admin key passes to handler", method: http.MethodPatch, path: "/api/admin/orders/abc/status",
			headers: map[string]string{"X-API-Key": "admin-key"}, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			newTestRouter().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_MethodAndPathMatching(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "Unknown path", method: http.MethodGet, path: "/api/unknown", expectedStatus: http.StatusNotFound},
		{name: "Wrong method", method: http.MethodDelete, path: "/api/orders", expectedStatus: http.StatusMethodNotAllowed},
		{name: "Preflight", method: http.MethodOptions, path: "/api/cart", expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			newTestRouter().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_SpanNamesUseRoutePattern(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	router := newTestRouter()

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders/" + uuid.NewString()},
		{http.MethodGet, "/api/orders/" + uuid.NewString()},
		{http.MethodGet, "/api/foods/F001/safety"},
		{http.MethodPatch, "/api/admin/orders/" + uuid.NewString() + "/status"},
		{http.MethodGet, "/api/unknown"},
	}
	for _, r := range requests {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(r.method, r.path, nil))
	}

	spans := recorder.Ended()
	require.Len(t, spans, len(requests))

	names := make([]string, len(spans))
	for i, span := range spans {
		names[i] = span.Name()
	}
	assert.Equal(t, []string{
		"GET /api/orders/{id}",
		"GET /api/orders/{id}",
		"GET /api/foods/{id}/safety",
		"PATCH /api/admin/orders/{id}/status",
		"HTTP GET",
	}, names)
}
