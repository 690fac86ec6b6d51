package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/modaluna/gateway/pkg/token"
)

// newTestGateway wires the full router against a single fake upstream
// serving every service.
func newTestGateway(t *testing.T, upstream http.HandlerFunc) (http.Handler, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	all := Service{Name: "backend", BaseURL: srv.URL}
	services := Services{
		Usuario:  Service{Name: "auth-service", BaseURL: srv.URL},
		Producto: Service{Name: "producto-service", BaseURL: srv.URL},
		Wishlist: Service{Name: "cart-wishlist-service", BaseURL: srv.URL},
		Envios:   Service{Name: "envio-service", BaseURL: srv.URL},
		Stripe:   all,
	}
	log := zaptest.NewLogger(t)
	s := &Server{
		Log:      log,
		Verifier: token.NewVerifier(testSecret, ""),
		Forwarder: &Forwarder{
			Client:  &http.Client{},
			Log:     log,
			Metrics: NewMetrics(prometheus.NewRegistry()),
		},
		Metrics: NewMetrics(prometheus.NewRegistry()),
		Origin:  "http://localhost:5173",
	}
	return s.Router(Routes(services)), srv
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	called := false
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-gateway/marca", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "upstream must not be called without a credential")
}

func TestRouter_ProtectedRouteMissingPermission(t *testing.T) {
	called := false
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/marca", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, []string{"ver_carrito"})})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"No tienes permiso para acceder a esta ruta."}`, w.Body.String())
	assert.False(t, called, "upstream must not be called without permission")
}

func TestRouter_AuthorizedForward(t *testing.T) {
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/producto-service/marca/99", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":99,"nombre":"Nike"}`))
	})
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/marca/99", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, []string{"ver_marca"})})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":99,"nombre":"Nike"}`, w.Body.String())
}

func TestRouter_LoginIsPublic(t *testing.T) {
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth-service/usuario/login", r.URL.Path)
		w.Header().Add("Set-Cookie", "token=abc; Path=/; HttpOnly")
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	req := httptest.NewRequest(http.MethodPost, "/api-gateway/usuario/login",
		bytes.NewBufferString(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "token=abc; Path=/; HttpOnly", w.Result().Header.Get("Set-Cookie"))
}

func TestRouter_WhoAmI(t *testing.T) {
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("whoami must not reach any upstream")
	})
	req := httptest.NewRequest(http.MethodGet, "/api-gateway/usuario", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, nil)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Token verificado correctamente.", body["message"])
	assert.Equal(t, float64(42), body["userId"])
	assert.Equal(t, "ana@example.com", body["email"])
	assert.Equal(t, "admin", body["rol"])
}

func TestRouter_GoogleRedirect(t *testing.T) {
	router, srv := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("redirect must not reach any upstream")
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-gateway/usuario/auth/google", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, srv.URL+"/auth-service/usuario/auth/google", w.Result().Header.Get("Location"))
}

func TestRouter_CheckoutRewritesBody(t *testing.T) {
	var upstreamBody []byte
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payment/create-checkout-session", r.URL.Path)
		upstreamBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"url":"https://pay.example.com/s/1"}`))
	})
	req := httptest.NewRequest(http.MethodPost, "/api-gateway/stripe/checkout",
		bytes.NewBufferString(`{"items":[{"id":5,"qty":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, []string{"pago_stripe"})})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[{"id":5,"qty":1}],"userId":42}`, string(upstreamBody))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-gateway/nada", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodOptions, "/api-gateway/marca", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Result().Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Result().Header.Get("Access-Control-Allow-Credentials"))
}
