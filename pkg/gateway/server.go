package gateway

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/modaluna/gateway/pkg/auth"
	"github.com/modaluna/gateway/pkg/token"
)

// Server assembles the public HTTP surface of the gateway.
type Server struct {
	Log       *zap.Logger
	Verifier  *token.Verifier
	Forwarder *Forwarder
	Metrics   *Metrics
	Origin    string // allowed CORS origin; empty disables CORS
}

// Router builds the chi router serving the route table. Protected
// routes always chain authenticate, then permission check, then
// forward; nothing registers a protected handler outside this path.
func (s *Server) Router(routes []Route) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if s.Origin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{s.Origin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}
	if s.Metrics != nil {
		r.Use(s.instrument)
	}
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authmw := &AuthMiddleware{Verifier: s.Verifier, Log: s.Log.Named("auth")}
	for _, rt := range routes {
		r.Method(rt.Method, rt.GatewayPattern(), s.handler(authmw, rt))
	}
	return r
}

func (s *Server) handler(authmw *AuthMiddleware, rt Route) http.Handler {
	var h http.Handler
	switch rt.Special {
	case SpecialWhoAmI:
		h = http.HandlerFunc(whoAmI)
	case SpecialRedirect:
		h = redirectTo(strings.TrimSuffix(rt.Service.BaseURL, "/") + rt.Path)
	default:
		h = s.Forwarder.Handler(rt)
	}
	if rt.Auth {
		h = RequirePermissions(rt.Permissions...)(h)
		h = authmw.Authenticate(h)
	}
	return h
}

// whoAmI echoes the verified identity without touching any upstream.
func whoAmI(w http.ResponseWriter, r *http.Request) {
	id, err := auth.FromContext(r.Context())
	if err != nil {
		WriteError(w, http.StatusUnauthorized, MsgNoToken)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Token verificado correctamente.",
		"userId":  id.UserID,
		"email":   id.Email,
		"rol":     id.Role,
	})
}

func redirectTo(url string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, url, http.StatusFound)
	})
}

// instrument counts served requests by resolved route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		pattern := chi.RouteContext(r.Context()).RoutePattern()
		s.Metrics.Requests.WithLabelValues(r.Method, pattern, strconv.Itoa(ww.Status())).Inc()
	})
}
