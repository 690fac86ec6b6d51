// Package gateway implements the request forwarding pipeline: the
// route table, the per-route auth middleware chain, the upstream
// forwarder and the error normalizer.
package gateway

// Service identifies one upstream microservice.
type Service struct {
	Name    string // upstream name, used in connection error messages
	BaseURL string
}

// Services holds every upstream the gateway fronts.
type Services struct {
	Usuario  Service // auth-service: users, roles, permissions
	Producto Service // producto-service: catalog, promotions, wishes
	Wishlist Service // cart-wishlist-service
	Envios   Service // envio-service: shipments and fees
	Stripe   Service // payment checkout sessions
}
