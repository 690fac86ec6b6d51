package providers

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/modaluna/gateway/pkg/gateway"
)

// Config keys.
const (
	ConfListen     = "gateway.listen"
	ConfCORSOrigin = "gateway.cors_origin"

	ConfAuthSecret = "auth.secret"
	ConfAuthCookie = "auth.cookie"

	ConfUpstreamTimeout = "upstream.timeout"

	ConfUsuarioService  = "services.usuario"
	ConfProductoService = "services.producto"
	ConfWishlistService = "services.wishlist"
	ConfEnviosService   = "services.envios"
	ConfStripeService   = "services.stripe"
)

func init() {
	viper.SetDefault(ConfListen, ":8080")
	viper.SetDefault(ConfCORSOrigin, "http://localhost:5173")

	viper.SetDefault(ConfAuthSecret, "")
	viper.SetDefault(ConfAuthCookie, "token")

	viper.SetDefault(ConfUpstreamTimeout, gateway.DefaultUpstreamTimeout)

	viper.SetDefault(ConfUsuarioService, "http://localhost:3001")
	viper.SetDefault(ConfProductoService, "http://localhost:3002")
	viper.SetDefault(ConfWishlistService, "http://localhost:3003")
	viper.SetDefault(ConfEnviosService, "http://localhost:3004")
	viper.SetDefault(ConfStripeService, "http://localhost:3005")

	// Deployments configure upstreams through the environment.
	_ = viper.BindEnv(ConfUsuarioService, "USUARIO_SERVICE")
	_ = viper.BindEnv(ConfProductoService, "PRODUCTO_SERVICE")
	_ = viper.BindEnv(ConfWishlistService, "WISHLIST_SERVICE")
	_ = viper.BindEnv(ConfEnviosService, "ENVIOS_SERVICE")
	_ = viper.BindEnv(ConfStripeService, "STRIPE_SERVICE")
	_ = viper.BindEnv(ConfListen, "APP_PORT")
	_ = viper.BindEnv(ConfCORSOrigin, "FRONTEND_URL")
	_ = viper.BindEnv(ConfAuthSecret, "JWT_SECRET")
}

// NewServices reads the upstream base URLs from config.
func NewServices(log *zap.Logger) gateway.Services {
	services := gateway.Services{
		Usuario:  gateway.Service{Name: "auth-service", BaseURL: viper.GetString(ConfUsuarioService)},
		Producto: gateway.Service{Name: "producto-service", BaseURL: viper.GetString(ConfProductoService)},
		Wishlist: gateway.Service{Name: "cart-wishlist-service", BaseURL: viper.GetString(ConfWishlistService)},
		Envios:   gateway.Service{Name: "envio-service", BaseURL: viper.GetString(ConfEnviosService)},
		Stripe:   gateway.Service{Name: "stripe-service", BaseURL: viper.GetString(ConfStripeService)},
	}
	log.Info("Using upstream services",
		zap.String(ConfUsuarioService, services.Usuario.BaseURL),
		zap.String(ConfProductoService, services.Producto.BaseURL),
		zap.String(ConfWishlistService, services.Wishlist.BaseURL),
		zap.String(ConfEnviosService, services.Envios.BaseURL),
		zap.String(ConfStripeService, services.Stripe.BaseURL))
	return services
}
