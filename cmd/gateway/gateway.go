// Package gateway implements the serve command.
package gateway

import (
	"context"
	"net"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/modaluna/gateway/cmd/providers"
	"github.com/modaluna/gateway/pkg/gateway"
	"github.com/modaluna/gateway/pkg/token"
)

// Cmd is the serve command.
var Cmd = cobra.Command{
	Use:   "serve",
	Short: "Run the API gateway",
	Long: "Runs the public HTTP server fronting the backend services.\n" +
		"The gateway is stateless, it is safe to run several replicas.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		app := providers.NewApp(
			cmd,
			fx.Invoke(runGateway),
		)
		app.Run()
	},
}

func runGateway(
	ctx context.Context,
	lc fx.Lifecycle,
	log *zap.Logger,
	client *http.Client,
	verifier *token.Verifier,
	services gateway.Services,
	metrics *gateway.Metrics,
) {
	server := &gateway.Server{
		Log:      log,
		Verifier: verifier,
		Forwarder: &gateway.Forwarder{
			Client:  client,
			Log:     log.Named("forward"),
			Metrics: metrics,
		},
		Metrics: metrics,
		Origin:  viper.GetString(providers.ConfCORSOrigin),
	}
	httpServer := &http.Server{
		Addr:    viper.GetString(providers.ConfListen),
		Handler: server.Router(gateway.Routes(services)),
		// Request contexts derive from the app context, so in-flight
		// upstream calls are abandoned on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting server", zap.String(providers.ConfListen, httpServer.Addr))
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpServer.Shutdown(ctx)
		},
	})
}
