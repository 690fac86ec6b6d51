// Package providers holds the fx constructors and configuration
// surface shared by the gateway commands.
package providers

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/modaluna/gateway/pkg/appctx"
)

// Log is the global logger, built by the root command.
var Log *zap.Logger

// Providers holds constructors for shared components.
var Providers = []interface{}{
	// providers.go
	NewContext,
	// config.go
	NewServices,
	// httpclient.go
	NewHTTPClient,
	// verifier.go
	NewVerifier,
	// metrics.go
	NewMetrics,
}

// NewApp assembles an fx app with the shared providers.
func NewApp(cmd *cobra.Command, opts ...fx.Option) *fx.App {
	baseOpts := []fx.Option{
		fx.Provide(Providers...),
		fx.Supply(cmd),
		fx.Supply(Log),
		fx.Logger(zap.NewStdLog(Log)),
	}
	baseOpts = append(baseOpts, opts...)
	return fx.New(baseOpts...)
}

// NewContext derives the app context: it closes on interrupt and when
// the fx lifecycle stops.
func NewContext(lc fx.Lifecycle) context.Context {
	ctx, cancel := context.WithCancel(appctx.Context())
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return ctx
}
