// Package providerstest validates fx graphs without starting servers.
package providerstest

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap/zaptest"

	"github.com/modaluna/gateway/cmd/providers"
)

// Validate checks that the app graph resolves with the shared
// providers in place.
func Validate(t *testing.T, opts ...fx.Option) {
	viper.Set(providers.ConfAuthSecret, "test-secret")
	t.Cleanup(func() { viper.Set(providers.ConfAuthSecret, "") })
	opts = append(opts,
		fx.Supply(
			zaptest.NewLogger(t),
			new(cobra.Command),
		),
		fx.Logger(testFxLogger{t}),
		fx.Provide(providers.Providers...))
	assert.NoError(t, fx.ValidateApp(opts...))
}

type testFxLogger struct {
	testing.TB
}

func (l testFxLogger) Printf(fmt string, args ...interface{}) {
	l.Logf(fmt, args...)
}
