package providers

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/modaluna/gateway/pkg/token"
)

// NewVerifier builds the credential verifier from the shared secret
// auth-service signs tokens with.
func NewVerifier(log *zap.Logger) *token.Verifier {
	secret := viper.GetString(ConfAuthSecret)
	if secret == "" {
		log.Fatal("Missing " + ConfAuthSecret)
	}
	return token.NewVerifier([]byte(secret), viper.GetString(ConfAuthCookie))
}
