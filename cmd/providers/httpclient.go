package providers

import (
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// NewHTTPClient builds the pooled outbound client shared by all
// forwarded requests. Backend redirects are relayed to the browser,
// never followed by the gateway itself.
func NewHTTPClient(log *zap.Logger) *http.Client {
	timeout := viper.GetDuration(ConfUpstreamTimeout)
	log.Info("Using upstream HTTP client",
		zap.Duration(ConfUpstreamTimeout, timeout))
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}
