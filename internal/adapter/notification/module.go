package notification

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mkuznecov/storefront/internal/config"
)

// Module wires the notification HTTP client.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.NotificationAddress, p.Config.NotifyTimeout, p.Logger)
}
