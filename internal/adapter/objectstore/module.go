package objectstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/config"
)

// Module wires the object store client.
var Module = fx.Options(
	fx.Provide(newStore),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	return New(p.Config.UploadBaseURL, p.Config.UploadAPIKey, p.Config.UploadFolder, p.Config.MaxUploadBytes, p.Logger)
}
