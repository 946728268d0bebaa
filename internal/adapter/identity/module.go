package identity

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/config"
)

// Module wires the OAuth identity verifier.
var Module = fx.Options(
	fx.Provide(newVerifier),
)

type verifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newVerifier(p verifierParams) Verifier {
	return New(p.Config.GoogleUserInfoURL, p.Config.GithubUserInfoURL, p.Logger)
}
