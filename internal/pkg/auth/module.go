package auth

import (
	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newSessionSigner),
	fx.Provide(newBearerSigner),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type signerParams struct {
	fx.In

	Config *config.Config
}

func newSessionSigner(p signerParams) SessionSigner {
	return NewHMACSessionSigner(p.Config.SessionSecret, Options{})
}

func newBearerSigner(p signerParams) BearerSigner {
	return NewJWTBearerSigner(p.Config.JWTSecret, p.Config.MobileTokenTTL)
}
