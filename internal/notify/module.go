package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/jokistudio/portal/internal/config"
	"github.com/jokistudio/portal/internal/domain/repository"
)

// Module wires the notification dispatchers enabled by configuration.
var Module = fx.Options(
	fx.Provide(newDispatcher),
)

type dispatcherParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Users     repository.UserRepository
	Logger    *slog.Logger
}

func newDispatcher(p dispatcherParams) (Dispatcher, error) {
	var multi Multi

	if p.Config.PushURL != "" {
		multi = append(multi, NewPushDispatcher(p.Config.PushURL, p.Config.PushServerKey, p.Users, p.Logger))
	}

	if p.Config.AMQPURL != "" {
		publisher, err := NewAMQPPublisher(p.Config.AMQPURL, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return publisher.Close()
			},
		})
		multi = append(multi, publisher)
	}

	return multi, nil
}
