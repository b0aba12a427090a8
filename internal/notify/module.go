package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/minhvn/sourcehub/internal/config"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

// Module wires the notification dispatcher for dependency injection.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Repo   repository.NotificationRepository
	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	return NewDispatcher(p.Repo, p.Config.NotifyQueueSize, p.Config.NotifyWorkers, p.Logger)
}
