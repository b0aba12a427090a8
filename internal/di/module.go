package di

import (
	"go.uber.org/fx"

	"github.com/minhvn/sourcehub/internal/adapter/filestore"
	"github.com/minhvn/sourcehub/internal/app"
	"github.com/minhvn/sourcehub/internal/config"
	"github.com/minhvn/sourcehub/internal/logger"
	"github.com/minhvn/sourcehub/internal/notify"
	"github.com/minhvn/sourcehub/internal/pkg/auth"
	"github.com/minhvn/sourcehub/internal/server/http/handlers"
	"github.com/minhvn/sourcehub/internal/server/http/router"
	"github.com/minhvn/sourcehub/internal/storage/postgres"
	"github.com/minhvn/sourcehub/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		filestore.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(d *notify.Dispatcher) usecase.Notifier { return d }),
		fx.Provide(func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
