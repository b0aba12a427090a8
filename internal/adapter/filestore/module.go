package filestore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/minhvn/sourcehub/internal/config"
)

// Module exposes the disk-backed file store to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	return NewDiskStore(p.Config.UploadDir, p.Logger)
}
