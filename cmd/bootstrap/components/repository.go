package components

import (
	"rentwheels/internal/infra/cache"
	"rentwheels/internal/infra/readstore"
	repo_impl "rentwheels/internal/infra/repository"
	"rentwheels/internal/pkg/config"
	"rentwheels/internal/usecase/commands"
	"rentwheels/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewCarCache,
			fx.As(new(repo_impl.CarCache)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repo_impl.NewCarRepository,
			fx.As(new(commands.CarCatalog)),
		),
		fx.Annotate(
			repo_impl.NewAnomalyRepository,
			fx.As(new(commands.AnomalyRepository)),
		),
		fx.Annotate(
			repo_impl.NewOverrideRepository,
			fx.As(new(commands.OverrideRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
	),
)

func NewCarCache(client *redis.Client, cfg config.Config) *cache.CarCache {
	return cache.NewCarCache(client, cfg.Redis.CarTTL)
}
