package components

import (
	"coupon-service/internal/infra/repository"
	"coupon-service/internal/infra/uow"
	"coupon-service/internal/usecase/commands"
	"coupon-service/internal/usecase/queries"
	"coupon-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			repository.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
			fx.As(new(queries.CouponReadStore)),
		),
	),
)
