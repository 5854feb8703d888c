package components

import (
	"coupon-service/internal/usecase/commands"
	"coupon-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewCouponCommands,
		queries.NewCouponQueries,
	),
)
