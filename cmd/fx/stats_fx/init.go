package stats_fx

import (
	"go.uber.org/fx"

	"polisure/internal/repositories"
	"polisure/internal/services"
)

var Module = fx.Provide(provideStatsService)

func provideStatsService(
	users repositories.UserRepository,
	products repositories.PolicyProductRepository,
	claims repositories.ClaimRepository,
) services.StatsServiceInterface {
	return services.NewStatsService(users, products, claims)
}
