package controllers_fx

import (
	"go.uber.org/fx"

	"polisure/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewCustomerController),
	fx.Provide(controllers.NewAgentController),
	fx.Provide(controllers.NewAdminController))
