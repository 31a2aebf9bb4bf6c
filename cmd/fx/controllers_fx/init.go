package controllers_fx

import (
	"go.uber.org/fx"

	"nestling/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewParentController),
	fx.Provide(controllers.NewChildController),
	fx.Provide(controllers.NewGrowthController),
	fx.Provide(controllers.NewSleepController),
	fx.Provide(controllers.NewFeedingController),
	fx.Provide(controllers.NewMedicationController),
	fx.Provide(controllers.NewVaccinationController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewArticleController),
	fx.Provide(controllers.NewFeedbackController))
