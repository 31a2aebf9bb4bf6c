package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nestling/cmd/fx/account_fx"
	"nestling/cmd/fx/article_fx"
	"nestling/cmd/fx/catalog_fx"
	"nestling/cmd/fx/child_fx"
	"nestling/cmd/fx/controllers_fx"
	"nestling/cmd/fx/db_fx"
	"nestling/cmd/fx/feedback_fx"
	"nestling/cmd/fx/guardian_fx"
	"nestling/cmd/fx/health_fx"
	"nestling/cmd/fx/mail_fx"
	"nestling/cmd/fx/medication_fx"
	"nestling/cmd/fx/memcache_fx"
	"nestling/cmd/fx/records_fx"
	"nestling/cmd/fx/vaccination_fx"
	"nestling/internal/api/controllers"
	"nestling/internal/infra"
	"nestling/pkg/config"
	"nestling/pkg/logger"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

func main() {
	app := fx.New(
		db_fx.Module,
		guardian_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		child_fx.Module,
		catalog_fx.Module,
		records_fx.Module,
		medication_fx.Module,
		vaccination_fx.Module,
		health_fx.Module,
		article_fx.Module,
		feedback_fx.Module,
		controllers_fx.Module,

		fx.Invoke(InitPlatform),
		fx.Invoke(infra.Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func InitPlatform(cfg *config.Config) {
	logger.InitLogger(cfg)
	utils.InitJWT(cfg.JWT)
	middleware.InitMetrics(cfg.Metrics.Prefix)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + cfg.Server.Port
				logger.GetLogger().Info("starting HTTP server", zap.String("addr", addr))
				if err := engine.Run(addr); err != nil {
					logger.GetLogger().Fatal("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.GetLogger().Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	authController *controllers.AuthController,
	parentController *controllers.ParentController,
	childController *controllers.ChildController,
	growthController *controllers.GrowthController,
	sleepController *controllers.SleepController,
	feedingController *controllers.FeedingController,
	medicationController *controllers.MedicationController,
	vaccinationController *controllers.VaccinationController,
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	articleController *controllers.ArticleController,
	feedbackController *controllers.FeedbackController,
) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	registerRoutes(r,
		authController, parentController, childController,
		growthController, sleepController, feedingController,
		medicationController, vaccinationController, healthController,
		catalogController, articleController, feedbackController)

	return r
}

func registerRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	parentController *controllers.ParentController,
	childController *controllers.ChildController,
	growthController *controllers.GrowthController,
	sleepController *controllers.SleepController,
	feedingController *controllers.FeedingController,
	medicationController *controllers.MedicationController,
	vaccinationController *controllers.VaccinationController,
	healthController *controllers.HealthController,
	catalogController *controllers.CatalogController,
	articleController *controllers.ArticleController,
	feedbackController *controllers.FeedbackController) {

	auth := r.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/refresh", authController.Refresh)
	auth.POST("/forgot-password", authController.ForgotPassword)
	auth.POST("/reset-password", authController.ResetPassword)
	auth.POST("/logout", middleware.JWTAuthMiddleware(), authController.Logout)

	api := r.Group("/", middleware.JWTAuthMiddleware())

	parents := api.Group("/parents")
	parents.GET("/me", parentController.Profile)
	parents.PATCH("/me", parentController.Update)
	parents.DELETE("/me", parentController.Delete)

	children := api.Group("/children")
	children.POST("", childController.Register)
	children.GET("", childController.List)
	children.GET("/:id", childController.Get)
	children.PATCH("/:id", childController.Update)
	children.DELETE("/:id", childController.Remove)

	growth := api.Group("/growth")
	growth.POST("", growthController.Create)
	growth.GET("", growthController.List)
	growth.GET("/:id", growthController.Get)
	growth.PATCH("/:id", growthController.Update)
	growth.DELETE("/:id", growthController.Remove)

	sleep := api.Group("/sleep")
	sleep.POST("", sleepController.Create)
	sleep.GET("", sleepController.List)
	sleep.GET("/:id", sleepController.Get)
	sleep.PATCH("/:id", sleepController.Update)
	sleep.DELETE("/:id", sleepController.Remove)

	bottles := api.Group("/bottles")
	bottles.POST("", feedingController.CreateBottle)
	bottles.GET("", feedingController.ListBottles)
	bottles.GET("/:id", feedingController.GetBottle)
	bottles.PATCH("/:id", feedingController.UpdateBottle)
	bottles.DELETE("/:id", feedingController.RemoveBottle)

	nursing := api.Group("/nursing")
	nursing.POST("", feedingController.CreateNursing)
	nursing.GET("", feedingController.ListNursing)
	nursing.GET("/:id", feedingController.GetNursing)
	nursing.PATCH("/:id", feedingController.UpdateNursing)
	nursing.DELETE("/:id", feedingController.RemoveNursing)

	solids := api.Group("/solids")
	solids.POST("", feedingController.CreateSolids)
	solids.GET("", feedingController.ListSolids)
	solids.GET("/:id", feedingController.GetSolids)
	solids.PATCH("/:id", feedingController.UpdateSolids)
	solids.DELETE("/:id", feedingController.RemoveSolids)

	medications := api.Group("/medications")
	medications.POST("", medicationController.Create)
	medications.GET("", medicationController.List)
	medications.GET("/:id", medicationController.Get)
	medications.PATCH("/:id", medicationController.Update)
	medications.DELETE("/:id", medicationController.Remove)

	slots := api.Group("/medication-slots")
	slots.POST("", medicationController.CreateSlot)
	slots.GET("", medicationController.ListSlots)
	slots.GET("/:id", medicationController.GetSlot)
	slots.PATCH("/:id", medicationController.UpdateSlot)
	slots.DELETE("/:id", medicationController.RemoveSlot)

	vaccinations := api.Group("/vaccinations")
	vaccinations.POST("", vaccinationController.Create)
	vaccinations.GET("", vaccinationController.List)
	vaccinations.GET("/:id", vaccinationController.Get)
	vaccinations.PATCH("/:id", vaccinationController.Update)
	vaccinations.DELETE("/:id", vaccinationController.Remove)

	allergies := api.Group("/allergies")
	allergies.POST("", healthController.CreateAllergy)
	allergies.GET("", healthController.ListAllergies)
	allergies.GET("/:id", healthController.GetAllergy)
	allergies.PATCH("/:id", healthController.UpdateAllergy)
	allergies.DELETE("/:id", healthController.RemoveAllergy)

	appointments := api.Group("/appointments")
	appointments.POST("", healthController.CreateAppointment)
	appointments.GET("", healthController.ListAppointments)
	appointments.GET("/:id", healthController.GetAppointment)
	appointments.PATCH("/:id", healthController.UpdateAppointment)
	appointments.DELETE("/:id", healthController.RemoveAppointment)

	healthRecords := api.Group("/health-records")
	healthRecords.POST("", healthController.CreateHealthRecord)
	healthRecords.GET("", healthController.ListHealthRecords)
	healthRecords.GET("/:id", healthController.GetHealthRecord)
	healthRecords.PATCH("/:id", healthController.UpdateHealthRecord)
	healthRecords.DELETE("/:id", healthController.RemoveHealthRecord)

	milkTypes := api.Group("/milk-types")
	milkTypes.POST("", catalogController.CreateMilkType)
	milkTypes.GET("", catalogController.ListMilkTypes)
	milkTypes.PATCH("/:id", catalogController.UpdateMilkType)
	milkTypes.DELETE("/:id", catalogController.RemoveMilkType)

	categories := api.Group("/categories")
	categories.POST("", catalogController.CreateCategory)
	categories.GET("", catalogController.ListCategories)
	categories.PATCH("/:id", catalogController.UpdateCategory)
	categories.DELETE("/:id", catalogController.RemoveCategory)

	items := api.Group("/category-items")
	items.POST("", catalogController.CreateCategoryItem)
	items.GET("", catalogController.ListCategoryItems)
	items.PATCH("/:id", catalogController.UpdateCategoryItem)
	items.DELETE("/:id", catalogController.RemoveCategoryItem)

	medicines := api.Group("/medicines")
	medicines.POST("", catalogController.CreateMedicine)
	medicines.GET("", catalogController.ListMedicines)
	medicines.GET("/:id", catalogController.GetMedicine)
	medicines.PATCH("/:id", catalogController.UpdateMedicine)
	medicines.DELETE("/:id", catalogController.RemoveMedicine)

	vaccines := api.Group("/vaccines")
	vaccines.POST("", catalogController.CreateVaccine)
	vaccines.GET("", catalogController.ListVaccines)
	vaccines.GET("/:id", catalogController.GetVaccine)
	vaccines.PATCH("/:id", catalogController.UpdateVaccine)
	vaccines.DELETE("/:id", catalogController.RemoveVaccine)

	symptoms := api.Group("/symptoms")
	symptoms.POST("", catalogController.CreateSymptom)
	symptoms.GET("", catalogController.ListSymptoms)
	symptoms.PATCH("/:id", catalogController.UpdateSymptom)
	symptoms.DELETE("/:id", catalogController.RemoveSymptom)

	articles := api.Group("/articles")
	articles.POST("", articleController.Create)
	articles.GET("", articleController.List)
	articles.GET("/:id", articleController.Get)
	articles.PATCH("/:id", articleController.Update)
	articles.DELETE("/:id", articleController.Remove)

	feedback := api.Group("/feedback")
	feedback.POST("", feedbackController.Create)
	feedback.GET("", feedbackController.List)
}
