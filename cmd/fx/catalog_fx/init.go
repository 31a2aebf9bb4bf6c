package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(
	provideMilkTypeRepo,
	provideCategoryRepo,
	provideSymptomRepo,
	provideCategoryItemRepo,
	provideMedicineRepo,
	provideVaccineRepo,
	provideMilkTypeService,
	provideCategoryService,
	provideCategoryItemService,
	provideMedicineService,
	provideVaccineService,
	provideSymptomService)

func provideMilkTypeRepo(db *gorm.DB) repositories.CatalogRepository[db_models.MilkType] {
	return repositories.NewCatalogRepository[db_models.MilkType](db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CatalogRepository[db_models.Category] {
	return repositories.NewCatalogRepository[db_models.Category](db)
}

func provideSymptomRepo(db *gorm.DB) repositories.CatalogRepository[db_models.Symptom] {
	return repositories.NewCatalogRepository[db_models.Symptom](db)
}

func provideCategoryItemRepo(db *gorm.DB) repositories.CategoryItemRepository {
	return repositories.NewCategoryItemRepository(db)
}

func provideMedicineRepo(db *gorm.DB) repositories.MedicineRepository {
	return repositories.NewMedicineRepository(db)
}

func provideVaccineRepo(db *gorm.DB) repositories.VaccineRepository {
	return repositories.NewVaccineRepository(db)
}

func provideMilkTypeService(repo repositories.CatalogRepository[db_models.MilkType]) services.MilkTypeServiceInterface {
	return services.NewMilkTypeService(repo)
}

func provideCategoryService(repo repositories.CatalogRepository[db_models.Category]) services.CategoryServiceInterface {
	return services.NewCategoryService(repo)
}

func provideCategoryItemService(
	repo repositories.CategoryItemRepository,
	categoryRepo repositories.CatalogRepository[db_models.Category],
) services.CategoryItemServiceInterface {
	return services.NewCategoryItemService(repo, categoryRepo)
}

func provideMedicineService(repo repositories.MedicineRepository) services.MedicineServiceInterface {
	return services.NewMedicineService(repo)
}

func provideVaccineService(repo repositories.VaccineRepository) services.VaccineServiceInterface {
	return services.NewVaccineService(repo)
}

func provideSymptomService(repo repositories.CatalogRepository[db_models.Symptom]) services.SymptomServiceInterface {
	return services.NewSymptomService(repo)
}
