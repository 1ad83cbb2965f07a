package bootstrap

import (
	"packaging-catalog-be/internal/config"
	"packaging-catalog-be/internal/controller"
	"packaging-catalog-be/internal/pkg/logger"
	"packaging-catalog-be/internal/repository/memory"
	"packaging-catalog-be/internal/repository/unitofwork"
	"packaging-catalog-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	AdminController     controller.IAdminController
	ProductController   controller.IProductController
	CategoryController  controller.ICategoryController
	PartnerController   controller.IPartnerController
	PriceListController controller.IPriceListController

	// Shared infrastructure
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Caches
	listingCache := memory.NewSearchCache()

	// 3. Services
	uploadService := service.NewUploadService(cfg.Upload.Dir, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Auth.TokenTTLHour, sysLogger)
	productService := service.NewProductService(uowFactory, uploadService, listingCache, sysLogger)
	categoryService := service.NewCategoryService(uowFactory, listingCache)
	partnerService := service.NewPartnerService(uowFactory, uploadService)
	priceListService := service.NewPriceListService(uowFactory, uploadService, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		AdminController:     controller.NewAdminController(sysLogger),
		ProductController:   controller.NewProductController(productService),
		CategoryController:  controller.NewCategoryController(categoryService),
		PartnerController:   controller.NewPartnerController(partnerService),
		PriceListController: controller.NewPriceListController(priceListService),
		Logger:              sysLogger,
	}
}
