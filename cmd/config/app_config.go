package config

import (
	"context"
	"os"
	"time"

	"github.com/simmi-91/freezer-storage-app/internal/api/handlers"
	"github.com/simmi-91/freezer-storage-app/internal/api/routes"
	"github.com/simmi-91/freezer-storage-app/internal/middleware"
	"github.com/simmi-91/freezer-storage-app/internal/utils"
	"github.com/simmi-91/freezer-storage-app/internal/utils/storage"
	"github.com/simmi-91/freezer-storage-app/pkg/inventory"
	"github.com/simmi-91/freezer-storage-app/pkg/navigation"
	"github.com/simmi-91/freezer-storage-app/pkg/reminder"
	"github.com/simmi-91/freezer-storage-app/pkg/scan"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires the application. A nil db falls back to in-memory
// repositories so the app still works without a reachable database.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	var itemRepository inventory.ItemRepository
	var scanRepository scan.ScanRepository
	if db != nil {
		itemRepository = inventory.NewItemRepository(db)
		scanRepository = scan.NewScanRepository(db)
	} else {
		itemRepository = inventory.NewMemoryItemRepository()
		scanRepository = scan.NewMemoryScanRepository()
	}

	// Service
	inventoryService := inventory.NewInventoryService(itemRepository)
	navigationService := navigation.NewNavigationService(inventoryService.Has)
	scanService := scan.NewScanService(scanRepository, inventoryService, s3)
	reminderService := reminder.NewReminderService(inventoryService)

	// First sync of the canonical collection. A failure here is not fatal to
	// the process; the store status stays "error" until a reload succeeds.
	if err := inventoryService.Load(context.Background()); err != nil {
		log.Errorf("initial inventory load failed: %v", err)
	}

	// Handler
	itemHandler := handlers.NewItemHandler(inventoryService, validator)
	navigationHandler := handlers.NewNavigationHandler(navigationService, validator)
	scanHandler := handlers.NewScanHandler(scanService, validator)
	reminderHandler := handlers.NewReminderHandler(reminderService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		ItemHandler:       itemHandler,
		NavigationHandler: navigationHandler,
		ScanHandler:       scanHandler,
		ReminderHandler:   reminderHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
