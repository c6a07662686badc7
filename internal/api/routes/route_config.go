package routes

import (
	"github.com/simmi-91/freezer-storage-app/internal/api/handlers"
	"github.com/simmi-91/freezer-storage-app/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	ItemHandler       handlers.ItemHandler
	NavigationHandler handlers.NavigationHandler
	ScanHandler       handlers.ScanHandler
	ReminderHandler   handlers.ReminderHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Items()
	c.Navigation()
	c.Scans()
	c.GuestRoute()
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items")

	items.Get("/browse", c.ItemHandler.BrowseItems)
	items.Get("/status", c.ItemHandler.GetStoreStatus)

	// Basic CRUD operations
	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/:id", c.ItemHandler.GetItem)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)

	// Batch import (recognized or otherwise)
	items.Post("/batch", c.ItemHandler.AddItemBatch)

	c.App.Get("/api/v1/dashboard", c.ItemHandler.GetDashboard)
	c.App.Get("/api/v1/categories", c.ItemHandler.GetCategoryOptions)
	c.App.Get("/api/v1/categories/:category/suggest-expiry", c.ItemHandler.SuggestExpiry)
	c.App.Post("/api/v1/reminders/digest", c.ReminderHandler.SendDigest)
}

func (c *Config) Navigation() {
	nav := c.App.Group("/api/v1/navigation")

	nav.Get("", c.NavigationHandler.GetCurrent)
	nav.Post("/navigate", c.NavigationHandler.Navigate)
	nav.Post("/back", c.NavigationHandler.Back)
	nav.Post("/save", c.NavigationHandler.SaveForm)
	nav.Post("/cancel", c.NavigationHandler.CancelForm)
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans")

	scans.Post("", c.ScanHandler.UploadPhoto)
	scans.Get("/:id", c.ScanHandler.GetScan)
	scans.Post("/:id/save", c.ScanHandler.SaveScannedItems)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
