package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the route handlers for registration.
type Handlers struct {
	Catalog        *CatalogHandler
	Wizard         *WizardHandler
	Course         *CourseHandler
	ServicePackage *ServicePackageHandler
}

// SetupRoutes registers all routes on the app.
func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/health", HealthCheck)

	api := app.Group("/api")

	api.Get("/catalog", h.Catalog.GetCatalog)
	api.Get("/currencies", h.Catalog.GetCurrencies)

	wiz := api.Group("/wizard")
	wiz.Post("/", h.Wizard.Start)
	wiz.Get("/:id", h.Wizard.Get)
	wiz.Put("/:id/platform", h.Wizard.SetPlatform)
	wiz.Put("/:id/features", h.Wizard.SetFeatures)
	wiz.Put("/:id/addons", h.Wizard.SetAddons)
	wiz.Put("/:id/contact", h.Wizard.SetContact)
	wiz.Post("/:id/next", h.Wizard.Next)
	wiz.Post("/:id/back", h.Wizard.Back)
	wiz.Post("/:id/reset", h.Wizard.Reset)
	wiz.Post("/:id/submit", h.Wizard.Submit)
	wiz.Post("/:id/checkout", h.Wizard.Checkout)

	courses := api.Group("/courses")
	courses.Get("/", h.Course.ListCourses)
	courses.Get("/:slug", h.Course.GetCourse)
	courses.Post("/:slug/enroll", h.Course.Enroll)

	services := api.Group("/services")
	services.Get("/", h.ServicePackage.ListGroups)
	services.Get("/individual", h.ServicePackage.ListIndividualServices)
	services.Get("/:slug", h.ServicePackage.GetGroup)
	services.Post("/checkout", h.ServicePackage.CheckoutTier)
}
