package routes

import (
	"github.com/gofiber/fiber/v2"

	"formbuilder-backend/src/controllers"
	"formbuilder-backend/src/middleware"
)

// FormRoutes wires the form and response endpoints. Submitting a response
// is public (anyone with the shareable URL); everything else requires a
// session.
func FormRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/forms/:id/responses", controllers.SubmitResponse)

	forms := api.Group("/forms", middleware.AuthJWT)

	forms.Get("/", controllers.GetMyForms)
	forms.Delete("/", controllers.DeleteForm)
	forms.Post("/publish", controllers.PublishForm)
	forms.Get("/:id", controllers.GetFormByID)
	forms.Post("/:id/duplicate", controllers.DuplicateForm)
	forms.Patch("/:id/publish", controllers.RepublishForm)
	forms.Patch("/:id/unpublish", controllers.UnpublishForm)
	forms.Get("/:id/responses", controllers.GetFormResponses)
}
