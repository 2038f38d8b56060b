package routes

import (
	"github.com/gofiber/fiber/v2"

	"formbuilder-backend/src/controllers"
	"formbuilder-backend/src/middleware"
)

// AuthRoutes wires register/login/refresh/logout.
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser)
	auth.Post("/refresh", controllers.RefreshToken)
	auth.Post("/logout", middleware.AuthJWT, controllers.LogoutUser)
}
