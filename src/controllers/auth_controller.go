package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"formbuilder-backend/src/services"
	"formbuilder-backend/src/utils"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// RegisterUser godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  models.User
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if req.Email == "" || req.Password == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := services.RegisterUser(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if err == services.ErrEmailTaken {
			return utils.HandleError(c, fiber.StatusConflict, "Email already registered")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// LoginUser godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	user, err := services.AuthenticateUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	refreshToken := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, refreshTokenTTL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Session setup failed",
			"code":  "SESSION_ERROR",
		})
	}

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    86400,
		"user": fiber.Map{
			"id":    user.ID.Hex(),
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		UserID       string `json:"userId"`
		Email        string `json:"email"`
		RefreshToken string `json:"refreshToken"`
	}

	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	valid, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !valid {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	token, err := utils.GenerateJWT(req.UserID, req.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	return c.JSON(fiber.Map{"token": token, "expiresIn": 86400})
}

// LogoutUser godoc
// @Summary      Log out
// @Description  Deletes the refresh token and blacklists the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/logout [post]
func LogoutUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if userID != "" {
		_ = utils.DeleteRefreshToken(userID)
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		_ = utils.BlacklistToken(token, 24*time.Hour)
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}
