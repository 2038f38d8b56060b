package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formbuilder-backend/src/models"
	"formbuilder-backend/src/services/forms"
	"formbuilder-backend/src/utils"
)

// callerID pulls the authenticated user id set by the AuthJWT middleware.
func callerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("userId").(string); ok {
		return id
	}
	return ""
}

// PublishForm godoc
// @Summary      Publish a form
// @Description  Validate a draft payload and persist it atomically with its questions
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        form  body  models.FormPayload  true  "Form draft"
// @Success      201  {object}  models.PublishResult
// @Failure      422  {object}  models.PublishResult
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/forms/publish [post]
func PublishForm(c *fiber.Ctx) error {
	var payload models.FormPayload
	if err := c.BodyParser(&payload); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	result, err := forms.PublishForm(c.Context(), callerID(c), &payload)
	if err != nil {
		log.Println("❌ Publish failed:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to publish form")
	}

	if result.Success {
		return c.Status(fiber.StatusCreated).JSON(result)
	}
	if len(result.Errors) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}
	// Auth precondition or structural reject.
	status := fiber.StatusBadRequest
	if result.Message == "You must be logged in to create a form." {
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(result)
}

// GetMyForms godoc
// @Summary      List the caller's forms
// @Description  Newest-created-first; search and re-sorting are client-side concerns
// @Tags         forms
// @Produce      json
// @Success      200  {array}   models.Form
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/forms [get]
func GetMyForms(c *fiber.Ctx) error {
	formsList, err := forms.GetFormsByOwner(c.Context(), callerID(c))
	if err != nil {
		log.Println("❌ Failed to list forms:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch forms")
	}
	return c.Status(fiber.StatusOK).JSON(formsList)
}

// GetFormByID godoc
// @Summary      Get a form by ID with its questions
// @Description  Returns 200 with a null body when the id is absent
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.FormWithQuestions
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := forms.GetFormByID(c.Context(), formID)
	if err != nil {
		log.Println("❌ Failed to fetch form:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch form")
	}
	if form == nil {
		return c.Status(fiber.StatusOK).JSON(nil)
	}
	return c.Status(fiber.StatusOK).JSON(form)
}

// DeleteForm godoc
// @Summary      Delete a form
// @Description  Hard delete of the form, its questions and submissions; owner only
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body  object{id=string}  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      403  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/forms [delete]
func DeleteForm(c *fiber.Ctx) error {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	formID, err := primitive.ObjectIDFromHex(body.ID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	deleted, err := forms.DeleteForm(c.Context(), callerID(c), formID)
	if err != nil {
		if err == forms.ErrNotOwner {
			return utils.HandleError(c, fiber.StatusForbidden, "Not allowed")
		}
		log.Println("❌ Failed to delete form:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form")
	}
	return c.Status(fiber.StatusOK).JSON(deleted)
}

// DuplicateForm godoc
// @Summary      Duplicate a form
// @Description  New identity and timestamps, content copied verbatim, response count reset
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      201  {object}  models.FormWithQuestions
// @Failure      403  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/forms/{id}/duplicate [post]
func DuplicateForm(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	dup, err := forms.DuplicateForm(c.Context(), callerID(c), formID)
	if err != nil {
		if err == forms.ErrNotOwner {
			return utils.HandleError(c, fiber.StatusForbidden, "Not allowed")
		}
		log.Println("❌ Failed to duplicate form:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to duplicate form")
	}
	return c.Status(fiber.StatusCreated).JSON(dup)
}

// UnpublishForm godoc
// @Summary      Unpublish a form
// @Description  Flips the published flag off without touching content; idempotent
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Router       /api/forms/{id}/unpublish [patch]
func UnpublishForm(c *fiber.Ctx) error {
	return setPublished(c, false)
}

// RepublishForm godoc
// @Summary      Publish a previously unpublished form again
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  models.ErrorResponse
// @Router       /api/forms/{id}/publish [patch]
func RepublishForm(c *fiber.Ctx) error {
	return setPublished(c, true)
}

func setPublished(c *fiber.Ctx, published bool) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := forms.SetPublished(c.Context(), callerID(c), formID, published); err != nil {
		if err == forms.ErrNotOwner {
			return utils.HandleError(c, fiber.StatusForbidden, "Not allowed")
		}
		log.Println("❌ Failed to update published flag:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update form")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":        formID.Hex(),
		"published": published,
	})
}
