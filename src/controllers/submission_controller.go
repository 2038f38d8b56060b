package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formbuilder-backend/src/models"
	"formbuilder-backend/src/services/forms"
	submissionSvc "formbuilder-backend/src/services/submission"
	"formbuilder-backend/src/utils"
)

// SubmitResponse godoc
// @Summary      Submit a response to a published form
// @Description  Public endpoint; answers are checked against the form's questions
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Form ID"
// @Param        body  body  models.SubmitResponseRequest  true  "Answers"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/forms/{id}/responses [post]
func SubmitResponse(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	submission, err := submissionSvc.CreateSubmission(c.Context(), formID, &req)
	if err != nil {
		switch err {
		case forms.ErrFormNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		case submissionSvc.ErrFormNotPublished:
			return utils.HandleError(c, fiber.StatusForbidden, "Form is not accepting responses")
		}
		// Answer validation failures belong to the caller, not the log.
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}

// GetFormResponses godoc
// @Summary      List a form's responses
// @Description  Owner only, newest first
// @Tags         submissions
// @Produce      json
// @Param        id     path   string  true   "Form ID"
// @Param        page   query  int     false  "Page number" default(1)
// @Param        limit  query  int     false  "Items per page" default(10)
// @Success      200  {object}  models.PaginatedSubmissionsResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/forms/{id}/responses [get]
func GetFormResponses(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))

	result, err := submissionSvc.GetSubmissionsByForm(c.Context(), callerID(c), formID, params)
	if err != nil {
		if err == forms.ErrNotOwner {
			return utils.HandleError(c, fiber.StatusForbidden, "Not allowed")
		}
		log.Println("❌ Failed to list responses:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch responses")
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
