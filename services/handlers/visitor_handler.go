package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
)

type VisitorHandler struct {
	visitorSvc VisitorServiceInterface
}

func NewVisitorHandler(visitorSvc VisitorServiceInterface) *VisitorHandler {
	return &VisitorHandler{
		visitorSvc: visitorSvc,
	}
}

// @Summary Init Visitor
// @Description Resolves the supplied visitor id or provisions a new anonymous visitor with default preferences
// @Tags visitors
// @Accept  json
// @Produce json
// @Param initVisitorRequest body dto.InitVisitorRequest true "Init visitor request"
// @Success 200 {object} shared.Response{data=dto.InitVisitorResponse}
// @Router /visitors/init [post]
func (h *VisitorHandler) InitVisitor(c *fiber.Ctx) error {
	var req dto.InitVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err))
	}

	res, err := h.visitorSvc.InitVisitor(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, res)
}

// @Summary Update Preferences
// @Description Overwrites the visitor's source and target language preferences; both ids are required
// @Tags visitors
// @Accept  json
// @Produce json
// @Param updatePreferencesRequest body dto.UpdatePreferencesRequest true "Update preferences request"
// @Success 200 {object} shared.Response
// @Router /visitors/update-preferences [post]
func (h *VisitorHandler) UpdatePreferences(c *fiber.Ctx) error {
	var req dto.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err))
	}

	if err := h.visitorSvc.UpdatePreferences(req.VisitorID, req.SourceLanguageID, req.TargetLanguageID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Preferences updated")
}

// @Summary Get Visitor
// @Description Returns the visitor record with resolved preferences
// @Tags visitors
// @Accept  json
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} shared.Response{data=dto.VisitorResponse}
// @Router /visitors/{id} [get]
func (h *VisitorHandler) GetVisitor(c *fiber.Ctx) error {
	visitorID := c.Params("id")
	if visitorID == "" {
		return shared.NewBadRequestError(nil, "visitor_id is required")
	}

	visitor, err := h.visitorSvc.GetVisitor(visitorID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, visitor)
}
