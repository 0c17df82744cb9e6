package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
)

type TranslateHandler struct {
	translateSvc TranslateServiceInterface
}

func NewTranslateHandler(translateSvc TranslateServiceInterface) *TranslateHandler {
	return &TranslateHandler{
		translateSvc: translateSvc,
	}
}

// @Summary Translate
// @Description Proxies free-text translation to the upstream translation API
// @Tags translate
// @Accept  json
// @Produce json
// @Param translateRequest body dto.TranslateRequest true "Translate request"
// @Success 200 {object} shared.Response{data=dto.TranslateResponse}
// @Router /translate [post]
func (h *TranslateHandler) Translate(c *fiber.Ctx) error {
	var req dto.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err))
	}

	res, err := h.translateSvc.Translate(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, res)
}
