package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
)

type FavoriteHandler struct {
	favoriteSvc FavoriteServiceInterface
}

func NewFavoriteHandler(favoriteSvc FavoriteServiceInterface) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteSvc: favoriteSvc,
	}
}

// @Summary Toggle Favorite
// @Description Flips the favorite state of a word for a visitor; toggling twice restores the original state
// @Tags mywords
// @Accept  json
// @Produce json
// @Param toggleFavoriteRequest body dto.ToggleFavoriteRequest true "Toggle favorite request"
// @Success 200 {object} shared.Response{data=dto.ToggleFavoriteResponse}
// @Router /mywords/toggle [post]
func (h *FavoriteHandler) ToggleFavorite(c *fiber.Ctx) error {
	var req dto.ToggleFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err))
	}

	res, err := h.favoriteSvc.Toggle(req.VisitorID, req.WordID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, res)
}

// @Summary List Favorites
// @Description Lists the visitor's favorited words, newest first, optionally restricted to one target language
// @Tags mywords
// @Accept  json
// @Produce json
// @Param visitorId path string true "Visitor ID"
// @Param target_language_id query int false "Target language filter"
// @Success 200 {object} shared.Response{data=dto.WordCollectionResponse}
// @Router /mywords/{visitorId} [get]
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	visitorID := c.Params("visitorId")
	if visitorID == "" {
		return shared.NewBadRequestError(nil, "visitor_id is required")
	}

	var req dto.FavoriteListRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	var targetLanguageID *uint
	if req.TargetLanguageID != 0 {
		targetLanguageID = &req.TargetLanguageID
	}

	res, err := h.favoriteSvc.List(visitorID, targetLanguageID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, res)
}
