package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
)

type WordHandler struct {
	wordSvc WordServiceInterface
}

func NewWordHandler(wordSvc WordServiceInterface) *WordHandler {
	return &WordHandler{
		wordSvc: wordSvc,
	}
}

// @Summary Random Words
// @Description Draws random words for a target language, optionally filtered by category or the visitor's favorites
// @Tags words
// @Accept  json
// @Produce json
// @Param target_language_id query int true "Target language ID"
// @Param category_id query int false "Category ID"
// @Param visitor_id query string false "Visitor ID for favorite annotation"
// @Param count query int false "Number of words to draw"
// @Param mode query string false "Selection mode: all, by_category, favorites, favorites_all"
// @Success 200 {object} shared.Response{data=dto.WordCollectionResponse}
// @Router /words/random [get]
func (h *WordHandler) RandomWords(c *fiber.Ctx) error {
	var req dto.RandomWordsRequest
	if err := c.QueryParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		return shared.NewBadRequestError(err, dto.ValidationMessage(err))
	}

	res, err := h.wordSvc.Random(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, res)
}

// @Summary Get Word
// @Description Returns a single word annotated with the requesting visitor's favorite state
// @Tags words
// @Accept  json
// @Produce json
// @Param id path int true "Word ID"
// @Param visitor_id query string false "Visitor ID for favorite annotation"
// @Success 200 {object} shared.Response{data=dto.WordResponse}
// @Router /words/{id} [get]
func (h *WordHandler) GetWord(c *fiber.Ctx) error {
	wordID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || wordID == 0 {
		return shared.NewBadRequestError(err, "word_id is invalid")
	}

	word, err := h.wordSvc.Get(uint(wordID), c.Query(shared.VisitorID))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, word)
}

// @Summary List Source Languages
// @Tags reference
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.LanguageResponse}
// @Router /languages [get]
func (h *WordHandler) ListSourceLanguages(c *fiber.Ctx) error {
	languages, err := h.wordSvc.ListSourceLanguages()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, languages)
}

// @Summary List Target Languages
// @Tags reference
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.LanguageResponse}
// @Router /target-languages [get]
func (h *WordHandler) ListTargetLanguages(c *fiber.Ctx) error {
	languages, err := h.wordSvc.ListTargetLanguages()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, languages)
}

// @Summary List Categories
// @Tags reference
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.CategoryResponse}
// @Router /categories [get]
func (h *WordHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.wordSvc.ListCategories()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, categories)
}
