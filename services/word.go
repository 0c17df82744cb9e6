package services

import (
	goContext "context"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/model"
	"github.com/kelimeapp/vocab_api/services/repositories"
	"github.com/kelimeapp/vocab_api/shared"
	log "github.com/sirupsen/logrus"
)

// WordService serves the reference data and the randomized selection engine.
type WordService struct {
	context.DefaultService

	sqlSvc   *PostgresService
	redisSvc *RedisService

	wordRepo     *repositories.WordRepository
	favoriteRepo *repositories.FavoriteRepository

	cacheExpiry time.Duration
}

const WORD_SVC = "word_svc"

func (svc WordService) Id() string {
	return WORD_SVC
}

func (svc *WordService) Configure(ctx *context.Context) error {
	svc.cacheExpiry = time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *WordService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.wordRepo = repositories.NewWordRepository(svc.sqlSvc.Db())
	svc.favoriteRepo = repositories.NewFavoriteRepository(svc.sqlSvc.Db())
	return nil
}

// Random draws up to Count words uniformly without replacement from the
// candidate set the mode describes. An undersized pool returns everything it
// has; an empty pool is a not-found, never an internal error.
func (svc *WordService) Random(req dto.RandomWordsRequest) (*dto.WordCollectionResponse, error) {
	mode := resolveMode(req)

	count := req.Count
	if count <= 0 {
		count = shared.DefaultRandomWordCount
	}
	if count > shared.MaxRandomWordCount {
		count = shared.MaxRandomWordCount
	}

	candidateIDs, err := svc.candidateIDs(mode, req)
	if err != nil {
		return nil, err
	}

	if len(candidateIDs) == 0 {
		return nil, shared.NewNotFoundError(fmt.Errorf("no words for mode %s", mode), "No words found")
	}

	sampled := sampleIDs(candidateIDs, count)

	words, err := svc.wordRepo.GetWordsByIDs(sampled)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load words")
	}

	return svc.annotate(words, req.VisitorID)
}

func (svc *WordService) Get(wordID uint, visitorID string) (*dto.WordResponse, error) {
	word, err := svc.wordRepo.GetWord(wordID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Word not found")
		}
		return nil, shared.NewInternalError(err, "Failed to get word")
	}

	collection, err := svc.annotate([]model.Word{*word}, visitorID)
	if err != nil {
		return nil, err
	}
	return &collection.Words[0], nil
}

// resolveMode keeps the request declarative: an explicit mode wins, otherwise
// a category filter implies by_category and everything else is all.
func resolveMode(req dto.RandomWordsRequest) string {
	if req.Mode != "" {
		return req.Mode
	}
	if req.CategoryID != 0 {
		return shared.SelectionModeByCategory
	}
	return shared.SelectionModeAll
}

func (svc *WordService) candidateIDs(mode string, req dto.RandomWordsRequest) ([]uint, error) {
	switch mode {
	case shared.SelectionModeAll:
		ids, err := svc.wordRepo.ListWordIDs(req.TargetLanguageID)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to list words")
		}
		return ids, nil

	case shared.SelectionModeByCategory:
		if req.CategoryID == 0 {
			return nil, shared.NewBadRequestError(fmt.Errorf("mode %s without category", mode), "category_id is required")
		}
		ids, err := svc.wordRepo.ListWordIDsByCategory(req.TargetLanguageID, req.CategoryID)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to list words by category")
		}
		return ids, nil

	case shared.SelectionModeFavorites:
		if req.VisitorID == "" {
			return nil, shared.NewBadRequestError(fmt.Errorf("mode %s without visitor", mode), "visitor_id is required")
		}
		languageID := req.TargetLanguageID
		ids, err := svc.favoriteRepo.ListFavoriteWordIDs(req.VisitorID, &languageID)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to list favorites")
		}
		return ids, nil

	case shared.SelectionModeFavoritesAll:
		if req.VisitorID == "" {
			return nil, shared.NewBadRequestError(fmt.Errorf("mode %s without visitor", mode), "visitor_id is required")
		}
		ids, err := svc.favoriteRepo.ListFavoriteWordIDs(req.VisitorID, nil)
		if err != nil {
			return nil, shared.NewInternalError(err, "Failed to list favorites")
		}
		return ids, nil

	default:
		return nil, shared.NewBadRequestError(fmt.Errorf("unknown mode %q", mode), "mode is invalid")
	}
}

// annotate marks each word favorited or not for the requesting visitor. A
// missing visitor id means every word reads as not favorited.
func (svc *WordService) annotate(words []model.Word, visitorID string) (*dto.WordCollectionResponse, error) {
	wordIDs := make([]uint, 0, len(words))
	for _, word := range words {
		wordIDs = append(wordIDs, word.ID)
	}

	favorited, err := svc.favoriteRepo.FavoritedSet(visitorID, wordIDs)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to annotate favorites")
	}

	responses := make([]dto.WordResponse, 0, len(words))
	for _, word := range words {
		responses = append(responses, wordToResponse(word, favorited[word.ID]))
	}

	return &dto.WordCollectionResponse{Words: responses, Total: len(responses)}, nil
}

func wordToResponse(word model.Word, isFavorite bool) dto.WordResponse {
	sentences := make([]string, 0, 2)
	if word.ExampleSentence != "" {
		sentences = append(sentences, word.ExampleSentence)
	}
	if word.ExampleSentence2 != "" {
		sentences = append(sentences, word.ExampleSentence2)
	}

	return dto.WordResponse{
		ID:               word.ID,
		TargetLanguageID: word.TargetLanguageID,
		Text:             word.Text,
		Pronunciation:    word.Pronunciation,
		Definition:       word.Definition,
		ExampleSentences: sentences,
		IsFavorite:       isFavorite,
	}
}

// ==================== REFERENCE DATA ====================

func (svc *WordService) ListSourceLanguages() ([]dto.LanguageResponse, error) {
	var cached []dto.LanguageResponse
	if svc.cacheGet("reference:source_languages", &cached) && len(cached) > 0 {
		return cached, nil
	}

	languages, err := svc.wordRepo.ListSourceLanguages()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to list languages")
	}

	responses := make([]dto.LanguageResponse, 0, len(languages))
	for _, language := range languages {
		responses = append(responses, dto.LanguageResponse{ID: language.ID, Code: language.Code, Name: language.Name})
	}

	svc.cacheSet("reference:source_languages", responses)
	return responses, nil
}

func (svc *WordService) ListTargetLanguages() ([]dto.LanguageResponse, error) {
	var cached []dto.LanguageResponse
	if svc.cacheGet("reference:target_languages", &cached) && len(cached) > 0 {
		return cached, nil
	}

	languages, err := svc.wordRepo.ListTargetLanguages()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to list languages")
	}

	responses := make([]dto.LanguageResponse, 0, len(languages))
	for _, language := range languages {
		responses = append(responses, dto.LanguageResponse{ID: language.ID, Code: language.Code, Name: language.Name})
	}

	svc.cacheSet("reference:target_languages", responses)
	return responses, nil
}

func (svc *WordService) ListCategories() ([]dto.CategoryResponse, error) {
	var cached []dto.CategoryResponse
	if svc.cacheGet("reference:categories", &cached) && len(cached) > 0 {
		return cached, nil
	}

	categories, err := svc.wordRepo.ListCategories()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to list categories")
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, dto.CategoryResponse{ID: category.ID, Name: category.Name})
	}

	svc.cacheSet("reference:categories", responses)
	return responses, nil
}

// Reference data is immutable, so the cache is best-effort: a redis failure
// falls through to the database and only logs.
func (svc *WordService) cacheGet(key string, dest interface{}) bool {
	if svc.redisSvc == nil {
		return false
	}
	if err := svc.redisSvc.GetJSON(goContext.Background(), key, dest); err != nil {
		log.WithError(err).WithField("key", key).Debug("Reference cache read failed")
		return false
	}
	return true
}

func (svc *WordService) cacheSet(key string, value interface{}) {
	if svc.redisSvc == nil {
		return
	}
	if err := svc.redisSvc.Set(goContext.Background(), key, value, svc.cacheExpiry); err != nil {
		log.WithError(err).WithField("key", key).Debug("Reference cache write failed")
	}
}
