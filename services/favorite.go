package services

import (
	"github.com/alphabatem/common/context"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/model"
	"github.com/kelimeapp/vocab_api/services/repositories"
	"github.com/kelimeapp/vocab_api/shared"
	log "github.com/sirupsen/logrus"
)

// FavoriteService maintains the visitor-word membership relation. Toggling
// the same pair twice always restores the original state.
type FavoriteService struct {
	context.DefaultService

	sqlSvc       *PostgresService
	wordRepo     *repositories.WordRepository
	favoriteRepo *repositories.FavoriteRepository
}

const FAVORITE_SVC = "favorite_svc"

func (svc FavoriteService) Id() string {
	return FAVORITE_SVC
}

func (svc *FavoriteService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *FavoriteService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.wordRepo = repositories.NewWordRepository(svc.sqlSvc.Db())
	svc.favoriteRepo = repositories.NewFavoriteRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *FavoriteService) Toggle(visitorID string, wordID uint) (*dto.ToggleFavoriteResponse, error) {
	word, err := svc.wordRepo.GetWord(wordID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Word not found")
		}
		return nil, shared.NewInternalError(err, "Failed to look up word")
	}

	_, err = svc.favoriteRepo.GetFavorite(visitorID, wordID)
	if err == nil {
		rows, delErr := svc.favoriteRepo.DeleteFavorite(visitorID, wordID)
		if delErr != nil {
			return nil, shared.NewInternalError(delErr, "Failed to remove favorite")
		}
		if rows == 0 {
			// Someone removed it between the read and the delete; the end
			// state is still "not favorited".
			log.WithField(shared.VisitorID, visitorID).WithField("word_id", wordID).Debug("Favorite already gone")
		}
		return &dto.ToggleFavoriteResponse{Status: shared.FavoriteStatusRemoved}, nil
	}
	if !repositories.IsNotFoundError(err) {
		return nil, shared.NewInternalError(err, "Failed to look up favorite")
	}

	favorite := &model.Favorite{
		VisitorID:        visitorID,
		WordID:           wordID,
		TargetLanguageID: word.TargetLanguageID,
	}

	if err := svc.favoriteRepo.CreateFavorite(favorite); err != nil {
		// The unique pair index rejected a concurrent duplicate; the edge
		// exists, which is the state this toggle wanted.
		if repositories.IsDuplicateKeyError(err) {
			return &dto.ToggleFavoriteResponse{Status: shared.FavoriteStatusAdded}, nil
		}
		return nil, shared.NewInternalError(err, "Failed to add favorite")
	}

	return &dto.ToggleFavoriteResponse{Status: shared.FavoriteStatusAdded}, nil
}

// List returns every favorited word, newest first, optionally restricted to
// one target language.
func (svc *FavoriteService) List(visitorID string, targetLanguageID *uint) (*dto.WordCollectionResponse, error) {
	words, err := svc.favoriteRepo.ListFavoriteWords(visitorID, targetLanguageID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to list favorites")
	}

	responses := make([]dto.WordResponse, 0, len(words))
	for _, word := range words {
		responses = append(responses, wordToResponse(word, true))
	}

	return &dto.WordCollectionResponse{Words: responses, Total: len(responses)}, nil
}
