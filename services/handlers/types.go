package handlers

import (
	"github.com/kelimeapp/vocab_api/dto"
)

type VisitorServiceInterface interface {
	InitVisitor(req dto.InitVisitorRequest) (*dto.InitVisitorResponse, error)
	GetVisitor(visitorID string) (*dto.VisitorResponse, error)
	UpdatePreferences(visitorID string, sourceLanguageID, targetLanguageID uint) error
}

type WordServiceInterface interface {
	Random(req dto.RandomWordsRequest) (*dto.WordCollectionResponse, error)
	Get(wordID uint, visitorID string) (*dto.WordResponse, error)
	ListSourceLanguages() ([]dto.LanguageResponse, error)
	ListTargetLanguages() ([]dto.LanguageResponse, error)
	ListCategories() ([]dto.CategoryResponse, error)
}

type FavoriteServiceInterface interface {
	Toggle(visitorID string, wordID uint) (*dto.ToggleFavoriteResponse, error)
	List(visitorID string, targetLanguageID *uint) (*dto.WordCollectionResponse, error)
}

type TranslateServiceInterface interface {
	Translate(req dto.TranslateRequest) (*dto.TranslateResponse, error)
}
