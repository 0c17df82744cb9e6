package dto

type RandomWordsRequest struct {
	TargetLanguageID uint   `query:"target_language_id" json:"target_language_id" validate:"required,min=1"`
	CategoryID       uint   `query:"category_id" json:"category_id" validate:"omitempty,min=1"`
	VisitorID        string `query:"visitor_id" json:"visitor_id" validate:"omitempty,max=64"`
	Count            int    `query:"count" json:"count" validate:"omitempty,min=1,max=50"`
	Mode             string `query:"mode" json:"mode" validate:"omitempty,oneof=all by_category favorites favorites_all"`
}

func (r RandomWordsRequest) Validate() error {
	return GetValidator().Struct(r)
}

type WordResponse struct {
	ID               uint     `json:"id"`
	TargetLanguageID uint     `json:"target_language_id"`
	Text             string   `json:"text"`
	Pronunciation    string   `json:"pronunciation,omitempty"`
	Definition       string   `json:"definition,omitempty"`
	ExampleSentences []string `json:"example_sentences"`
	IsFavorite       bool     `json:"is_favorite"`
}

type WordCollectionResponse struct {
	Words []WordResponse `json:"words"`
	Total int            `json:"total"`
}

type LanguageResponse struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
