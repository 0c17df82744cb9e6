package dto

type ToggleFavoriteRequest struct {
	VisitorID string `json:"visitor_id" validate:"required,max=64"`
	WordID    uint   `json:"word_id" validate:"required,min=1"`
}

func (r ToggleFavoriteRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ToggleFavoriteResponse struct {
	Status string `json:"status"`
}

type FavoriteListRequest struct {
	TargetLanguageID uint `query:"target_language_id" json:"target_language_id" validate:"omitempty,min=1"`
}

func (r FavoriteListRequest) Validate() error {
	return GetValidator().Struct(r)
}
