package dto

type TranslateRequest struct {
	Text           string `json:"text" validate:"required,max=500"`
	SourceLanguage string `json:"source_language" validate:"required,max=8"`
	TargetLanguage string `json:"target_language" validate:"required,max=8"`
}

func (r TranslateRequest) Validate() error {
	return GetValidator().Struct(r)
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}
