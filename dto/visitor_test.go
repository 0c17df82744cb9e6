package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitVisitorRequestValidation(t *testing.T) {
	assert.NoError(t, InitVisitorRequest{}.Validate())
	assert.NoError(t, InitVisitorRequest{Platform: "android", SourceLanguageID: 2}.Validate())
	assert.Error(t, InitVisitorRequest{Platform: "windows"}.Validate())
}

func TestUpdatePreferencesRejectsPartialUpdate(t *testing.T) {
	valid := UpdatePreferencesRequest{VisitorID: "v1", SourceLanguageID: 1, TargetLanguageID: 2}
	assert.NoError(t, valid.Validate())

	missingTarget := UpdatePreferencesRequest{VisitorID: "v1", SourceLanguageID: 1}
	err := missingTarget.Validate()
	require.Error(t, err)
	assert.Contains(t, ValidationMessage(err), "TargetLanguageID is required")

	missingSource := UpdatePreferencesRequest{VisitorID: "v1", TargetLanguageID: 2}
	assert.Error(t, missingSource.Validate())

	missingVisitor := UpdatePreferencesRequest{SourceLanguageID: 1, TargetLanguageID: 2}
	assert.Error(t, missingVisitor.Validate())
}

func TestToggleFavoriteRequestValidation(t *testing.T) {
	assert.NoError(t, ToggleFavoriteRequest{VisitorID: "v1", WordID: 5}.Validate())

	err := ToggleFavoriteRequest{WordID: 5}.Validate()
	require.Error(t, err)
	assert.Contains(t, ValidationMessage(err), "VisitorID is required")

	err = ToggleFavoriteRequest{VisitorID: "v1"}.Validate()
	require.Error(t, err)
	assert.Contains(t, ValidationMessage(err), "WordID is required")
}

func TestRandomWordsRequestValidation(t *testing.T) {
	assert.NoError(t, RandomWordsRequest{TargetLanguageID: 1}.Validate())
	assert.NoError(t, RandomWordsRequest{TargetLanguageID: 1, Mode: "favorites_all"}.Validate())

	assert.Error(t, RandomWordsRequest{}.Validate())
	assert.Error(t, RandomWordsRequest{TargetLanguageID: 1, Mode: "shuffle"}.Validate())
	assert.Error(t, RandomWordsRequest{TargetLanguageID: 1, Count: 500}.Validate())
}
