package services

import (
	"net/http"
	"testing"

	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomNeverLeavesLanguageFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWordService(db)
	seedWord(t, db, 1, 1, "hello")
	seedWord(t, db, 2, 1, "water")
	seedWord(t, db, 3, 1, "bread")
	seedWord(t, db, 4, 2, "Wasser")
	seedWord(t, db, 5, 2, "Hund")

	res, err := svc.Random(dto.RandomWordsRequest{TargetLanguageID: 1, Count: 10})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	for _, word := range res.Words {
		assert.EqualValues(t, 1, word.TargetLanguageID)
	}
}

func TestRandomTruncatesToCount(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWordService(db)
	for id := uint(1); id <= 8; id++ {
		seedWord(t, db, id, 1, "word")
	}

	res, err := svc.Random(dto.RandomWordsRequest{TargetLanguageID: 1, Count: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)

	seen := make(map[uint]bool)
	for _, word := range res.Words {
		assert.False(t, seen[word.ID])
		seen[word.ID] = true
	}
}

func TestRandomByCategoryIntersection(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWordService(db)
	// Three words in language 2 carry category 7; noise in other languages
	// and categories must never leak in.
	seedWord(t, db, 1, 2, "eins", 7)
	seedWord(t, db, 2, 2, "zwei", 7)
	seedWord(t, db, 3, 2, "drei", 7)
	seedWord(t, db, 4, 2, "vier", 8)
	seedWord(t, db, 5, 1, "one", 7)

	res, err := svc.Random(dto.RandomWordsRequest{TargetLanguageID: 2, CategoryID: 7, Count: 10})
	require.NoError(t, err)

	require.Equal(t, 3, res.Total)
	for _, word := range res.Words {
		assert.EqualValues(t, 2, word.TargetLanguageID)
		assert.Contains(t, []uint{1, 2, 3}, word.ID)
	}
}

func TestRandomEmptyPoolIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestWordService(db)
	seedWord(t, db, 1, 1, "hello", 1)

	_, err := svc.Random(dto.RandomWordsRequest{TargetLanguageID: 1, CategoryID: 42})
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestRandomFavoritesModeRequiresVisitor(t *testing.T) {
	svc := newTestWordService(newTestDB(t))

	_, err := svc.Random(dto.RandomWordsRequest{TargetLanguageID: 1, Mode: shared.SelectionModeFavorites})
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestRandomFavoritesInLanguage(t *testing.T) {
	db := newTestDB(t)
	wordSvc := newTestWordService(db)
	favoriteSvc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")
	seedWord(t, db, 2, 1, "water")
	seedWord(t, db, 3, 2, "Wasser")

	for _, wordID := range []uint{1, 3} {
		_, err := favoriteSvc.Toggle("v1", wordID)
		require.NoError(t, err)
	}

	res, err := wordSvc.Random(dto.RandomWordsRequest{
		TargetLanguageID: 1,
		VisitorID:        "v1",
		Mode:             shared.SelectionModeFavorites,
	})
	require.NoError(t, err)

	require.Equal(t, 1, res.Total)
	assert.EqualValues(t, 1, res.Words[0].ID)
	assert.True(t, res.Words[0].IsFavorite)
}

func TestRandomFavoritesAcrossLanguages(t *testing.T) {
	db := newTestDB(t)
	wordSvc := newTestWordService(db)
	favoriteSvc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")
	seedWord(t, db, 2, 2, "Wasser")

	for _, wordID := range []uint{1, 2} {
		_, err := favoriteSvc.Toggle("v1", wordID)
		require.NoError(t, err)
	}

	res, err := wordSvc.Random(dto.RandomWordsRequest{
		TargetLanguageID: 1,
		VisitorID:        "v1",
		Mode:             shared.SelectionModeFavoritesAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestRandomAnnotatesOnlyRequestingVisitor(t *testing.T) {
	db := newTestDB(t)
	wordSvc := newTestWordService(db)
	favoriteSvc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")
	seedWord(t, db, 2, 1, "water")

	_, err := favoriteSvc.Toggle("visitor-a", 1)
	require.NoError(t, err)

	res, err := wordSvc.Random(dto.RandomWordsRequest{TargetLanguageID: 1, VisitorID: "visitor-a"})
	require.NoError(t, err)
	favorites := 0
	for _, word := range res.Words {
		if word.IsFavorite {
			favorites++
			assert.EqualValues(t, 1, word.ID)
		}
	}
	assert.Equal(t, 1, favorites)

	res, err = wordSvc.Random(dto.RandomWordsRequest{TargetLanguageID: 1, VisitorID: "visitor-b"})
	require.NoError(t, err)
	for _, word := range res.Words {
		assert.False(t, word.IsFavorite)
	}
}

func TestRandomWithoutVisitorAnnotatesNothing(t *testing.T) {
	db := newTestDB(t)
	wordSvc := newTestWordService(db)
	favoriteSvc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")

	_, err := favoriteSvc.Toggle("v1", 1)
	require.NoError(t, err)

	res, err := wordSvc.Random(dto.RandomWordsRequest{TargetLanguageID: 1})
	require.NoError(t, err)
	for _, word := range res.Words {
		assert.False(t, word.IsFavorite)
	}
}

func TestGetWord(t *testing.T) {
	db := newTestDB(t)
	wordSvc := newTestWordService(db)
	favoriteSvc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")

	word, err := wordSvc.Get(1, "")
	require.NoError(t, err)
	assert.Equal(t, "hello", word.Text)
	assert.False(t, word.IsFavorite)

	_, err = favoriteSvc.Toggle("v1", 1)
	require.NoError(t, err)

	word, err = wordSvc.Get(1, "v1")
	require.NoError(t, err)
	assert.True(t, word.IsFavorite)
}

func TestGetWordNotFound(t *testing.T) {
	svc := newTestWordService(newTestDB(t))

	_, err := svc.Get(99, "")
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}
