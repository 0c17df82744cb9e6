package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/kelimeapp/vocab_api/model"
	"github.com/kelimeapp/vocab_api/services/repositories"
	"github.com/kelimeapp/vocab_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFavoriteService(db)
	seedWord(t, db, 5, 1, "bread")

	favoriteRepo := repositories.NewFavoriteRepository(db)

	res, err := svc.Toggle("v1", 5)
	require.NoError(t, err)
	assert.Equal(t, shared.FavoriteStatusAdded, res.Status)

	count, err := favoriteRepo.CountFavorites("v1", 5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	res, err = svc.Toggle("v1", 5)
	require.NoError(t, err)
	assert.Equal(t, shared.FavoriteStatusRemoved, res.Status)

	count, err = favoriteRepo.CountFavorites("v1", 5)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestToggleUnknownWord(t *testing.T) {
	svc := newTestFavoriteService(newTestDB(t))

	_, err := svc.Toggle("v1", 99)
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestDuplicateFavoriteInsertFails(t *testing.T) {
	db := newTestDB(t)
	seedWord(t, db, 1, 1, "hello")

	favoriteRepo := repositories.NewFavoriteRepository(db)

	first := &model.Favorite{VisitorID: "v1", WordID: 1, TargetLanguageID: 1}
	require.NoError(t, favoriteRepo.CreateFavorite(first))

	second := &model.Favorite{VisitorID: "v1", WordID: 1, TargetLanguageID: 1}
	err := favoriteRepo.CreateFavorite(second)
	require.Error(t, err)
	assert.True(t, repositories.IsDuplicateKeyError(err))

	count, err := favoriteRepo.CountFavorites("v1", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")
	seedWord(t, db, 2, 1, "water")

	_, err := svc.Toggle("v1", 1)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.Toggle("v1", 2)
	require.NoError(t, err)

	list, err := svc.List("v1", nil)
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)

	assert.EqualValues(t, 2, list.Words[0].ID)
	assert.EqualValues(t, 1, list.Words[1].ID)
	for _, word := range list.Words {
		assert.True(t, word.IsFavorite)
	}
}

func TestListLanguageFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")
	seedWord(t, db, 2, 2, "Wasser")

	_, err := svc.Toggle("v1", 1)
	require.NoError(t, err)
	_, err = svc.Toggle("v1", 2)
	require.NoError(t, err)

	languageID := uint(2)
	list, err := svc.List("v1", &languageID)
	require.NoError(t, err)

	require.Equal(t, 1, list.Total)
	assert.EqualValues(t, 2, list.Words[0].ID)
	assert.EqualValues(t, 2, list.Words[0].TargetLanguageID)
}

func TestFavoriteIsolationBetweenVisitors(t *testing.T) {
	db := newTestDB(t)
	svc := newTestFavoriteService(db)
	seedWord(t, db, 1, 1, "hello")

	_, err := svc.Toggle("visitor-a", 1)
	require.NoError(t, err)

	listB, err := svc.List("visitor-b", nil)
	require.NoError(t, err)
	assert.Zero(t, listB.Total)

	favoriteRepo := repositories.NewFavoriteRepository(db)
	favorited, err := favoriteRepo.FavoritedSet("visitor-b", []uint{1})
	require.NoError(t, err)
	assert.False(t, favorited[1])
}
