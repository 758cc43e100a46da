package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/wordslearning/internal/database"
	"github.com/example/wordslearning/internal/storage/mock"
	"github.com/example/wordslearning/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

type editableStorage struct {
	*mock.MockWordStorage
	*mock.MockWordEditor
}

func newTestService(backend WordStorage, defaults []models.Word) *Service {
	s := NewService(backend, defaults, zap.NewNop())
	s.clock = func() time.Time { return testNow }
	return s
}

func studied(foreign string) models.Word {
	w := models.NewWord(foreign, []string{"стол"}, "", testNow.AddDate(0, 0, -7))
	w.ForeignToNative.Update(true, 50, testNow.AddDate(0, 0, -1))
	return w
}

func TestService_ReadWordsMergesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockWordStorage(ctrl)

	stored := []models.Word{studied("table")}
	defaults := []models.Word{
		models.NewWord("table", []string{"таблица"}, "", time.Time{}),
		models.NewWord("go", []string{"идти"}, "", time.Time{}),
	}
	backend.EXPECT().ReadWords(gomock.Any()).Return(stored, nil)

	words, err := newTestService(backend, defaults).ReadWords(context.Background())
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, "go", words[0].Foreign)
	assert.Equal(t, testNow, words[0].ForeignToNative.LastAnswerAt)
	assert.Zero(t, words[0].ForeignToNative.TotalAnswers())

	assert.Equal(t, "table", words[1].Foreign)
	assert.Equal(t, []string{"стол"}, words[1].Native)
	assert.Equal(t, float64(50), words[1].ForeignToNative.MasteryPercent)
}

func TestService_ReadWordsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockWordStorage(ctrl)
	backend.EXPECT().ReadWords(gomock.Any()).Return(nil, errors.New("disk"))

	_, err := newTestService(backend, nil).ReadWords(context.Background())
	assert.Error(t, err)
}

func TestService_UpdateWordInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := editableStorage{mock.NewMockWordStorage(ctrl), mock.NewMockWordEditor(ctrl)}
	edit := models.WordEdit{Foreign: "desk", Native: []string{"парта"}}

	backend.MockWordEditor.EXPECT().UpdateWord(gomock.Any(), "table", edit).Return(nil)

	require.NoError(t, newTestService(backend, nil).UpdateWord(context.Background(), "table", edit))
}

func TestService_UpdateWordFallsBackToReadModifySave(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := editableStorage{mock.NewMockWordStorage(ctrl), mock.NewMockWordEditor(ctrl)}
	edit := models.WordEdit{Foreign: "go", Native: []string{"идти", "ехать"}, NToFRemark: "verb"}
	defaults := []models.Word{models.NewWord("go", []string{"идти"}, "", time.Time{})}

	backend.MockWordEditor.EXPECT().UpdateWord(gomock.Any(), "go", edit).Return(database.ErrNotFound)
	backend.MockWordStorage.EXPECT().ReadWords(gomock.Any()).Return([]models.Word{studied("table")}, nil)
	backend.MockWordStorage.EXPECT().SaveWords(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, words []models.Word) error {
			require.Len(t, words, 2)
			assert.Equal(t, []string{"идти", "ехать"}, words[0].Native)
			assert.Equal(t, "verb", words[0].NToFRemark)
			return nil
		})

	require.NoError(t, newTestService(backend, defaults).UpdateWord(context.Background(), "go", edit))
}

func TestService_UpdateWordWithoutEditor(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockWordStorage(ctrl)
	backend.EXPECT().ReadWords(gomock.Any()).Return([]models.Word{studied("table")}, nil)

	err := newTestService(backend, nil).UpdateWord(context.Background(), "chair", models.WordEdit{Foreign: "chair"})
	assert.ErrorIs(t, err, ErrWordNotFound)
}

func TestService_DeleteWord(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockWordStorage(ctrl)
	backend.EXPECT().ReadWords(gomock.Any()).Return([]models.Word{studied("chair"), studied("table")}, nil).Times(2)
	backend.EXPECT().SaveWords(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, words []models.Word) error {
			require.Len(t, words, 1)
			assert.Equal(t, "table", words[0].Foreign)
			return nil
		})

	s := newTestService(backend, nil)
	require.NoError(t, s.DeleteWord(context.Background(), "chair"))
	assert.ErrorIs(t, s.DeleteWord(context.Background(), "sofa"), ErrWordNotFound)
}

func TestService_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := newTestService(mock.NewMockWordStorage(ctrl), nil).Lists()
	assert.ErrorIs(t, err, ErrListsNotSupported)

	db, err := database.ConnectSQLite(":memory:")
	require.NoError(t, err)
	defer db.Close()

	lists, err := newTestService(database.NewWordRepository(db), nil).Lists()
	require.NoError(t, err)
	assert.NotNil(t, lists)
}
