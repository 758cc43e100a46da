package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/wordslearning/internal/spaced_repetition"
	"github.com/example/wordslearning/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "data", "words.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleWords() []models.Word {
	goWord := models.NewWord("go", []string{"идти", "ехать (на транспорте)"}, "ɡəʊ", testNow.AddDate(0, 0, -3))
	goWord.FToNRemark = "irregular"
	goWord.ForeignToNative.Update(true, 10, testNow.AddDate(0, 0, -1))
	goWord.ForeignToNative.Update(false, -20, testNow)
	goWord.NativeToForeign.Update(true, 30, testNow)

	table := models.NewWord("table", []string{"стол"}, "ˈteɪbl", testNow)
	table.PartOfSpeech = models.PartOfSpeechNoun

	return []models.Word{goWord, table}
}

func TestWordRepository_SaveAndReadWords(t *testing.T) {
	ctx := context.Background()
	repo := NewWordRepository(newTestDB(t))

	words := sampleWords()
	require.NoError(t, repo.SaveWords(ctx, words))

	got, err := repo.ReadWords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i, want := range words {
		assert.Equal(t, want.Foreign, got[i].Foreign)
		assert.Equal(t, want.Native, got[i].Native)
		assert.Equal(t, want.Transcription, got[i].Transcription)
		assert.Equal(t, want.PartOfSpeech, got[i].PartOfSpeech)
		assert.Equal(t, want.FToNRemark, got[i].FToNRemark)

		for _, dir := range []models.Direction{models.ForeignToNative, models.NativeToForeign} {
			wantStat, gotStat := want.Statistic(dir), got[i].Statistic(dir)
			assert.Equal(t, wantStat.MasteryPercent, gotStat.MasteryPercent)
			assert.Equal(t, wantStat.CorrectCount, gotStat.CorrectCount)
			assert.Equal(t, wantStat.IncorrectCount, gotStat.IncorrectCount)
			assert.Equal(t, wantStat.LastAnswerCorrect, gotStat.LastAnswerCorrect)
			assert.True(t, wantStat.LastAnswerAt.Equal(gotStat.LastAnswerAt))
			assert.Equal(t,
				spaced_repetition.Rating(*wantStat, testNow),
				spaced_repetition.Rating(*gotStat, testNow),
			)
		}
	}
}

func TestWordRepository_SaveWordsReplacesCollection(t *testing.T) {
	ctx := context.Background()
	repo := NewWordRepository(newTestDB(t))

	require.NoError(t, repo.SaveWords(ctx, sampleWords()))
	require.NoError(t, repo.SaveWords(ctx, sampleWords()[1:]))

	got, err := repo.ReadWords(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "table", got[0].Foreign)
}

func TestWordRepository_UpdateWord(t *testing.T) {
	ctx := context.Background()
	repo := NewWordRepository(newTestDB(t))
	require.NoError(t, repo.SaveWords(ctx, sampleWords()))
	require.NoError(t, repo.CreateWordsList(ctx, models.WordsList{Name: "verbs", Words: sampleWords()[:1]}))

	err := repo.UpdateWord(ctx, "go", models.WordEdit{
		Foreign:       "go on",
		Native:        []string{"продолжать"},
		Transcription: "ɡəʊ ɒn",
	})
	require.NoError(t, err)

	w, err := repo.GetWord(ctx, "go on")
	require.NoError(t, err)
	assert.Equal(t, []string{"продолжать"}, w.Native)
	assert.Equal(t, 1, w.ForeignToNative.CorrectCount)
	assert.Equal(t, 1, w.ForeignToNative.IncorrectCount)

	_, err = repo.GetWord(ctx, "go")
	assert.ErrorIs(t, err, ErrNotFound)

	lists, err := repo.LoadWordsLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	require.Len(t, lists[0].Words, 1)
	assert.Equal(t, "go on", lists[0].Words[0].Foreign)
}

func TestWordRepository_UpdateMissingWord(t *testing.T) {
	repo := NewWordRepository(newTestDB(t))

	err := repo.UpdateWord(context.Background(), "missing", models.WordEdit{Foreign: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}
