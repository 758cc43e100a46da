package excel

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/wordslearning/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testNow = time.Date(2024, 5, 15, 14, 30, 0, 0, time.UTC)

const testCSV = `foreign,native,transcription,part_of_speech,f_to_n_remark,n_to_f_remark
Движение,,
go (went gone),"идти (пешком), ехать",ɡəʊ,verb,,irregular
table,стол,ˈteɪbl,noun
,стул
go,ходить
# comment line
where,где,weə,question_word,,
`

func TestParseCSV(t *testing.T) {
	words, result, err := ParseCSV(strings.NewReader(testCSV), DefaultImportConfig(), testNow)
	require.NoError(t, err)

	require.Len(t, words, 3)
	assert.Equal(t, 5, result.TotalProcessed)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)

	goWord := words[0]
	assert.Equal(t, "go", goWord.Foreign)
	assert.Equal(t, []string{"идти (пешком)", "ехать"}, goWord.Native)
	assert.Equal(t, "ɡəʊ", goWord.Transcription)
	assert.Equal(t, models.PartOfSpeechVerb, goWord.PartOfSpeech)
	assert.Equal(t, "irregular", goWord.NToFRemark)
	assert.Equal(t, testNow, goWord.ForeignToNative.LastAnswerAt)
	assert.True(t, goWord.NativeToForeign.LastAnswerCorrect)

	assert.Equal(t, models.PartOfSpeechNoun, words[1].PartOfSpeech)
	assert.Equal(t, models.PartOfSpeechQuestionWord, words[2].PartOfSpeech)
}

func TestImportWords_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Foreign", "Native", "Transcription", "Part of speech"},
		{"cat", "кошка, кот", "kæt", "noun"},
		{"run", "бежать", "rʌn", ""},
	}
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	config := DefaultImportConfig()
	config.FilePath = path

	words, result, err := ImportWords(config, testNow)
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, []string{"кошка", "кот"}, words[0].Native)
	assert.Equal(t, models.PartOfSpeechVerb, words[1].PartOfSpeech)
}

func TestImportWords_MissingFile(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.csv")

	_, _, err := ImportWords(config, testNow)
	assert.Error(t, err)
}

func TestMergeInto(t *testing.T) {
	existing := []models.Word{models.NewWord("go", []string{"идти"}, "", testNow)}
	existing[0].ForeignToNative.Update(true, 40, testNow)

	imported := []models.Word{
		models.NewWord("go", []string{"ехать"}, "", testNow),
		models.NewWord("cat", []string{"кошка"}, "", testNow),
	}

	result := &ImportResult{}
	merged := MergeInto(existing, imported, result)

	require.Len(t, merged, 2)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"идти"}, merged[0].Native)
	assert.Equal(t, float64(40), merged[0].ForeignToNative.MasteryPercent)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 5, columnToIndex("f"))
	assert.Equal(t, 26, columnToIndex("AA"))
}
