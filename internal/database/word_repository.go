package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/example/wordslearning/pkg/models"
	"github.com/jmoiron/sqlx"
)

const nativeSeparator = ","

// WordRepository keeps vocabulary entries, their statistics and word lists
type WordRepository struct {
	db *sqlx.DB
}

// NewWordRepository creates a new repository instance
func NewWordRepository(db *sqlx.DB) *WordRepository {
	return &WordRepository{db: db}
}

type wordRow struct {
	Foreign       string `db:"foreign_text"`
	Native        string `db:"native"`
	Transcription string `db:"transcription"`
	PartOfSpeech  string `db:"part_of_speech"`
	FToNRemark    string `db:"f_to_n_remark"`
	NToFRemark    string `db:"n_to_f_remark"`

	FtnMasteryPercent    float64   `db:"ftn_mastery_percent"`
	FtnCorrectCount      int       `db:"ftn_correct_count"`
	FtnIncorrectCount    int       `db:"ftn_incorrect_count"`
	FtnLastAnswerCorrect bool      `db:"ftn_last_answer_correct"`
	FtnLastAnswerAt      time.Time `db:"ftn_last_answer_at"`

	NtfMasteryPercent    float64   `db:"ntf_mastery_percent"`
	NtfCorrectCount      int       `db:"ntf_correct_count"`
	NtfIncorrectCount    int       `db:"ntf_incorrect_count"`
	NtfLastAnswerCorrect bool      `db:"ntf_last_answer_correct"`
	NtfLastAnswerAt      time.Time `db:"ntf_last_answer_at"`
}

const wordColumns = `foreign_text, native, transcription, part_of_speech, f_to_n_remark, n_to_f_remark,
	ftn_mastery_percent, ftn_correct_count, ftn_incorrect_count, ftn_last_answer_correct, ftn_last_answer_at,
	ntf_mastery_percent, ntf_correct_count, ntf_incorrect_count, ntf_last_answer_correct, ntf_last_answer_at`

const insertWordQuery = `
	INSERT INTO words (` + wordColumns + `)
	VALUES (:foreign_text, :native, :transcription, :part_of_speech, :f_to_n_remark, :n_to_f_remark,
		:ftn_mastery_percent, :ftn_correct_count, :ftn_incorrect_count, :ftn_last_answer_correct, :ftn_last_answer_at,
		:ntf_mastery_percent, :ntf_correct_count, :ntf_incorrect_count, :ntf_last_answer_correct, :ntf_last_answer_at)
`

func toRow(w models.Word) wordRow {
	return wordRow{
		Foreign:       w.Foreign,
		Native:        strings.Join(w.Native, nativeSeparator),
		Transcription: w.Transcription,
		PartOfSpeech:  string(w.PartOfSpeech),
		FToNRemark:    w.FToNRemark,
		NToFRemark:    w.NToFRemark,

		FtnMasteryPercent:    w.ForeignToNative.MasteryPercent,
		FtnCorrectCount:      w.ForeignToNative.CorrectCount,
		FtnIncorrectCount:    w.ForeignToNative.IncorrectCount,
		FtnLastAnswerCorrect: w.ForeignToNative.LastAnswerCorrect,
		FtnLastAnswerAt:      w.ForeignToNative.LastAnswerAt,

		NtfMasteryPercent:    w.NativeToForeign.MasteryPercent,
		NtfCorrectCount:      w.NativeToForeign.CorrectCount,
		NtfIncorrectCount:    w.NativeToForeign.IncorrectCount,
		NtfLastAnswerCorrect: w.NativeToForeign.LastAnswerCorrect,
		NtfLastAnswerAt:      w.NativeToForeign.LastAnswerAt,
	}
}

func (r wordRow) toWord() models.Word {
	var native []string
	if r.Native != "" {
		native = strings.Split(r.Native, nativeSeparator)
	}
	return models.Word{
		Foreign:       r.Foreign,
		Native:        native,
		Transcription: r.Transcription,
		PartOfSpeech:  models.ParsePartOfSpeech(r.PartOfSpeech),
		FToNRemark:    r.FToNRemark,
		NToFRemark:    r.NToFRemark,
		ForeignToNative: models.WordStatistic{
			MasteryPercent:    r.FtnMasteryPercent,
			CorrectCount:      r.FtnCorrectCount,
			IncorrectCount:    r.FtnIncorrectCount,
			LastAnswerCorrect: r.FtnLastAnswerCorrect,
			LastAnswerAt:      r.FtnLastAnswerAt,
		},
		NativeToForeign: models.WordStatistic{
			MasteryPercent:    r.NtfMasteryPercent,
			CorrectCount:      r.NtfCorrectCount,
			IncorrectCount:    r.NtfIncorrectCount,
			LastAnswerCorrect: r.NtfLastAnswerCorrect,
			LastAnswerAt:      r.NtfLastAnswerAt,
		},
	}
}

// SaveWords replaces the stored collection with words
func (r *WordRepository) SaveWords(ctx context.Context, words []models.Word) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM words"); err != nil {
		return fmt.Errorf("failed to clear words: %w", err)
	}

	for _, w := range words {
		if _, err := tx.NamedExecContext(ctx, insertWordQuery, toRow(w)); err != nil {
			return fmt.Errorf("failed to save word %q: %w", w.Foreign, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words: %w", err)
	}
	return nil
}

// ReadWords returns all stored words ordered by foreign text
func (r *WordRepository) ReadWords(ctx context.Context) ([]models.Word, error) {
	var rows []wordRow
	err := r.db.SelectContext(ctx, &rows, "SELECT "+wordColumns+" FROM words ORDER BY foreign_text")
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %w", err)
	}

	words := make([]models.Word, 0, len(rows))
	for _, row := range rows {
		words = append(words, row.toWord())
	}
	return words, nil
}

// UpdateWord changes the editable parts of one word, keeping its statistics.
// List membership follows a renamed word.
func (r *WordRepository) UpdateWord(ctx context.Context, foreign string, edit models.WordEdit) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		UPDATE words SET
			foreign_text = ?,
			native = ?,
			transcription = ?,
			f_to_n_remark = ?,
			n_to_f_remark = ?
		WHERE foreign_text = ?
	`)
	result, err := tx.ExecContext(ctx, query,
		edit.Foreign,
		strings.Join(edit.Native, nativeSeparator),
		edit.Transcription,
		edit.FToNRemark,
		edit.NToFRemark,
		foreign,
	)
	if err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("word %q: %w", foreign, ErrNotFound)
	}

	if edit.Foreign != foreign {
		_, err = tx.ExecContext(ctx, tx.Rebind("UPDATE words_list_items SET foreign_text = ? WHERE foreign_text = ?"), edit.Foreign, foreign)
		if err != nil {
			return fmt.Errorf("failed to update list items: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit word update: %w", err)
	}
	return nil
}

// GetWord returns one word by its foreign text
func (r *WordRepository) GetWord(ctx context.Context, foreign string) (*models.Word, error) {
	var row wordRow
	query := r.db.Rebind("SELECT " + wordColumns + " FROM words WHERE foreign_text = ?")
	err := r.db.GetContext(ctx, &row, query, foreign)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %q: %w", foreign, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}

	w := row.toWord()
	return &w, nil
}
