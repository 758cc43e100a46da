package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/wordslearning/pkg/models"
	"github.com/jmoiron/sqlx"
)

// ErrListExists is returned when creating a list under a taken name
var ErrListExists = errors.New("words list already exists")

type listItemRow struct {
	ListName string `db:"list_name"`
	wordRow
}

// LoadWordsLists returns every list with its words in insertion order.
// Items whose word is no longer stored are skipped.
func (r *WordRepository) LoadWordsLists(ctx context.Context) ([]models.WordsList, error) {
	var lists []models.WordsList
	if err := r.db.SelectContext(ctx, &lists, "SELECT name, comment FROM words_lists ORDER BY name"); err != nil {
		return nil, fmt.Errorf("failed to get words lists: %w", err)
	}

	var items []listItemRow
	err := r.db.SelectContext(ctx, &items, `
		SELECT li.list_name, w.foreign_text, w.native, w.transcription, w.part_of_speech,
			w.f_to_n_remark, w.n_to_f_remark,
			w.ftn_mastery_percent, w.ftn_correct_count, w.ftn_incorrect_count, w.ftn_last_answer_correct, w.ftn_last_answer_at,
			w.ntf_mastery_percent, w.ntf_correct_count, w.ntf_incorrect_count, w.ntf_last_answer_correct, w.ntf_last_answer_at
		FROM words_list_items li
		JOIN words w ON w.foreign_text = li.foreign_text
		ORDER BY li.list_name, li.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get words list items: %w", err)
	}

	byName := make(map[string]int, len(lists))
	for i := range lists {
		lists[i].Words = []models.Word{}
		byName[lists[i].Name] = i
	}
	for _, item := range items {
		if i, ok := byName[item.ListName]; ok {
			lists[i].Words = append(lists[i].Words, item.toWord())
		}
	}
	return lists, nil
}

// CreateWordsList stores a new list referencing words by their foreign text
func (r *WordRepository) CreateWordsList(ctx context.Context, list models.WordsList) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM words_lists WHERE name = ?"), list.Name); err != nil {
		return fmt.Errorf("failed to check words list: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%q: %w", list.Name, ErrListExists)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO words_lists (name, comment) VALUES (?, ?)"), list.Name, list.Comment); err != nil {
		return fmt.Errorf("failed to create words list: %w", err)
	}
	if err := insertListItems(ctx, tx, list); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words list: %w", err)
	}
	return nil
}

// DeleteWordsList removes a list; its words stay in the collection
func (r *WordRepository) DeleteWordsList(ctx context.Context, name string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM words_list_items WHERE list_name = ?"), name); err != nil {
		return fmt.Errorf("failed to delete words list items: %w", err)
	}
	result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM words_lists WHERE name = ?"), name)
	if err != nil {
		return fmt.Errorf("failed to delete words list: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("words list %q: %w", name, ErrNotFound)
	}

	return tx.Commit()
}

// UpdateWordsList renames a list and replaces its comment and words
func (r *WordRepository) UpdateWordsList(ctx context.Context, origName string, list models.WordsList) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM words_list_items WHERE list_name = ?"), origName); err != nil {
		return fmt.Errorf("failed to clear words list items: %w", err)
	}

	result, err := tx.ExecContext(ctx, tx.Rebind("UPDATE words_lists SET name = ?, comment = ? WHERE name = ?"),
		list.Name, list.Comment, origName)
	if err != nil {
		return fmt.Errorf("failed to update words list: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("words list %q: %w", origName, ErrNotFound)
	}

	if err := insertListItems(ctx, tx, list); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit words list: %w", err)
	}
	return nil
}

func insertListItems(ctx context.Context, tx *sqlx.Tx, list models.WordsList) error {
	query := tx.Rebind("INSERT INTO words_list_items (list_name, foreign_text, position) VALUES (?, ?, ?)")
	for i, foreign := range list.Foreigns() {
		if _, err := tx.ExecContext(ctx, query, list.Name, foreign, i); err != nil {
			return fmt.Errorf("failed to add %q to words list: %w", foreign, err)
		}
	}
	return nil
}
