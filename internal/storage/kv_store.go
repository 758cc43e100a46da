package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/example/wordslearning/internal/database"
	"github.com/example/wordslearning/pkg/models"
)

// WordsKey is the key the whole vocabulary is stored under
const WordsKey = "wordsForLearning"

// KeyValue is a blob store addressed by key
type KeyValue interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// KeyValueStore keeps the vocabulary as one JSON document.
// It cannot edit single words or keep lists.
type KeyValueStore struct {
	kv KeyValue
}

// NewKeyValueStore creates a store on top of kv
func NewKeyValueStore(kv KeyValue) *KeyValueStore {
	return &KeyValueStore{kv: kv}
}

// SaveWords encodes and stores the whole collection
func (s *KeyValueStore) SaveWords(ctx context.Context, words []models.Word) error {
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}
	return s.kv.Save(ctx, WordsKey, data)
}

// ReadWords returns the stored collection, empty when nothing was saved yet
func (s *KeyValueStore) ReadWords(ctx context.Context) ([]models.Word, error) {
	data, err := s.kv.Load(ctx, WordsKey)
	if errors.Is(err, database.ErrNotFound) {
		return []models.Word{}, nil
	}
	if err != nil {
		return nil, err
	}

	var words []models.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to decode words: %w", err)
	}
	return words, nil
}
