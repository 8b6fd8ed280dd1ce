package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"finboard/internal/domain"
	"finboard/internal/usecase"
)

// storageKey is the fixed key the aggregate lives under inside the
// data directory. All state is one document.
const storageKey = "financial-data.json"

// FileStore persists the aggregate as a single JSON document on local
// disk. It implements usecase.StateRepository.
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at dataDir.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, storageKey)}
}

// Load reads the persisted aggregate. A missing document reports
// usecase.ErrStateNotFound so the caller can fall back to seed data.
func (s *FileStore) Load(ctx context.Context) (domain.FinancialData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.FinancialData{}, usecase.ErrStateNotFound
	}
	if err != nil {
		return domain.FinancialData{}, fmt.Errorf("read state file: %w", err)
	}

	var data domain.FinancialData
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.FinancialData{}, fmt.Errorf("parse state file: %w", err)
	}
	return data, nil
}

// Save writes the aggregate atomically: the document lands in a temp
// file first and replaces the stored one by rename, so a crash mid
// write never leaves a torn document behind.
func (s *FileStore) Save(ctx context.Context, data domain.FinancialData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
