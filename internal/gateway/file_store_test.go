package gateway_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finboard/internal/domain"
	"finboard/internal/gateway"
	"finboard/internal/usecase"
)

func TestFileStore_LoadBeforeAnySaveReportsNotFound(t *testing.T) {
	store := gateway.NewFileStore(t.TempDir())
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, usecase.ErrStateNotFound)
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	store := gateway.NewFileStore(t.TempDir())
	want := domain.SeedData()

	require.NoError(t, store.Save(context.Background(), want))
	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_SaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := gateway.NewFileStore(dir)

	require.NoError(t, store.Save(context.Background(), domain.SeedData()))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "financial-data.json", entries[0].Name())
}

func TestFileStore_SaveLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	store := gateway.NewFileStore(dir)

	require.NoError(t, store.Save(context.Background(), domain.SeedData()))
	require.NoError(t, store.Save(context.Background(), domain.FinancialData{
		Expenses: []domain.Expense{}, Debts: []domain.Debt{},
		Income: []domain.Income{}, Assets: []domain.Asset{},
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the temp file must be renamed away")
}

func TestFileStore_CorruptDocumentIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "financial-data.json"), []byte("{torn"), 0o644))

	store := gateway.NewFileStore(dir)
	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "parse state file")
}
