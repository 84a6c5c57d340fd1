package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"talent-hub/internal/database"
)

// Store keeps the snapshot in a single JSON file. Writes go through a temp
// file and rename so a crash mid-write never truncates the document.
type Store struct {
	path string
}

func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty data file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) Load(_ context.Context) (*database.Snapshot, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return database.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	snap := database.NewSnapshot()
	if err := json.Unmarshal(b, snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	if snap.Sequences == nil {
		snap.Sequences = make(map[string]int64)
	}
	return snap, nil
}

func (s *Store) Save(_ context.Context, snap *database.Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}

	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

func (s *Store) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}

func (s *Store) Close() error { return nil }
