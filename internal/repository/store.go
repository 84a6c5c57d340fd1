package repository

import (
	"context"
	"errors"
	"log"
	"sync"

	"talent-hub/internal/database"
)

// Store holds the live snapshot document and serializes access to it. Every
// repository in this package shares one Store.
//
// Update applies the mutation to a clone and persists the clone before
// swapping it in, so a failed write leaves the prior state untouched and a
// mutation either lands in full or not at all.
type Store struct {
	mu      sync.RWMutex
	doc     *database.Snapshot
	backend database.SnapshotStore
	logger  *log.Logger
}

func Open(ctx context.Context, backend database.SnapshotStore, logger *log.Logger) (*Store, error) {
	if backend == nil {
		return nil, errors.New("nil snapshot backend")
	}
	doc, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Printf("store loaded | members=%d skills=%d scales=%d gradings=%d goals=%d",
			len(doc.Members), len(doc.Skills), len(doc.Scales), len(doc.Gradings), len(doc.Goals))
	}
	return &Store{doc: doc, backend: backend, logger: logger}, nil
}

// View runs fn against the live document under a read lock. fn must not
// mutate the document or retain references past its return.
func (s *Store) View(fn func(doc *database.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Update clones the document, applies fn, persists the result and swaps it
// in. Errors from fn propagate unchanged so repositories can surface their
// sentinel errors through it.
func (s *Store) Update(ctx context.Context, fn func(doc *database.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.doc.Clone()
	if err != nil {
		return err
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := s.backend.Save(ctx, next); err != nil {
		if s.logger != nil {
			s.logger.Printf("store persist failed | error=%v", err)
		}
		return err
	}
	s.doc = next
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) Close() error {
	return s.backend.Close()
}
