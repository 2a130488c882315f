// Package history persists the map of selected titles in a key-value store.
//
// Every mutation is a full read-modify-write of the single JSON value stored
// under one key. All access goes through Store so the pattern stays in one
// place.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/database"
	"github.com/akyairhashvil/searchhist/internal/models"
)

// ErrCorruptHistory is returned when the stored value is not a JSON object.
// The stored value is left untouched; Clear is the explicit reset.
var ErrCorruptHistory = errors.New("stored history is corrupt")

// Recorder is the history surface the UI depends on.
//
//go:generate mockgen -source=store.go -destination=../tui/mock_recorder_test.go -package=tui
type Recorder interface {
	Load(ctx context.Context) (*models.HistoryMap, error)
	Upsert(ctx context.Context, title string) (*models.HistoryMap, error)
	Delete(ctx context.Context, title string) (bool, *models.HistoryMap, error)
	Clear(ctx context.Context) error
}

type Store struct {
	mu     sync.Mutex
	kv     database.KeyValueStore
	key    string
	now    func() time.Time
	logger *zap.Logger
}

var _ Recorder = (*Store)(nil)

type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func NewStore(kv database.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    config.HistoryKey,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored map. A missing key yields an empty map.
func (s *Store) Load(ctx context.Context) (*models.HistoryMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// Upsert records title with the current timestamp, overwriting any earlier
// entry for the same title in place.
func (s *Store) Upsert(ctx context.Context, title string) (*models.HistoryMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	h.Set(title, models.HistoryEntry{Title: title, Time: FormatTimestamp(s.now())})
	if err := s.write(ctx, h); err != nil {
		return nil, err
	}
	s.logger.Debug("history entry saved", zap.String("title", title), zap.Int("entries", h.Len()))
	return h, nil
}

// Delete removes title if present and reports whether it was removed along
// with the resulting map. A missing title leaves the store untouched.
func (s *Store) Delete(ctx context.Context, title string) (bool, *models.HistoryMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.read(ctx)
	if err != nil {
		return false, nil, err
	}
	if !h.Delete(title) {
		return false, h, nil
	}
	if err := s.write(ctx, h); err != nil {
		return false, nil, err
	}
	s.logger.Debug("history entry deleted", zap.String("title", title), zap.Int("entries", h.Len()))
	return true, h, nil
}

// Clear deletes the stored key outright.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.DeleteSetting(ctx, s.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	s.logger.Debug("history cleared")
	return nil
}

// Import upserts entries in order, keeping their recorded timestamps.
func (s *Store) Import(ctx context.Context, entries []models.HistoryEntry) (*models.HistoryMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Title == "" {
			continue
		}
		if e.Time == "" {
			e.Time = FormatTimestamp(s.now())
		}
		h.Set(e.Title, e)
	}
	if err := s.write(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Store) read(ctx context.Context) (*models.HistoryMap, error) {
	raw, ok, err := s.kv.GetSetting(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	h := models.NewHistoryMap()
	if !ok {
		return h, nil
	}
	if err := json.Unmarshal([]byte(raw), h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}
	return h, nil
}

func (s *Store) write(ctx context.Context, h *models.HistoryMap) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.SetSetting(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
