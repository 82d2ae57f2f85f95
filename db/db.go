package db

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"procurement/internal/logger"
	"procurement/internal/metrics"
)

// DefaultPrefix namespaces every collection key.
const DefaultPrefix = "tenders_"

// Backend is the storage port: one opaque payload per key.
// Read returns (nil, nil) for a key that was never written.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
}

// Storage translates a collection name into one serialized list of records.
// Every call reads or writes the whole collection.
type Storage struct {
	backend Backend
	prefix  string
	log     *zap.Logger
	metrics *metrics.Storage

	mu sync.Mutex
}

type Option func(*Storage)

func WithPrefix(prefix string) Option {
	return func(s *Storage) { s.prefix = prefix }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Storage) { s.log = logger.OrNop(l) }
}

func WithMetrics(m *metrics.Storage) Option {
	return func(s *Storage) { s.metrics = m }
}

// NewStorage wraps backend. A nil backend yields an unavailable store:
// reads come back empty and writes are skipped.
func NewStorage(backend Backend, opts ...Option) *Storage {
	s := &Storage{backend: backend, prefix: DefaultPrefix, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) Available() bool { return s.backend != nil }

func (s *Storage) Key(collection string) string { return s.prefix + collection }

// Exclusive runs fn while holding the store's write lock. Repositories wrap their
// read-modify-write cycles in it; the lock covers this process only.
func (s *Storage) Exclusive(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Load returns the records stored under collection, or an empty slice when the
// collection is missing, unreadable or the store is unavailable. It never fails.
func Load[T any](ctx context.Context, s *Storage, collection string) []T {
	out := []T{}
	if !s.Available() {
		s.metrics.Read(collection, metrics.ResultSkipped)
		return out
	}

	payload, err := s.backend.Read(ctx, s.Key(collection))
	if err != nil {
		s.readFailed(collection, fmt.Errorf("read: %w", err))
		return out
	}
	if len(payload) == 0 {
		s.metrics.Read(collection, metrics.ResultOK)
		return out
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		s.readFailed(collection, fmt.Errorf("decode: %w", err))
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	s.metrics.Read(collection, metrics.ResultOK)
	return out
}

// Save replaces the whole collection.
func Save[T any](ctx context.Context, s *Storage, collection string, records []T) error {
	const op = "db.Save"

	if !s.Available() {
		s.metrics.Write(collection, metrics.ResultSkipped)
		return nil
	}
	if records == nil {
		records = []T{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		s.metrics.Write(collection, metrics.ResultError)
		return fmt.Errorf("%s %s: encode: %w", op, collection, err)
	}
	if err := s.backend.Write(ctx, s.Key(collection), payload); err != nil {
		s.metrics.Write(collection, metrics.ResultError)
		s.log.Error("failed to save collection",
			logger.String("collection", collection),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s %s: %w", op, collection, err)
	}
	s.metrics.Write(collection, metrics.ResultOK)
	return nil
}

func (s *Storage) readFailed(collection string, err error) {
	s.metrics.Read(collection, metrics.ResultError)
	s.log.Error("failed to read collection, serving it empty",
		logger.String("collection", collection),
		logger.String("key", s.Key(collection)),
		logger.ErrorF(err),
	)
}

// raw access for unprefixed keys such as the language preference
func (s *Storage) readRaw(ctx context.Context, key string) ([]byte, error) {
	if !s.Available() {
		return nil, nil
	}
	return s.backend.Read(ctx, key)
}

func (s *Storage) writeRaw(ctx context.Context, key string, payload []byte) error {
	if !s.Available() {
		return nil
	}
	return s.backend.Write(ctx, key, payload)
}
