package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	models "github.com/redade943-code/FabiansWelt/internal/models/record"
)

const (
	snapshotKey = "records:all"
	snapshotTTL = 24 * time.Hour
)

const selectAllQuery = `
	SELECT id, country_code, COALESCE(title, ''), COALESCE(info, ''),
	       COALESCE(image_url, ''), COALESCE(audio_url, ''), created_at
	FROM entries
	ORDER BY created_at DESC
`

// Store owns the in-memory list of all records for the lifetime of the
// process. The list is only ever replaced wholesale, never mutated in
// place, so readers can hold a returned slice without locking concerns.
type Store struct {
	postgres *pgxpool.Pool
	redis    *redis.Client
	logger   *zap.SugaredLogger

	mu      sync.RWMutex
	records []models.Record
}

// New creates a record store. The redis client is optional; without it
// every load goes straight to Postgres.
func New(postgres *pgxpool.Pool, redisClient *redis.Client, logger *zap.SugaredLogger) *Store {
	return &Store{
		postgres: postgres,
		redis:    redisClient,
		logger:   logger,
		records:  []models.Record{},
	}
}

// LoadAll fetches every record, newest first, and replaces the snapshot.
// A cached snapshot is served when present. On backend failure the error
// is logged and the empty snapshot installed: browsing stays available
// even when the backend is not.
func (s *Store) LoadAll(ctx context.Context) {
	if cached, ok := s.loadCached(ctx); ok {
		s.replace(cached)
		return
	}

	records, err := s.queryAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to load records, falling back to empty set", "error", err)
		s.replace([]models.Record{})
		return
	}

	s.replace(records)
	s.cache(ctx, records)
}

// Refresh invalidates the cached snapshot and reloads from Postgres.
// Called after every successful submission so the visible list reflects
// the just-created record.
func (s *Store) Refresh(ctx context.Context) {
	if s.redis != nil {
		s.redis.Del(ctx, snapshotKey)
	}

	records, err := s.queryAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to refresh records, falling back to empty set", "error", err)
		s.replace([]models.Record{})
		return
	}

	s.replace(records)
	s.cache(ctx, records)
}

// All returns the current snapshot, newest first.
func (s *Store) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// FilterByCountry returns the records whose country code equals code,
// preserving snapshot order. An empty code yields an empty slice.
func (s *Store) FilterByCountry(code string) []models.Record {
	if code == "" {
		return []models.Record{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := []models.Record{}
	for _, r := range s.records {
		if r.CountryCode == code {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Insert persists one new record and returns it with the
// server-assigned creation timestamp filled in.
func (s *Store) Insert(ctx context.Context, rec models.Record) (*models.Record, error) {
	insertQuery := `
		INSERT INTO entries (id, country_code, title, info, image_url, audio_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := s.postgres.QueryRow(ctx, insertQuery,
		rec.ID, rec.CountryCode, rec.Title, rec.Info, rec.ImageURL, rec.AudioURL,
	).Scan(&rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Store) queryAll(ctx context.Context) ([]models.Record, error) {
	rows, err := s.postgres.Query(ctx, selectAllQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.ID, &r.CountryCode, &r.Title, &r.Info,
			&r.ImageURL, &r.AudioURL, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) replace(records []models.Record) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

func (s *Store) loadCached(ctx context.Context) ([]models.Record, bool) {
	if s.redis == nil {
		return nil, false
	}

	data, err := s.redis.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		return nil, false
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warnw("discarding unreadable cached snapshot", "error", err)
		s.redis.Del(ctx, snapshotKey)
		return nil, false
	}
	return records, true
}

func (s *Store) cache(ctx context.Context, records []models.Record) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(records)
	if err != nil {
		s.logger.Warnw("failed to marshal snapshot for cache", "error", err)
		return
	}
	if err := s.redis.Set(ctx, snapshotKey, data, snapshotTTL).Err(); err != nil {
		// Cache miss on the next load is the only consequence.
		s.logger.Warnw("failed to cache snapshot", "error", err)
	}
}
