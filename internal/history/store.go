// Package history persists the outcome of publish runs so repeated
// invocations can report what already went out and where.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// ErrNotFound is returned when no publish record exists for a slug.
var ErrNotFound = errors.New("history: record not found")

// Entry is one destination outcome from a publish run.
type Entry struct {
	Slug        string
	Destination string
	URL         string
	Success     bool
	Error       string
	PublishedAt time.Time
}

type recordModel struct {
	bun.BaseModel `bun:"table:publish_records,alias:pr"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Slug        string    `bun:"slug,notnull"`
	Destination string    `bun:"destination,notnull"`
	URL         string    `bun:"url"`
	Success     bool      `bun:"success,notnull"`
	Error       string    `bun:"error"`
	PublishedAt time.Time `bun:"published_at,notnull"`
}

// Store is a Bun-backed publish history over sqlite.
type Store struct {
	db     *bun.DB
	owned  bool
	closed bool
}

// Open creates a store on the sqlite database at path, creating the schema
// when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	sqldb, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&_fk=1", path))
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	store := &Store{db: bun.NewDB(sqldb, sqlitedialect.New()), owned: true}
	if err := store.Init(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an existing database handle. The caller keeps ownership of
// the connection.
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// Init creates the publish_records table when it does not exist.
func (s *Store) Init(ctx context.Context) error {
	if s.db == nil {
		return errors.New("history: store requires a database")
	}
	if _, err := s.db.NewCreateTable().Model((*recordModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("history: create schema: %w", err)
	}
	return nil
}

// Record appends one destination outcome.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if s.db == nil {
		return errors.New("history: store requires a database")
	}

	model := recordModel{
		Slug:        entry.Slug,
		Destination: entry.Destination,
		URL:         entry.URL,
		Success:     entry.Success,
		Error:       entry.Error,
		PublishedAt: entry.PublishedAt,
	}
	if model.PublishedAt.IsZero() {
		model.PublishedAt = time.Now().UTC()
	}

	if _, err := s.db.NewInsert().Model(&model).Exec(ctx); err != nil {
		return fmt.Errorf("history: record %s/%s: %w", entry.Slug, entry.Destination, err)
	}
	return nil
}

// ForSlug returns every recorded outcome for a slug, oldest first.
func (s *Store) ForSlug(ctx context.Context, slug string) ([]Entry, error) {
	if s.db == nil {
		return nil, errors.New("history: store requires a database")
	}

	var models []recordModel
	err := s.db.NewSelect().
		Model(&models).
		Where("slug = ?", slug).
		Order("published_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: load %s: %w", slug, err)
	}

	entries := make([]Entry, 0, len(models))
	for _, m := range models {
		entries = append(entries, modelToEntry(&m))
	}
	return entries, nil
}

// Latest returns the most recent outcome for a slug and destination.
func (s *Store) Latest(ctx context.Context, slug, destination string) (Entry, error) {
	if s.db == nil {
		return Entry{}, errors.New("history: store requires a database")
	}

	var model recordModel
	err := s.db.NewSelect().
		Model(&model).
		Where("slug = ?", slug).
		Where("destination = ?", destination).
		Order("published_at DESC", "id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("history: latest %s/%s: %w", slug, destination, err)
	}
	return modelToEntry(&model), nil
}

// Close releases the underlying connection for stores opened via Open.
func (s *Store) Close() error {
	if s.db == nil || s.closed || !s.owned {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func modelToEntry(m *recordModel) Entry {
	return Entry{
		Slug:        m.Slug,
		Destination: m.Destination,
		URL:         m.URL,
		Success:     m.Success,
		Error:       m.Error,
		PublishedAt: m.PublishedAt,
	}
}
