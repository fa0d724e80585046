package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// InMemoryDSN is the default per-process store location. A file path can be
// supplied instead to keep the database across runs.
const InMemoryDSN = "file::memory:?cache=shared"

type Config struct {
	Path string `split_words:"true" default:"file::memory:?cache=shared"`
}

// Store is the embedded relational store behind the tool layer. It is
// process-local and exclusively owned by one conversation, so no locking or
// reconnection logic exists here.
type Store struct {
	db  *bun.DB
	now func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for prospect timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open connects to the SQLite database at cfg.Path (in-memory by default),
// creates the schema, and loads the seed data if the tables are empty.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	dsn := strings.TrimSpace(cfg.Path)
	if dsn == "" {
		dsn = InMemoryDSN
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A shared in-memory database vanishes when its last connection closes.
	sqldb.SetMaxOpenConns(1)
	sqldb.SetConnMaxIdleTime(0)

	s := &Store{
		db:  bun.NewDB(sqldb, sqlitedialect.New()),
		now: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if err := s.createTables(ctx); err != nil {
		_ = s.db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := s.seed(ctx); err != nil {
		_ = s.db.Close()
		return nil, fmt.Errorf("seed data: %w", err)
	}

	return s, nil
}

// MustOpen is Open for startup wiring.
func MustOpen(ctx context.Context, cfg Config, opts ...Option) *Store {
	s, err := Open(ctx, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*Unit)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	if _, err := s.db.NewCreateTable().
		Model((*Prospect)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	if _, err := s.db.NewCreateTable().
		Model((*Amenity)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return err
	}

	if _, err := s.db.NewCreateTable().
		Model((*TourBooking)(nil)).
		IfNotExists().
		ForeignKey(`("prospect_id") REFERENCES "prospects" ("prospect_id")`).
		ForeignKey(`("unit_id") REFERENCES "units" ("id")`).
		Exec(ctx); err != nil {
		return err
	}

	return nil
}

func (s *Store) seed(ctx context.Context) error {
	count, err := s.db.NewSelect().Model((*Unit)(nil)).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		// File-backed database that was seeded on a previous run.
		return nil
	}

	units := seedUnits()
	if _, err := s.db.NewInsert().Model(&units).Exec(ctx); err != nil {
		return err
	}

	amenities := seedAmenities()
	if _, err := s.db.NewInsert().Model(&amenities).Exec(ctx); err != nil {
		return err
	}

	return nil
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
