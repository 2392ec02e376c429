package coinset

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veilcoin/core/pkg/curve"
)

// ErrDBConnection wraps failures establishing or pinging the connection pool.
var ErrDBConnection = errors.New("coinset: database connection error")

// Config holds database configuration for a PostgresCoinSet.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
}

// DefaultConfig returns default database configuration.
func DefaultConfig() *Config {
	return &Config{
		Host:     "localhost",
		Port:     5432,
		User:     "veilcoin",
		Password: "",
		Database: "veilcoin",
		SSLMode:  "disable",
		MaxConns: 20,
	}
}

// PostgresCoinSet persists committed coins in a `coins` table and maintains
// a running digest (the blake2b-based field hash of the coin table's
// contents in insertion order) so Digest can be compared cheaply without
// rereading the whole table. Contains and Digest satisfy model.CoinSet and
// take no context — they reach for context.Background() internally so the
// core-facing interface stays synchronous per the spec.
type PostgresCoinSet struct {
	pool *pgxpool.Pool
}

// NewPostgresCoinSet opens a pool against cfg and ensures the backing table
// exists.
func NewPostgresCoinSet(ctx context.Context, cfg *Config) (*PostgresCoinSet, error) {
	connString := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode, cfg.MaxConns,
	)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDBConnection, err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDBConnection, err)
	}

	s := &PostgresCoinSet{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection pool.
func (s *PostgresCoinSet) Close() {
	s.pool.Close()
}

func (s *PostgresCoinSet) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS coins (
			position  BIGSERIAL PRIMARY KEY,
			commit    BYTEA NOT NULL UNIQUE,
			digest    BYTEA NOT NULL
		)
	`)
	return err
}

// Insert records coin as committed and returns its insertion position.
func (s *PostgresCoinSet) Insert(ctx context.Context, coin curve.FieldElem) (int64, error) {
	prevDigest, err := s.digest(ctx)
	if err != nil {
		return 0, err
	}
	newDigest := curve.FieldHash(prevDigest, coin)

	var position int64
	err = s.pool.QueryRow(ctx, `
		INSERT INTO coins (commit, digest) VALUES ($1, $2)
		RETURNING position
	`, coin.Bytes(), newDigest.Bytes()).Scan(&position)
	if err != nil {
		return 0, fmt.Errorf("coinset: insert: %w", err)
	}
	return position, nil
}

// Contains reports whether coin has been committed.
func (s *PostgresCoinSet) Contains(coin curve.FieldElem) (bool, error) {
	ctx := context.Background()
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM coins WHERE commit = $1)
	`, coin.Bytes()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("coinset: contains: %w", err)
	}
	return exists, nil
}

// Digest returns the current running digest over every coin inserted so
// far, in insertion order.
func (s *PostgresCoinSet) Digest() curve.FieldElem {
	d, err := s.digest(context.Background())
	if err != nil {
		return curve.FieldElem{}
	}
	return d
}

func (s *PostgresCoinSet) digest(ctx context.Context) (curve.FieldElem, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT digest FROM coins ORDER BY position DESC LIMIT 1
	`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return curve.FieldElemFromUint64(0), nil
	}
	if err != nil {
		return curve.FieldElem{}, fmt.Errorf("coinset: digest: %w", err)
	}
	return curve.FieldElemFromBytes(raw)
}
