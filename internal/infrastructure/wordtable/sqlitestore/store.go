// Package sqlitestore persists {word: vector} mappings in SQLite, as an
// alternative to the JSON cache export.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store persists word vectors in a single SQLite table.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the store at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the word_vectors table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS word_vectors (
			word   TEXT PRIMARY KEY,
			dim    INTEGER NOT NULL,
			vector BLOB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("creating word_vectors table: %w", err)
	}
	return nil
}

// SaveVectors upserts the given {word: vector} mapping in one transaction.
func (s *Store) SaveVectors(ctx context.Context, vectors map[string][]float32) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO word_vectors (word, dim, vector) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for word, vec := range vectors {
		if _, err := stmt.ExecContext(ctx, word, len(vec), encodeVector(vec)); err != nil {
			return fmt.Errorf("upserting %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// LoadVectors reads the full {word: vector} mapping back.
func (s *Store) LoadVectors(ctx context.Context) (map[string][]float32, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, dim, vector FROM word_vectors`)
	if err != nil {
		return nil, fmt.Errorf("querying word_vectors: %w", err)
	}
	defer rows.Close()

	vectors := make(map[string][]float32)
	for rows.Next() {
		var word string
		var dim int
		var blob []byte
		if err := rows.Scan(&word, &dim, &blob); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		vec, err := decodeVector(blob, dim)
		if err != nil {
			return nil, fmt.Errorf("decoding vector for %q: %w", word, err)
		}
		vectors[word] = vec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return vectors, nil
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_vectors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting word_vectors: %w", err)
	}
	return n, nil
}

// encodeVector packs a vector as little-endian float32 bits.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func decodeVector(blob []byte, dim int) ([]float32, error) {
	if len(blob) != 4*dim {
		return nil, fmt.Errorf("blob is %d bytes, want %d", len(blob), 4*dim)
	}
	vec := make([]float32, dim)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vec, nil
}
