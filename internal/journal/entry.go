package journal

import (
	"context"
	"fmt"

	"github.com/roach88/clampvec/internal/export"
)

// Entry is one recorded export.
type Entry struct {
	ID          string        `json:"id"`
	Seq         int64         `json:"seq"`
	Destination string        `json:"destination"`
	Format      export.Format `json:"format"`
	Length      int           `json:"length"`
	Digest      string        `json:"digest"`
}

// Record appends an entry for an export of a vector with length elements
// whose encoded bytes were content.
func (j *Journal) Record(ctx context.Context, destination string, format export.Format, length int, content []byte) (Entry, error) {
	e := Entry{
		ID:          j.ids.Generate(),
		Seq:         j.clock.Next(),
		Destination: destination,
		Format:      format,
		Length:      length,
		Digest:      Digest(content),
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO exports (id, seq, destination, format, length, digest)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		e.ID,
		e.Seq,
		e.Destination,
		string(e.Format),
		e.Length,
		e.Digest,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("record export: %w", err)
	}
	return e, nil
}

// List returns every entry in seq order.
// Returns an empty slice (not nil) for an empty journal.
func (j *Journal) List(ctx context.Context) ([]Entry, error) {
	return j.query(ctx, `
		SELECT id, seq, destination, format, length, digest
		FROM exports
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
}

// FindByDigest returns entries whose content digest equals digest.
func (j *Journal) FindByDigest(ctx context.Context, digest string) ([]Entry, error) {
	return j.query(ctx, `
		SELECT id, seq, destination, format, length, digest
		FROM exports
		WHERE digest = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, digest)
}

// Get returns the entry with id. Returns sql.ErrNoRows (wrapped) if absent.
func (j *Journal) Get(ctx context.Context, id string) (Entry, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT id, seq, destination, format, length, digest
		FROM exports
		WHERE id = ?
	`, id)
	e, err := scanEntry(row)
	if err != nil {
		return Entry{}, fmt.Errorf("get export %s: %w", id, err)
	}
	return e, nil
}

func (j *Journal) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var e Entry
	var format string
	if err := s.Scan(&e.ID, &e.Seq, &e.Destination, &format, &e.Length, &e.Digest); err != nil {
		return Entry{}, fmt.Errorf("scan export: %w", err)
	}
	e.Format = export.Format(format)
	return e, nil
}
