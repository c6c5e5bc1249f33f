package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mcpackr/internal/revision"
)

// Entry is one produced archive.
type Entry struct {
	ID             int64
	RunID          string
	PackName       string
	SourceRevision revision.ID
	Revision       revision.ID
	Label          string
	Path           string
	Entries        int
	SHA256         string
	Complaints     int
	CreatedAt      time.Time
}

const entryColumns = "id, run_id, pack_name, source_revision, revision, label, path, entries, sha256, complaints, created_at"

// Record inserts e and returns it with ID and CreatedAt populated.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(e.RunID) == "" {
		return Entry{}, errors.New("ledger: run id required")
	}
	if strings.TrimSpace(e.Path) == "" {
		return Entry{}, errors.New("ledger: archive path required")
	}
	if e.Label == "" {
		e.Label = e.Revision.Label()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()

	err := retryOnBusy(ctx, func() error {
		res, execErr := s.db.ExecContext(ctx,
			`INSERT INTO archives (run_id, pack_name, source_revision, revision, label, path, entries, sha256, complaints, created_at)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.RunID, e.PackName, int(e.SourceRevision), int(e.Revision), e.Label, e.Path,
			e.Entries, e.SHA256, e.Complaints, e.CreatedAt.Format(time.RFC3339Nano),
		)
		if execErr != nil {
			return execErr
		}
		id, idErr := res.LastInsertId()
		if idErr != nil {
			return idErr
		}
		e.ID = id
		return nil
	})
	if err != nil {
		return Entry{}, fmt.Errorf("record archive: %w", err)
	}
	return e, nil
}

// List returns the newest entries first. A limit of zero or less lists all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	query := "SELECT " + entryColumns + " FROM archives ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, query, args...)
}

// ByRun returns the entries of one run in insertion order.
func (s *Store) ByRun(ctx context.Context, runID string) ([]Entry, error) {
	ctx = ensureContext(ctx)
	return s.query(ctx, "SELECT "+entryColumns+" FROM archives WHERE run_id = ? ORDER BY id", runID)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query archives: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate archives: %w", err)
	}
	return out, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		e         Entry
		source    int
		rev       int
		createdAt string
	)
	if err := scanner.Scan(
		&e.ID, &e.RunID, &e.PackName, &source, &rev, &e.Label, &e.Path,
		&e.Entries, &e.SHA256, &e.Complaints, &createdAt,
	); err != nil {
		return Entry{}, fmt.Errorf("scan archive: %w", err)
	}
	e.SourceRevision = revision.ID(source)
	e.Revision = revision.ID(rev)
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		e.CreatedAt = ts
	}
	return e, nil
}
