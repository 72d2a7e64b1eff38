package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stablemate/internal/joblog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectEntryColumns = `
	id, horse_id, job_key, job_label, price, ts, paid, completed, created_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*joblog.Entry, error) {
	var e joblog.Entry

	if err := s.Scan(
		&e.ID, &e.HorseID, &e.JobKey, &e.JobLabel, &e.Price, &e.TS,
		&e.Paid, &e.Completed, &e.CreatedAt,
	); err != nil {
		return nil, err
	}

	e.TS = joblog.DateOnly(e.TS)

	return &e, nil
}

func (s *Store) CreateEntry(ctx context.Context, e *joblog.Entry) error {
	query := `
		INSERT INTO entries (horse_id, job_key, job_label, price, ts)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, paid, completed, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.HorseID, e.JobKey, e.JobLabel, e.Price, e.TS,
	).Scan(&e.ID, &e.Paid, &e.Completed, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating entry: %w", err)
	}

	return nil
}

func (s *Store) ListEntries(ctx context.Context, filter joblog.ListFilter) ([]*joblog.Entry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM entries WHERE true`

	var args []any

	argIdx := 1

	if filter.Day != nil {
		query += fmt.Sprintf(" AND ts = $%d", argIdx)

		args = append(args, *filter.Day)
		argIdx++
	} else {
		if filter.From != nil {
			query += fmt.Sprintf(" AND ts >= $%d", argIdx)

			args = append(args, *filter.From)
			argIdx++
		}

		if filter.To != nil {
			query += fmt.Sprintf(" AND ts <= $%d", argIdx)

			args = append(args, *filter.To)
			argIdx++
		}
	}

	if filter.UnpaidOnly {
		query += " AND NOT paid"
	}

	// Most recent first, matching the log's insertion order contract.
	query += " ORDER BY seq DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var entries []*joblog.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}

	return nil
}

func (s *Store) DeleteLatest(ctx context.Context) error {
	query := `
		DELETE FROM entries
		WHERE seq = (SELECT max(seq) FROM entries)
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("deleting latest entry: %w", err)
	}

	return nil
}

func (s *Store) DeleteByDay(ctx context.Context, day time.Time) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE ts = $1`, day); err != nil {
		return fmt.Errorf("clearing day: %w", err)
	}

	return nil
}

func (s *Store) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clearing log: %w", err)
	}

	return nil
}

// MarkPaid flips entries to paid. Missing IDs are skipped silently; they
// are historical by then.
func (s *Store) MarkPaid(ctx context.Context, ids []uuid.UUID) error {
	query := `UPDATE entries SET paid = true WHERE id = ANY($1)`

	if _, err := s.db.ExecContext(ctx, query, ids); err != nil {
		return fmt.Errorf("marking entries paid: %w", err)
	}

	return nil
}

func (s *Store) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE entries SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return fmt.Errorf("setting completed: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return joblog.ErrNotFound
	}

	return nil
}

func (s *Store) ListJobTypes(ctx context.Context) ([]joblog.JobType, error) {
	query := `SELECT key, label, price, custom FROM job_types ORDER BY custom ASC, label ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing job types: %w", err)
	}
	defer rows.Close()

	var types []joblog.JobType

	for rows.Next() {
		var jt joblog.JobType
		if err := rows.Scan(&jt.Key, &jt.Label, &jt.Price, &jt.Custom); err != nil {
			return nil, fmt.Errorf("scanning job type: %w", err)
		}

		types = append(types, jt)
	}

	return types, rows.Err()
}

func (s *Store) CreateJobType(ctx context.Context, jt *joblog.JobType) error {
	query := `INSERT INTO job_types (key, label, price, custom) VALUES ($1, $2, $3, $4)`

	if _, err := s.db.ExecContext(ctx, query, jt.Key, jt.Label, jt.Price, jt.Custom); err != nil {
		return fmt.Errorf("creating job type: %w", err)
	}

	return nil
}

func (s *Store) DeleteJobType(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM job_types WHERE key = $1`, key); err != nil {
		return fmt.Errorf("deleting job type: %w", err)
	}

	return nil
}
