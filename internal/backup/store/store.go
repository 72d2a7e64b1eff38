package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stablemate/internal/backup"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Replace swaps the whole data set for the snapshot's contents in one
// transaction. Invoices are cleared as well: their source collections are
// gone, and the original app never carried them across backups.
func (s *Store) Replace(ctx context.Context, snap *backup.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	wipe := []string{
		`DELETE FROM invoice_items`,
		`DELETE FROM invoices`,
		`DELETE FROM paid_record_items`,
		`DELETE FROM paid_records`,
		`DELETE FROM entries`,
		`DELETE FROM horses`,
		`DELETE FROM owners`,
		`DELETE FROM job_types`,
	}

	for _, q := range wipe {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("clearing tables: %w", err)
		}
	}

	for _, o := range snap.Owners {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO owners (id, name, created_at) VALUES ($1, $2, coalesce($3, now()))`,
			o.ID, o.Name, nullTime(o.CreatedAt),
		); err != nil {
			return fmt.Errorf("restoring owner: %w", err)
		}
	}

	for _, h := range snap.Horses {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO horses (id, name, owner_id, created_at) VALUES ($1, $2, $3, coalesce($4, now()))`,
			h.ID, h.Name, h.OwnerID, nullTime(h.CreatedAt),
		); err != nil {
			return fmt.Errorf("restoring horse: %w", err)
		}
	}

	// Snapshot logs are most-recent-first; insert oldest first so the
	// sequence numbers preserve the undo-last ordering.
	for i := len(snap.Logs) - 1; i >= 0; i-- {
		e := snap.Logs[i]
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO entries (id, horse_id, job_key, job_label, price, ts, paid, completed, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, coalesce($9, now()))`,
			e.ID, e.HorseID, e.JobKey, e.JobLabel, e.Price, e.TS, e.Paid, e.Completed, nullTime(e.CreatedAt),
		); err != nil {
			return fmt.Errorf("restoring entry: %w", err)
		}
	}

	for _, rec := range snap.PaidHistory {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO paid_records (id, owner_id, ts, total) VALUES ($1, $2, $3, $4)`,
			rec.ID, rec.OwnerID, rec.TS, rec.Total,
		); err != nil {
			return fmt.Errorf("restoring paid record: %w", err)
		}

		for _, it := range rec.Items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO paid_record_items (record_id, entry_id, horse_name, job_label, price, ts)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				rec.ID, it.EntryID, it.Horse, it.JobLabel, it.Price, it.TS,
			); err != nil {
				return fmt.Errorf("restoring paid record item: %w", err)
			}
		}
	}

	for _, jt := range snap.Jobs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO job_types (key, label, price, custom) VALUES ($1, $2, $3, $4)`,
			jt.Key, jt.Label, jt.Price, jt.Custom,
		); err != nil {
			return fmt.Errorf("restoring job type: %w", err)
		}
	}

	return tx.Commit()
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t
}
