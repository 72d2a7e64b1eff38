package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"stablemate/internal/billing"
	"stablemate/internal/joblog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateInvoices persists a batch of invoices and their item snapshots in
// one transaction; the batch is one invoice per owner for the same period.
func (s *Store) CreateInvoices(ctx context.Context, invoices []*billing.Invoice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	invQuery := `
		INSERT INTO invoices (date, date_range, owner_name, total, paid)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, created_at
	`

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, entry_id, horse_name, job_label, price, ts)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, inv := range invoices {
		err := tx.QueryRowContext(ctx, invQuery,
			inv.Date, inv.DateRange, inv.Owner, inv.Total,
		).Scan(&inv.ID, &inv.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating invoice: %w", err)
		}

		for _, it := range inv.Items {
			if _, err := tx.ExecContext(ctx, itemQuery,
				inv.ID, it.EntryID, it.Horse, it.JobLabel, it.Price, it.TS,
			); err != nil {
				return fmt.Errorf("creating invoice item: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	query := `
		SELECT id, date, date_range, owner_name, total, paid, created_at
		FROM invoices
		WHERE id = $1
	`

	var inv billing.Invoice

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&inv.ID, &inv.Date, &inv.DateRange, &inv.Owner, &inv.Total, &inv.Paid, &inv.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, billing.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Date = joblog.DateOnly(inv.Date)

	items, err := s.listItems(ctx, `SELECT entry_id, horse_name, job_label, price, ts FROM invoice_items WHERE invoice_id = $1 ORDER BY ts ASC, horse_name ASC`, id)
	if err != nil {
		return nil, err
	}

	inv.Items = items

	return &inv, nil
}

func (s *Store) ListInvoices(ctx context.Context) ([]*billing.Invoice, error) {
	query := `
		SELECT id, date, date_range, owner_name, total, paid, created_at
		FROM invoices
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*billing.Invoice

	for rows.Next() {
		var inv billing.Invoice

		if err := rows.Scan(
			&inv.ID, &inv.Date, &inv.DateRange, &inv.Owner, &inv.Total, &inv.Paid, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		inv.Date = joblog.DateOnly(inv.Date)

		invoices = append(invoices, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	for _, inv := range invoices {
		items, err := s.listItems(ctx, `SELECT entry_id, horse_name, job_label, price, ts FROM invoice_items WHERE invoice_id = $1 ORDER BY ts ASC, horse_name ASC`, inv.ID)
		if err != nil {
			return nil, err
		}

		inv.Items = items
	}

	return invoices, nil
}

func (s *Store) SetInvoicePaid(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE invoices SET paid = true WHERE id = $1`, id); err != nil {
		return fmt.Errorf("settling invoice: %w", err)
	}

	return nil
}

func (s *Store) CreatePaidRecord(ctx context.Context, rec *billing.PaidRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	recQuery := `
		INSERT INTO paid_records (owner_id, ts, total)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := tx.QueryRowContext(ctx, recQuery, rec.OwnerID, rec.TS, rec.Total).Scan(&rec.ID); err != nil {
		return fmt.Errorf("creating paid record: %w", err)
	}

	itemQuery := `
		INSERT INTO paid_record_items (record_id, entry_id, horse_name, job_label, price, ts)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, it := range rec.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			rec.ID, it.EntryID, it.Horse, it.JobLabel, it.Price, it.TS,
		); err != nil {
			return fmt.Errorf("creating paid record item: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) ListPaidRecords(ctx context.Context) ([]*billing.PaidRecord, error) {
	query := `SELECT id, owner_id, ts, total FROM paid_records ORDER BY ts DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing paid records: %w", err)
	}
	defer rows.Close()

	var records []*billing.PaidRecord

	for rows.Next() {
		var rec billing.PaidRecord

		if err := rows.Scan(&rec.ID, &rec.OwnerID, &rec.TS, &rec.Total); err != nil {
			return nil, fmt.Errorf("scanning paid record: %w", err)
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating paid records: %w", err)
	}

	for _, rec := range records {
		items, err := s.listItems(ctx, `SELECT entry_id, horse_name, job_label, price, ts FROM paid_record_items WHERE record_id = $1 ORDER BY ts ASC, horse_name ASC`, rec.ID)
		if err != nil {
			return nil, err
		}

		rec.Items = items
	}

	return records, nil
}

func (s *Store) listItems(ctx context.Context, query string, id uuid.UUID) ([]billing.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []billing.Item

	for rows.Next() {
		var it billing.Item

		if err := rows.Scan(&it.EntryID, &it.Horse, &it.JobLabel, &it.Price, &it.TS); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		it.TS = joblog.DateOnly(it.TS)

		items = append(items, it)
	}

	return items, rows.Err()
}
