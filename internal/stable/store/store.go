package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"stablemate/internal/stable"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateOwner(ctx context.Context, o *stable.Owner) error {
	query := `
		INSERT INTO owners (name)
		VALUES ($1)
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, o.Name).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("creating owner: %w", err)
	}

	return nil
}

func (s *Store) GetOwner(ctx context.Context, id uuid.UUID) (*stable.Owner, error) {
	query := `SELECT id, name, created_at FROM owners WHERE id = $1`

	var o stable.Owner
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Name, &o.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, stable.ErrNotFound
		}

		return nil, fmt.Errorf("getting owner: %w", err)
	}

	return &o, nil
}

func (s *Store) ListOwners(ctx context.Context) ([]stable.Owner, error) {
	query := `SELECT id, name, created_at FROM owners ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	defer rows.Close()

	var owners []stable.Owner

	for rows.Next() {
		var o stable.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning owner: %w", err)
		}

		owners = append(owners, o)
	}

	return owners, rows.Err()
}

func (s *Store) RenameOwner(ctx context.Context, id uuid.UUID, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE owners SET name = $1 WHERE id = $2`, name, id)
	if err != nil {
		return fmt.Errorf("renaming owner: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return stable.ErrNotFound
	}

	return nil
}

// DeleteOwner cascades to the owner's horses and their log entries. The
// schema carries no foreign keys, so the cascade is spelled out here.
func (s *Store) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	delEntries := `
		DELETE FROM entries
		WHERE horse_id IN (SELECT id FROM horses WHERE owner_id = $1)
	`
	if _, err := tx.ExecContext(ctx, delEntries, id); err != nil {
		return fmt.Errorf("deleting owner entries: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM horses WHERE owner_id = $1`, id); err != nil {
		return fmt.Errorf("deleting owner horses: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting owner: %w", err)
	}

	return tx.Commit()
}

func (s *Store) CreateHorse(ctx context.Context, h *stable.Horse) error {
	query := `
		INSERT INTO horses (name, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, h.Name, h.OwnerID).Scan(&h.ID, &h.CreatedAt); err != nil {
		return fmt.Errorf("creating horse: %w", err)
	}

	return nil
}

func (s *Store) GetHorse(ctx context.Context, id uuid.UUID) (*stable.Horse, error) {
	query := `SELECT id, name, owner_id, created_at FROM horses WHERE id = $1`

	var h stable.Horse
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.OwnerID, &h.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, stable.ErrNotFound
		}

		return nil, fmt.Errorf("getting horse: %w", err)
	}

	return &h, nil
}

func (s *Store) ListHorses(ctx context.Context) ([]stable.Horse, error) {
	query := `SELECT id, name, owner_id, created_at FROM horses ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing horses: %w", err)
	}
	defer rows.Close()

	var horses []stable.Horse

	for rows.Next() {
		var h stable.Horse
		if err := rows.Scan(&h.ID, &h.Name, &h.OwnerID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning horse: %w", err)
		}

		horses = append(horses, h)
	}

	return horses, rows.Err()
}

func (s *Store) DeleteHorse(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE horse_id = $1`, id); err != nil {
		return fmt.Errorf("deleting horse entries: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM horses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting horse: %w", err)
	}

	return tx.Commit()
}
