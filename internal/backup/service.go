// Package backup is the import/export gateway: a JSON snapshot of the
// whole data set for backup and restore, plus flat CSV reports.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"stablemate/internal/billing"
	enc "stablemate/internal/encoding"
	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

// Snapshot mirrors the transfer format of the original Farm Mate backups:
// five collections, invoices excluded.
type Snapshot struct {
	Owners      []stable.Owner        `json:"owners"`
	Horses      []stable.Horse        `json:"horses"`
	Logs        []*joblog.Entry       `json:"logs"`
	PaidHistory []*billing.PaidRecord `json:"paidHistory"`
	Jobs        []joblog.JobType      `json:"jobs"`
}

// Restorer replaces the whole data set wholesale. There is no merge: what
// was there before the import is gone afterwards.
//
//go:generate mockgen -source=service.go -destination=restorer_mock.go -package=backup
type Restorer interface {
	Replace(ctx context.Context, snap *Snapshot) error
}

type Service struct {
	restorer Restorer
	yard     *stable.Service
	log      *joblog.Service
	billing  *billing.Service
}

func NewService(restorer Restorer, yard *stable.Service, log *joblog.Service, billingSvc *billing.Service) *Service {
	return &Service{
		restorer: restorer,
		yard:     yard,
		log:      log,
		billing:  billingSvc,
	}
}

// Export collects the five collections into a snapshot.
func (s *Service) Export(ctx context.Context) (*Snapshot, error) {
	owners, err := s.yard.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}

	horses, err := s.yard.ListHorses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing horses: %w", err)
	}

	entries, err := s.log.List(ctx, joblog.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	history, err := s.billing.PaidHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing paid history: %w", err)
	}

	jobs, err := s.log.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	return &Snapshot{
		Owners:      owners,
		Horses:      horses,
		Logs:        entries,
		PaidHistory: history,
		Jobs:        jobs,
	}, nil
}

// WriteJSON streams the snapshot as indented JSON, the transfer format.
func (s *Service) WriteJSON(ctx context.Context, w io.Writer) error {
	snap, err := s.Export(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return nil
}

// Import decodes a snapshot and replaces every collection with its
// contents. The reader may be in any encoding a backup file plausibly
// arrives in; it is normalized to UTF-8 first.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Snapshot, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	var snap Snapshot
	if err := json.NewDecoder(utf8r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	// An absent jobs collection falls back to the defaults so a partial
	// backup still restores to a usable catalog.
	if len(snap.Jobs) == 0 {
		snap.Jobs = joblog.DefaultCatalog()
	}

	if err := s.restorer.Replace(ctx, &snap); err != nil {
		return nil, fmt.Errorf("replacing data: %w", err)
	}

	return &snap, nil
}
