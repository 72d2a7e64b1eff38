package backup

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/google/uuid"

	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

var csvHeader = []string{"Date", "Owner", "Horse", "Job", "Price"}

// WriteJobLogCSV flattens the job log into report rows. Horses and owners
// that no longer resolve are written as "Unknown" rather than dropped, so
// the report always accounts for every logged price.
func (s *Service) WriteJobLogCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.log.List(ctx, joblog.ListFilter{})
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	horseByID, ownerByID, err := s.lookupMaps(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range entries {
		horseName := "Unknown"
		ownerName := "Unknown"

		if h, ok := horseByID[e.HorseID]; ok {
			horseName = h.Name

			if o, ok := ownerByID[h.OwnerID]; ok {
				ownerName = o.Name
			}
		}

		row := []string{
			e.TS.Format("2006-01-02"),
			ownerName,
			horseName,
			e.JobLabel,
			formatPrice(e.Price),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WritePaidHistoryCSV flattens every settlement's item snapshots. Names
// come from the snapshots themselves, so the report is stable against
// later renames and deletions.
func (s *Service) WritePaidHistoryCSV(ctx context.Context, w io.Writer) error {
	records, err := s.billing.PaidHistory(ctx)
	if err != nil {
		return fmt.Errorf("listing paid history: %w", err)
	}

	_, ownerByID, err := s.lookupMaps(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		ownerName := "Unknown"
		if o, ok := ownerByID[rec.OwnerID]; ok {
			ownerName = o.Name
		}

		for _, it := range rec.Items {
			row := []string{
				it.TS.Format("2006-01-02"),
				ownerName,
				it.Horse,
				it.JobLabel,
				formatPrice(it.Price),
			}

			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

func (s *Service) lookupMaps(ctx context.Context) (map[uuid.UUID]stable.Horse, map[uuid.UUID]stable.Owner, error) {
	horses, err := s.yard.ListHorses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing horses: %w", err)
	}

	owners, err := s.yard.ListOwners(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing owners: %w", err)
	}

	horseByID := make(map[uuid.UUID]stable.Horse, len(horses))
	for _, h := range horses {
		horseByID[h.ID] = h
	}

	ownerByID := make(map[uuid.UUID]stable.Owner, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o
	}

	return horseByID, ownerByID, nil
}

func formatPrice(pence int64) string {
	return fmt.Sprintf("%.2f", float64(pence)/100.0)
}
