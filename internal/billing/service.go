package billing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	CreateInvoices(ctx context.Context, invoices []*Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	SetInvoicePaid(ctx context.Context, id uuid.UUID) error

	CreatePaidRecord(ctx context.Context, rec *PaidRecord) error
	ListPaidRecords(ctx context.Context) ([]*PaidRecord, error)
}

// Service is the reconciliation engine: it derives totals from the job
// log, groups unbilled work into invoices, and moves entries from unpaid
// to paid.
type Service struct {
	repo Repository
	log  *joblog.Service
	yard *stable.Service
	now  func() time.Time
}

func NewService(repo Repository, log *joblog.Service, yard *stable.Service) *Service {
	return &Service{
		repo: repo,
		log:  log,
		yard: yard,
		now:  time.Now,
	}
}

// Totals recomputes the per-owner breakdown from the current log. It is a
// read projection; nothing is cached or mutated.
func (s *Service) Totals(ctx context.Context) ([]OwnerTotal, error) {
	entries, err := s.log.List(ctx, joblog.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	owners, err := s.yard.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}

	horses, err := s.yard.ListHorses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing horses: %w", err)
	}

	return ComputeTotals(entries, owners, horses), nil
}

// MakeInvoices builds one invoice per owner from the unpaid entries whose
// date falls within [from, to] inclusive. Already-paid entries are never
// billed again. Entries whose horse or owner no longer resolves are
// skipped. Returns ErrNoJobs when nothing is billable.
//
// Source entries are not marked paid here; that happens at settlement.
// Two overlapping draft invoices can therefore reference the same entries,
// which is a documented limitation of draft invoicing, not a bug.
func (s *Service) MakeInvoices(ctx context.Context, from, to time.Time) ([]*Invoice, error) {
	from = joblog.DateOnly(from)
	to = joblog.DateOnly(to)

	entries, err := s.log.List(ctx, joblog.ListFilter{From: &from, To: &to, UnpaidOnly: true})
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	if len(entries) == 0 {
		return nil, ErrNoJobs
	}

	owners, err := s.yard.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}

	horses, err := s.yard.ListHorses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing horses: %w", err)
	}

	ownerByID := make(map[uuid.UUID]stable.Owner, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o
	}

	horseByID := make(map[uuid.UUID]stable.Horse, len(horses))
	for _, h := range horses {
		horseByID[h.ID] = h
	}

	// Invoices carry an owner-name snapshot rather than a reference, so
	// grouping is by resolved name as well.
	byOwner := make(map[string][]Item)

	for _, e := range entries {
		h, ok := horseByID[e.HorseID]
		if !ok {
			continue
		}

		o, ok := ownerByID[h.OwnerID]
		if !ok {
			continue
		}

		byOwner[o.Name] = append(byOwner[o.Name], Item{
			EntryID:  e.ID,
			Horse:    h.Name,
			JobLabel: e.JobLabel,
			Price:    e.Price,
			TS:       e.TS,
		})
	}

	if len(byOwner) == 0 {
		return nil, ErrNoJobs
	}

	date := from

	var dateRange string

	if !from.Equal(to) {
		date = joblog.DateOnly(s.now())
		dateRange = fmt.Sprintf("%s → %s", from.Format("2 Jan 2006"), to.Format("2 Jan 2006"))
	}

	names := make([]string, 0, len(byOwner))
	for name := range byOwner {
		names = append(names, name)
	}

	sort.Strings(names)

	invoices := make([]*Invoice, 0, len(names))

	for _, name := range names {
		items := byOwner[name]

		var total int64
		for _, it := range items {
			total += it.Price
		}

		invoices = append(invoices, &Invoice{
			Date:      date,
			DateRange: dateRange,
			Owner:     name,
			Items:     items,
			Total:     total,
		})
	}

	if err := s.repo.CreateInvoices(ctx, invoices); err != nil {
		return nil, fmt.Errorf("creating invoices: %w", err)
	}

	return invoices, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// MarkInvoicePaid settles an invoice: the invoice and every surviving
// source entry flip to paid. An unknown invoice ID is a no-op; items whose
// entry was deleted since creation are skipped.
func (s *Service) MarkInvoicePaid(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}

		return fmt.Errorf("getting invoice: %w", err)
	}

	if err := s.repo.SetInvoicePaid(ctx, inv.ID); err != nil {
		return fmt.Errorf("settling invoice: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(inv.Items))
	for _, it := range inv.Items {
		ids = append(ids, it.EntryID)
	}

	if err := s.log.MarkPaid(ctx, ids); err != nil {
		return fmt.Errorf("marking entries paid: %w", err)
	}

	return nil
}

// MarkOwnerPaid settles everything the owner currently owes in one go and
// appends a paid-history record snapshotting the settled entries. Returns
// ErrNothingToPay when no unpaid entries remain, which also makes the
// operation idempotent: a second call with no new work fails cleanly.
func (s *Service) MarkOwnerPaid(ctx context.Context, ownerID uuid.UUID) (*PaidRecord, error) {
	horses, err := s.yard.HorsesForOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing horses: %w", err)
	}

	horseByID := make(map[uuid.UUID]stable.Horse, len(horses))
	for _, h := range horses {
		horseByID[h.ID] = h
	}

	entries, err := s.log.List(ctx, joblog.ListFilter{UnpaidOnly: true})
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	var (
		ids   []uuid.UUID
		items []Item
		total int64
	)

	for _, e := range entries {
		h, ok := horseByID[e.HorseID]
		if !ok {
			continue
		}

		ids = append(ids, e.ID)
		items = append(items, Item{
			EntryID:  e.ID,
			Horse:    h.Name,
			JobLabel: e.JobLabel,
			Price:    e.Price,
			TS:       e.TS,
		})
		total += e.Price
	}

	if len(items) == 0 {
		return nil, ErrNothingToPay
	}

	if err := s.log.MarkPaid(ctx, ids); err != nil {
		return nil, fmt.Errorf("marking entries paid: %w", err)
	}

	rec := &PaidRecord{
		OwnerID: ownerID,
		TS:      s.now(),
		Total:   total,
		Items:   items,
	}

	if err := s.repo.CreatePaidRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("recording settlement: %w", err)
	}

	return rec, nil
}

func (s *Service) PaidHistory(ctx context.Context) ([]*PaidRecord, error) {
	return s.repo.ListPaidRecords(ctx)
}
