package joblog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=joblog
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// DeleteLatest removes the most recently created entry. It is a no-op
	// on an empty log.
	DeleteLatest(ctx context.Context) error

	DeleteByDay(ctx context.Context, day time.Time) error
	DeleteAll(ctx context.Context) error

	MarkPaid(ctx context.Context, ids []uuid.UUID) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error

	ListJobTypes(ctx context.Context) ([]JobType, error)
	CreateJobType(ctx context.Context, jt *JobType) error
	DeleteJobType(ctx context.Context, key string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Staged describes a job that is ready to be committed, plus any extra
// detail the caller still has to collect from the user. Staging has no
// side effects.
type Staged struct {
	HorseID uuid.UUID
	Job     JobType
	Date    time.Time

	// NeedsDetails means a description and price are required ("other").
	NeedsDetails bool

	// NeedsUntil means a cutoff-time annotation is wanted ("shoot").
	NeedsUntil bool
}

// Details carries the user-supplied input for a staged job. A nil Price or
// blank Description on an entry that needs them counts as a decline.
type Details struct {
	Description string
	Price       *int64
	Until       string
}

// Stage validates the request and reports what extra input is needed.
func (s *Service) Stage(ctx context.Context, horseID uuid.UUID, jobKey string, date time.Time) (*Staged, error) {
	if horseID == uuid.Nil {
		return nil, ErrNoHorse
	}

	types, err := s.repo.ListJobTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	for _, jt := range types {
		if jt.Key != jobKey {
			continue
		}

		return &Staged{
			HorseID:      horseID,
			Job:          jt,
			Date:         DateOnly(date),
			NeedsDetails: jt.Key == KeyOther,
			NeedsUntil:   jt.Key == KeyShoot,
		}, nil
	}

	return nil, ErrUnknownJob
}

// Commit finalizes a staged job into a log entry.
//
// For "other", a blank description or missing price aborts with ErrCanceled
// and zero side effects. For "shoot", a missing cutoff time falls back to
// "unknown" instead of aborting; the asymmetry is deliberate, a shoot flag
// is still worth logging without its time.
func (s *Service) Commit(ctx context.Context, staged *Staged, det Details) (*Entry, error) {
	label := staged.Job.Label
	price := staged.Job.Price

	switch {
	case staged.NeedsDetails:
		desc := strings.TrimSpace(det.Description)
		if desc == "" || det.Price == nil {
			return nil, ErrCanceled
		}

		label = "Other — " + desc
		price = *det.Price

	case staged.NeedsUntil:
		until := strings.TrimSpace(det.Until)
		if until == "" {
			until = "unknown"
		}

		label = "Shoot ⚠️ — until " + until
		price = 0
	}

	e := &Entry{
		HorseID:  staged.HorseID,
		JobKey:   staged.Job.Key,
		JobLabel: label,
		Price:    price,
		TS:       staged.Date,
	}

	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	return e, nil
}

// LogJob stages and commits in one call, for callers that already hold the
// extra details (or need none).
func (s *Service) LogJob(ctx context.Context, horseID uuid.UUID, jobKey string, date time.Time, det Details) (*Entry, error) {
	staged, err := s.Stage(ctx, horseID, jobKey, date)
	if err != nil {
		return nil, err
	}

	return s.Commit(ctx, staged, det)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

// EntriesOnDay lists the log for one calendar day, most recent first.
func (s *Service) EntriesOnDay(ctx context.Context, day time.Time) ([]*Entry, error) {
	d := DateOnly(day)
	return s.repo.ListEntries(ctx, ListFilter{Day: &d})
}

// UndoLast removes the most recently logged entry regardless of its date.
func (s *Service) UndoLast(ctx context.Context) error {
	return s.repo.DeleteLatest(ctx)
}

func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}

func (s *Service) ClearDay(ctx context.Context, day time.Time) error {
	return s.repo.DeleteByDay(ctx, DateOnly(day))
}

// ClearAll empties the job log. Owners, horses, invoices and paid history
// are untouched.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// MarkPaid flips the given entries to paid. IDs that no longer exist are
// skipped; paid never transitions back.
func (s *Service) MarkPaid(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return s.repo.MarkPaid(ctx, ids)
}

// SetCompleted toggles the display-only completed flag. It has no effect
// on billing.
func (s *Service) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	return s.repo.SetCompleted(ctx, id, completed)
}

func (s *Service) Catalog(ctx context.Context) ([]JobType, error) {
	return s.repo.ListJobTypes(ctx)
}

// AddJobType adds a custom catalog entry with a generated key.
func (s *Service) AddJobType(ctx context.Context, label string, price int64) (*JobType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, fmt.Errorf("job label must not be empty")
	}

	jt := &JobType{
		Key:    uuid.NewString(),
		Label:  label,
		Price:  price,
		Custom: true,
	}

	if err := s.repo.CreateJobType(ctx, jt); err != nil {
		return nil, fmt.Errorf("creating job type: %w", err)
	}

	return jt, nil
}

func (s *Service) RemoveJobType(ctx context.Context, key string) error {
	if (JobType{Key: key}).Reserved() {
		return ErrReservedJob
	}

	return s.repo.DeleteJobType(ctx, key)
}
