package joblog

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoHorse is returned when a job is staged without a horse selected.
	ErrNoHorse = errors.New("no horse selected")

	// ErrUnknownJob is returned when the job key is not in the catalog.
	ErrUnknownJob = errors.New("unknown job type")

	// ErrCanceled signals that the caller declined a required detail and
	// the operation was dropped with no side effect. It is a cancellation,
	// not a failure.
	ErrCanceled = errors.New("job entry canceled")

	// ErrReservedJob is returned when deleting one of the built-in keys.
	ErrReservedJob = errors.New("job type is reserved")

	// ErrNotFound is returned when an entry does not exist.
	ErrNotFound = errors.New("entry not found")
)

// Entry is one record of a chore performed on a horse on a given day.
// Prices are in pence. The horse ID, job and price never change after
// creation; only the paid and completed flags do.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	HorseID   uuid.UUID `json:"horseId"`
	JobKey    string    `json:"jobKey"`
	JobLabel  string    `json:"jobLabel"`
	Price     int64     `json:"price"`
	TS        time.Time `json:"ts"`
	Paid      bool      `json:"paid"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// DateOnly truncates a timestamp to day granularity in UTC. All log,
// billing and calendar logic works on day-granular dates.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ListFilter narrows entry listings. Day wins over From/To when set;
// UnpaidOnly keeps entries still awaiting settlement.
type ListFilter struct {
	Day        *time.Time
	From       *time.Time
	To         *time.Time
	UnpaidOnly bool
}
