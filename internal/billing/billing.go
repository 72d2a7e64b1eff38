package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoJobs is returned when invoice creation finds no unbilled work.
	// It is informational; nothing was changed.
	ErrNoJobs = errors.New("no unbilled jobs in range")

	// ErrNothingToPay is returned when an owner has no unpaid entries.
	ErrNothingToPay = errors.New("owner has no unpaid jobs")

	// ErrNotFound is returned when an invoice does not exist.
	ErrNotFound = errors.New("invoice not found")
)

// Item is a snapshot copy of a log entry taken at invoice or settlement
// time, with the horse name denormalized in. Deleting the source entry
// later leaves the snapshot intact.
type Item struct {
	EntryID  uuid.UUID `json:"id"`
	Horse    string    `json:"horse"`
	JobLabel string    `json:"jobLabel"`
	Price    int64     `json:"price"`
	TS       time.Time `json:"ts"`
}

// Invoice groups one owner's unbilled work. Owner is a name snapshot, not
// a reference; Total is fixed at creation and never recomputed.
type Invoice struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	DateRange string    `json:"range,omitempty"`
	Owner     string    `json:"owner"`
	Items     []Item    `json:"items"`
	Total     int64     `json:"total"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}

// PaidRecord is the audit record of one bulk owner settlement.
type PaidRecord struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	TS      time.Time `json:"ts"`
	Total   int64     `json:"total"`
	Items   []Item    `json:"items"`
}
