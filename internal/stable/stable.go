package stable

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when an owner or horse does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyName is returned when a name is empty after trimming.
	ErrEmptyName = errors.New("name must not be empty")
)

// Owner is a customer who keeps one or more horses at the yard and is
// billed for the jobs performed on them.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Horse belongs to exactly one owner. The reference is checked at creation
// time only; downstream consumers tolerate dangling owner IDs.
type Horse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"created_at"`
}
