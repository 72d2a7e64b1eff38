package joblog

// Reserved catalog keys with special logging behavior.
const (
	// KeyOther prompts for a free-text description and a custom price.
	KeyOther = "other"

	// KeyShoot flags a shoot day on the calendar. It carries a cutoff
	// time annotation and never a price.
	KeyShoot = "shoot"
)

// JobType is a choosable chore in the catalog. Price is in pence. Custom
// types are user-added and get a generated key; built-in keys are stable.
type JobType struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Price  int64  `json:"price"`
	Custom bool   `json:"custom,omitempty"`
}

// Reserved reports whether the job type carries special logging behavior
// and therefore cannot be removed from the catalog.
func (j JobType) Reserved() bool {
	return j.Key == KeyOther || j.Key == KeyShoot
}

// DefaultCatalog is the catalog seeded into a fresh database.
func DefaultCatalog() []JobType {
	return []JobType{
		{Key: "muckout", Label: "Muck Out", Price: 500},
		{Key: "turnout", Label: "Turnout", Price: 300},
		{Key: "bringin", Label: "Bring In", Price: 300},
		{Key: "feed", Label: "Feed", Price: 250},
		{Key: "haynet", Label: "Haynet", Price: 200},
		{Key: "rug", Label: "Rug Change", Price: 150},
		{Key: KeyOther, Label: "Other", Price: 0},
		{Key: KeyShoot, Label: "Shoot ⚠️", Price: 0},
	}
}
