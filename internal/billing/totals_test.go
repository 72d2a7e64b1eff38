package billing_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stablemate/internal/billing"
	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

func TestComputeTotals_Aggregation(t *testing.T) {
	jane := stable.Owner{ID: uuid.New(), Name: "Jane"}
	bramble := stable.Horse{ID: uuid.New(), Name: "Bramble", OwnerID: jane.ID}

	day := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	entries := []*joblog.Entry{
		{ID: uuid.New(), HorseID: bramble.ID, JobKey: "turnout", JobLabel: "Turnout", Price: 300, TS: day},
		{ID: uuid.New(), HorseID: bramble.ID, JobKey: "muckout", JobLabel: "Muck Out", Price: 500, TS: day},
	}

	totals := billing.ComputeTotals(entries, []stable.Owner{jane}, []stable.Horse{bramble})

	require.Len(t, totals, 1)
	assert.Equal(t, "Jane", totals[0].Owner.Name)
	assert.Equal(t, int64(800), totals[0].Total)

	require.Len(t, totals[0].Horses, 1)
	assert.Equal(t, "Bramble", totals[0].Horses[0].Horse.Name)
	assert.Equal(t, 2, totals[0].Horses[0].Count)
	assert.Equal(t, int64(800), totals[0].Horses[0].Total)
}

func TestComputeTotals_DanglingReferencesSkipped(t *testing.T) {
	jane := stable.Owner{ID: uuid.New(), Name: "Jane"}
	bramble := stable.Horse{ID: uuid.New(), Name: "Bramble", OwnerID: jane.ID}

	// One entry references a horse that was deleted, one references a horse
	// whose owner was deleted.
	orphanHorse := stable.Horse{ID: uuid.New(), Name: "Ghost", OwnerID: uuid.New()}

	entries := []*joblog.Entry{
		{ID: uuid.New(), HorseID: bramble.ID, Price: 500},
		{ID: uuid.New(), HorseID: uuid.New(), Price: 9999},
		{ID: uuid.New(), HorseID: orphanHorse.ID, Price: 9999},
	}

	totals := billing.ComputeTotals(entries, []stable.Owner{jane}, []stable.Horse{bramble, orphanHorse})

	require.Len(t, totals, 1)
	assert.Equal(t, int64(500), totals[0].Total)
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	anna := stable.Owner{ID: uuid.New(), Name: "Anna"}
	bert := stable.Owner{ID: uuid.New(), Name: "Bert"}
	horses := []stable.Horse{
		{ID: uuid.New(), Name: "Comet", OwnerID: anna.ID},
		{ID: uuid.New(), Name: "Apollo", OwnerID: anna.ID},
		{ID: uuid.New(), Name: "Dash", OwnerID: bert.ID},
	}

	entries := []*joblog.Entry{
		{ID: uuid.New(), HorseID: horses[0].ID, Price: 100},
		{ID: uuid.New(), HorseID: horses[1].ID, Price: 200},
		{ID: uuid.New(), HorseID: horses[2].ID, Price: 300},
		{ID: uuid.New(), HorseID: horses[0].ID, Price: 400},
	}

	reversed := make([]*joblog.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	owners := []stable.Owner{anna, bert}

	got := billing.ComputeTotals(entries, owners, horses)
	gotReversed := billing.ComputeTotals(reversed, owners, horses)

	assert.Equal(t, got, gotReversed)

	// Output order is by owner name, then horse name, regardless of input.
	require.Len(t, got, 2)
	assert.Equal(t, "Anna", got[0].Owner.Name)
	assert.Equal(t, "Bert", got[1].Owner.Name)

	require.Len(t, got[0].Horses, 2)
	assert.Equal(t, "Apollo", got[0].Horses[0].Horse.Name)
	assert.Equal(t, "Comet", got[0].Horses[1].Horse.Name)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := billing.ComputeTotals(nil, nil, nil)
	assert.Empty(t, totals)
}
