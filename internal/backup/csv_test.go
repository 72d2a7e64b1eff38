package backup_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stablemate/internal/billing"
	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

func TestService_WriteJobLogCSV(t *testing.T) {
	f := newFixture(t)

	jane := stable.Owner{ID: uuid.New(), Name: "Jane"}
	bramble := stable.Horse{ID: uuid.New(), Name: "Bramble", OwnerID: jane.ID}
	may2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	f.logRepo.EXPECT().
		ListEntries(gomock.Any(), joblog.ListFilter{}).
		Return([]*joblog.Entry{
			{ID: uuid.New(), HorseID: bramble.ID, JobLabel: "Muck Out", Price: 500, TS: may2},
			{ID: uuid.New(), HorseID: uuid.New(), JobLabel: "Feed", Price: 250, TS: may2},
		}, nil)
	f.yardRepo.EXPECT().ListHorses(gomock.Any()).Return([]stable.Horse{bramble}, nil)
	f.yardRepo.EXPECT().ListOwners(gomock.Any()).Return([]stable.Owner{jane}, nil)

	var buf bytes.Buffer

	require.NoError(t, f.svc.WriteJobLogCSV(context.Background(), &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Owner", "Horse", "Job", "Price"}, rows[0])
	assert.Equal(t, []string{"2024-05-02", "Jane", "Bramble", "Muck Out", "5.00"}, rows[1])

	// Entries with a deleted horse still appear, under "Unknown".
	assert.Equal(t, []string{"2024-05-02", "Unknown", "Unknown", "Feed", "2.50"}, rows[2])
}

func TestService_WritePaidHistoryCSV(t *testing.T) {
	f := newFixture(t)

	jane := stable.Owner{ID: uuid.New(), Name: "Jane"}
	may2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	f.billingRepo.EXPECT().
		ListPaidRecords(gomock.Any()).
		Return([]*billing.PaidRecord{
			{
				ID:      uuid.New(),
				OwnerID: jane.ID,
				TS:      may2,
				Total:   800,
				Items: []billing.Item{
					{EntryID: uuid.New(), Horse: "Bramble", JobLabel: "Muck Out", Price: 500, TS: may2},
					{EntryID: uuid.New(), Horse: "Bramble", JobLabel: "Turnout", Price: 300, TS: may2},
				},
			},
		}, nil)
	f.yardRepo.EXPECT().ListHorses(gomock.Any()).Return(nil, nil)
	f.yardRepo.EXPECT().ListOwners(gomock.Any()).Return([]stable.Owner{jane}, nil)

	var buf bytes.Buffer

	require.NoError(t, f.svc.WritePaidHistoryCSV(context.Background(), &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Horse names come from the settlement snapshot, not a live lookup.
	assert.Equal(t, []string{"2024-05-02", "Jane", "Bramble", "Muck Out", "5.00"}, rows[1])
	assert.Equal(t, []string{"2024-05-02", "Jane", "Bramble", "Turnout", "3.00"}, rows[2])
}
