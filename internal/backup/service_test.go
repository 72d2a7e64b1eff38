package backup_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stablemate/internal/backup"
	"stablemate/internal/billing"
	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

type fixture struct {
	restorer    *backup.MockRestorer
	yardRepo    *stable.MockRepository
	logRepo     *joblog.MockRepository
	billingRepo *billing.MockRepository
	svc         *backup.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	restorer := backup.NewMockRestorer(ctrl)
	yardRepo := stable.NewMockRepository(ctrl)
	logRepo := joblog.NewMockRepository(ctrl)
	billingRepo := billing.NewMockRepository(ctrl)

	yard := stable.NewService(yardRepo)
	log := joblog.NewService(logRepo)
	billingSvc := billing.NewService(billingRepo, log, yard)

	return &fixture{
		restorer:    restorer,
		yardRepo:    yardRepo,
		logRepo:     logRepo,
		billingRepo: billingRepo,
		svc:         backup.NewService(restorer, yard, log, billingSvc),
	}
}

func TestService_Export(t *testing.T) {
	f := newFixture(t)

	jane := stable.Owner{ID: uuid.New(), Name: "Jane"}
	bramble := stable.Horse{ID: uuid.New(), Name: "Bramble", OwnerID: jane.ID}
	entry := &joblog.Entry{ID: uuid.New(), HorseID: bramble.ID, JobLabel: "Muck Out", Price: 500}

	f.yardRepo.EXPECT().ListOwners(gomock.Any()).Return([]stable.Owner{jane}, nil)
	f.yardRepo.EXPECT().ListHorses(gomock.Any()).Return([]stable.Horse{bramble}, nil)
	f.logRepo.EXPECT().ListEntries(gomock.Any(), joblog.ListFilter{}).Return([]*joblog.Entry{entry}, nil)
	f.billingRepo.EXPECT().ListPaidRecords(gomock.Any()).Return(nil, nil)
	f.logRepo.EXPECT().ListJobTypes(gomock.Any()).Return(joblog.DefaultCatalog(), nil)

	snap, err := f.svc.Export(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Owners, 1)
	assert.Len(t, snap.Horses, 1)
	assert.Len(t, snap.Logs, 1)
	assert.Empty(t, snap.PaidHistory)
	assert.Len(t, snap.Jobs, 8)
}

func TestService_Import(t *testing.T) {
	f := newFixture(t)

	jane := stable.Owner{ID: uuid.New(), Name: "Jane", CreatedAt: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)}
	in := backup.Snapshot{
		Owners: []stable.Owner{jane},
		Jobs:   []joblog.JobType{{Key: "muckout", Label: "Muck Out", Price: 500}},
	}

	payload, err := json.Marshal(in)
	require.NoError(t, err)

	f.restorer.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *backup.Snapshot) error {
			require.Len(t, snap.Owners, 1)
			assert.Equal(t, jane.ID, snap.Owners[0].ID)
			assert.Len(t, snap.Jobs, 1)
			return nil
		})

	snap, err := f.svc.Import(context.Background(), bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, "Jane", snap.Owners[0].Name)
}

func TestService_Import_UTF8BOM(t *testing.T) {
	f := newFixture(t)

	payload, err := json.Marshal(backup.Snapshot{
		Owners: []stable.Owner{{ID: uuid.New(), Name: "Señora García"}},
	})
	require.NoError(t, err)

	// Files saved by Windows tools often carry a UTF-8 BOM.
	bom := []byte{0xEF, 0xBB, 0xBF}

	f.restorer.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	snap, err := f.svc.Import(context.Background(), bytes.NewReader(append(bom, payload...)))
	require.NoError(t, err)
	assert.Equal(t, "Señora García", snap.Owners[0].Name)
}

func TestService_Import_EmptyCatalogFallsBack(t *testing.T) {
	f := newFixture(t)

	payload, err := json.Marshal(backup.Snapshot{
		Owners: []stable.Owner{{ID: uuid.New(), Name: "Jane"}},
	})
	require.NoError(t, err)

	f.restorer.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snap *backup.Snapshot) error {
			assert.Equal(t, joblog.DefaultCatalog(), snap.Jobs)
			return nil
		})

	_, err = f.svc.Import(context.Background(), bytes.NewReader(payload))
	require.NoError(t, err)
}

func TestService_Import_BadJSON(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Import(context.Background(), bytes.NewReader([]byte("not json")))
	assert.Error(t, err)
}

func TestService_WriteJSON(t *testing.T) {
	f := newFixture(t)

	f.yardRepo.EXPECT().ListOwners(gomock.Any()).Return([]stable.Owner{{ID: uuid.New(), Name: "Jane"}}, nil)
	f.yardRepo.EXPECT().ListHorses(gomock.Any()).Return(nil, nil)
	f.logRepo.EXPECT().ListEntries(gomock.Any(), joblog.ListFilter{}).Return(nil, nil)
	f.billingRepo.EXPECT().ListPaidRecords(gomock.Any()).Return(nil, nil)
	f.logRepo.EXPECT().ListJobTypes(gomock.Any()).Return(joblog.DefaultCatalog(), nil)

	var buf bytes.Buffer

	require.NoError(t, f.svc.WriteJSON(context.Background(), &buf))

	var snap backup.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	assert.Equal(t, "Jane", snap.Owners[0].Name)
}
