package joblog_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stablemate/internal/joblog"
)

func TestService_Stage(t *testing.T) {
	horseID := uuid.New()
	date := time.Date(2024, 5, 2, 14, 30, 0, 0, time.UTC)

	type testCase struct {
		name        string
		horseID     uuid.UUID
		jobKey      string
		setupMock   func(m *joblog.MockRepository)
		wantErr     error
		wantDetails bool
		wantUntil   bool
	}

	tests := []testCase{
		{
			name:    "PricedJob",
			horseID: horseID,
			jobKey:  "muckout",
			setupMock: func(m *joblog.MockRepository) {
				m.EXPECT().ListJobTypes(gomock.Any()).Return(joblog.DefaultCatalog(), nil)
			},
		},
		{
			name:    "OtherNeedsDetails",
			horseID: horseID,
			jobKey:  joblog.KeyOther,
			setupMock: func(m *joblog.MockRepository) {
				m.EXPECT().ListJobTypes(gomock.Any()).Return(joblog.DefaultCatalog(), nil)
			},
			wantDetails: true,
		},
		{
			name:    "ShootNeedsUntil",
			horseID: horseID,
			jobKey:  joblog.KeyShoot,
			setupMock: func(m *joblog.MockRepository) {
				m.EXPECT().ListJobTypes(gomock.Any()).Return(joblog.DefaultCatalog(), nil)
			},
			wantUntil: true,
		},
		{
			name:    "NoHorse",
			horseID: uuid.Nil,
			jobKey:  "muckout",
			wantErr: joblog.ErrNoHorse,
		},
		{
			name:    "UnknownJob",
			horseID: horseID,
			jobKey:  "polish-hooves",
			setupMock: func(m *joblog.MockRepository) {
				m.EXPECT().ListJobTypes(gomock.Any()).Return(joblog.DefaultCatalog(), nil)
			},
			wantErr: joblog.ErrUnknownJob,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := joblog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := joblog.NewService(repo)
			staged, err := svc.Stage(context.Background(), tt.horseID, tt.jobKey, date)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDetails, staged.NeedsDetails)
			assert.Equal(t, tt.wantUntil, staged.NeedsUntil)

			// Staging normalizes to day granularity.
			assert.Equal(t, joblog.DateOnly(date), staged.Date)
		})
	}
}

func TestService_Commit_PricedJob(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *joblog.Entry) error {
			e.ID = uuid.New()
			return nil
		})

	staged := &joblog.Staged{
		HorseID: uuid.New(),
		Job:     joblog.JobType{Key: "muckout", Label: "Muck Out", Price: 500},
		Date:    time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}

	e, err := svc.Commit(context.Background(), staged, joblog.Details{})
	require.NoError(t, err)
	assert.Equal(t, "Muck Out", e.JobLabel)
	assert.Equal(t, int64(500), e.Price)
}

func TestService_Commit_OtherDeclinedIsCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)

	// No CreateEntry expectation: cancellation must have zero side effects.
	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	staged := &joblog.Staged{
		HorseID:      uuid.New(),
		Job:          joblog.JobType{Key: joblog.KeyOther, Label: "Other"},
		Date:         time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		NeedsDetails: true,
	}

	price := int64(100)

	_, err := svc.Commit(context.Background(), staged, joblog.Details{Description: "  ", Price: &price})
	assert.ErrorIs(t, err, joblog.ErrCanceled)

	_, err = svc.Commit(context.Background(), staged, joblog.Details{Description: "vet visit"})
	assert.ErrorIs(t, err, joblog.ErrCanceled)
}

func TestService_Commit_OtherWithDetails(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	repo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil)

	staged := &joblog.Staged{
		HorseID:      uuid.New(),
		Job:          joblog.JobType{Key: joblog.KeyOther, Label: "Other"},
		Date:         time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		NeedsDetails: true,
	}

	price := int64(1250)

	e, err := svc.Commit(context.Background(), staged, joblog.Details{Description: "vet visit", Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Other — vet visit", e.JobLabel)
	assert.Equal(t, int64(1250), e.Price)
}

func TestService_Commit_ShootFallsBackToUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	repo.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	staged := &joblog.Staged{
		HorseID:    uuid.New(),
		Job:        joblog.JobType{Key: joblog.KeyShoot, Label: "Shoot ⚠️"},
		Date:       time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		NeedsUntil: true,
	}

	// A blank cutoff is not a cancellation; it records as "unknown".
	e, err := svc.Commit(context.Background(), staged, joblog.Details{})
	require.NoError(t, err)
	assert.Equal(t, "Shoot ⚠️ — until unknown", e.JobLabel)
	assert.Equal(t, int64(0), e.Price)

	e, err = svc.Commit(context.Background(), staged, joblog.Details{Until: "15:00"})
	require.NoError(t, err)
	assert.Equal(t, "Shoot ⚠️ — until 15:00", e.JobLabel)
}

func TestService_MarkPaid_EmptyIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	err := svc.MarkPaid(context.Background(), nil)
	assert.NoError(t, err)
}

func TestService_RemoveJobType_Reserved(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	assert.ErrorIs(t, svc.RemoveJobType(context.Background(), joblog.KeyOther), joblog.ErrReservedJob)
	assert.ErrorIs(t, svc.RemoveJobType(context.Background(), joblog.KeyShoot), joblog.ErrReservedJob)

	repo.EXPECT().DeleteJobType(gomock.Any(), "muckout").Return(nil)
	assert.NoError(t, svc.RemoveJobType(context.Background(), "muckout"))
}

func TestService_AddJobType(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	repo.EXPECT().CreateJobType(gomock.Any(), gomock.Any()).Return(nil)

	jt, err := svc.AddJobType(context.Background(), "  Lunge  ", 400)
	require.NoError(t, err)
	assert.Equal(t, "Lunge", jt.Label)
	assert.Equal(t, int64(400), jt.Price)
	assert.True(t, jt.Custom)
	assert.NotEmpty(t, jt.Key)

	_, err = svc.AddJobType(context.Background(), "   ", 400)
	assert.Error(t, err)
}

func TestService_EntriesOnDay(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := joblog.NewMockRepository(ctrl)
	svc := joblog.NewService(repo)

	repo.EXPECT().
		ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter joblog.ListFilter) ([]*joblog.Entry, error) {
			require.NotNil(t, filter.Day)
			assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), *filter.Day)
			return nil, nil
		})

	_, err := svc.EntriesOnDay(context.Background(), time.Date(2024, 5, 2, 18, 45, 0, 0, time.UTC))
	assert.NoError(t, err)
}
