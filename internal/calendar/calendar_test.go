package calendar_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stablemate/internal/calendar"
	"stablemate/internal/joblog"
)

func TestDayTotal_IncludesPaidEntries(t *testing.T) {
	entries := []*joblog.Entry{
		{Price: 500, Paid: true},
		{Price: 300},
	}

	// A calendar cell shows gross activity, so paid entries still count.
	assert.Equal(t, int64(800), calendar.DayTotal(entries))
	assert.Equal(t, int64(0), calendar.DayTotal(nil))
}

func TestMarkers(t *testing.T) {
	assert.False(t, calendar.HasPaidMarker([]*joblog.Entry{{Price: 500}}))
	assert.True(t, calendar.HasPaidMarker([]*joblog.Entry{{Price: 500}, {Paid: true}}))

	assert.False(t, calendar.HasHazardMarker([]*joblog.Entry{{JobKey: "muckout"}}))
	assert.True(t, calendar.HasHazardMarker([]*joblog.Entry{{JobKey: joblog.KeyShoot}}))
}

func TestBucketByDay(t *testing.T) {
	may2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	may3 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	entries := []*joblog.Entry{
		{ID: uuid.New(), TS: may2},
		{ID: uuid.New(), TS: may3},
		{ID: uuid.New(), TS: may2},
	}

	buckets := calendar.BucketByDay(entries)

	require.Len(t, buckets, 2)
	assert.Len(t, buckets[may2], 2)
	assert.Len(t, buckets[may3], 1)
}

func TestService_Day(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := joblog.NewMockRepository(ctrl)
	svc := calendar.NewService(joblog.NewService(repo))

	may2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListEntries(gomock.Any(), gomock.Any()).
		Return([]*joblog.Entry{
			{ID: uuid.New(), JobKey: joblog.KeyShoot, TS: may2},
			{ID: uuid.New(), JobKey: "feed", Price: 250, Paid: true, TS: may2},
		}, nil)

	day, err := svc.Day(context.Background(), may2)
	require.NoError(t, err)
	assert.Equal(t, may2, day.Date)
	assert.Equal(t, int64(250), day.Total)
	assert.True(t, day.Paid)
	assert.True(t, day.Hazard)
}

func TestService_Month(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := joblog.NewMockRepository(ctrl)
	svc := calendar.NewService(joblog.NewService(repo))

	may2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	may9 := time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter joblog.ListFilter) ([]*joblog.Entry, error) {
			require.NotNil(t, filter.From)
			require.NotNil(t, filter.To)
			assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *filter.From)
			assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), *filter.To)

			return []*joblog.Entry{
				{ID: uuid.New(), Price: 300, TS: may9},
				{ID: uuid.New(), Price: 500, TS: may2},
				{ID: uuid.New(), Price: 250, TS: may2},
			}, nil
		})

	summaries, err := svc.Month(context.Background(), 2024, time.May)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Sorted by date, days without activity omitted.
	assert.Equal(t, may2, summaries[0].Date)
	assert.Equal(t, 2, summaries[0].Count)
	assert.Equal(t, int64(750), summaries[0].Total)
	assert.Equal(t, may9, summaries[1].Date)
}
