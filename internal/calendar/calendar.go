// Package calendar derives per-day views of the job log for the calendar
// grid. Everything here is a read-only projection; the log is never
// mutated.
package calendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"stablemate/internal/joblog"
)

// Day is the full projection for one calendar cell.
type Day struct {
	Date    time.Time       `json:"date"`
	Entries []*joblog.Entry `json:"entries"`
	Total   int64           `json:"total"`
	Paid    bool            `json:"paid"`
	Hazard  bool            `json:"hazard"`
}

// Summary is the lightweight per-day projection used when rendering a
// whole month at once.
type Summary struct {
	Date   time.Time `json:"date"`
	Count  int       `json:"count"`
	Total  int64     `json:"total"`
	Paid   bool      `json:"paid"`
	Hazard bool      `json:"hazard"`
}

// DayTotal sums prices for the given entries, paid and unpaid alike: a
// calendar cell shows gross activity, not outstanding balance.
func DayTotal(entries []*joblog.Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Price
	}

	return total
}

// HasPaidMarker reports whether any entry has been settled.
func HasPaidMarker(entries []*joblog.Entry) bool {
	for _, e := range entries {
		if e.Paid {
			return true
		}
	}

	return false
}

// HasHazardMarker reports whether any entry flags a shoot day.
func HasHazardMarker(entries []*joblog.Entry) bool {
	for _, e := range entries {
		if e.JobKey == joblog.KeyShoot {
			return true
		}
	}

	return false
}

// BucketByDay groups entries by their (already day-granular) date.
func BucketByDay(entries []*joblog.Entry) map[time.Time][]*joblog.Entry {
	buckets := make(map[time.Time][]*joblog.Entry)

	for _, e := range entries {
		d := joblog.DateOnly(e.TS)
		buckets[d] = append(buckets[d], e)
	}

	return buckets
}

type Service struct {
	log *joblog.Service
}

func NewService(log *joblog.Service) *Service {
	return &Service{log: log}
}

// Day projects one date's entries, total and markers.
func (s *Service) Day(ctx context.Context, date time.Time) (*Day, error) {
	entries, err := s.log.EntriesOnDay(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	return &Day{
		Date:    joblog.DateOnly(date),
		Entries: entries,
		Total:   DayTotal(entries),
		Paid:    HasPaidMarker(entries),
		Hazard:  HasHazardMarker(entries),
	}, nil
}

// Month summarizes every day of the given month that has activity, in
// date order.
func (s *Service) Month(ctx context.Context, year int, month time.Month) ([]Summary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	entries, err := s.log.List(ctx, joblog.ListFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	buckets := BucketByDay(entries)

	summaries := make([]Summary, 0, len(buckets))

	for date, dayEntries := range buckets {
		summaries = append(summaries, Summary{
			Date:   date,
			Count:  len(dayEntries),
			Total:  DayTotal(dayEntries),
			Paid:   HasPaidMarker(dayEntries),
			Hazard: HasHazardMarker(dayEntries),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date.Before(summaries[j].Date)
	})

	return summaries, nil
}
