package service

import (
	"context"
	"sort"
	"time"

	"github.com/yashkabra143/TimeTrakr/internal/earnings"
	"github.com/yashkabra143/TimeTrakr/internal/models"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
)

// Summary is the dashboard headline view: lifetime totals plus a
// per-project rollup.
type Summary struct {
	TotalMinutes        int
	TotalGrossUSD       float64
	TotalDeductionsUSD  float64
	TotalNetUSD         float64
	TotalNetINR         float64
	TotalWithdrawnUSD   float64
	AvailableBalanceUSD float64
	Projects            []ProjectTotals
}

// ProjectTotals rolls one project up. RemainingBudgetUSD is set for
// fixed contracts only.
type ProjectTotals struct {
	ProjectID          uint
	Name               string
	Type               string
	Color              string
	EntryCount         int
	Minutes            int
	GrossUSD           float64
	NetUSD             float64
	RemainingBudgetUSD *float64
}

// WeekBucket is one week of the weekly breakdown, keyed by the Monday
// the week starts on.
type WeekBucket struct {
	WeekStart time.Time
	Minutes   int
	GrossUSD  float64
	NetUSD    float64
	NetINR    float64
}

func (l *Ledger) Summary(ctx context.Context) (*Summary, error) {
	projects, err := l.store.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, _, err := l.store.Entries.List(ctx, repository.EntryFilter{})
	if err != nil {
		return nil, err
	}
	withdrawn, err := l.store.Withdrawals.SumNetEarnings(ctx)
	if err != nil {
		return nil, err
	}

	s := &Summary{TotalWithdrawnUSD: withdrawn}

	byProject := make(map[uint]*ProjectTotals, len(projects))
	for _, p := range projects {
		byProject[p.ID] = &ProjectTotals{
			ProjectID: p.ID,
			Name:      p.Name,
			Type:      p.Type,
			Color:     p.Color,
		}
	}

	for i := range entries {
		e := &entries[i]
		s.TotalMinutes += e.Minutes
		s.TotalGrossUSD += e.GrossUSD
		s.TotalDeductionsUSD += e.DeductionTotal
		s.TotalNetUSD += e.NetUSD
		s.TotalNetINR += e.NetINR

		pt, ok := byProject[e.ProjectID]
		if !ok {
			continue
		}
		pt.EntryCount++
		pt.Minutes += e.Minutes
		pt.GrossUSD += e.GrossUSD
		pt.NetUSD += e.NetUSD
	}

	s.AvailableBalanceUSD = earnings.AvailableBalance(s.TotalNetUSD, withdrawn)

	for _, p := range projects {
		pt := byProject[p.ID]
		if p.Type == models.ProjectFixed {
			remaining := earnings.RemainingBudget(p.Rate, pt.GrossUSD)
			pt.RemainingBudgetUSD = &remaining
		}
		s.Projects = append(s.Projects, *pt)
	}
	return s, nil
}

// Weekly groups entries of the last `weeks` weeks (including the
// current one) into Monday-keyed buckets. Empty weeks are emitted so
// charts get a continuous axis.
func (l *Ledger) Weekly(ctx context.Context, weeks int, now time.Time) ([]WeekBucket, error) {
	if weeks <= 0 {
		weeks = 12
	}

	currentWeek := startOfWeek(now)
	from := currentWeek.AddDate(0, 0, -7*(weeks-1))
	to := currentWeek.AddDate(0, 0, 7)

	entries, _, err := l.store.Entries.List(ctx, repository.EntryFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	// Key by the Monday's date string so entries stored in a different
	// location still land in the right bucket.
	buckets := make(map[string]*WeekBucket, weeks)
	for i := 0; i < weeks; i++ {
		start := from.AddDate(0, 0, 7*i)
		buckets[start.Format("2006-01-02")] = &WeekBucket{WeekStart: start}
	}

	for i := range entries {
		e := &entries[i]
		b, ok := buckets[startOfWeek(e.Date).Format("2006-01-02")]
		if !ok {
			continue
		}
		b.Minutes += e.Minutes
		b.GrossUSD += e.GrossUSD
		b.NetUSD += e.NetUSD
		b.NetINR += e.NetINR
	}

	out := make([]WeekBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })
	return out, nil
}

// startOfWeek truncates to the Monday 00:00 of t's week.
func startOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
