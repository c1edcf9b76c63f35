package usecase

import (
	"sort"
	"time"

	"reminder-metrics-service/internal/metrics/core/domain"
	reminders "reminder-metrics-service/internal/reminders/core/domain"
)

// bucketStrategy maps a row to its bucket label. ok=false drops the row from
// that strategy's series only.
type bucketStrategy struct {
	granularity domain.Granularity
	bucket      func(r reminders.Reminder) (label string, ok bool)
}

var (
	dayBuckets = bucketStrategy{
		granularity: domain.Daily,
		bucket: func(r reminders.Reminder) (string, bool) {
			return r.CreatedDate, true
		},
	}

	monthBuckets = bucketStrategy{
		granularity: domain.Monthly,
		bucket: func(r reminders.Reminder) (string, bool) {
			t, err := time.Parse(reminders.DateLayout, r.CreatedDate)
			if err != nil {
				return "", false
			}
			return t.Format("2006-01"), true
		},
	}
)

// Compute derives the full metrics bundle from ds. It does no I/O and the
// result depends only on ds.
func Compute(ds reminders.Dataset) *domain.Bundle {
	if ds.Empty() {
		return emptyBundle()
	}

	users := make(map[string]struct{})
	var sent int64
	for _, r := range ds {
		users[r.UserID] = struct{}{}
		if r.IsSent() {
			sent++
		}
	}

	b := &domain.Bundle{
		TotalUsers:          int64(len(users)),
		TotalRemindsCreated: int64(len(ds)),
		TotalRemindsSent:    sent,
	}
	b.PerUserRemindsCreated = perUser(float64(b.TotalRemindsCreated), b.TotalUsers)
	b.PerUserRemindsSent = perUser(float64(b.TotalRemindsSent), b.TotalUsers)

	b.Daily, _ = aggregate(ds, dayBuckets, b.TotalUsers)
	b.Monthly, b.UnbucketedRows = aggregate(ds, monthBuckets, b.TotalUsers)

	return b
}

func emptyBundle() *domain.Bundle {
	empty := func(g domain.Granularity) domain.GranularityStats {
		return domain.GranularityStats{
			Granularity:    g,
			Users:          domain.Series{},
			RemindsCreated: domain.Series{},
			RemindsSent:    domain.Series{},
		}
	}
	return &domain.Bundle{
		Daily:   empty(domain.Daily),
		Monthly: empty(domain.Monthly),
	}
}

type bucketAcc struct {
	users   map[string]struct{}
	created int64
	sent    int64
}

func aggregate(ds reminders.Dataset, s bucketStrategy, totalUsers int64) (domain.GranularityStats, int64) {
	buckets := make(map[string]*bucketAcc)
	var skipped int64

	for _, r := range ds {
		label, ok := s.bucket(r)
		if !ok {
			skipped++
			continue
		}

		acc, found := buckets[label]
		if !found {
			acc = &bucketAcc{users: make(map[string]struct{})}
			buckets[label] = acc
		}
		acc.users[r.UserID] = struct{}{}
		acc.created++
		if r.IsSent() {
			acc.sent++
		}
	}

	labels := make([]string, 0, len(buckets))
	for l := range buckets {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	st := domain.GranularityStats{
		Granularity:    s.granularity,
		Users:          make(domain.Series, 0, len(labels)),
		RemindsCreated: make(domain.Series, 0, len(labels)),
		RemindsSent:    domain.Series{},
	}
	for _, l := range labels {
		acc := buckets[l]
		st.Users = append(st.Users, domain.SeriesPoint{Label: l, Count: int64(len(acc.users))})
		st.RemindsCreated = append(st.RemindsCreated, domain.SeriesPoint{Label: l, Count: acc.created})
		// sent series only has buckets that contain a sent row
		if acc.sent > 0 {
			st.RemindsSent = append(st.RemindsSent, domain.SeriesPoint{Label: l, Count: acc.sent})
		}
	}

	st.AverageUsers = st.Users.Mean()
	st.AverageRemindsCreated = st.RemindsCreated.Mean()
	st.AverageRemindsSent = st.RemindsSent.Mean()
	st.AveragePerUserRemindsCreated = perUser(st.AverageRemindsCreated, totalUsers)
	st.AveragePerUserRemindsSent = perUser(st.AverageRemindsSent, totalUsers)

	return st, skipped
}

func perUser(v float64, users int64) float64 {
	if users <= 0 {
		return 0
	}
	return v / float64(users)
}
