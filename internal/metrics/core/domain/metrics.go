package domain

import "sort"

// Granularity is both the bucketing strategy and the dashboard view mode.
type Granularity string

const (
	Daily   Granularity = "daily"
	Monthly Granularity = "monthly"
)

func (g Granularity) Valid() bool {
	return g == Daily || g == Monthly
}

type SeriesPoint struct {
	Label string // "2024-03-07" or "2024-03"
	Count int64
}

// Series is sorted ascending by label, one point per bucket present.
type Series []SeriesPoint

func (s Series) Sum() int64 {
	var total int64
	for _, p := range s {
		total += p.Count
	}
	return total
}

// Mean is 0 for an empty series.
func (s Series) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(s.Sum()) / float64(len(s))
}

type GranularityStats struct {
	Granularity Granularity

	Users          Series
	RemindsCreated Series
	RemindsSent    Series

	AverageUsers          float64
	AverageRemindsCreated float64
	AverageRemindsSent    float64

	// averages above divided by Bundle.TotalUsers
	AveragePerUserRemindsCreated float64
	AveragePerUserRemindsSent    float64
}

type Bundle struct {
	TotalUsers          int64
	TotalRemindsCreated int64
	TotalRemindsSent    int64

	PerUserRemindsCreated float64
	PerUserRemindsSent    float64

	Daily   GranularityStats
	Monthly GranularityStats

	// rows left out of the monthly series because created date did not parse
	UnbucketedRows int64
}

func (b *Bundle) View(g Granularity) GranularityStats {
	if g == Monthly {
		return b.Monthly
	}
	return b.Daily
}

type ComparisonPoint struct {
	Label   string
	Created int64
	Sent    int64
}

// JoinComparison outer-joins created and sent on label; a side missing a
// bucket counts 0.
func JoinComparison(created, sent Series) []ComparisonPoint {
	byLabel := make(map[string]*ComparisonPoint, len(created)+len(sent))
	for _, p := range created {
		byLabel[p.Label] = &ComparisonPoint{Label: p.Label, Created: p.Count}
	}
	for _, p := range sent {
		if cp, ok := byLabel[p.Label]; ok {
			cp.Sent = p.Count
			continue
		}
		byLabel[p.Label] = &ComparisonPoint{Label: p.Label, Sent: p.Count}
	}

	out := make([]ComparisonPoint, 0, len(byLabel))
	for _, cp := range byLabel {
		out = append(out, *cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
