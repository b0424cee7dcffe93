// Package projections holds read-only queries computed from the facade,
// shaped for display.
package projections

import (
	"context"

	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/payment"
	"clubhouse/internal/domain/task"
)

// StatsSource defines the facade surface needed by the season stats
// projection. Every lister is already scoped to the active season.
type StatsSource interface {
	Members(ctx context.Context) ([]member.Member, error)
	Activities(ctx context.Context) ([]activity.Activity, error)
	Payments(ctx context.Context) ([]payment.Payment, error)
	Tasks(ctx context.Context) ([]task.Task, error)
}

// ActivityStats is one activity's line on the dashboard.
type ActivityStats struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Enrolled  int     `json:"enrolled"`
	Collected float64 `json:"collected"`
}

// SeasonStats is the active season's dashboard summary.
type SeasonStats struct {
	MemberCount    int             `json:"memberCount"`
	ActivityCount  int             `json:"activityCount"`
	PaymentCount   int             `json:"paymentCount"`
	TotalCollected float64         `json:"totalCollected"`
	TotalPending   float64         `json:"totalPending"`
	OpenTasks      int             `json:"openTasks"`
	Activities     []ActivityStats `json:"activities"`
}

// GetSeasonStats computes the active season's summary: headcounts,
// money collected and outstanding, per-activity enrollment and revenue.
// Enrollment is counted over the season's members, so pairs left behind
// by other seasons never inflate a line.
// POST: TotalCollected sums paid payments only, TotalPending the rest
func GetSeasonStats(ctx context.Context, source StatsSource) (SeasonStats, error) {
	members, err := source.Members(ctx)
	if err != nil {
		return SeasonStats{}, err
	}
	activities, err := source.Activities(ctx)
	if err != nil {
		return SeasonStats{}, err
	}
	payments, err := source.Payments(ctx)
	if err != nil {
		return SeasonStats{}, err
	}
	tasks, err := source.Tasks(ctx)
	if err != nil {
		return SeasonStats{}, err
	}

	stats := SeasonStats{
		MemberCount:   len(members),
		ActivityCount: len(activities),
		PaymentCount:  len(payments),
		Activities:    make([]ActivityStats, 0, len(activities)),
	}
	collectedByActivity := make(map[string]float64)
	for _, p := range payments {
		if p.IsPaid() {
			stats.TotalCollected += p.Amount
			collectedByActivity[p.ActivityID] += p.Amount
		} else {
			stats.TotalPending += p.Amount
		}
	}
	for _, t := range tasks {
		if t.Status != task.StatusDone {
			stats.OpenTasks++
		}
	}
	for _, a := range activities {
		enrolled := 0
		for _, m := range members {
			if m.EnrolledIn(a.ID) {
				enrolled++
			}
		}
		stats.Activities = append(stats.Activities, ActivityStats{
			ID:        a.ID,
			Name:      a.Name,
			Enrolled:  enrolled,
			Collected: collectedByActivity[a.ID],
		})
	}
	return stats, nil
}
