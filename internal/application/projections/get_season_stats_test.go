package projections_test

import (
	"context"
	"testing"

	"clubhouse/internal/application/projections"
	"clubhouse/internal/domain/activity"
	"clubhouse/internal/domain/member"
	"clubhouse/internal/domain/payment"
	"clubhouse/internal/domain/task"
)

type fakeSource struct {
	members    []member.Member
	activities []activity.Activity
	payments   []payment.Payment
	tasks      []task.Task
}

func (f *fakeSource) Members(context.Context) ([]member.Member, error)       { return f.members, nil }
func (f *fakeSource) Activities(context.Context) ([]activity.Activity, error) {
	return f.activities, nil
}
func (f *fakeSource) Payments(context.Context) ([]payment.Payment, error) { return f.payments, nil }
func (f *fakeSource) Tasks(context.Context) ([]task.Task, error)          { return f.tasks, nil }

func TestGetSeasonStats(t *testing.T) {
	source := &fakeSource{
		members: []member.Member{
			{ID: "m1", LastName: "Dupont", FirstName: "Anne", ActivityIDs: []string{"a1", "a2"}},
			{ID: "m2", LastName: "Martin", FirstName: "Luc", ActivityIDs: []string{"a1"}},
		},
		activities: []activity.Activity{
			{ID: "a1", Name: "Judo", MemberIDs: []string{"m1", "m2"}},
			{ID: "a2", Name: "Yoga", MemberIDs: []string{"m1"}},
		},
		payments: []payment.Payment{
			{ID: "p1", MemberID: "m1", ActivityID: "a1", Amount: 120, Status: payment.StatusPaid},
			{ID: "p2", MemberID: "m2", ActivityID: "a1", Amount: 120, Status: payment.StatusPending},
			{ID: "p3", MemberID: "m1", ActivityID: "a2", Amount: 80, Status: payment.StatusPaid},
		},
		tasks: []task.Task{
			{ID: "t1", Name: "Order belts", Status: task.StatusTodo},
			{ID: "t2", Name: "Book gym", Status: task.StatusDone},
		},
	}

	stats, err := projections.GetSeasonStats(context.Background(), source)
	if err != nil {
		t.Fatalf("GetSeasonStats failed: %v", err)
	}
	if stats.MemberCount != 2 || stats.ActivityCount != 2 || stats.PaymentCount != 3 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.TotalCollected != 200 {
		t.Errorf("expected 200 collected, got %v", stats.TotalCollected)
	}
	if stats.TotalPending != 120 {
		t.Errorf("expected 120 pending, got %v", stats.TotalPending)
	}
	if stats.OpenTasks != 1 {
		t.Errorf("expected 1 open task, got %d", stats.OpenTasks)
	}
	if len(stats.Activities) != 2 {
		t.Fatalf("expected 2 activity lines, got %d", len(stats.Activities))
	}
	judo := stats.Activities[0]
	if judo.Name != "Judo" || judo.Enrolled != 2 || judo.Collected != 120 {
		t.Errorf("unexpected Judo line: %+v", judo)
	}
}

func TestGetSeasonStatsEmpty(t *testing.T) {
	stats, err := projections.GetSeasonStats(context.Background(), &fakeSource{})
	if err != nil {
		t.Fatalf("GetSeasonStats failed: %v", err)
	}
	if stats.MemberCount != 0 || stats.TotalCollected != 0 || stats.TotalPending != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
	if stats.Activities == nil {
		t.Error("expected an empty, non-nil activity list")
	}
}
