package enrollment_test

import (
	"reflect"
	"testing"

	"clubhouse/internal/domain/enrollment"
)

// TestReplaceForMemberIdempotent verifies that applying the same
// replacement twice yields the same pair set.
func TestReplaceForMemberIdempotent(t *testing.T) {
	pairs := []enrollment.Enrollment{
		{MemberID: "m1", ActivityID: "a1"},
		{MemberID: "m2", ActivityID: "a1"},
	}

	once := enrollment.ReplaceForMember(pairs, "m1", []string{"a2", "a3"})
	twice := enrollment.ReplaceForMember(once, "m1", []string{"a2", "a3"})

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("ReplaceForMember not idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
	if got := enrollment.ActivityIDsFor(twice, "m1"); !reflect.DeepEqual(got, []string{"a2", "a3"}) {
		t.Errorf("ActivityIDsFor(m1) = %v, want [a2 a3]", got)
	}
	if got := enrollment.MemberIDsFor(twice, "a1"); !reflect.DeepEqual(got, []string{"m2"}) {
		t.Errorf("MemberIDsFor(a1) = %v, want [m2]", got)
	}
}

// TestReplaceForMemberDeduplicates verifies duplicate ids collapse to one pair.
func TestReplaceForMemberDeduplicates(t *testing.T) {
	out := enrollment.ReplaceForMember(nil, "m1", []string{"a1", "a1", "", "a1"})
	if len(out) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(out), out)
	}
	if out[0] != (enrollment.Enrollment{MemberID: "m1", ActivityID: "a1"}) {
		t.Errorf("pair = %v", out[0])
	}
}

// TestReplaceForActivity verifies the activity-side replacement.
func TestReplaceForActivity(t *testing.T) {
	pairs := []enrollment.Enrollment{
		{MemberID: "m1", ActivityID: "a1"},
		{MemberID: "m1", ActivityID: "a2"},
	}

	out := enrollment.ReplaceForActivity(pairs, "a1", []string{"m2"})

	if got := enrollment.MemberIDsFor(out, "a1"); !reflect.DeepEqual(got, []string{"m2"}) {
		t.Errorf("MemberIDsFor(a1) = %v, want [m2]", got)
	}
	if got := enrollment.ActivityIDsFor(out, "m1"); !reflect.DeepEqual(got, []string{"a2"}) {
		t.Errorf("ActivityIDsFor(m1) = %v, want [a2]", got)
	}
}

// TestRemoveMembersAndActivities verifies bulk removal used by cascades.
func TestRemoveMembersAndActivities(t *testing.T) {
	pairs := []enrollment.Enrollment{
		{MemberID: "m1", ActivityID: "a1"},
		{MemberID: "m2", ActivityID: "a1"},
		{MemberID: "m2", ActivityID: "a2"},
	}

	out := enrollment.RemoveMembers(pairs, map[string]bool{"m1": true})
	if len(out) != 2 {
		t.Fatalf("RemoveMembers: got %d pairs, want 2", len(out))
	}

	out = enrollment.RemoveActivities(out, map[string]bool{"a1": true})
	if len(out) != 1 || out[0].ActivityID != "a2" {
		t.Errorf("RemoveActivities: got %v, want the single a2 pair", out)
	}
}
