// Package enrollment models the Member-Activity relationship as a flat
// set of pairs. Both Member.ActivityIDs and Activity.MemberIDs are
// derived from this set on read, so the two directions can never
// disagree.
package enrollment

// Enrollment links one member to one activity.
type Enrollment struct {
	MemberID   string `json:"memberId"`
	ActivityID string `json:"activityId"`
}

// ActivityIDsFor returns the activity ids the given member is enrolled in.
// POST: result preserves the order of pairs; never nil
func ActivityIDsFor(pairs []Enrollment, memberID string) []string {
	ids := make([]string, 0)
	for _, p := range pairs {
		if p.MemberID == memberID {
			ids = append(ids, p.ActivityID)
		}
	}
	return ids
}

// MemberIDsFor returns the member ids enrolled in the given activity.
// POST: result preserves the order of pairs; never nil
func MemberIDsFor(pairs []Enrollment, activityID string) []string {
	ids := make([]string, 0)
	for _, p := range pairs {
		if p.ActivityID == activityID {
			ids = append(ids, p.MemberID)
		}
	}
	return ids
}

// ReplaceForMember returns pairs with the member's enrollments replaced
// by the given activity ids, deduplicated. Applying it twice with the
// same ids yields the same result.
func ReplaceForMember(pairs []Enrollment, memberID string, activityIDs []string) []Enrollment {
	out := make([]Enrollment, 0, len(pairs)+len(activityIDs))
	for _, p := range pairs {
		if p.MemberID != memberID {
			out = append(out, p)
		}
	}
	seen := make(map[string]bool, len(activityIDs))
	for _, id := range activityIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, Enrollment{MemberID: memberID, ActivityID: id})
	}
	return out
}

// ReplaceForActivity returns pairs with the activity's enrollments
// replaced by the given member ids, deduplicated.
func ReplaceForActivity(pairs []Enrollment, activityID string, memberIDs []string) []Enrollment {
	out := make([]Enrollment, 0, len(pairs)+len(memberIDs))
	for _, p := range pairs {
		if p.ActivityID != activityID {
			out = append(out, p)
		}
	}
	seen := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, Enrollment{MemberID: id, ActivityID: activityID})
	}
	return out
}

// RemoveMembers returns pairs without any enrollment of the given members.
func RemoveMembers(pairs []Enrollment, memberIDs map[string]bool) []Enrollment {
	out := make([]Enrollment, 0, len(pairs))
	for _, p := range pairs {
		if !memberIDs[p.MemberID] {
			out = append(out, p)
		}
	}
	return out
}

// RemoveActivities returns pairs without any enrollment in the given activities.
func RemoveActivities(pairs []Enrollment, activityIDs map[string]bool) []Enrollment {
	out := make([]Enrollment, 0, len(pairs))
	for _, p := range pairs {
		if !activityIDs[p.ActivityID] {
			out = append(out, p)
		}
	}
	return out
}
