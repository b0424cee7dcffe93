package storage

// Substrate keys, one per collection. The codec's encoding behind these
// keys is an internal detail; nothing outside this layer depends on it.
const (
	KeyMembers         = "assoc_members"
	KeyActivities      = "assoc_activities"
	KeyPayments        = "assoc_payments"
	KeyTasks           = "assoc_tasks"
	KeyEvents          = "assoc_events"
	KeyMembershipTypes = "assoc_membership_types"
	KeyPaymentMethods  = "assoc_payment_methods"
	KeyEventTypes      = "assoc_event_types"
	KeySeasons         = "assoc_seasons"
	KeySettings        = "assoc_settings"
	KeyEnrollments     = "assoc_enrollments"
)

// CollectionKeys lists every collection key (settings excluded: it is a
// singleton record, not a collection).
var CollectionKeys = []string{
	KeyMembers,
	KeyActivities,
	KeyPayments,
	KeyTasks,
	KeyEvents,
	KeyMembershipTypes,
	KeyPaymentMethods,
	KeyEventTypes,
	KeySeasons,
	KeyEnrollments,
}
