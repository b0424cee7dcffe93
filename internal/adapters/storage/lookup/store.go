package lookup

import (
	"context"

	domain "clubhouse/internal/domain/lookup"
)

// Store persists the three reference tables: membership types, payment
// methods and event types. They are small, season-independent and seeded
// with defaults on first run.
type Store interface {
	MembershipTypes(ctx context.Context) ([]domain.MembershipType, error)
	SaveMembershipType(ctx context.Context, value domain.MembershipType) error
	DeleteMembershipType(ctx context.Context, id string) error
	ReplaceMembershipTypes(ctx context.Context, values []domain.MembershipType) error

	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
	SavePaymentMethod(ctx context.Context, value domain.PaymentMethod) error
	DeletePaymentMethod(ctx context.Context, id string) error
	ReplacePaymentMethods(ctx context.Context, values []domain.PaymentMethod) error

	EventTypes(ctx context.Context) ([]domain.EventType, error)
	SaveEventType(ctx context.Context, value domain.EventType) error
	DeleteEventType(ctx context.Context, id string) error
	ReplaceEventTypes(ctx context.Context, values []domain.EventType) error
}
