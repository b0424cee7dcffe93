package lookup

import (
	"context"

	"clubhouse/internal/adapters/storage"
	"clubhouse/internal/adapters/storage/kv"
	domain "clubhouse/internal/domain/lookup"
)

// KVStore implements Store over the key-value substrate, one collection
// per reference table.
type KVStore struct {
	membershipTypes *storage.CollectionStore[domain.MembershipType]
	paymentMethods  *storage.CollectionStore[domain.PaymentMethod]
	eventTypes      *storage.CollectionStore[domain.EventType]
}

// Compile-time check that *KVStore satisfies Store.
var _ Store = (*KVStore)(nil)

// NewKVStore creates the lookup store bound to its three keys.
func NewKVStore(store kv.Store, codec storage.Codec, cache *storage.Cache) *KVStore {
	return &KVStore{
		membershipTypes: storage.NewCollectionStore(
			storage.NewCollection[domain.MembershipType](storage.KeyMembershipTypes, store, codec, cache),
			func(v domain.MembershipType) string { return v.ID },
		),
		paymentMethods: storage.NewCollectionStore(
			storage.NewCollection[domain.PaymentMethod](storage.KeyPaymentMethods, store, codec, cache),
			func(v domain.PaymentMethod) string { return v.ID },
		),
		eventTypes: storage.NewCollectionStore(
			storage.NewCollection[domain.EventType](storage.KeyEventTypes, store, codec, cache),
			func(v domain.EventType) string { return v.ID },
		),
	}
}

func (s *KVStore) MembershipTypes(ctx context.Context) ([]domain.MembershipType, error) {
	return s.membershipTypes.List(ctx)
}

func (s *KVStore) SaveMembershipType(ctx context.Context, value domain.MembershipType) error {
	return s.membershipTypes.Save(ctx, value)
}

func (s *KVStore) DeleteMembershipType(ctx context.Context, id string) error {
	return s.membershipTypes.Delete(ctx, id)
}

func (s *KVStore) ReplaceMembershipTypes(ctx context.Context, values []domain.MembershipType) error {
	return s.membershipTypes.ReplaceAll(ctx, values)
}

func (s *KVStore) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.paymentMethods.List(ctx)
}

func (s *KVStore) SavePaymentMethod(ctx context.Context, value domain.PaymentMethod) error {
	return s.paymentMethods.Save(ctx, value)
}

func (s *KVStore) DeletePaymentMethod(ctx context.Context, id string) error {
	return s.paymentMethods.Delete(ctx, id)
}

func (s *KVStore) ReplacePaymentMethods(ctx context.Context, values []domain.PaymentMethod) error {
	return s.paymentMethods.ReplaceAll(ctx, values)
}

func (s *KVStore) EventTypes(ctx context.Context) ([]domain.EventType, error) {
	return s.eventTypes.List(ctx)
}

func (s *KVStore) SaveEventType(ctx context.Context, value domain.EventType) error {
	return s.eventTypes.Save(ctx, value)
}

func (s *KVStore) DeleteEventType(ctx context.Context, id string) error {
	return s.eventTypes.Delete(ctx, id)
}

func (s *KVStore) ReplaceEventTypes(ctx context.Context, values []domain.EventType) error {
	return s.eventTypes.ReplaceAll(ctx, values)
}
