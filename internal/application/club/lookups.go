package club

import (
	"context"

	"clubhouse/internal/domain/lookup"
)

// The three reference tables are season-independent and not frozen with
// the season: prices and labels stay editable at any time.

// MembershipTypes returns the membership formulas.
func (a *App) MembershipTypes(ctx context.Context) ([]lookup.MembershipType, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lookups.MembershipTypes(ctx)
}

// SaveMembershipType creates or updates a membership formula.
func (a *App) SaveMembershipType(ctx context.Context, value lookup.MembershipType) (lookup.MembershipType, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if value.ID == "" {
		value.ID = a.newID()
	}
	if err := value.Validate(); err != nil {
		return lookup.MembershipType{}, err
	}
	if err := a.lookups.SaveMembershipType(ctx, value); err != nil {
		return lookup.MembershipType{}, err
	}
	return value, nil
}

// DeleteMembershipType removes a membership formula.
func (a *App) DeleteMembershipType(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lookups.DeleteMembershipType(ctx, id)
}

// PaymentMethods returns the accepted payment methods.
func (a *App) PaymentMethods(ctx context.Context) ([]lookup.PaymentMethod, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lookups.PaymentMethods(ctx)
}

// SavePaymentMethod creates or updates a payment method.
func (a *App) SavePaymentMethod(ctx context.Context, value lookup.PaymentMethod) (lookup.PaymentMethod, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if value.ID == "" {
		value.ID = a.newID()
	}
	if err := value.Validate(); err != nil {
		return lookup.PaymentMethod{}, err
	}
	if err := a.lookups.SavePaymentMethod(ctx, value); err != nil {
		return lookup.PaymentMethod{}, err
	}
	return value, nil
}

// DeletePaymentMethod removes a payment method.
func (a *App) DeletePaymentMethod(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lookups.DeletePaymentMethod(ctx, id)
}

// EventTypes returns the calendar event categories.
func (a *App) EventTypes(ctx context.Context) ([]lookup.EventType, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lookups.EventTypes(ctx)
}

// SaveEventType creates or updates an event category.
func (a *App) SaveEventType(ctx context.Context, value lookup.EventType) (lookup.EventType, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if value.ID == "" {
		value.ID = a.newID()
	}
	if err := value.Validate(); err != nil {
		return lookup.EventType{}, err
	}
	if err := a.lookups.SaveEventType(ctx, value); err != nil {
		return lookup.EventType{}, err
	}
	return value, nil
}

// DeleteEventType removes an event category.
func (a *App) DeleteEventType(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lookups.DeleteEventType(ctx, id)
}
