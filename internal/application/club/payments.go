package club

import (
	"context"
	"sort"

	"clubhouse/internal/domain/payment"
)

// Payments returns the active season's payments, newest first.
func (a *App) Payments(ctx context.Context) ([]payment.Payment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, err := a.activeSeason(ctx, false)
	if err != nil {
		return nil, err
	}
	scoped, err := a.payments.ListBySeason(ctx, name)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scoped, func(i, j int) bool {
		return scoped[i].CreatedAt.After(scoped[j].CreatedAt)
	})
	return scoped, nil
}

// SavePayment creates or updates a payment. A payment without a season
// is stamped with the active one; an explicitly supplied season is
// kept. A paid payment without a payment date gets stamped with the
// current time.
// PRE: the active season is not completed
func (a *App) SavePayment(ctx context.Context, value payment.Payment) (payment.Payment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	name, err := a.activeSeason(ctx, true)
	if err != nil {
		return payment.Payment{}, err
	}
	if value.ID == "" {
		value.ID = a.newID()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = a.now()
	}
	if value.Status == payment.StatusPaid && value.PaidAt.IsZero() {
		value.PaidAt = a.now()
	}
	if value.Season == "" {
		value.Season = name
	}
	if err := value.Validate(); err != nil {
		return payment.Payment{}, err
	}
	if err := a.payments.Save(ctx, value); err != nil {
		return payment.Payment{}, err
	}
	return value, nil
}

// DeletePayment removes a payment. Deleting an absent id is a no-op.
// PRE: the active season is not completed
func (a *App) DeletePayment(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, err := a.activeSeason(ctx, true); err != nil {
		return err
	}
	return a.payments.Delete(ctx, id)
}
