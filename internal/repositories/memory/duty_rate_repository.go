package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/brew_notes_app/internal/apperrors"
	"github.com/SscSPs/brew_notes_app/internal/core/domain"
	portsrepo "github.com/SscSPs/brew_notes_app/internal/core/ports/repositories"
)

// DutyRateRepository keeps one duty rate per effective date.
type DutyRateRepository struct {
	BaseRepository
	byDate map[string]domain.DutyRate
}

func newDutyRateRepository() *DutyRateRepository {
	return &DutyRateRepository{byDate: make(map[string]domain.DutyRate)}
}

var _ portsrepo.DutyRateRepositoryFacade = (*DutyRateRepository)(nil)

// SaveDutyRate inserts the rate or replaces the one with the same effective date.
func (r *DutyRateRepository) SaveDutyRate(ctx context.Context, rate domain.DutyRate) error {
	if err := r.checkCtx(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byDate[rate.DateEffective.Format(domain.DateLayout)] = rate
	return nil
}

// FindEffectiveDutyRate returns the latest rate whose effective date is on or before asOf.
func (r *DutyRateRepository) FindEffectiveDutyRate(ctx context.Context, asOf time.Time) (*domain.DutyRate, error) {
	if err := r.checkCtx(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Dates in DateLayout sort lexically in calendar order.
	day := asOf.Format(domain.DateLayout)
	var bestKey string
	for key := range r.byDate {
		if key <= day && key > bestKey {
			bestKey = key
		}
	}
	if bestKey == "" {
		return nil, apperrors.NewNotFoundError("no duty rate effective on " + day)
	}

	rate := r.byDate[bestKey]
	return &rate, nil
}

// ListDutyRates returns all rates, latest effective date first.
func (r *DutyRateRepository) ListDutyRates(ctx context.Context) ([]domain.DutyRate, error) {
	if err := r.checkCtx(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rates := make([]domain.DutyRate, 0, len(r.byDate))
	for _, rate := range r.byDate {
		rates = append(rates, rate)
	}
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].DateEffective.After(rates[j].DateEffective)
	})
	return rates, nil
}
