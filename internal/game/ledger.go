package game

import (
	"fmt"
	"math/rand"

	"kuantum/internal/models"
)

// Ledger tracks the kitchen's resource balances. Balances never go negative:
// spending is an all-or-nothing check followed by an atomic debit.
type Ledger struct {
	balances map[models.ResourceType]int
}

// NewLedger creates a ledger with the given starting balances.
func NewLedger(initial map[models.ResourceType]int) *Ledger {
	balances := make(map[models.ResourceType]int, len(models.AllResources))
	for _, kind := range models.AllResources {
		balances[kind] = initial[kind]
	}
	return &Ledger{balances: balances}
}

// Balance returns the current balance for one resource kind.
func (l *Ledger) Balance(kind models.ResourceType) int {
	return l.balances[kind]
}

// Balances returns a copy of all balances.
func (l *Ledger) Balances() map[models.ResourceType]int {
	out := make(map[models.ResourceType]int, len(l.balances))
	for kind, amount := range l.balances {
		out[kind] = amount
	}
	return out
}

// Debit spends the full requirement set atomically. If any single kind falls
// short it returns ErrInsufficientResources naming the kind and leaves every
// balance untouched.
func (l *Ledger) Debit(requirements map[models.ResourceType]int) error {
	for _, kind := range models.AllResources {
		if l.balances[kind] < requirements[kind] {
			return fmt.Errorf("%w: %s", ErrInsufficientResources, kind)
		}
	}
	for kind, amount := range requirements {
		l.balances[kind] -= amount
	}
	return nil
}

// Credit adds amount units of one resource kind.
func (l *Ledger) Credit(kind models.ResourceType, amount int) {
	l.balances[kind] += amount
}

// OutcomeRefund grants the high-satisfaction preparation refund: one unit of
// a random kind at satisfaction 80 or above, two at 90 or above. It returns
// the granted kind and amount, or zero when satisfaction is too low.
func (l *Ledger) OutcomeRefund(satisfaction int, rng *rand.Rand) (models.ResourceType, int) {
	if satisfaction < 80 {
		return "", 0
	}
	amount := 1
	if satisfaction >= 90 {
		amount = 2
	}
	kind := models.RandomResource(rng)
	l.balances[kind] += amount
	return kind, amount
}

// DeliveryBonus grants satisfaction/20 resource units on delivery, each of an
// independently random kind. It returns the granted amounts per kind.
func (l *Ledger) DeliveryBonus(satisfaction int, rng *rand.Rand) map[models.ResourceType]int {
	granted := make(map[models.ResourceType]int)
	for i := 0; i < satisfaction/20; i++ {
		kind := models.RandomResource(rng)
		l.balances[kind]++
		granted[kind]++
	}
	return granted
}

// Replenish applies the daily flat resource income for the given day.
func (l *Ledger) Replenish(day int) {
	l.balances[models.ResourceQuantumEnergy] += 5 + day/2
	l.balances[models.ResourceProbabilityStabilizer] += 2 + day/3
	l.balances[models.ResourceTimelineToken] += 1 + day/4
}
