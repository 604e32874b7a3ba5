// Package game implements the core of the quantum kitchen simulation: the
// world state, the resource ledger, the three-phase day cycle and the
// special-event system. All mutation happens inside synchronous command
// handlers; the presentation layer only parses text into commands and
// renders the returned messages and snapshots.
package game

import (
	"fmt"
	"math/rand"

	"kuantum/internal/models"
	"kuantum/internal/puzzle"
)

// Settings holds the tunable starting values for a run.
type Settings struct {
	Satisfaction int
	Stability    int
	Resources    map[models.ResourceType]int
	EventChance  float64
}

// DefaultSettings returns the standard starting values.
func DefaultSettings() Settings {
	return Settings{
		Satisfaction: 50,
		Stability:    100,
		Resources: map[models.ResourceType]int{
			models.ResourceQuantumEnergy:         10,
			models.ResourceProbabilityStabilizer: 5,
			models.ResourceTimelineToken:         2,
		},
		EventChance: 0.3,
	}
}

// Kitchen is the authoritative world state. It exclusively owns every order
// once generated: an order lives in exactly one of the available, active,
// completed or failed collections, and the timelines index is rebuilt on
// every structural change so it always mirrors the active collection.
type Kitchen struct {
	rng      *rand.Rand
	settings Settings

	day          int
	phase        Phase
	score        int
	satisfaction int
	stability    int
	maxActive    int

	ledger *Ledger

	available []*models.Order
	active    []*models.Order
	completed []*models.Order
	failed    []*models.Order
	timelines map[int][]*models.Order

	events []models.EventRecord

	// overReason latches the first game-over condition reached. Daily
	// regeneration can lift a meter back above zero afterwards, but a run
	// whose reality collapsed stays collapsed.
	overReason string

	// kitchenUnits is cosmetic status-display content.
	kitchenUnits map[string]int
}

// NewKitchen creates a run with the given settings and random source. The
// same seed replays the same run.
func NewKitchen(settings Settings, rng *rand.Rand) *Kitchen {
	return &Kitchen{
		rng:          rng,
		settings:     settings,
		day:          1,
		phase:        PhasePlanning,
		satisfaction: settings.Satisfaction,
		stability:    settings.Stability,
		maxActive:    3,
		ledger:       NewLedger(settings.Resources),
		timelines:    make(map[int][]*models.Order),
		kitchenUnits: map[string]int{
			"Quantum Stove":    1,
			"Probability Oven": 1,
			"Timeline Grill":   1,
		},
	}
}

// Day returns the current day number.
func (k *Kitchen) Day() int { return k.day }

// Phase returns the current phase.
func (k *Kitchen) Phase() Phase { return k.phase }

// Ledger returns the resource ledger.
func (k *Kitchen) Ledger() *Ledger { return k.ledger }

// AvailableOrder returns the available order at the zero-based index.
func (k *Kitchen) AvailableOrder(idx int) (*models.Order, error) {
	if idx < 0 || idx >= len(k.available) {
		return nil, fmt.Errorf("%w: available order %d", ErrInvalidIndex, idx+1)
	}
	return k.available[idx], nil
}

// ActiveOrder returns the active order at the zero-based index.
func (k *Kitchen) ActiveOrder(idx int) (*models.Order, error) {
	if idx < 0 || idx >= len(k.active) {
		return nil, fmt.Errorf("%w: active order %d", ErrInvalidIndex, idx+1)
	}
	return k.active[idx], nil
}

// AvailableOrders returns the current available batch.
func (k *Kitchen) AvailableOrders() []*models.Order { return k.available }

// ActiveOrders returns the current active orders.
func (k *Kitchen) ActiveOrders() []*models.Order { return k.active }

// CompletedOrders returns all delivered orders of the run.
func (k *Kitchen) CompletedOrders() []*models.Order { return k.completed }

// FailedOrders returns all expired and abandoned orders of the run.
func (k *Kitchen) FailedOrders() []*models.Order { return k.failed }

// Events returns the run's append-only special-event log.
func (k *Kitchen) Events() []models.EventRecord { return k.events }

// Timelines returns a copy of the timeline index over active orders.
func (k *Kitchen) Timelines() map[int][]*models.Order {
	out := make(map[int][]*models.Order, len(k.timelines))
	for id, orders := range k.timelines {
		out[id] = append([]*models.Order(nil), orders...)
	}
	return out
}

// GenerateOrders fills the available batch for the current day.
func (k *Kitchen) GenerateOrders() {
	count := 3 + min(k.day/2, 5)
	k.available = make([]*models.Order, 0, count)
	for i := 0; i < count; i++ {
		k.available = append(k.available, models.NewOrder(k.day, k.rng))
	}
}

// AcceptOrder moves an available order into the active set, subject to the
// active-order cap.
func (k *Kitchen) AcceptOrder(idx int) (string, error) {
	if idx < 0 || idx >= len(k.available) {
		return "", fmt.Errorf("%w: available order %d", ErrInvalidIndex, idx+1)
	}
	if len(k.active) >= k.maxActive {
		return "", fmt.Errorf("%w: you can only handle %d active orders at once", ErrCapacityExceeded, k.maxActive)
	}

	order := k.available[idx]
	k.available = append(k.available[:idx], k.available[idx+1:]...)
	k.active = append(k.active, order)
	k.rebuildTimelines()

	return fmt.Sprintf("Accepted order #%d", order.ID), nil
}

// RejectOrder discards an available order at a small satisfaction cost.
func (k *Kitchen) RejectOrder(idx int) (string, error) {
	if idx < 0 || idx >= len(k.available) {
		return "", fmt.Errorf("%w: available order %d", ErrInvalidIndex, idx+1)
	}

	k.available = append(k.available[:idx], k.available[idx+1:]...)
	k.setSatisfaction(k.satisfaction - 2)
	return "Order rejected", nil
}

// BeginPreparation validates that the active order at idx can be prepared
// and returns the puzzle bound to it. It does not consume resources; the
// caller runs the attempt loop and then calls FinishPreparation with the
// result. No other command can run in between: the game is single-threaded.
func (k *Kitchen) BeginPreparation(idx int) (puzzle.Puzzle, *models.Order, error) {
	order, err := k.ActiveOrder(idx)
	if err != nil {
		return nil, nil, err
	}
	if order.State != models.StateSuperposition {
		return nil, nil, fmt.Errorf("%w: cannot prepare order in %s state", ErrInvalidState, order.State)
	}
	for _, kind := range models.AllResources {
		if k.ledger.Balance(kind) < order.Requirements[kind] {
			return nil, nil, fmt.Errorf("%w: %s", ErrInsufficientResources, kind)
		}
	}
	return puzzle.New(order.PuzzleType, order.Difficulty, k.rng), order, nil
}

// FinishPreparation consumes the order's resources, collapses its
// superposition (with the bonus when the puzzle was solved) and applies
// score, satisfaction and stability effects.
func (k *Kitchen) FinishPreparation(idx int, solved bool) (string, error) {
	order, err := k.ActiveOrder(idx)
	if err != nil {
		return "", err
	}
	if order.State != models.StateSuperposition {
		return "", fmt.Errorf("%w: cannot prepare order in %s state", ErrInvalidState, order.State)
	}
	if err := k.ledger.Debit(order.Requirements); err != nil {
		return "", err
	}

	bonus := 0.0
	if solved {
		bonus = puzzle.SuccessBonus
	}
	order.Collapse(k.rng, bonus)
	outcome := order.ActualOutcome

	k.setSatisfaction(k.satisfaction + (outcome.Satisfaction-50)/10)

	reward := int(float64(order.Reward) * outcome.RewardMultiplier)
	k.score += reward

	var msg string
	if outcome.Satisfaction < 50 {
		k.setStability(k.stability - (50-outcome.Satisfaction)/10)
		msg = fmt.Sprintf("Prepared order #%d (%s). Reality distortion detected!", order.ID, outcome.Description)
	} else {
		msg = fmt.Sprintf("Prepared order #%d (%s). Earned %d points.", order.ID, outcome.Description, reward)
	}

	if kind, amount := k.ledger.OutcomeRefund(outcome.Satisfaction, k.rng); amount > 0 {
		msg += fmt.Sprintf(" Gained %d %s!", amount, kind)
	}

	return msg, nil
}

// DeliverOrder hands a collapsed order to its customer, moving it to the
// completed collection and granting the satisfaction-scaled resource bonus.
func (k *Kitchen) DeliverOrder(idx int) (string, error) {
	order, err := k.ActiveOrder(idx)
	if err != nil {
		return "", err
	}
	if order.State != models.StateCollapsed {
		return "", fmt.Errorf("%w: cannot deliver order in %s state", ErrInvalidState, order.State)
	}

	k.active = append(k.active[:idx], k.active[idx+1:]...)
	k.completed = append(k.completed, order)
	order.State = models.StateDelivered
	k.rebuildTimelines()

	k.ledger.DeliveryBonus(order.ActualOutcome.Satisfaction, k.rng)

	return fmt.Sprintf("Delivered order #%d. Customer satisfaction: %d%%",
		order.ID, order.ActualOutcome.Satisfaction), nil
}

// AdvanceTime ticks every active superposition order's countdown by one.
// Expired orders move to the failed collection and cost 5 satisfaction and
// 5 stability each. It returns the expired orders.
func (k *Kitchen) AdvanceTime() []*models.Order {
	var expired []*models.Order
	remaining := k.active[:0]
	for _, order := range k.active {
		if order.State == models.StateSuperposition && order.Tick() {
			expired = append(expired, order)
			continue
		}
		remaining = append(remaining, order)
	}
	k.active = remaining

	for _, order := range expired {
		k.failed = append(k.failed, order)
		k.setSatisfaction(k.satisfaction - 5)
		k.setStability(k.stability - 5)
	}
	if len(expired) > 0 {
		k.rebuildTimelines()
	}
	return expired
}

// AbandonActiveOrders force-ends the delivery phase: every remaining active
// order moves to the failed collection at 3 satisfaction each. It returns
// how many orders were abandoned.
func (k *Kitchen) AbandonActiveOrders() int {
	count := len(k.active)
	for _, order := range k.active {
		k.failed = append(k.failed, order)
		k.setSatisfaction(k.satisfaction - 3)
	}
	k.active = nil
	k.rebuildTimelines()
	return count
}

// AdvanceDay applies the between-day effects: a possible special event, the
// daily resource and stability income, the day increment and the new
// active-order cap.
func (k *Kitchen) AdvanceDay() string {
	var eventMsg string
	if k.rng.Float64() < k.settings.EventChance {
		eventMsg = k.triggerSpecialEvent()
	}

	k.ledger.Replenish(k.day)
	k.setStability(k.stability + 5 + k.satisfaction/20)

	k.day++
	k.maxActive = 3 + min(k.day/3, 4)

	msg := fmt.Sprintf("Day %d begins! Customer satisfaction: %d%%. Reality stability: %d%%",
		k.day, k.satisfaction, k.stability)
	if eventMsg != "" {
		msg = eventMsg + "\n" + msg
	}
	return msg
}

// CheckGameOver reports whether either health meter has run out at any point
// of the run. The two conditions are independent; either ends the run.
func (k *Kitchen) CheckGameOver() (bool, string) {
	if k.overReason != "" {
		return true, k.overReason
	}
	return false, ""
}

// setStability clamps and stores the stability meter, latching game over
// when it bottoms out.
func (k *Kitchen) setStability(v int) {
	k.stability = clamp(v)
	if k.stability <= 0 && k.overReason == "" {
		k.overReason = "GAME OVER: Reality has completely collapsed!"
	}
}

// setSatisfaction clamps and stores the satisfaction meter, latching game
// over when it bottoms out.
func (k *Kitchen) setSatisfaction(v int) {
	k.satisfaction = clamp(v)
	if k.satisfaction <= 0 && k.overReason == "" {
		k.overReason = "GAME OVER: Your restaurant has lost all its customers!"
	}
}

// rebuildTimelines reconstructs the timeline index from the active
// collection. Called after every structural change so the index can never
// diverge from the authoritative order list.
func (k *Kitchen) rebuildTimelines() {
	k.timelines = make(map[int][]*models.Order)
	for _, order := range k.active {
		k.timelines[order.Timeline] = append(k.timelines[order.Timeline], order)
	}
}

// clamp keeps a health meter inside [0,100].
func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
