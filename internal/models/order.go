package models

import (
	"fmt"
	"math/rand"
	"strings"
)

// OrderState represents the lifecycle state of an order.
//
// An order starts in SUPERPOSITION and leaves it exactly once, either by
// collapsing (COLLAPSED, then DELIVERED) or by running out of time (FAILED).
// FAILED and DELIVERED are terminal.
type OrderState string

const (
	StateSuperposition OrderState = "SUPERPOSITION"
	StateCollapsed     OrderState = "COLLAPSED"
	StateFailed        OrderState = "FAILED"
	StateDelivered     OrderState = "DELIVERED"
)

// Outcome represents one possible result of preparing an order.
type Outcome struct {
	Description      string  `json:"description"`
	Satisfaction     int     `json:"satisfaction"`
	RewardMultiplier float64 `json:"rewardMultiplier"`
	Probability      float64 `json:"probability"`
}

// Order represents a single customer order held in superposition until the
// player prepares it.
type Order struct {
	ID               int                  `json:"id"`
	State            OrderState           `json:"state"`
	Dish             DishType             `json:"dish"`
	TimeLimit        int                  `json:"timeLimit"`
	TimeRemaining    int                  `json:"timeRemaining"`
	Difficulty       int                  `json:"difficulty"`
	Requirements     map[ResourceType]int `json:"requirements"`
	Reward           int                  `json:"reward"`
	PuzzleType       PuzzleType           `json:"puzzleType"`
	PossibleOutcomes []Outcome            `json:"possibleOutcomes"`
	ActualOutcome    *Outcome             `json:"actualOutcome,omitempty"`
	Timeline         int                  `json:"timeline"`
}

// MaxTimeline returns the highest timeline id reachable on the given day.
func MaxTimeline(day int) int {
	return min(2+day/3, 5)
}

// NewOrder generates a fresh order for the given day. Time limit, resource
// cost, timeline and outcome spread all scale with the day-derived difficulty.
func NewOrder(day int, rng *rand.Rand) *Order {
	difficulty := min(1+day/3, 5)

	o := &Order{
		ID:           1000 + rng.Intn(9000),
		State:        StateSuperposition,
		Dish:         RandomDish(rng),
		Difficulty:   difficulty,
		PuzzleType:   RandomPuzzleType(rng),
		Timeline:     1 + rng.Intn(MaxTimeline(day)),
		Requirements: make(map[ResourceType]int, len(AllResources)),
	}

	o.TimeLimit = 3 + rng.Intn(3+min(day/2, 5))
	o.TimeRemaining = o.TimeLimit

	o.Requirements[ResourceQuantumEnergy] = 1 + rng.Intn(difficulty+1)
	o.Requirements[ResourceProbabilityStabilizer] = rng.Intn(difficulty/2 + 1)
	if difficulty > 2 {
		o.Requirements[ResourceTimelineToken] = rng.Intn(2)
	} else {
		o.Requirements[ResourceTimelineToken] = 0
	}

	total := 0
	for _, amount := range o.Requirements {
		total += amount
	}
	o.Reward = total*10 + difficulty*5

	o.PossibleOutcomes = generateOutcomes(o.Dish, difficulty, rng)
	return o
}

// generateOutcomes builds the 2-4 entry outcome distribution. Perfect and
// Good are always present; Mediocre and then Poor join on independent coin
// flips (Poor only if Mediocre did). Probabilities are normalized to 1.0.
func generateOutcomes(dish DishType, difficulty int, rng *rand.Rand) []Outcome {
	outcomes := []Outcome{
		{
			Description:      fmt.Sprintf("Perfect %s", dish),
			Satisfaction:     100,
			RewardMultiplier: 1.5,
			Probability:      0.2 + 0.1*float64(difficulty),
		},
		{
			Description:      fmt.Sprintf("Good %s", dish),
			Satisfaction:     80,
			RewardMultiplier: 1.0,
			Probability:      0.4,
		},
	}

	if rng.Intn(2) == 0 {
		outcomes = append(outcomes, Outcome{
			Description:      fmt.Sprintf("Mediocre %s", dish),
			Satisfaction:     50,
			RewardMultiplier: 0.7,
			Probability:      0.3,
		})
		if rng.Intn(2) == 0 {
			outcomes = append(outcomes, Outcome{
				Description:      fmt.Sprintf("Poor %s", dish),
				Satisfaction:     20,
				RewardMultiplier: 0.3,
				Probability:      0.1,
			})
		}
	}

	normalize(outcomes)
	return outcomes
}

// normalize rescales probabilities in place so they sum to 1.0.
func normalize(outcomes []Outcome) {
	total := 0.0
	for _, o := range outcomes {
		total += o.Probability
	}
	if total == 0 {
		return
	}
	for i := range outcomes {
		outcomes[i].Probability /= total
	}
}

// Collapse resolves the order's superposition into one concrete outcome.
//
// A positive bonus shifts probability mass toward outcomes with satisfaction
// of at least 80, taking it evenly from the rest. The bias is skipped when
// fewer than three outcomes exist: with only Perfect and Good there is
// nothing to take mass from. Calling Collapse on an order that has already
// left superposition is a no-op.
func (o *Order) Collapse(rng *rand.Rand, bonus float64) {
	if o.State != StateSuperposition {
		return
	}

	biased := make([]Outcome, len(o.PossibleOutcomes))
	copy(biased, o.PossibleOutcomes)

	if bonus > 0 && len(biased) >= 3 {
		penalty := bonus / float64(len(biased)-2)
		for i := range biased {
			if biased[i].Satisfaction >= 80 {
				biased[i].Probability += bonus
			} else {
				biased[i].Probability -= penalty
			}
			// A large bonus can push small outcomes below zero; clamp so
			// normalization cannot invert the weighting.
			if biased[i].Probability < 0 {
				biased[i].Probability = 0
			}
		}
		normalize(biased)
	}

	r := rng.Float64()
	cumulative := 0.0
	for i := range biased {
		cumulative += biased[i].Probability
		if r < cumulative {
			picked := biased[i]
			o.ActualOutcome = &picked
			break
		}
	}
	if o.ActualOutcome == nil {
		// Floating point residue left r above the final cumulative sum.
		picked := biased[len(biased)-1]
		o.ActualOutcome = &picked
	}

	o.State = StateCollapsed
}

// Tick advances the order's countdown by one unit. It reports true when the
// order expires, transitioning it from SUPERPOSITION to FAILED.
func (o *Order) Tick() bool {
	o.TimeRemaining--
	if o.TimeRemaining <= 0 && o.State == StateSuperposition {
		o.State = StateFailed
		return true
	}
	return false
}

// Summary returns the one-line listing text for the order.
func (o *Order) Summary() string {
	s := fmt.Sprintf("Order #%d: %s - %s", o.ID, o.Dish, o.State)
	switch o.State {
	case StateSuperposition:
		s += fmt.Sprintf(" (Time: %d/%d, Timeline: %d)", o.TimeRemaining, o.TimeLimit, o.Timeline)
	case StateCollapsed:
		s += fmt.Sprintf(" - %s (Satisfaction: %d%%)", o.ActualOutcome.Description, o.ActualOutcome.Satisfaction)
	}
	return s
}

// Details returns the full multi-line breakdown shown by the inspect commands.
func (o *Order) Details() string {
	lines := []string{
		fmt.Sprintf("Order #%d: %s", o.ID, o.Dish),
		fmt.Sprintf("State: %s", o.State),
		fmt.Sprintf("Timeline: %d", o.Timeline),
		fmt.Sprintf("Time Remaining: %d/%d", o.TimeRemaining, o.TimeLimit),
		fmt.Sprintf("Difficulty: %d stars", o.Difficulty),
		fmt.Sprintf("Puzzle Type: %s", o.PuzzleType),
		"Resource Requirements:",
	}

	for _, resource := range AllResources {
		if amount := o.Requirements[resource]; amount > 0 {
			lines = append(lines, fmt.Sprintf("  - %s: %d", resource, amount))
		}
	}

	lines = append(lines, fmt.Sprintf("Base Reward: %d points", o.Reward))

	switch o.State {
	case StateSuperposition:
		lines = append(lines, "", "Possible Outcomes:")
		for _, outcome := range o.PossibleOutcomes {
			lines = append(lines, fmt.Sprintf("  - %s (Satisfaction: %d%%, Probability: %.1f%%)",
				outcome.Description, outcome.Satisfaction, outcome.Probability*100))
		}
	case StateCollapsed:
		lines = append(lines,
			"",
			fmt.Sprintf("Outcome: %s", o.ActualOutcome.Description),
			fmt.Sprintf("Satisfaction: %d%%", o.ActualOutcome.Satisfaction),
			fmt.Sprintf("Reward Multiplier: %.1fx", o.ActualOutcome.RewardMultiplier),
		)
	}

	return strings.Join(lines, "\n")
}
