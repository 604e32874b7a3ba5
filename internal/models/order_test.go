package models

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderProbabilitiesSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for day := 1; day <= 20; day++ {
		for i := 0; i < 50; i++ {
			order := NewOrder(day, rng)

			require.GreaterOrEqual(t, len(order.PossibleOutcomes), 2)
			require.LessOrEqual(t, len(order.PossibleOutcomes), 4)

			total := 0.0
			for _, outcome := range order.PossibleOutcomes {
				total += outcome.Probability
			}
			assert.InDelta(t, 1.0, total, 1e-9)
		}
	}
}

func TestNewOrderFields(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for day := 1; day <= 20; day++ {
		order := NewOrder(day, rng)

		assert.Equal(t, StateSuperposition, order.State)
		assert.Nil(t, order.ActualOutcome)
		assert.Equal(t, min(1+day/3, 5), order.Difficulty)
		assert.Equal(t, order.TimeLimit, order.TimeRemaining)
		assert.GreaterOrEqual(t, order.TimeLimit, 3)
		assert.LessOrEqual(t, order.TimeLimit, 5+min(day/2, 5))
		assert.GreaterOrEqual(t, order.Timeline, 1)
		assert.LessOrEqual(t, order.Timeline, MaxTimeline(day))
		assert.GreaterOrEqual(t, order.ID, 1000)
		assert.LessOrEqual(t, order.ID, 9999)

		total := 0
		for _, kind := range AllResources {
			assert.GreaterOrEqual(t, order.Requirements[kind], 0)
			total += order.Requirements[kind]
		}
		assert.Equal(t, total*10+order.Difficulty*5, order.Reward)
	}
}

func TestCollapseZeroBonusKeepsDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	order := NewOrder(5, rng)

	before := make([]Outcome, len(order.PossibleOutcomes))
	copy(before, order.PossibleOutcomes)

	order.Collapse(rng, 0)

	require.Equal(t, StateCollapsed, order.State)
	require.NotNil(t, order.ActualOutcome)
	assert.Equal(t, before, order.PossibleOutcomes, "collapse must not mutate the stored distribution")
}

func TestCollapsePicksFromPossibleOutcomes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		order := NewOrder(4, rng)
		order.Collapse(rng, 0.2)

		require.NotNil(t, order.ActualOutcome)
		found := false
		for _, outcome := range order.PossibleOutcomes {
			if outcome.Description == order.ActualOutcome.Description {
				found = true
			}
		}
		assert.True(t, found, "actual outcome must be one of the possible outcomes")
	}
}

func TestCollapseIsNoOpOutsideSuperposition(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	order := NewOrder(1, rng)

	order.Collapse(rng, 0)
	picked := order.ActualOutcome

	order.Collapse(rng, 0.2)
	assert.Equal(t, StateCollapsed, order.State)
	assert.Same(t, picked, order.ActualOutcome)

	order.State = StateDelivered
	order.Collapse(rng, 0.2)
	assert.Equal(t, StateDelivered, order.State)
	assert.Same(t, picked, order.ActualOutcome)
}

func TestCollapseBiasSkippedForTwoOutcomes(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	order := &Order{
		State: StateSuperposition,
		PossibleOutcomes: []Outcome{
			{Description: "Perfect", Satisfaction: 100, Probability: 0.6},
			{Description: "Good", Satisfaction: 80, Probability: 0.4},
		},
	}

	// With only two outcomes the bias divisor would be zero; the guard must
	// skip the bias and still collapse cleanly.
	order.Collapse(rng, 0.2)
	require.Equal(t, StateCollapsed, order.State)
	require.NotNil(t, order.ActualOutcome)
	assert.False(t, math.IsNaN(order.ActualOutcome.Probability))
}

func TestCollapseBonusFavorsHighSatisfaction(t *testing.T) {
	base := []Outcome{
		{Description: "Perfect", Satisfaction: 100, Probability: 0.3},
		{Description: "Good", Satisfaction: 80, Probability: 0.3},
		{Description: "Mediocre", Satisfaction: 50, Probability: 0.3},
		{Description: "Poor", Satisfaction: 20, Probability: 0.1},
	}

	count := func(bonus float64, seed int64) int {
		rng := rand.New(rand.NewSource(seed))
		high := 0
		for i := 0; i < 2000; i++ {
			order := &Order{State: StateSuperposition}
			order.PossibleOutcomes = append([]Outcome(nil), base...)
			order.Collapse(rng, bonus)
			if order.ActualOutcome.Satisfaction >= 80 {
				high++
			}
		}
		return high
	}

	assert.Greater(t, count(0.2, 42), count(0, 42))
}

func TestTickExpiry(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	order := NewOrder(1, rng)
	order.TimeRemaining = 2
	assert.False(t, order.Tick())
	assert.Equal(t, StateSuperposition, order.State)
	assert.Equal(t, 1, order.TimeRemaining)

	assert.True(t, order.Tick())
	assert.Equal(t, StateFailed, order.State)
}

func TestTickLeavesCollapsedOrdersAlone(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	order := NewOrder(1, rng)
	order.Collapse(rng, 0)

	order.TimeRemaining = 1
	assert.False(t, order.Tick())
	assert.Equal(t, StateCollapsed, order.State)
}
