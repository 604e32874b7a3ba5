package game

import (
	"sort"

	"kuantum/internal/models"
)

// StatusSnapshot carries every display-relevant field of the world state.
// It is safe to marshal: order slices are copied at snapshot time.
type StatusSnapshot struct {
	Day          int                         `json:"day"`
	Phase        Phase                       `json:"phase"`
	Score        int                         `json:"score"`
	Satisfaction int                         `json:"satisfaction"`
	Stability    int                         `json:"stability"`
	Resources    map[models.ResourceType]int `json:"resources"`
	MaxActive    int                         `json:"maxActiveOrders"`
	KitchenUnits map[string]int              `json:"kitchenUnits"`
	Available    []models.Order              `json:"availableOrders"`
	Active       []models.Order              `json:"activeOrders"`
	Completed    int                         `json:"completedOrders"`
	Failed       int                         `json:"failedOrders"`
	Events       []models.EventRecord        `json:"events"`
}

// Snapshot captures the current world state for display and broadcast.
func (k *Kitchen) Snapshot() StatusSnapshot {
	units := make(map[string]int, len(k.kitchenUnits))
	for name, count := range k.kitchenUnits {
		units[name] = count
	}

	return StatusSnapshot{
		Day:          k.day,
		Phase:        k.phase,
		Score:        k.score,
		Satisfaction: k.satisfaction,
		Stability:    k.stability,
		Resources:    k.ledger.Balances(),
		MaxActive:    k.maxActive,
		KitchenUnits: units,
		Available:    copyOrders(k.available),
		Active:       copyOrders(k.active),
		Completed:    len(k.completed),
		Failed:       len(k.failed),
		Events:       append([]models.EventRecord(nil), k.events...),
	}
}

// RunSummary holds the end-of-run report data.
type RunSummary struct {
	DaysSurvived    int
	FinalScore      int
	Satisfaction    int
	Stability       int
	OrdersCompleted int
	OrdersFailed    int
	// BestOrders are the top delivered orders by outcome satisfaction,
	// at most five.
	BestOrders []models.Order
}

// Summarize builds the end-of-run report.
func (k *Kitchen) Summarize() RunSummary {
	best := copyOrders(k.completed)
	sort.SliceStable(best, func(i, j int) bool {
		return best[i].ActualOutcome.Satisfaction > best[j].ActualOutcome.Satisfaction
	})
	if len(best) > 5 {
		best = best[:5]
	}

	return RunSummary{
		DaysSurvived:    k.day,
		FinalScore:      k.score,
		Satisfaction:    k.satisfaction,
		Stability:       k.stability,
		OrdersCompleted: len(k.completed),
		OrdersFailed:    len(k.failed),
		BestOrders:      best,
	}
}

func copyOrders(orders []*models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	for i, order := range orders {
		out[i] = *order
	}
	return out
}
