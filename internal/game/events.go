package game

import (
	"fmt"

	"kuantum/internal/models"
)

// triggerSpecialEvent fires one uniformly-drawn special event and appends it
// to the run's event log.
func (k *Kitchen) triggerSpecialEvent() string {
	event := models.AllEvents[k.rng.Intn(len(models.AllEvents))]
	msg := fmt.Sprintf("SPECIAL EVENT: %s!", event)

	switch event {
	case models.EventResourceBoost:
		kind := models.RandomResource(k.rng)
		amount := 2 + k.rng.Intn(4)
		k.ledger.Credit(kind, amount)
		msg += fmt.Sprintf(" Gained %d %s!", amount, kind)

	case models.EventTimelineShift:
		limit := models.MaxTimeline(k.day)
		for _, order := range k.active {
			order.Timeline = 1 + k.rng.Intn(limit)
		}
		k.rebuildTimelines()
		msg += " All orders have shifted to different timelines!"

	case models.EventQuantumFluctuation:
		if len(k.active) > 0 {
			order := k.active[k.rng.Intn(len(k.active))]
			if order.State == models.StateSuperposition {
				order.TimeRemaining = min(order.TimeLimit, order.TimeRemaining+2)
				msg += fmt.Sprintf(" Order #%d gained 2 time units!", order.ID)
			}
		}

	case models.EventRealityDistortion:
		loss := 5 + k.rng.Intn(11)
		k.setStability(k.stability - loss)
		msg += fmt.Sprintf(" Reality stability reduced by %d%%!", loss)
	}

	k.events = append(k.events, models.EventRecord{
		Day:     k.day,
		Type:    event,
		Message: msg,
	})
	return msg
}
