package ui

import (
	"fmt"
	"sort"
	"strings"

	"kuantum/internal/game"
	"kuantum/internal/models"
)

// RenderStatus builds the status header shown at the top of every screen.
func RenderStatus(snap game.StatusSnapshot) string {
	lines := []string{
		fmt.Sprintf("===== KUANTUM KITCHEN - DAY %d =====", snap.Day),
		fmt.Sprintf("Phase: %s", snap.Phase),
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Customer Satisfaction: %d%%", snap.Satisfaction),
		fmt.Sprintf("Reality Stability: %d%%", snap.Stability),
		"",
		"Resources:",
	}

	for _, kind := range models.AllResources {
		lines = append(lines, fmt.Sprintf("  %s: %d", kind, snap.Resources[kind]))
	}

	units := make([]string, 0, len(snap.KitchenUnits))
	for name := range snap.KitchenUnits {
		units = append(units, name)
	}
	sort.Strings(units)
	for i, name := range units {
		units[i] = fmt.Sprintf("%s (x%d)", name, snap.KitchenUnits[name])
	}
	lines = append(lines, "", fmt.Sprintf("Kitchen Units: %s", strings.Join(units, ", ")), "")

	if len(snap.Events) > 0 {
		lines = append(lines, "Active Events:")
		for _, event := range snap.Events {
			lines = append(lines, fmt.Sprintf("  %s", event.Type))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// RenderOrderList builds a numbered order listing under a heading.
func RenderOrderList(heading string, orders []*models.Order, empty string) string {
	lines := []string{fmt.Sprintf("===== %s =====", heading)}
	if len(orders) == 0 {
		lines = append(lines, empty)
	} else {
		for i, order := range orders {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, order.Summary()))
		}
	}
	return strings.Join(lines, "\n")
}

// RenderTimelines builds the timeline grouping block.
func RenderTimelines(timelines map[int][]*models.Order) string {
	ids := make([]int, 0, len(timelines))
	for id := range timelines {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := []string{"===== TIMELINES ====="}
	for _, id := range ids {
		orders := timelines[id]
		if len(orders) == 0 {
			continue
		}
		names := make([]string, len(orders))
		for i, order := range orders {
			names[i] = fmt.Sprintf("#%d", order.ID)
		}
		lines = append(lines, fmt.Sprintf("Timeline %d: Orders %s", id, strings.Join(names, ", ")))
	}
	return strings.Join(lines, "\n")
}

// phaseMenus are the command menus per phase.
var phaseMenus = map[game.Phase]string{
	game.PhasePlanning: strings.Join([]string{
		"===== PLANNING PHASE COMMANDS =====",
		"[a#] Accept order # (e.g., a1)",
		"[r#] Reject order # (e.g., r1)",
		"[v#] View available order details # (e.g., v1)",
		"[va#] View active order details # (e.g., va1)",
		"[n] Proceed to Execution Phase",
		"[q] Quit game",
	}, "\n"),
	game.PhaseExecution: strings.Join([]string{
		"===== EXECUTION PHASE COMMANDS =====",
		"[p#] Prepare order # (e.g., p1)",
		"[v#] View order details # (e.g., v1)",
		"[t] Update time (advances time by 1 unit)",
		"[n] Proceed to Delivery Phase",
		"[q] Quit game",
	}, "\n"),
	game.PhaseDelivery: strings.Join([]string{
		"===== DELIVERY PHASE COMMANDS =====",
		"[d#] Deliver order # (e.g., d1)",
		"[v#] View order details # (e.g., v1)",
		"[n] End day and proceed to next day",
		"[q] Quit game",
	}, "\n"),
}

// RenderSummary builds the end-of-run report.
func RenderSummary(summary game.RunSummary) string {
	lines := []string{
		"===== KUANTUM KITCHEN SUMMARY =====",
		fmt.Sprintf("Days Survived: %d", summary.DaysSurvived),
		fmt.Sprintf("Final Score: %d", summary.FinalScore),
		fmt.Sprintf("Customer Satisfaction: %d%%", summary.Satisfaction),
		fmt.Sprintf("Reality Stability: %d%%", summary.Stability),
		fmt.Sprintf("Orders Completed: %d", summary.OrdersCompleted),
		fmt.Sprintf("Orders Failed: %d", summary.OrdersFailed),
	}

	if len(summary.BestOrders) > 0 {
		lines = append(lines, "", "Top 5 Best Orders:")
		for i, order := range summary.BestOrders {
			lines = append(lines, fmt.Sprintf("%d. Order #%d: %s - %s (%d%%)",
				i+1, order.ID, order.Dish,
				order.ActualOutcome.Description, order.ActualOutcome.Satisfaction))
		}
	}

	return strings.Join(lines, "\n")
}

// tutorial is shown once before the first day.
var tutorial = strings.Join([]string{
	"===== WELCOME TO KUANTUM KITCHEN =====",
	"",
	"You are the manager of a quantum kitchen where orders exist in superposition until observed!",
	"",
	"GAME PHASES:",
	"1. PLANNING: Accept orders and allocate resources",
	"2. EXECUTION: Prepare orders by solving mini-puzzles and using resources",
	"3. DELIVERY: Deliver completed orders to customers",
	"",
	"KEY CONCEPTS:",
	"- Orders exist in SUPERPOSITION until prepared",
	"- When prepared, orders COLLAPSE into a specific dish quality",
	"- Failed orders cause REALITY DISTORTIONS that permanently affect the game",
	"- Maintain CUSTOMER SATISFACTION and REALITY STABILITY to succeed",
	"",
	"RESOURCES:",
	"- Quantum Energy: Powers your kitchen operations",
	"- Probability Stabilizers: Increase chances of successful dishes",
	"- Timeline Tokens: Help manage deliveries across multiple timelines",
}, "\n")
