// Package ui implements the terminal presentation layer: rendering the
// world state, parsing player commands, and running the puzzle attempt
// loop. All game mutation happens through the core's command surface.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"kuantum/internal/game"
	"kuantum/internal/models"
	"kuantum/internal/puzzle"
)

// Loop drives a run from a terminal. After every applied command it hands
// the fresh status snapshot to each registered observer (metrics collector,
// playground server).
type Loop struct {
	kitchen   *game.Kitchen
	in        *bufio.Scanner
	out       io.Writer
	eof       bool
	observers []func(game.StatusSnapshot)
}

// NewLoop creates a terminal loop over the given kitchen.
func NewLoop(kitchen *game.Kitchen, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		kitchen: kitchen,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// AddObserver registers a snapshot observer. Observers run synchronously on
// the game loop after every command.
func (l *Loop) AddObserver(fn func(game.StatusSnapshot)) {
	l.observers = append(l.observers, fn)
}

// Run plays the game until quit or game over, then prints the summary.
func (l *Loop) Run() {
	l.clear()
	l.println(tutorial)
	l.prompt("\nPress ENTER to start your first day at Kuantum Kitchen...")

	for {
		l.println(l.kitchen.StartDay())
		l.notify()

		if over, reason := l.kitchen.CheckGameOver(); over {
			l.println(reason)
			break
		}

		if !l.runPhase() {
			break
		}

		if over, reason := l.kitchen.CheckGameOver(); over {
			l.println(reason)
			break
		}
	}

	l.clear()
	l.println(RenderSummary(l.kitchen.Summarize()))
}

// runPhase runs the three phase loops of one day. It reports false when the
// player quits.
func (l *Loop) runPhase() bool {
	for {
		if l.eof {
			return false
		}
		l.redraw()

		raw := l.prompt("\nEnter command: ")
		cmd, err := ParseCommand(l.kitchen.Phase(), raw)
		if err != nil {
			l.pause(err.Error())
			continue
		}

		switch cmd.Kind {
		case game.CmdQuit:
			if l.confirm("Are you sure you want to quit? (y/n): ") {
				return false
			}
			continue
		case game.CmdEndDay:
			if len(l.kitchen.ActiveOrders()) > 0 &&
				l.confirm("You still have active orders. Are you sure you want to end the day? (y/n): ") {
				cmd.Force = true
			}
		}

		result := l.kitchen.Apply(cmd)
		l.notify()

		switch {
		case result.Err != nil:
			l.pause(result.Err.Error())
		case result.Puzzle != nil:
			solved := l.runPuzzle(result.Puzzle, result.Order)
			msg, err := l.kitchen.FinishPreparation(cmd.Index, solved)
			l.notify()
			if err != nil {
				l.pause(err.Error())
			} else {
				l.pause(msg)
			}
		case result.EndedDay:
			l.pause(result.Message)
			return true
		default:
			l.pause(result.Message)
		}
	}
}

// runPuzzle runs the three-attempt skill check. Malformed input consumes an
// attempt like any wrong answer.
func (l *Loop) runPuzzle(p puzzle.Puzzle, order *models.Order) bool {
	l.clear()
	l.println("===== QUANTUM KITCHEN MINI-PUZZLE =====")
	l.println(fmt.Sprintf("Order #%d: %s", order.ID, order.Dish))
	l.println(fmt.Sprintf("Puzzle Type: %s", order.PuzzleType))
	l.println("\n" + p.Describe())
	l.println("\n" + p.AnswerFormat())

	for attempt := 1; attempt <= puzzle.MaxAttempts; attempt++ {
		raw := l.prompt(fmt.Sprintf("\nAttempt %d/%d: ", attempt, puzzle.MaxAttempts))

		answer, err := p.ParseInput(raw)
		if err != nil {
			l.println("Invalid input format. Please try again.")
			continue
		}

		if p.Check(answer) {
			l.println("\nCorrect! Quantum state stabilized!")
			return true
		}
		l.println("Incorrect. Try again.")
	}

	l.println("\nPuzzle failed. The order's quantum state is becoming unstable!")
	l.println(fmt.Sprintf("The correct solution was: %s", p.Solution()))
	return false
}

// redraw clears the screen and renders the current phase view.
func (l *Loop) redraw() {
	l.clear()
	snap := l.kitchen.Snapshot()
	l.println(RenderStatus(snap))

	switch l.kitchen.Phase() {
	case game.PhasePlanning:
		l.println(RenderOrderList("AVAILABLE ORDERS", l.kitchen.AvailableOrders(), "No more orders available."))
		l.println("")
		l.println(RenderOrderList("ACTIVE ORDERS", l.kitchen.ActiveOrders(), "No active orders."))
	case game.PhaseExecution:
		l.println(RenderOrderList("ACTIVE ORDERS", l.kitchen.ActiveOrders(), "No active orders. All orders have been prepared!"))
		l.println("")
		l.println(RenderTimelines(l.kitchen.Timelines()))
	case game.PhaseDelivery:
		l.println(RenderOrderList("ACTIVE ORDERS", l.kitchen.ActiveOrders(), "No active orders. All orders have been delivered!"))
		l.println("")
		l.println(RenderTimelines(l.kitchen.Timelines()))
	}

	l.println("")
	l.println(phaseMenus[l.kitchen.Phase()])
}

// notify pushes a fresh snapshot to every observer.
func (l *Loop) notify() {
	if len(l.observers) == 0 {
		return
	}
	snap := l.kitchen.Snapshot()
	for _, fn := range l.observers {
		fn(snap)
	}
}

func (l *Loop) println(msg string) {
	fmt.Fprintln(l.out, msg)
}

// prompt prints a prompt and reads one line of input. On EOF it marks the
// loop for shutdown and returns an empty line.
func (l *Loop) prompt(text string) string {
	fmt.Fprint(l.out, text)
	if !l.in.Scan() {
		l.eof = true
		return ""
	}
	return l.in.Text()
}

// pause shows a message and waits for ENTER.
func (l *Loop) pause(msg string) {
	l.println(msg)
	l.prompt("Press ENTER to continue...")
}

// confirm asks a yes/no question.
func (l *Loop) confirm(question string) bool {
	answer := strings.ToLower(strings.TrimSpace(l.prompt(question)))
	return answer == "y" || answer == "yes"
}

// clear wipes the terminal with an ANSI escape.
func (l *Loop) clear() {
	fmt.Fprint(l.out, "\033[2J\033[H")
}
