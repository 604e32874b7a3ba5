package game

import (
	"errors"
	"fmt"

	"kuantum/internal/models"
	"kuantum/internal/puzzle"
)

// Phase represents one of the three phases of a game day. A day always runs
// Planning, then Execution, then Delivery, with no skipping or re-entry.
type Phase string

const (
	PhasePlanning  Phase = "Planning"
	PhaseExecution Phase = "Execution"
	PhaseDelivery  Phase = "Delivery"
)

// CommandKind identifies a player command.
type CommandKind string

const (
	CmdAccept           CommandKind = "accept"
	CmdReject           CommandKind = "reject"
	CmdInspectAvailable CommandKind = "inspect-available"
	CmdInspectActive    CommandKind = "inspect-active"
	CmdPrepare          CommandKind = "prepare"
	CmdAdvanceTime      CommandKind = "advance-time"
	CmdDeliver          CommandKind = "deliver"
	CmdProceed          CommandKind = "proceed"
	CmdEndDay           CommandKind = "end-day"
	CmdQuit             CommandKind = "quit"
)

// Command is one parsed player command. Index is zero-based where present.
type Command struct {
	Kind  CommandKind
	Index int
	Force bool
}

// Result is the outcome of one applied command.
type Result struct {
	Message string
	Err     error

	// Puzzle and Order are set for a prepare command: the caller runs the
	// attempt loop against the puzzle and then calls FinishPreparation.
	Puzzle puzzle.Puzzle
	Order  *models.Order

	// EndedDay reports that the delivery phase finished and the next day
	// may begin. Quit reports that the player is leaving the run.
	EndedDay bool
	Quit     bool
}

// allowedCommands gates the command surface per phase.
var allowedCommands = map[Phase]map[CommandKind]bool{
	PhasePlanning: {
		CmdAccept: true, CmdReject: true, CmdInspectAvailable: true,
		CmdInspectActive: true, CmdProceed: true, CmdQuit: true,
	},
	PhaseExecution: {
		CmdPrepare: true, CmdInspectActive: true, CmdAdvanceTime: true,
		CmdProceed: true, CmdQuit: true,
	},
	PhaseDelivery: {
		CmdDeliver: true, CmdInspectActive: true, CmdEndDay: true,
		CmdQuit: true,
	},
}

// StartDay applies the between-day effects and opens the planning phase with
// a fresh available-order batch. The caller should check CheckGameOver
// before handing control to the player.
func (k *Kitchen) StartDay() string {
	msg := k.AdvanceDay()
	k.phase = PhasePlanning
	k.GenerateOrders()
	return msg
}

// Apply dispatches one phase-gated command against the world state. Every
// mutation of the run goes through here (or through the two preparation
// halves a prepare result points the caller at).
func (k *Kitchen) Apply(cmd Command) Result {
	if !allowedCommands[k.phase][cmd.Kind] {
		return Result{Err: fmt.Errorf("command %q is not available in the %s phase", cmd.Kind, k.phase)}
	}

	switch cmd.Kind {
	case CmdAccept:
		msg, err := k.AcceptOrder(cmd.Index)
		return Result{Message: msg, Err: err}

	case CmdReject:
		msg, err := k.RejectOrder(cmd.Index)
		return Result{Message: msg, Err: err}

	case CmdInspectAvailable:
		order, err := k.AvailableOrder(cmd.Index)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Message: order.Details(), Order: order}

	case CmdInspectActive:
		order, err := k.ActiveOrder(cmd.Index)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Message: order.Details(), Order: order}

	case CmdPrepare:
		p, order, err := k.BeginPreparation(cmd.Index)
		if err != nil {
			return Result{Err: err}
		}
		return Result{Puzzle: p, Order: order}

	case CmdAdvanceTime:
		expired := k.AdvanceTime()
		if len(expired) == 0 {
			return Result{Message: "Time advances. All orders hold their superposition."}
		}
		msg := ""
		for i, order := range expired {
			if i > 0 {
				msg += "\n"
			}
			msg += fmt.Sprintf("Order #%d has expired! Reality destabilized!", order.ID)
		}
		return Result{Message: msg}

	case CmdDeliver:
		msg, err := k.DeliverOrder(cmd.Index)
		return Result{Message: msg, Err: err}

	case CmdProceed:
		return k.proceed()

	case CmdEndDay:
		return k.endDay(cmd.Force)

	case CmdQuit:
		return Result{Quit: true}

	default:
		return Result{Err: fmt.Errorf("unknown command %q", cmd.Kind)}
	}
}

// proceed moves Planning to Execution or Execution to Delivery once the
// phase's exit condition holds.
func (k *Kitchen) proceed() Result {
	switch k.phase {
	case PhasePlanning:
		if len(k.active) == 0 {
			return Result{Err: errors.New("you must accept at least one order to proceed")}
		}
		k.phase = PhaseExecution
		return Result{Message: "Proceeding to Execution Phase"}

	case PhaseExecution:
		for _, order := range k.active {
			if order.State == models.StateSuperposition {
				return Result{Err: errors.New("you must prepare all orders before proceeding")}
			}
		}
		k.phase = PhaseDelivery
		return Result{Message: "Proceeding to Delivery Phase"}
	}
	return Result{Err: fmt.Errorf("cannot proceed from the %s phase", k.phase)}
}

// endDay closes the delivery phase. With active orders remaining it requires
// force and charges the abandonment penalty for each.
func (k *Kitchen) endDay(force bool) Result {
	if len(k.active) > 0 {
		if !force {
			return Result{Err: errors.New("you still have active orders")}
		}
		count := k.AbandonActiveOrders()
		return Result{
			Message:  fmt.Sprintf("Day ended. %d undelivered orders abandoned.", count),
			EndedDay: true,
		}
	}
	return Result{Message: "Day ended.", EndedDay: true}
}
