package ui

import (
	"fmt"
	"strconv"
	"strings"

	"kuantum/internal/game"
)

// ParseCommand turns raw player text into a phase-scoped command. Commands
// are case-insensitive: a1/r1/v1/va1/n/q in planning, p1/v1/t/n/q in
// execution, d1/v1/n/q in delivery. Indexes are one-based on screen and
// zero-based in the returned command.
func ParseCommand(phase game.Phase, raw string) (game.Command, error) {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return game.Command{}, fmt.Errorf("empty command")
	}

	switch text {
	case "q":
		return game.Command{Kind: game.CmdQuit}, nil
	case "n":
		if phase == game.PhaseDelivery {
			return game.Command{Kind: game.CmdEndDay}, nil
		}
		return game.Command{Kind: game.CmdProceed}, nil
	case "t":
		if phase == game.PhaseExecution {
			return game.Command{Kind: game.CmdAdvanceTime}, nil
		}
		return game.Command{}, fmt.Errorf("unknown command %q", raw)
	}

	// Indexed commands: a prefix letter (or "va") followed by a number.
	prefix, rest := text[:1], text[1:]
	if strings.HasPrefix(text, "va") {
		prefix, rest = "va", text[2:]
	}

	idx, err := strconv.Atoi(rest)
	if err != nil || idx < 1 {
		return game.Command{}, fmt.Errorf("invalid command format %q", raw)
	}
	idx-- // to zero-based

	switch prefix {
	case "a":
		if phase == game.PhasePlanning {
			return game.Command{Kind: game.CmdAccept, Index: idx}, nil
		}
	case "r":
		if phase == game.PhasePlanning {
			return game.Command{Kind: game.CmdReject, Index: idx}, nil
		}
	case "v":
		if phase == game.PhasePlanning {
			return game.Command{Kind: game.CmdInspectAvailable, Index: idx}, nil
		}
		return game.Command{Kind: game.CmdInspectActive, Index: idx}, nil
	case "va":
		return game.Command{Kind: game.CmdInspectActive, Index: idx}, nil
	case "p":
		if phase == game.PhaseExecution {
			return game.Command{Kind: game.CmdPrepare, Index: idx}, nil
		}
	case "d":
		if phase == game.PhaseDelivery {
			return game.Command{Kind: game.CmdDeliver, Index: idx}, nil
		}
	}

	return game.Command{}, fmt.Errorf("unknown command %q", raw)
}
