// Package puzzle implements the skill-check mini-games bound to order
// preparation. Each variant shares one contract: describe the challenge,
// parse raw player input, and check a parsed answer against the solution.
package puzzle

import (
	"errors"
	"math/rand"

	"kuantum/internal/models"
)

// MaxAttempts is the per-preparation retry budget. Malformed input still
// spends an attempt.
const MaxAttempts = 3

// SuccessBonus is the collapse probability bonus granted for solving the
// puzzle within the attempt budget.
const SuccessBonus = 0.2

// ErrMalformedInput reports player input that does not parse into an answer
// for the puzzle variant.
var ErrMalformedInput = errors.New("malformed puzzle input")

// Answer is a parsed player answer. Each variant produces and consumes its
// own concrete answer type.
type Answer any

// Puzzle is the contract shared by the four skill-check variants.
type Puzzle interface {
	// Describe returns the challenge text shown to the player.
	Describe() string
	// AnswerFormat returns a hint describing the expected input shape.
	AnswerFormat() string
	// ParseInput converts raw player text into an Answer, or
	// ErrMalformedInput.
	ParseInput(raw string) (Answer, error)
	// Check reports whether the parsed answer solves the puzzle.
	Check(answer Answer) bool
	// Solution returns the correct answer as display text, revealed after
	// the attempt budget is exhausted.
	Solution() string
}

// New builds a fresh puzzle of the order's kind, scaled to its difficulty.
// Puzzles are ephemeral: one per preparation attempt, discarded once the
// pass/fail result has been consumed.
func New(kind models.PuzzleType, difficulty int, rng *rand.Rand) Puzzle {
	switch kind {
	case models.PuzzlePattern:
		return newPattern(difficulty, rng)
	case models.PuzzleProbability:
		return newProbability(rng)
	case models.PuzzleQuantumState:
		return newQuantumState(difficulty, rng)
	default:
		return newSequence(difficulty, rng)
	}
}
