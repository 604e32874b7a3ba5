package models

import "math/rand"

// PuzzleType represents the kind of skill-check puzzle attached to an order.
type PuzzleType string

const (
	PuzzleSequence     PuzzleType = "Sequence Puzzle"
	PuzzlePattern      PuzzleType = "Pattern Matching"
	PuzzleProbability  PuzzleType = "Probability Calculation"
	PuzzleQuantumState PuzzleType = "Quantum State Manipulation"
)

// AllPuzzleTypes lists every puzzle kind.
var AllPuzzleTypes = []PuzzleType{
	PuzzleSequence,
	PuzzlePattern,
	PuzzleProbability,
	PuzzleQuantumState,
}

// RandomPuzzleType picks a puzzle kind uniformly, independent of the dish.
func RandomPuzzleType(rng *rand.Rand) PuzzleType {
	return AllPuzzleTypes[rng.Intn(len(AllPuzzleTypes))]
}
