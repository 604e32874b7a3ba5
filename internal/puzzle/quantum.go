package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// Symbolic states and operations for the quantum-state puzzle. This is a toy
// two-state model, not real quantum mechanics: X flips |0⟩↔|1⟩, H moves
// between the computational and superposition bases, and Z is accepted as an
// operation but leaves the tracked state unchanged.
var (
	quantumStates     = []string{"|0⟩", "|1⟩", "|+⟩", "|-⟩"}
	quantumOperations = []string{"X", "Z", "H"}
)

// QuantumState asks the player to trace a short operation list applied to a
// symbolic initial state.
type QuantumState struct {
	initial string
	ops     []string
	answer  string
}

func newQuantumState(difficulty int, rng *rand.Rand) *QuantumState {
	count := 1 + difficulty/2
	ops := make([]string, count)
	for i := range ops {
		ops[i] = quantumOperations[rng.Intn(len(quantumOperations))]
	}

	initial := quantumStates[rng.Intn(len(quantumStates))]
	return &QuantumState{
		initial: initial,
		ops:     ops,
		answer:  finalState(initial, ops),
	}
}

// finalState applies the toy truth table: X swaps |0⟩↔|1⟩ and leaves the
// superposition states alone, H swaps |0⟩↔|+⟩ and |1⟩↔|-⟩, Z changes
// nothing.
func finalState(initial string, ops []string) string {
	state := initial
	for _, op := range ops {
		switch op {
		case "X":
			switch state {
			case "|0⟩":
				state = "|1⟩"
			case "|1⟩":
				state = "|0⟩"
			}
		case "H":
			switch state {
			case "|0⟩":
				state = "|+⟩"
			case "|1⟩":
				state = "|-⟩"
			case "|+⟩":
				state = "|0⟩"
			case "|-⟩":
				state = "|1⟩"
			}
		}
	}
	return state
}

func (q *QuantumState) Describe() string {
	return fmt.Sprintf("If we start with %s and apply the operations %s, what's the final state?",
		q.initial, strings.Join(q.ops, " "))
}

func (q *QuantumState) AnswerFormat() string {
	return "Enter the quantum state (e.g., |0⟩, |1⟩, |+⟩, or |-⟩)"
}

func (q *QuantumState) ParseInput(raw string) (Answer, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrMalformedInput
	}
	return trimmed, nil
}

func (q *QuantumState) Check(answer Answer) bool {
	text, ok := answer.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(text), q.answer)
}

func (q *QuantumState) Solution() string {
	return q.answer
}
