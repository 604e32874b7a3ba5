package puzzle

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Sequence asks the player to restore blanked digits in a random digit run.
// A zero cell marks a blank; solution digits are always 1-9.
type Sequence struct {
	cells    []int
	solution []int
}

func newSequence(difficulty int, rng *rand.Rand) *Sequence {
	length := 3 + difficulty
	solution := make([]int, length)
	for i := range solution {
		solution[i] = 1 + rng.Intn(9)
	}

	cells := make([]int, length)
	copy(cells, solution)

	removals := min(length-2, difficulty+1)
	for i := 0; i < removals; i++ {
		idx := rng.Intn(length)
		for cells[idx] == 0 {
			idx = rng.Intn(length)
		}
		cells[idx] = 0
	}

	return &Sequence{cells: cells, solution: solution}
}

func (s *Sequence) Describe() string {
	parts := make([]string, len(s.cells))
	for i, cell := range s.cells {
		if cell == 0 {
			parts[i] = "_"
		} else {
			parts[i] = strconv.Itoa(cell)
		}
	}
	return "Complete the sequence by filling in the missing numbers:\n" + strings.Join(parts, " ")
}

func (s *Sequence) AnswerFormat() string {
	return fmt.Sprintf("Enter %d values separated by spaces", s.blanks())
}

func (s *Sequence) ParseInput(raw string) (Answer, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, ErrMalformedInput
	}
	values := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, field)
		}
		values[i] = v
	}
	return values, nil
}

func (s *Sequence) Check(answer Answer) bool {
	values, ok := answer.([]int)
	if !ok || len(values) != s.blanks() {
		return false
	}

	next := 0
	for i, cell := range s.cells {
		fill := cell
		if cell == 0 {
			fill = values[next]
			next++
		}
		if fill != s.solution[i] {
			return false
		}
	}
	return true
}

func (s *Sequence) Solution() string {
	parts := make([]string, len(s.solution))
	for i, v := range s.solution {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func (s *Sequence) blanks() int {
	count := 0
	for _, cell := range s.cells {
		if cell == 0 {
			count++
		}
	}
	return count
}
