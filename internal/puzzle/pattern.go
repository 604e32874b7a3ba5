package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// motifs are the fixed four-symbol repeating units a pattern puzzle tiles.
var motifs = [][]string{
	{"#", ".", "#", "."},
	{"O", "X", "O", "X"},
	{"^", "v", "<", ">"},
	{"1", "0", "1", "0"},
}

// Pattern asks the player to restore blanked symbols in a tiled motif.
// An empty cell marks a blank.
type Pattern struct {
	cells    []string
	solution []string
}

func newPattern(difficulty int, rng *rand.Rand) *Pattern {
	motif := motifs[rng.Intn(len(motifs))]
	length := 4 + difficulty*2

	solution := make([]string, 0, length+len(motif))
	for len(solution) < length {
		solution = append(solution, motif...)
	}
	solution = solution[:length]

	cells := make([]string, length)
	copy(cells, solution)

	removals := min(length-4, difficulty*2)
	for i := 0; i < removals; i++ {
		idx := rng.Intn(length)
		for cells[idx] == "" {
			idx = rng.Intn(length)
		}
		cells[idx] = ""
	}

	return &Pattern{cells: cells, solution: solution}
}

func (p *Pattern) Describe() string {
	parts := make([]string, len(p.cells))
	for i, cell := range p.cells {
		if cell == "" {
			parts[i] = "_"
		} else {
			parts[i] = cell
		}
	}
	return "Complete the pattern by filling in the missing symbols:\n" + strings.Join(parts, " ")
}

func (p *Pattern) AnswerFormat() string {
	return fmt.Sprintf("Enter %d values separated by spaces", p.blanks())
}

func (p *Pattern) ParseInput(raw string) (Answer, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, ErrMalformedInput
	}
	return fields, nil
}

func (p *Pattern) Check(answer Answer) bool {
	values, ok := answer.([]string)
	if !ok || len(values) != p.blanks() {
		return false
	}

	next := 0
	for i, cell := range p.cells {
		fill := cell
		if cell == "" {
			fill = values[next]
			next++
		}
		if fill != p.solution[i] {
			return false
		}
	}
	return true
}

func (p *Pattern) Solution() string {
	return strings.Join(p.solution, " ")
}

func (p *Pattern) blanks() int {
	count := 0
	for _, cell := range p.cells {
		if cell == "" {
			count++
		}
	}
	return count
}
