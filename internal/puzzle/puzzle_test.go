package puzzle

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuantum/internal/models"
)

func TestNewReturnsRequestedVariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.IsType(t, &Sequence{}, New(models.PuzzleSequence, 2, rng))
	assert.IsType(t, &Pattern{}, New(models.PuzzlePattern, 2, rng))
	assert.IsType(t, &Probability{}, New(models.PuzzleProbability, 2, rng))
	assert.IsType(t, &QuantumState{}, New(models.PuzzleQuantumState, 2, rng))
}

func TestSequenceCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for difficulty := 1; difficulty <= 5; difficulty++ {
		s := newSequence(difficulty, rng)

		require.Len(t, s.cells, 3+difficulty)
		require.Equal(t, min(len(s.cells)-2, difficulty+1), s.blanks())

		// The removed values, in order, solve the puzzle.
		var correct []int
		for i, cell := range s.cells {
			if cell == 0 {
				correct = append(correct, s.solution[i])
			}
		}
		assert.True(t, s.Check(correct))

		// One value off fails.
		wrong := append([]int(nil), correct...)
		wrong[0] = wrong[0]%9 + 1
		assert.False(t, s.Check(wrong))

		// A count mismatch fails regardless of values.
		assert.False(t, s.Check(correct[:len(correct)-1]))
		assert.False(t, s.Check(append(append([]int(nil), correct...), 1)))
	}
}

func TestSequenceParseInput(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	s := newSequence(2, rng)

	answer, err := s.ParseInput("1 2 3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, answer)

	_, err = s.ParseInput("one two")
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = s.ParseInput("   ")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestPatternCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	for difficulty := 1; difficulty <= 5; difficulty++ {
		p := newPattern(difficulty, rng)

		require.Len(t, p.cells, 4+difficulty*2)
		require.Equal(t, min(len(p.cells)-4, difficulty*2), p.blanks())

		var correct []string
		for i, cell := range p.cells {
			if cell == "" {
				correct = append(correct, p.solution[i])
			}
		}
		assert.True(t, p.Check(correct))

		wrong := append([]string(nil), correct...)
		wrong[0] = "?"
		assert.False(t, p.Check(wrong))

		assert.False(t, p.Check(correct[:len(correct)-1]))
	}
}

func TestProbabilityCheck(t *testing.T) {
	p := &Probability{sides: 6, target: 3}

	assert.Equal(t, "1/6", p.Solution())
	assert.Contains(t, p.Describe(), "6-sided")
	assert.Contains(t, p.Describe(), "getting a 3")

	assert.True(t, p.Check("1/6"))
	assert.True(t, p.Check(" 1/6 "))
	assert.False(t, p.Check("1/3"))
	assert.False(t, p.Check("2/6"))
}

func TestProbabilityGeneratedRange(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	for i := 0; i < 100; i++ {
		p := newProbability(rng)
		assert.GreaterOrEqual(t, p.sides, 2)
		assert.LessOrEqual(t, p.sides, 6)
		assert.GreaterOrEqual(t, p.target, 1)
		assert.LessOrEqual(t, p.target, p.sides)
		assert.True(t, strings.HasPrefix(p.Solution(), "1/"))

		sides, err := strconv.Atoi(strings.TrimPrefix(p.Solution(), "1/"))
		require.NoError(t, err)
		assert.Equal(t, p.sides, sides)
	}
}

func TestQuantumFinalState(t *testing.T) {
	tests := []struct {
		initial string
		ops     []string
		want    string
	}{
		{"|0⟩", []string{"X"}, "|1⟩"},
		{"|0⟩", []string{"X", "X"}, "|0⟩"},
		{"|1⟩", []string{"X"}, "|0⟩"},
		{"|0⟩", []string{"H"}, "|+⟩"},
		{"|1⟩", []string{"H"}, "|-⟩"},
		{"|0⟩", []string{"H", "H"}, "|0⟩"},
		{"|0⟩", []string{"Z"}, "|0⟩"},
		{"|1⟩", []string{"Z", "X", "Z"}, "|0⟩"},
		{"|+⟩", []string{"H"}, "|0⟩"},
		{"|-⟩", []string{"H", "X"}, "|0⟩"},
		{"|+⟩", []string{"Z"}, "|+⟩"},
	}

	for _, tt := range tests {
		got := finalState(tt.initial, tt.ops)
		assert.Equalf(t, tt.want, got, "start %s ops %v", tt.initial, tt.ops)
	}
}

func TestQuantumCheckCaseInsensitive(t *testing.T) {
	q := &QuantumState{initial: "|0⟩", ops: []string{"X"}, answer: "|1⟩"}

	assert.True(t, q.Check("|1⟩"))
	assert.True(t, q.Check("  |1⟩  "))
	assert.False(t, q.Check("|0⟩"))
}

func TestParseInputRejectsEmpty(t *testing.T) {
	q := &QuantumState{answer: "|1⟩"}
	_, err := q.ParseInput("  ")
	assert.ErrorIs(t, err, ErrMalformedInput)

	p := &Probability{sides: 4, target: 1}
	_, err = p.ParseInput("")
	assert.ErrorIs(t, err, ErrMalformedInput)
}
