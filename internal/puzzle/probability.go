package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
)

// Probability asks for the chance of rolling a given face on a fair die.
// The die size of 2-6 keeps the expected fraction already in lowest terms.
type Probability struct {
	sides  int
	target int
}

func newProbability(rng *rand.Rand) *Probability {
	sides := 2 + rng.Intn(5)
	return &Probability{
		sides:  sides,
		target: 1 + rng.Intn(sides),
	}
}

func (p *Probability) Describe() string {
	return fmt.Sprintf("If a %d-sided die is rolled, what's the probability of getting a %d?",
		p.sides, p.target)
}

func (p *Probability) AnswerFormat() string {
	return "Enter the probability as a fraction (e.g., 1/6)"
}

func (p *Probability) ParseInput(raw string) (Answer, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrMalformedInput
	}
	return trimmed, nil
}

func (p *Probability) Check(answer Answer) bool {
	text, ok := answer.(string)
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(text), p.Solution())
}

func (p *Probability) Solution() string {
	return fmt.Sprintf("1/%d", p.sides)
}
