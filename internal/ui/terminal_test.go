package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kuantum/internal/game"
)

func newTestLoop(script string) (*Loop, *strings.Builder) {
	kitchen := game.NewKitchen(game.DefaultSettings(), rand.New(rand.NewSource(1)))
	out := &strings.Builder{}
	return NewLoop(kitchen, strings.NewReader(script), out), out
}

func TestRunQuitImmediately(t *testing.T) {
	loop, out := newTestLoop("\nq\ny\n")

	loop.Run()

	text := out.String()
	assert.Contains(t, text, "WELCOME TO KUANTUM KITCHEN")
	assert.Contains(t, text, "Day 2 begins!")
	assert.Contains(t, text, "PLANNING PHASE COMMANDS")
	assert.Contains(t, text, "KUANTUM KITCHEN SUMMARY")
}

func TestRunDeclinedQuitKeepsPlaying(t *testing.T) {
	loop, out := newTestLoop("\nq\nn\nq\ny\n")

	loop.Run()

	text := out.String()
	// The declined quit redraws the planning screen before the second try.
	assert.GreaterOrEqual(t, strings.Count(text, "PLANNING PHASE COMMANDS"), 2)
	assert.Contains(t, text, "KUANTUM KITCHEN SUMMARY")
}

func TestRunStopsOnEOF(t *testing.T) {
	loop, out := newTestLoop("\n")

	loop.Run()

	assert.Contains(t, out.String(), "KUANTUM KITCHEN SUMMARY")
}

func TestObserversSeeSnapshots(t *testing.T) {
	loop, _ := newTestLoop("\na1\n\nq\ny\n")

	var days []int
	loop.AddObserver(func(snap game.StatusSnapshot) {
		days = append(days, snap.Day)
	})

	loop.Run()

	assert.NotEmpty(t, days)
	for _, day := range days {
		assert.GreaterOrEqual(t, day, 2)
	}
}
