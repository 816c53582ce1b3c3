// Package ui is the terminal collaborator the casino core talks to. The
// core only depends on the UI interface; the ANSI terminal implementation
// and the scripted test double both satisfy it.
package ui

import (
	"time"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// UI collects validated input and renders output. Implementations own all
// presentation concerns; no business logic lives here.
type UI interface {
	// AskChoice presents a numbered option list and returns the selected
	// zero-based index, re-prompting on invalid input. Returns -1 when
	// input is closed.
	AskChoice(title string, options []string) int

	// AskInput prompts for an integer in [min, max] inclusive,
	// re-prompting on invalid input. Returns -1 when input is closed.
	AskInput(prompt string, min, max int) int

	// Ask prompts for a non-empty free-text answer, trimmed. Returns ""
	// when input is closed.
	Ask(prompt string) string

	// DrawBox renders a bordered box with an optional title
	DrawBox(title string, lines []string)

	// Print writes a single line of text
	Print(text string)

	// WaitForEnter blocks until the player presses enter
	WaitForEnter(message string)

	// Clear wipes the screen
	Clear()

	// Pause sleeps for the given duration (animation frames)
	Pause(d time.Duration)

	// RenderSlots draws the three slot reels
	RenderSlots(symbols []string)

	// RenderWheel draws the roulette wheel with the given pocket highlighted
	RenderWheel(tiles []entities.RouletteTile, highlight int)

	// RenderLeaderboard draws the ranked leaderboard entries
	RenderLeaderboard(title string, entries []entities.LeaderboardEntry)
}
