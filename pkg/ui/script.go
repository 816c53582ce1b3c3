package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// Script is a UI double for tests: it replays queued answers and records
// everything rendered. Exhausted queues behave like closed input.
type Script struct {
	Choices []int
	Inputs  []int
	Answers []string

	Output []string
}

// NewScript creates an empty scripted UI
func NewScript() *Script {
	return &Script{}
}

func (s *Script) AskChoice(title string, options []string) int {
	s.Output = append(s.Output, fmt.Sprintf("choice: %s", title))
	if len(s.Choices) == 0 {
		return -1
	}
	choice := s.Choices[0]
	s.Choices = s.Choices[1:]
	return choice
}

func (s *Script) AskInput(prompt string, min, max int) int {
	s.Output = append(s.Output, fmt.Sprintf("input: %s", prompt))
	if len(s.Inputs) == 0 {
		return -1
	}
	value := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return value
}

func (s *Script) Ask(prompt string) string {
	s.Output = append(s.Output, fmt.Sprintf("ask: %s", prompt))
	if len(s.Answers) == 0 {
		return ""
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer
}

func (s *Script) DrawBox(title string, lines []string) {
	s.Output = append(s.Output, fmt.Sprintf("box: %s", title))
	s.Output = append(s.Output, lines...)
}

func (s *Script) Print(text string) {
	s.Output = append(s.Output, text)
}

func (s *Script) WaitForEnter(message string) {}

func (s *Script) Clear() {}

func (s *Script) Pause(d time.Duration) {}

func (s *Script) RenderSlots(symbols []string) {
	s.Output = append(s.Output, fmt.Sprintf("slots: %v", symbols))
}

func (s *Script) RenderWheel(tiles []entities.RouletteTile, highlight int) {
	s.Output = append(s.Output, fmt.Sprintf("wheel: %d", highlight))
}

func (s *Script) RenderLeaderboard(title string, entries []entities.LeaderboardEntry) {
	s.Output = append(s.Output, fmt.Sprintf("leaderboard: %d entries", len(entries)))
}

// Saw reports whether any recorded output contains the substring
func (s *Script) Saw(substr string) bool {
	for _, line := range s.Output {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
