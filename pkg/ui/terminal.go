package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/marczelloo/kasyno/pkg/entities"
)

const (
	defaultTermWidth = 80
	boxPadding       = 1
	slotsInnerWidth  = 25
	wheelWindow      = 11
)

var (
	titleColor = color.New(color.FgYellow, color.Bold)
	redTile    = color.New(color.FgRed)
	blackTile  = color.New(color.FgWhite)
	greenTile  = color.New(color.FgGreen)
)

// Terminal is the real UI backed by stdin/stdout with ANSI rendering
type Terminal struct {
	in    *bufio.Scanner
	out   io.Writer
	width int
}

// NewTerminal creates a terminal UI reading stdin and writing stdout
func NewTerminal() *Terminal {
	return &Terminal{
		in:    bufio.NewScanner(os.Stdin),
		out:   os.Stdout,
		width: defaultTermWidth,
	}
}

// readLine returns the next trimmed input line; ok is false once input closes
func (t *Terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *Terminal) centerText(text string) string {
	pad := (t.width - displayWidth(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// displayWidth measures visible columns, ignoring ANSI color sequences
func displayWidth(text string) int {
	width := 0
	for {
		start := strings.IndexByte(text, '\x1b')
		if start < 0 {
			return width + runewidth.StringWidth(text)
		}
		width += runewidth.StringWidth(text[:start])
		end := strings.IndexByte(text[start:], 'm')
		if end < 0 {
			return width
		}
		text = text[start+end+1:]
	}
}

func (t *Terminal) println(text string) {
	fmt.Fprintln(t.out, t.centerText(text))
}

// AskChoice presents numbered options and returns the zero-based selection
func (t *Terminal) AskChoice(title string, options []string) int {
	if len(options) == 0 {
		return -1
	}

	lines := make([]string, 0, len(options))
	for i, option := range options {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, option))
	}

	for {
		t.DrawBox(title, lines)
		fmt.Fprint(t.out, t.centerText("> "))

		answer, ok := t.readLine()
		if !ok {
			return -1
		}
		if answer == "" {
			continue
		}

		choice, err := strconv.Atoi(answer)
		if err != nil || choice < 1 || choice > len(options) {
			t.println("Invalid choice")
			continue
		}
		return choice - 1
	}
}

// AskInput prompts for an integer within [min, max]
func (t *Terminal) AskInput(prompt string, min, max int) int {
	lines := []string{
		prompt,
		fmt.Sprintf("Range: %d - %d", min, max),
	}

	for {
		t.DrawBox("", lines)
		fmt.Fprint(t.out, t.centerText("> "))

		answer, ok := t.readLine()
		if !ok {
			return -1
		}

		value, err := strconv.Atoi(answer)
		if err != nil {
			t.println("Invalid number.")
			t.Pause(time.Second)
			continue
		}
		if value < min || value > max {
			t.println(fmt.Sprintf("Input must be between %d and %d", min, max))
			t.Pause(time.Second)
			continue
		}
		return value
	}
}

// Ask prompts for non-empty free text
func (t *Terminal) Ask(prompt string) string {
	for {
		t.DrawBox("", []string{prompt})
		fmt.Fprint(t.out, t.centerText("> "))

		answer, ok := t.readLine()
		if !ok {
			return ""
		}
		if answer == "" {
			t.println("Answer cannot be empty")
			t.Pause(time.Second)
			continue
		}
		return answer
	}
}

// DrawBox renders a bordered, centered box with an optional title
func (t *Terminal) DrawBox(title string, lines []string) {
	boxWidth := runewidth.StringWidth(title)
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > boxWidth {
			boxWidth = w
		}
	}
	boxWidth += boxPadding * 2

	border := "+" + strings.Repeat("-", boxWidth+2) + "+"

	t.println(border)

	if title != "" {
		left := (boxWidth - runewidth.StringWidth(title)) / 2
		right := boxWidth - runewidth.StringWidth(title) - left
		t.println("| " + strings.Repeat(" ", left) + titleColor.Sprint(title) + strings.Repeat(" ", right) + " |")
		t.println(border)
	}

	for _, line := range lines {
		fill := boxWidth - runewidth.StringWidth(line) - boxPadding
		if fill < 0 {
			fill = 0
		}
		t.println("| " + strings.Repeat(" ", boxPadding) + line + strings.Repeat(" ", fill) + " |")
	}

	t.println(border)
}

// Print writes a single centered line
func (t *Terminal) Print(text string) {
	t.println(text)
}

// WaitForEnter blocks until the player presses enter
func (t *Terminal) WaitForEnter(message string) {
	if message == "" {
		message = "Press ENTER to continue..."
	}
	t.println(message)
	t.in.Scan()
}

// Clear wipes the screen and homes the cursor
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, "\033[2J\033[H")
}

// Pause sleeps for an animation frame
func (t *Terminal) Pause(d time.Duration) {
	time.Sleep(d)
}

// RenderSlots draws the three reels in a fixed-width cabinet
func (t *Terminal) RenderSlots(symbols []string) {
	border := "+" + strings.Repeat("-", slotsInnerWidth+2) + "+"
	title := "=== SLOTS GAME ==="

	row := strings.Join(symbols, "  ")

	t.println(border)
	t.println(boxLine(title, slotsInnerWidth))
	t.println(border)
	t.println(boxLine(row, slotsInnerWidth))
	t.println(border)
}

// boxLine centers content inside a fixed inner width between | borders
func boxLine(content string, innerWidth int) string {
	pad := innerWidth - runewidth.StringWidth(content)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	right := pad - left
	return "| " + strings.Repeat(" ", left) + content + strings.Repeat(" ", right) + " |"
}

// RenderWheel draws a window of pockets around the highlighted index
func (t *Terminal) RenderWheel(tiles []entities.RouletteTile, highlight int) {
	if len(tiles) == 0 {
		return
	}

	half := wheelWindow / 2
	var row strings.Builder

	for off := -half; off <= half; off++ {
		idx := ((highlight+off)%len(tiles) + len(tiles)) % len(tiles)
		tile := tiles[idx]

		label := fmt.Sprintf("%2d", tile.Number)
		if off == 0 {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}

		switch tile.Color {
		case entities.TileRed:
			row.WriteString(redTile.Sprint(label))
		case entities.TileGreen:
			row.WriteString(greenTile.Sprint(label))
		default:
			row.WriteString(blackTile.Sprint(label))
		}
	}

	// pointer sits over the highlighted pocket; pad to the row's width so
	// both lines center identically
	rowWidth := wheelWindow * 4
	pointerPos := half*4 + 1
	pointer := strings.Repeat(" ", pointerPos) + "v" + strings.Repeat(" ", rowWidth-pointerPos-1)

	t.println(pointer)
	t.println(row.String())
}

// RenderLeaderboard draws ranked entries, best balance first
func (t *Terminal) RenderLeaderboard(title string, entries []entities.LeaderboardEntry) {
	if len(entries) == 0 {
		t.DrawBox(title, []string{"", "No players yet!", ""})
		return
	}

	lines := make([]string, 0, len(entries))
	for i, entry := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s - %d$", i+1, entry.Name, entry.Balance))
	}
	t.DrawBox(title, lines)
}
