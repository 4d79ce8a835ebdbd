// Package chapters lists a course's chapters and lets the learner mark
// them complete to unlock their items for review.
package chapters

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/screen"
	"github.com/sdey/revu/internal/ui/layout"
	"github.com/sdey/revu/internal/ui/theme"
)

// ChaptersScreen shows completion state and review counts per chapter.
type ChaptersScreen struct {
	course    *catalog.Course
	prog      *progress.Service
	svc       *review.Service
	learnerID string
	timeout   time.Duration

	cursor int
	stats  *review.CourseStats
	errMsg string
}

var _ screen.Screen = (*ChaptersScreen)(nil)
var _ screen.KeyHintProvider = (*ChaptersScreen)(nil)

// New creates the chapters screen for one course.
func New(course *catalog.Course, prog *progress.Service, svc *review.Service, learnerID string, timeout time.Duration) *ChaptersScreen {
	c := &ChaptersScreen{
		course:    course,
		prog:      prog,
		svc:       svc,
		learnerID: learnerID,
		timeout:   timeout,
	}
	c.loadStats()
	return c
}

func (c *ChaptersScreen) Init() tea.Cmd {
	return nil
}

func (c *ChaptersScreen) Title() string {
	return "Chapters"
}

func (c *ChaptersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Toggle complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChaptersScreen) loadStats() {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	if cs, err := c.svc.CourseStats(ctx, c.learnerID, c.course.ID); err == nil {
		c.stats = cs
	}
}

func (c *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.course.Modules)-1 {
			c.cursor++
		}
	case "enter", " ", "space":
		c.toggle()
	}
	return c, nil
}

// toggle flips the selected chapter between complete and not complete.
func (c *ChaptersScreen) toggle() {
	if c.cursor >= len(c.course.Modules) {
		return
	}
	moduleID := c.course.Modules[c.cursor].ID

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var err error
	if c.prog.IsCompleted(c.course.ID, moduleID) {
		err = c.prog.ResetModule(ctx, c.course.ID, moduleID)
	} else {
		err = c.prog.CompleteModule(ctx, c.course.ID, moduleID)
	}
	if err != nil {
		c.errMsg = err.Error()
		return
	}
	c.errMsg = ""
	c.loadStats()
}

func (c *ChaptersScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(c.course.Title))
	b.WriteString("\n\n")

	for i, mod := range c.course.Modules {
		b.WriteString(c.renderRow(i, mod, width))
		b.WriteString("\n")
	}

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(c.errMsg))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (c *ChaptersScreen) renderRow(i int, mod catalog.Module, width int) string {
	completed := c.prog.IsCompleted(c.course.ID, mod.ID)

	marker := "[ ]"
	if completed {
		marker = "[✓]"
	}

	counts := ""
	if c.stats != nil && i < len(c.stats.Modules) {
		ms := c.stats.Modules[i]
		counts = fmt.Sprintf("  flashcards %d/%d   activities %d/%d",
			ms.FlashcardsReviewed, ms.Flashcards,
			ms.ActivitiesReviewed, ms.Activities)
	}

	prefix := "    "
	if i == c.cursor {
		prefix = "  ▸ "
	}

	line := fmt.Sprintf("%s%s %s%s", prefix, marker, mod.Title, counts)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case i == c.cursor:
		style = style.Foreground(theme.Primary).Bold(true)
	case !completed:
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		style.Render(padRight(line, min(width-8, 64))))
}

func padRight(s string, w int) string {
	if lipgloss.Width(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-lipgloss.Width(s))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
