// Package stats renders the per-chapter review totals for a course.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/screen"
	"github.com/sdey/revu/internal/ui/components"
	"github.com/sdey/revu/internal/ui/theme"
)

// StatsScreen shows the course's review progress breakdown.
type StatsScreen struct {
	svc       *review.Service
	learnerID string
	courseID  string
	timeout   time.Duration

	stats  *review.CourseStats
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates the stats screen for one course.
func New(svc *review.Service, learnerID, courseID string, timeout time.Duration) *StatsScreen {
	s := &StatsScreen{
		svc:       svc,
		learnerID: learnerID,
		courseID:  courseID,
		timeout:   timeout,
	}
	s.load()
	return s
}

func (s *StatsScreen) load() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	cs, err := s.svc.CourseStats(ctx, s.learnerID, s.courseID)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.stats = cs
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.PlaceVertical(height, lipgloss.Center,
			lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render(s.errMsg))
	}
	if s.stats == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.stats.CourseTitle))
	b.WriteString("\n\n")

	barWidth := min(width-16, 56)
	for _, m := range s.stats.Modules {
		b.WriteString(s.renderModule(m, width, barWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	totals := fmt.Sprintf("Lifetime reviews: %d        Sessions completed: %d",
		s.stats.LifetimeReviews, s.stats.Sessions)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(totals))

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (s *StatsScreen) renderModule(m review.ModuleStats, width, barWidth int) string {
	title := m.Title
	if !m.Unlocked {
		title += "  (locked)"
	}

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if !m.Unlocked {
		style = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	percent := 0.0
	if m.Total() > 0 {
		percent = float64(m.Reviewed()) / float64(m.Total())
	}

	detail := fmt.Sprintf("flashcards %d/%d   activities %d/%d",
		m.FlashcardsReviewed, m.Flashcards,
		m.ActivitiesReviewed, m.Activities)

	bar := components.NewProgressBar("", percent, true, barWidth).View()

	block := style.Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail) + "\n" +
		bar + "\n"

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
