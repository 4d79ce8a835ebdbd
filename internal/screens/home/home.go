// Package home is the landing screen: course overview plus the main menu.
package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/explain"
	"github.com/sdey/revu/internal/progress"
	"github.com/sdey/revu/internal/review"
	"github.com/sdey/revu/internal/router"
	"github.com/sdey/revu/internal/screen"
	"github.com/sdey/revu/internal/screens/chapters"
	reviewscreen "github.com/sdey/revu/internal/screens/reviewing"
	"github.com/sdey/revu/internal/screens/stats"
	"github.com/sdey/revu/internal/store"
	"github.com/sdey/revu/internal/ui/components"
	"github.com/sdey/revu/internal/ui/theme"
)

// CourseSelectedMsg announces that the learner switched courses.
type CourseSelectedMsg struct {
	CourseID string
}

// HomeScreen is the main landing screen.
type HomeScreen struct {
	cat        *catalog.Catalog
	svc        *review.Service
	prog       *progress.Service
	events     store.EventRepo
	explainSvc *explain.Service
	learnerID  string
	timeout    time.Duration

	courses     []*catalog.Course
	courseIndex int
	menu        components.Menu
	stats       *review.CourseStats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen bound to the first course in the catalog.
func New(cat *catalog.Catalog, svc *review.Service, prog *progress.Service, events store.EventRepo, explainSvc *explain.Service, learnerID string, timeout time.Duration) *HomeScreen {
	h := &HomeScreen{
		cat:        cat,
		svc:        svc,
		prog:       prog,
		events:     events,
		explainSvc: explainSvc,
		learnerID:  learnerID,
		timeout:    timeout,
		courses:    cat.Courses(),
	}
	h.loadStats()
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) course() *catalog.Course {
	if len(h.courses) == 0 {
		return nil
	}
	return h.courses[h.courseIndex]
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := []components.MenuItem{
		// Starting is disabled until at least one chapter is unlocked,
		// so no session call is ever issued for an empty pool.
		{Label: "START REVIEW", Disabled: h.startLocked(), Action: func() tea.Cmd {
			course := h.course()
			if course == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: reviewscreen.New(h.svc, h.events, h.explainSvc, course, h.learnerID, h.timeout),
				}
			}
		}},
		{Label: "CHAPTERS", Action: func() tea.Cmd {
			course := h.course()
			if course == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: chapters.New(course, h.prog, h.svc, h.learnerID, h.timeout),
				}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			course := h.course()
			if course == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: stats.New(h.svc, h.learnerID, course.ID, h.timeout),
				}
			}
		}},
	}
	if len(h.courses) > 1 {
		items = append(items, components.MenuItem{Label: "SWITCH COURSE", Action: func() tea.Cmd {
			h.courseIndex = (h.courseIndex + 1) % len(h.courses)
			h.loadStats()
			h.refreshMenu()
			courseID := h.course().ID
			return func() tea.Msg {
				return CourseSelectedMsg{CourseID: courseID}
			}
		}})
	}
	items = append(items, components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
		return tea.Quit
	}})
	return items
}

// loadStats refreshes the course overview. Failures leave the previous
// stats up rather than blocking the screen.
func (h *HomeScreen) loadStats() {
	course := h.course()
	if course == nil {
		h.stats = nil
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	if cs, err := h.svc.CourseStats(ctx, h.learnerID, course.ID); err == nil {
		h.stats = cs
	}
}

// startLocked reports whether the review entry should be disabled.
func (h *HomeScreen) startLocked() bool {
	return h.stats != nil && len(h.stats.UnlockedModules()) == 0
}

// refreshMenu rebuilds the menu so entry states track the latest
// stats, keeping the cursor where it was when possible.
func (h *HomeScreen) refreshMenu() {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case CourseSelectedMsg:
		return h, nil
	case router.PopScreenMsg:
		// A finished session or chapter toggle may have moved the
		// counters while this screen was covered.
		h.loadStats()
		h.refreshMenu()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner(width))

	course := h.course()
	if course == nil {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No course packs found."))
		return strings.Join(sections, "\n\n")
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(course.Title))

	if h.stats != nil {
		sections = append(sections, renderOverview(h.stats, width))
	}

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderBanner(width int) string {
	banner := "  ┬─┐ ┌─┐ ┬  ┬ ┬ ┬\n" +
		"  ├┬┘ ├┤  └┐┌┘ │ │\n" +
		"  ┴└─ └─┘  └┘  └─┘"
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(banner)
}

func renderOverview(cs *review.CourseStats, width int) string {
	unlocked := len(cs.UnlockedModules())
	total := len(cs.Modules)

	reviewed := 0
	items := 0
	for _, m := range cs.Modules {
		if !m.Unlocked {
			continue
		}
		reviewed += m.Reviewed()
		items += m.Total()
	}

	line := fmt.Sprintf("Chapters unlocked: %d/%d    Items reviewed: %d/%d",
		unlocked, total, reviewed, items)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(line)
}
