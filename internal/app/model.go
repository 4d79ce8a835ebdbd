package app

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/sdey/revu/internal/router"
	"github.com/sdey/revu/internal/screen"
	"github.com/sdey/revu/internal/screens/home"
	"github.com/sdey/revu/internal/ui/layout"
)

// escHandler lets a screen claim the Esc key instead of the default
// pop-on-esc behavior.
type escHandler interface {
	WantsEsc() bool
}

// headerStatsMsg refreshes the lifetime counters shown in the header.
type headerStatsMsg struct {
	reviews  int
	sessions int
}

// appModel is the root Bubble Tea model.
type appModel struct {
	app      *App
	router   *router.Router
	courseID string
	width    int
	height   int

	reviews  int
	sessions int
}

// newAppModel creates the root model with the home screen.
func newAppModel(a *App) appModel {
	courseID := ""
	if courses := a.Catalog.Courses(); len(courses) > 0 {
		courseID = courses[0].ID
	}

	homeScreen := home.New(a.Catalog, a.Review, a.Prog, a.Store.EventRepo(), a.Explain, a.Cfg.Learner, a.Cfg.Session.CallTimeout)
	return appModel{
		app:      a,
		router:   router.New(homeScreen),
		courseID: courseID,
	}
}

func (m appModel) Init() tea.Cmd {
	return m.refreshHeaderStats()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerStatsMsg:
		m.reviews = msg.reviews
		m.sessions = msg.sessions
		return m, nil

	case home.CourseSelectedMsg:
		m.courseID = msg.CourseID
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshHeaderStats())

	case router.PopScreenMsg:
		// Counters may have moved while a child screen was up.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshHeaderStats())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens that manage their own exit flow keep the key.
			if h, ok := m.router.Active().(escHandler); ok && h.WantsEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.reviews, m.sessions, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m appModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m appModel) refreshHeaderStats() tea.Cmd {
	a := m.app
	courseID := m.courseID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.Session.CallTimeout)
		defer cancel()

		events := a.Store.EventRepo()
		reviews, err := events.LifetimeReviewCount(ctx, a.Cfg.Learner)
		if err != nil {
			return nil
		}
		sessions, err := events.CompletedSessionCount(ctx, a.Cfg.Learner, courseID)
		if err != nil {
			return nil
		}
		return headerStatsMsg{reviews: reviews, sessions: sessions}
	}
}
