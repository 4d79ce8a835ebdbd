package reviewing

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/ui/theme"
)

func (r *ReviewScreen) View(width, height int) string {
	switch {
	case r.errMsg != "":
		return centeredNotice(width, height, theme.Error, r.errMsg)
	case r.blockedMsg != "":
		return centeredNotice(width, height, theme.TextDim, r.blockedMsg)
	case r.confirmEnd:
		return centeredNotice(width, height, theme.Text, "End this session? (y/n)")
	case r.showExplain && r.explanation != nil:
		return r.renderExplanation(width, height)
	case r.ending:
		return centeredNotice(width, height, theme.TextDim, r.spin.View()+" Wrapping up...")
	}

	cur := r.ctrl.Current()
	if cur == nil {
		return centeredNotice(width, height, theme.TextDim, r.spin.View()+" Loading...")
	}

	var b strings.Builder

	reviewed, skipped := r.ctrl.Progress()
	progressLine := fmt.Sprintf("%s    reviewed %d    skipped %d", cur.ModuleTitle, reviewed, skipped)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(progressLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.renderCard(width)))

	if r.hint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(r.hint))
	}

	if r.explanation != nil && !r.showExplain {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("An explanation is ready. Press X to read it."))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

// renderCard draws the current item inside a bordered box.
func (r *ReviewScreen) renderCard(width int) string {
	cur := r.ctrl.Current()
	cardWidth := min(width-8, 70)

	var body strings.Builder

	switch cur.Item.Kind {
	case catalog.KindFlashcard:
		fc := cur.Item.Flashcard
		body.WriteString(theme.Body.Render(fc.Front))
		body.WriteString("\n\n")
		if r.ctrl.Revealed() {
			body.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(fc.Back))
		} else {
			if fc.Hint != "" {
				body.WriteString(theme.Hint.Render("Hint: " + fc.Hint))
				body.WriteString("\n")
			}
			body.WriteString(theme.Hint.Render("Press Space to reveal the answer."))
		}

	case catalog.KindActivity:
		act := cur.Item.Activity
		body.WriteString(theme.Body.Render(act.Prompt))
		if act.Instructions != "" {
			body.WriteString("\n\n")
			body.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(act.Instructions))
		}
		if r.ctrl.Revealed() && act.Answer != "" {
			body.WriteString("\n\n")
			body.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(act.Answer))
		}
	}

	label := "FLASHCARD"
	if cur.Item.Kind == catalog.KindActivity {
		label = "ACTIVITY"
	}
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(label)

	return theme.Card.Width(cardWidth).Render(header + "\n\n" + body.String())
}

func (r *ReviewScreen) renderExplanation(width, height int) string {
	exp := r.explanation
	cardWidth := min(width-8, 70)

	var body strings.Builder
	body.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Why this one is tricky"))
	body.WriteString("\n\n")
	body.WriteString(theme.Body.Render(exp.Explanation))

	if len(exp.KeyPoints) > 0 {
		body.WriteString("\n\n")
		for _, p := range exp.KeyPoints {
			body.WriteString(theme.Body.Render("  • " + p))
			body.WriteString("\n")
		}
	}

	if exp.MemoryHook != "" {
		body.WriteString("\n")
		body.WriteString(theme.Hint.Render("Remember: " + exp.MemoryHook))
	}

	card := theme.Card.Width(cardWidth).Render(body.String())
	return lipgloss.PlaceVertical(height, lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
}

func centeredNotice(width, height int, fg color.Color, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center,
		lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(fg).
			Render(text))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
