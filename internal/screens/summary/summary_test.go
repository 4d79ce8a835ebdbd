package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sdey/revu/internal/router"
	"github.com/sdey/revu/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		SessionID:     "s-1",
		CourseID:      "go-basics",
		ItemsReviewed: 5,
		ItemsSkipped:  2,
		Duration:      95 * time.Second,
	}
}

func TestViewShowsCounts(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)

	for _, want := range []string{"Session complete!", "Reviewed: 5", "Skipped: 2", "Total: 7", "1:35"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewExhaustedBanner(t *testing.T) {
	sum := testSummary()
	sum.Exhausted = true
	view := New(sum).View(80, 24)

	if !strings.Contains(view, "every unlocked item") {
		t.Error("expected exhaustion banner")
	}
}

func TestEnterPopsScreen(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
