package explain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sdey/revu/internal/catalog"
	"github.com/sdey/revu/internal/llm"
)

func testInput() Input {
	return Input{
		CourseTitle: "Go Fundamentals",
		ModuleTitle: "Slices and Maps",
		Item: catalog.Item{
			ID:   "fc-slice-header",
			Kind: catalog.KindFlashcard,
			Flashcard: &catalog.Flashcard{
				Front: "What three fields make up a slice header?",
				Back:  "A pointer to the backing array, a length, and a capacity.",
			},
		},
		TimesRatedHard: 2,
	}
}

func waitForExplanation(t *testing.T, svc *Service) (*Explanation, bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for explanation")
			return nil, false
		default:
			svc.mu.Lock()
			ready := svc.ready
			svc.mu.Unlock()
			if ready {
				return svc.Consume()
			}
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func TestRequestGeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"explanation": "A slice header is a small struct describing a view into an array.",
			"key_points": ["pointer, length, capacity", "copying a slice copies the header"],
			"memory_hook": "A slice is a window, not the wall."
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(context.Background(), testInput())
	exp, ok := waitForExplanation(t, svc)
	if !ok {
		t.Fatal("expected an explanation")
	}

	if exp.ItemID != "fc-slice-header" {
		t.Errorf("ItemID = %q", exp.ItemID)
	}
	if len(exp.KeyPoints) != 2 {
		t.Errorf("KeyPoints = %v", exp.KeyPoints)
	}
	if exp.MemoryHook == "" {
		t.Error("expected a memory hook")
	}
}

func TestRequestSendsItemContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"x","key_points":["y"],"memory_hook":"z"}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(context.Background(), testInput())
	if _, ok := waitForExplanation(t, svc); !ok {
		t.Fatal("expected an explanation")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "review-explanation" {
		t.Errorf("schema = %+v", req.Schema)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Slices and Maps", "slice header", "hard 2 time(s)"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestConsumeBeforeReady(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, ok := svc.Consume(); ok {
		t.Error("nothing requested, Consume should report not ready")
	}
}

func TestProviderFailureYieldsNoExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(context.Background(), testInput())
	if exp, ok := waitForExplanation(t, svc); ok {
		t.Errorf("expected failure, got %+v", exp)
	}
}

func TestConsumeClearsPending(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"explanation":"x","key_points":["y"],"memory_hook":"z"}`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Request(context.Background(), testInput())
	if _, ok := waitForExplanation(t, svc); !ok {
		t.Fatal("expected an explanation")
	}
	if _, ok := svc.Consume(); ok {
		t.Error("second Consume should find nothing")
	}
}

func TestActivityPromptRendering(t *testing.T) {
	input := Input{
		CourseTitle: "Go Fundamentals",
		ModuleTitle: "Goroutines and Channels",
		Item: catalog.Item{
			ID:   "act-worker-pool",
			Kind: catalog.KindActivity,
			Activity: &catalog.Activity{
				Prompt:       "Write a worker pool with 4 workers.",
				Instructions: "Close the jobs channel when done.",
				Answer:       "Workers range over jobs.",
			},
		},
		TimesRatedHard: 1,
	}

	msg := buildExplainUserMessage(input)
	for _, want := range []string{"worker pool", "Close the jobs channel", "Workers range over jobs"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}
