package catalog

import (
	"strings"
	"testing"
)

func testCourse() *Course {
	return &Course{
		ID:    "c1",
		Title: "Test Course",
		Modules: []Module{
			{
				ID:    "m1",
				Title: "Module One",
				Items: []Item{
					{ID: "i1", Kind: KindFlashcard, Flashcard: &Flashcard{Front: "Q1", Back: "A1"}},
					{ID: "i2", Kind: KindActivity, Activity: &Activity{Prompt: "Do a thing"}},
				},
			},
			{
				ID:    "m2",
				Title: "Module Two",
				Items: []Item{
					{ID: "i3", Kind: KindFlashcard, Flashcard: &Flashcard{Front: "Q3", Back: "A3"}},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedCourse(t *testing.T) {
	if err := Validate(testCourse()); err != nil {
		t.Fatalf("expected valid course, got %v", err)
	}
}

func TestValidateRejectsDuplicateModuleID(t *testing.T) {
	c := testCourse()
	c.Modules[1].ID = "m1"
	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for duplicate module ID")
	}
	if !strings.Contains(err.Error(), "duplicate module ID") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsDuplicateItemIDAcrossModules(t *testing.T) {
	c := testCourse()
	c.Modules[1].Items[0].ID = "i1"
	err := Validate(c)
	if err == nil {
		t.Fatal("expected error for duplicate item ID")
	}
	if !strings.Contains(err.Error(), "i1") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsKindPayloadMismatch(t *testing.T) {
	c := testCourse()
	c.Modules[0].Items[0].Flashcard = nil
	if err := Validate(c); err == nil {
		t.Fatal("expected error for flashcard item without payload")
	}

	c = testCourse()
	c.Modules[0].Items[1].Flashcard = &Flashcard{Front: "f", Back: "b"}
	if err := Validate(c); err == nil {
		t.Fatal("expected error for activity item with flashcard payload")
	}
}

func TestValidateRejectsEmptyModules(t *testing.T) {
	c := testCourse()
	c.Modules = nil
	if err := Validate(c); err == nil {
		t.Fatal("expected error for course without modules")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(`{"id":"c","title":"t","bogus":true,"modules":[]}`))
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestCourseLookups(t *testing.T) {
	c := testCourse()

	m, ok := c.Module("m2")
	if !ok || m.Title != "Module Two" {
		t.Fatalf("Module(m2) = %v, %v", m, ok)
	}
	if _, ok := c.Module("nope"); ok {
		t.Error("expected Module(nope) to fail")
	}

	it, owner, ok := c.Item("i3")
	if !ok || it.Kind != KindFlashcard || owner.ID != "m2" {
		t.Fatalf("Item(i3) = %v in %v, %v", it, owner, ok)
	}
	if _, _, ok := c.Item("nope"); ok {
		t.Error("expected Item(nope) to fail")
	}

	if got := c.ItemCount(); got != 3 {
		t.Errorf("ItemCount() = %d, want 3", got)
	}
	if got := c.Modules[0].FlashcardCount(); got != 1 {
		t.Errorf("FlashcardCount() = %d, want 1", got)
	}
	if got := c.Modules[0].ActivityCount(); got != 1 {
		t.Errorf("ActivityCount() = %d, want 1", got)
	}
}

func TestItemPrompt(t *testing.T) {
	c := testCourse()
	if got := c.Modules[0].Items[0].Prompt(); got != "Q1" {
		t.Errorf("flashcard Prompt() = %q, want Q1", got)
	}
	if got := c.Modules[0].Items[1].Prompt(); got != "Do a thing" {
		t.Errorf("activity Prompt() = %q, want %q", got, "Do a thing")
	}
}

func TestLoadBuiltin(t *testing.T) {
	courses, err := LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin() error: %v", err)
	}
	if len(courses) == 0 {
		t.Fatal("expected at least one embedded course")
	}
	for _, c := range courses {
		if c.ItemCount() == 0 {
			t.Errorf("course %s has no items", c.ID)
		}
	}
}

func TestNewRejectsDuplicateCourseID(t *testing.T) {
	a := testCourse()
	b := testCourse()
	if _, err := New([]*Course{a, b}); err == nil {
		t.Fatal("expected error for duplicate course ID")
	}
}
