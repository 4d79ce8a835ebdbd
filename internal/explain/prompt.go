package explain

import (
	"fmt"
	"strings"

	"github.com/sdey/revu/internal/catalog"
)

const explainSystemPrompt = `You are a patient study coach inside a terminal review app.
A learner just rated an item as hard. Explain the underlying concept so the
item makes sense next time. Be concrete, use plain language, and never
condescend. Keep the explanation tight enough to read in under a minute.`

// buildExplainUserMessage renders the item and its context for the LLM.
func buildExplainUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Course: %s\n", input.CourseTitle)
	fmt.Fprintf(&b, "Chapter: %s\n\n", input.ModuleTitle)

	switch input.Item.Kind {
	case catalog.KindFlashcard:
		fc := input.Item.Flashcard
		fmt.Fprintf(&b, "Flashcard front: %s\n", fc.Front)
		fmt.Fprintf(&b, "Flashcard back: %s\n", fc.Back)
		if fc.Hint != "" {
			fmt.Fprintf(&b, "Hint shown to the learner: %s\n", fc.Hint)
		}
	case catalog.KindActivity:
		act := input.Item.Activity
		fmt.Fprintf(&b, "Activity prompt: %s\n", act.Prompt)
		if act.Instructions != "" {
			fmt.Fprintf(&b, "Instructions: %s\n", act.Instructions)
		}
		if act.Answer != "" {
			fmt.Fprintf(&b, "Expected outcome: %s\n", act.Answer)
		}
	}

	fmt.Fprintf(&b, "\nThe learner has rated this item hard %d time(s).\n", input.TimesRatedHard)
	b.WriteString("Explain the concept behind it.")

	return b.String()
}
