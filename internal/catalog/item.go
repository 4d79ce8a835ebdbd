package catalog

import "fmt"

// ItemKind discriminates the two reviewable item types.
type ItemKind string

const (
	KindFlashcard ItemKind = "flashcard"
	KindActivity  ItemKind = "activity"
)

// Item is a single reviewable unit inside a module. Exactly one of
// Flashcard or Activity is set, matching Kind.
type Item struct {
	ID        string     `json:"id" validate:"required"`
	Kind      ItemKind   `json:"kind" validate:"required,oneof=flashcard activity"`
	Flashcard *Flashcard `json:"flashcard,omitempty"`
	Activity  *Activity  `json:"activity,omitempty"`
}

// Flashcard is a two-sided prompt/answer card. The back stays hidden
// until the learner reveals it.
type Flashcard struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
	Hint  string `json:"hint,omitempty"`
}

// Activity is a free-form exercise with no hidden side.
type Activity struct {
	Prompt       string `json:"prompt" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
	Answer       string `json:"answer,omitempty"`
}

// Prompt returns the text shown when the item is first presented.
func (it Item) Prompt() string {
	switch it.Kind {
	case KindFlashcard:
		if it.Flashcard != nil {
			return it.Flashcard.Front
		}
	case KindActivity:
		if it.Activity != nil {
			return it.Activity.Prompt
		}
	}
	return ""
}

func (it Item) validatePayload() error {
	switch it.Kind {
	case KindFlashcard:
		if it.Flashcard == nil {
			return fmt.Errorf("item %s: kind flashcard but no flashcard payload", it.ID)
		}
		if it.Activity != nil {
			return fmt.Errorf("item %s: kind flashcard but activity payload present", it.ID)
		}
	case KindActivity:
		if it.Activity == nil {
			return fmt.Errorf("item %s: kind activity but no activity payload", it.ID)
		}
		if it.Flashcard != nil {
			return fmt.Errorf("item %s: kind activity but flashcard payload present", it.ID)
		}
	default:
		return fmt.Errorf("item %s: unknown kind %q", it.ID, it.Kind)
	}
	return nil
}
