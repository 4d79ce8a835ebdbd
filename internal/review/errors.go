package review

import "errors"

var (
	// ErrNoUnlockedModules means the learner has not completed any
	// chapter yet, so there is nothing to review.
	ErrNoUnlockedModules = errors.New("no unlocked modules")

	// ErrExhausted means every unlocked item has already been served
	// in the current session.
	ErrExhausted = errors.New("all unlocked items served")

	// ErrUnknownCourse means the course ID does not exist in the catalog.
	ErrUnknownCourse = errors.New("unknown course")

	// ErrUnknownItem means the item ID does not exist in the course.
	ErrUnknownItem = errors.New("unknown item")

	// ErrModuleLocked means the item's chapter has not been marked
	// complete, so the item is not reviewable yet.
	ErrModuleLocked = errors.New("module not unlocked")
)
