package review

import "fmt"

// Difficulty is the learner's self-rating after reviewing an item.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty normalizes a rating string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q (want easy, medium, or hard)", s)
}
