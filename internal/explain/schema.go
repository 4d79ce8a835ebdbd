package explain

import "github.com/sdey/revu/internal/llm"

// ExplanationSchema defines the JSON schema for review-item explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "review-explanation",
	Description: "An explanation helping a learner with an item they rated hard",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear explanation of the concept behind the item (3-5 sentences)",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 short points worth remembering (5-12 words each)",
			},
			"memory_hook": map[string]any{
				"type":        "string",
				"description": "A one-line mnemonic or mental model for recalling the answer",
			},
		},
		"required":             []any{"explanation", "key_points", "memory_hook"},
		"additionalProperties": false,
	},
}
