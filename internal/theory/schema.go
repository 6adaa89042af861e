package theory

import "github.com/quantatutor/quanta/internal/llm"

// PanelSchema defines the JSON schema for theory panel responses.
var PanelSchema = &llm.Schema{
	Name:        "theory-panel",
	Description: "A short theory refresher with a worked example",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short panel title naming the concept",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "The concept explained in 4-6 sentences, plain ASCII",
			},
			"worked_example": map[string]any{
				"type":        "string",
				"description": "One complete worked example with numbered steps",
			},
			"key_points": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "2-4 one-sentence takeaways",
			},
		},
		"required":             []any{"title", "explanation", "worked_example", "key_points"},
		"additionalProperties": false,
	},
}
