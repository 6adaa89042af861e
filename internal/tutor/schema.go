package tutor

import "github.com/quantatutor/quanta/internal/llm"

// ExerciseSchema defines the JSON schema for LLM exercise generation responses.
var ExerciseSchema = &llm.Schema{
	Name:        "math-exercise",
	Description: "A single math practice exercise with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The exercise prompt shown to the learner, in plain ASCII text",
			},
			"format": map[string]any{
				"type":        "string",
				"enum":        []any{"numeric", "multiple_choice"},
				"description": "How the learner answers: type a number or pick from choices",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For numeric: the number as a string. For MC: the text of the correct option.",
			},
			"answer_type": map[string]any{
				"type":        "string",
				"enum":        []any{"integer", "decimal", "fraction", "text"},
				"description": "The type of the answer. \"text\" only for multiple choice.",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options for multiple_choice format. Empty array for numeric format.",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short scaffolding hint. Non-empty for easy and medium tiers, empty for hard and exam.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
		},
		"required":             []any{"question_text", "format", "answer", "answer_type", "choices", "hint", "explanation"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for gate diagnostic quiz responses.
var QuizSchema = &llm.Schema{
	Name:        "diagnostic-quiz",
	Description: "A short diagnostic quiz probing weak prerequisite topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prerequisite_id": map[string]any{
							"type":        "string",
							"description": "ID of the prerequisite topic this question probes, from the provided list",
						},
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question, in plain ASCII text",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The canonical correct answer",
						},
					},
					"required":             []any{"prerequisite_id", "question_text", "correct_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// VerdictSchema defines the JSON schema for LLM answer grading responses.
var VerdictSchema = &llm.Schema{
	Name:        "grading-verdict",
	Description: "Judgment of a learner's free-text answer to a question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the learner's answer is mathematically equivalent to the correct answer",
			},
			"confidence": map[string]any{
				"type":        "string",
				"enum":        []any{"high", "uncertain"},
				"description": "\"high\" only when the judgment is unambiguous; \"uncertain\" otherwise",
			},
		},
		"required":             []any{"is_correct", "confidence"},
		"additionalProperties": false,
	},
}
