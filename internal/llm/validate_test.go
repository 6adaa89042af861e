package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func verdictSchema() *Schema {
	return &Schema{
		Name:        "grading-verdict-test",
		Description: "A grading verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_correct": map[string]any{"type": "boolean"},
				"confidence": map[string]any{"type": "string", "enum": []any{"high", "uncertain"}},
				"feedback":   map[string]any{"type": "string"},
			},
			"required": []any{"is_correct", "confidence"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"is_correct":true,"confidence":"high","feedback":"nice"}`)
	if err := validateResponse(verdictSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_OptionalFieldMayBeOmitted(t *testing.T) {
	raw := json.RawMessage(`{"is_correct":false,"confidence":"uncertain"}`)
	if err := validateResponse(verdictSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"is_correct":true}`)
	err := validateResponse(verdictSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("error = %T, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_EnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"is_correct":true,"confidence":"maybe"}`)
	if err := validateResponse(verdictSchema(), raw); err == nil {
		t.Fatal("expected error for out-of-enum confidence")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"is_correct":`)
	if err := validateResponse(verdictSchema(), raw); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`anything goes`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
