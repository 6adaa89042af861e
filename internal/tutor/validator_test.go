package tutor

import (
	"strings"
	"testing"
)

func validExercise() *Exercise {
	return &Exercise{
		Text:        "Solve for x: 3x + 5 = 20",
		Format:      FormatNumeric,
		Answer:      "5",
		AnswerType:  AnswerTypeInteger,
		Explanation: "3x = 15, so x = 5.",
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	if err := v.Validate(validExercise(), GenerateInput{}); err != nil {
		t.Fatalf("valid exercise rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Exercise)
	}{
		{"empty text", func(ex *Exercise) { ex.Text = "" }},
		{"text too long", func(ex *Exercise) { ex.Text = strings.Repeat("x", 501) }},
		{"empty explanation", func(ex *Exercise) { ex.Explanation = "" }},
		{"explanation too long", func(ex *Exercise) { ex.Explanation = strings.Repeat("x", 1001) }},
		{"bad format", func(ex *Exercise) { ex.Format = "essay" }},
		{"bad answer type", func(ex *Exercise) { ex.AnswerType = "roman" }},
		{"text answer with numeric format", func(ex *Exercise) { ex.AnswerType = AnswerTypeText }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := validExercise()
			tt.mutate(ex)
			if err := v.Validate(ex, GenerateInput{}); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAnswerFormatValidator_Numeric(t *testing.T) {
	v := &AnswerFormatValidator{}

	tests := []struct {
		name       string
		answer     string
		answerType AnswerType
		wantErr    bool
	}{
		{"valid integer", "42", AnswerTypeInteger, false},
		{"negative integer", "-7", AnswerTypeInteger, false},
		{"leading zeros", "042", AnswerTypeInteger, true},
		{"not an integer", "4.2", AnswerTypeInteger, true},
		{"valid decimal", "3.75", AnswerTypeDecimal, false},
		{"trailing zeros", "3.50", AnswerTypeDecimal, true},
		{"valid fraction", "3/4", AnswerTypeFraction, false},
		{"not reduced", "2/4", AnswerTypeFraction, true},
		{"zero denominator", "3/0", AnswerTypeFraction, true},
		{"not a fraction", "0.75", AnswerTypeFraction, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := validExercise()
			ex.Answer = tt.answer
			ex.AnswerType = tt.answerType
			err := v.Validate(ex, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestAnswerFormatValidator_MultipleChoice(t *testing.T) {
	v := &AnswerFormatValidator{}

	base := func() *Exercise {
		ex := validExercise()
		ex.Format = FormatMultipleChoice
		ex.AnswerType = AnswerTypeText
		ex.Answer = "x = 5"
		ex.Choices = []string{"x = 3", "x = 5", "x = 7", "x = 15"}
		return ex
	}

	if err := v.Validate(base(), GenerateInput{}); err != nil {
		t.Fatalf("valid MC exercise rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Exercise)
	}{
		{"three choices", func(ex *Exercise) { ex.Choices = ex.Choices[:3] }},
		{"empty choice", func(ex *Exercise) { ex.Choices[2] = " " }},
		{"duplicate choice", func(ex *Exercise) { ex.Choices[0] = "x = 5" }},
		{"answer not in choices", func(ex *Exercise) { ex.Answer = "x = 9" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := base()
			tt.mutate(ex)
			if err := v.Validate(ex, GenerateInput{}); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAnswerFormatValidator_NumericWithChoices(t *testing.T) {
	v := &AnswerFormatValidator{}
	ex := validExercise()
	ex.Choices = []string{"3", "5"}

	if err := v.Validate(ex, GenerateInput{}); err == nil {
		t.Error("numeric format with choices should fail")
	}
}
