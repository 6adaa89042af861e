package tutor

import "testing"

func TestMathCheck_IntegerArithmetic(t *testing.T) {
	v := &MathCheckValidator{}

	tests := []struct {
		name    string
		text    string
		answer  string
		wantErr bool
	}{
		{"correct addition", "What is 345 + 278?", "623", false},
		{"wrong addition", "What is 345 + 278?", "624", true},
		{"correct subtraction", "What is 500 - 123?", "377", false},
		{"correct multiplication", "What is 12 * 11?", "132", false},
		{"spaced division", "What is 144 / 12?", "12", false},
		{"wrong division", "What is 144 / 12?", "11", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := validExercise()
			ex.Text = tt.text
			ex.Answer = tt.answer
			err := v.Validate(ex, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestMathCheck_FractionArithmetic(t *testing.T) {
	v := &MathCheckValidator{}

	tests := []struct {
		name    string
		text    string
		answer  string
		wantErr bool
	}{
		{"correct addition", "What is 1/2 + 1/4?", "3/4", false},
		{"wrong addition", "What is 1/2 + 1/4?", "2/6", true},
		{"reduces to integer", "What is 1/2 + 1/2?", "1", false},
		{"equivalent accepted", "What is 1/4 + 1/4?", "1/2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := validExercise()
			ex.Text = tt.text
			ex.Answer = tt.answer
			ex.AnswerType = AnswerTypeFraction
			if tt.answer == "1" {
				ex.AnswerType = AnswerTypeInteger
			}
			err := v.Validate(ex, GenerateInput{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestMathCheck_NonComputablePassesThrough(t *testing.T) {
	v := &MathCheckValidator{}

	ex := validExercise()
	ex.Text = "A rectangle has area 24 and width 4. What is its length?"
	ex.Answer = "6"

	if err := v.Validate(ex, GenerateInput{}); err != nil {
		t.Errorf("non-computable exercise should pass, got %v", err)
	}
}

func TestMathCheck_DecimalArithmetic(t *testing.T) {
	v := &MathCheckValidator{}

	ex := validExercise()
	ex.Text = "What is 1.5 + 2.25?"
	ex.Answer = "3.75"
	ex.AnswerType = AnswerTypeDecimal

	if err := v.Validate(ex, GenerateInput{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
