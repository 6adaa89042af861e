package tutor

import "testing"

func TestCheckAnswer_Integer(t *testing.T) {
	ex := &Exercise{Format: FormatNumeric, Answer: "15", AnswerType: AnswerTypeInteger}

	tests := []struct {
		input string
		want  bool
	}{
		{"15", true},
		{" 15 ", true},
		{"015", true},
		{"-15", false},
		{"16", false},
		{"", false},
		{"fifteen", false},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.input, ex); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_Decimal(t *testing.T) {
	ex := &Exercise{Format: FormatNumeric, Answer: "3.5", AnswerType: AnswerTypeDecimal}

	tests := []struct {
		input string
		want  bool
	}{
		{"3.5", true},
		{"3.50", true},
		{"3.05", false},
		{"7/2", false},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.input, ex); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_Fraction(t *testing.T) {
	ex := &Exercise{Format: FormatNumeric, Answer: "1/2", AnswerType: AnswerTypeFraction}

	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"2/4", true},
		{"3/6", true},
		{"-1/2", false},
		{"1/3", false},
		{"1/0", false},
		{"0.5", false}, // decimal form not accepted for fraction answers
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.input, ex); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCheckAnswer_NegativeFractionNormalization(t *testing.T) {
	ex := &Exercise{Format: FormatNumeric, Answer: "-1/2", AnswerType: AnswerTypeFraction}

	if !CheckAnswer("-2/4", ex) {
		t.Error("expected -2/4 to match -1/2")
	}
}

func TestCheckAnswer_MultipleChoice(t *testing.T) {
	ex := &Exercise{
		Format:  FormatMultipleChoice,
		Answer:  "x = 5",
		Choices: []string{"x = 3", "x = 5", "x = 7", "x = 15"},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"x = 5", true},
		{"X = 5", true},
		{"2", true},  // index of the correct choice
		{"1", false}, // index of a wrong choice
		{"5", false}, // out of range index falls back to text match
		{"x = 3", false},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.input, ex); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
