package tutor

// StructuralValidator checks that required fields are present, within
// length limits, and have valid enum values.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(ex *Exercise, _ GenerateInput) *ValidationError {
	if ex.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(ex.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if ex.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(ex.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if ex.Format != FormatNumeric && ex.Format != FormatMultipleChoice {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "format must be \"numeric\" or \"multiple_choice\"",
			Retryable: true,
		}
	}
	if ex.AnswerType != AnswerTypeInteger && ex.AnswerType != AnswerTypeDecimal && ex.AnswerType != AnswerTypeFraction && ex.AnswerType != AnswerTypeText {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer_type must be \"integer\", \"decimal\", \"fraction\", or \"text\"",
			Retryable: true,
		}
	}
	if ex.AnswerType == AnswerTypeText && ex.Format != FormatMultipleChoice {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer_type \"text\" must use \"multiple_choice\" format",
			Retryable: true,
		}
	}
	return nil
}
