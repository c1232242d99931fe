package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")

	ErrCategoryNotFound = errors.New("category not found")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrRecordNotFound   = errors.New("record not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrMatchNotFound    = errors.New("match not found")
)

const (
	KindCategoryMismatch = "category-mismatch"
	KindDuplicateSkill   = "duplicate-skill"
)

// ValidationError is a submission-level rejection carrying the message
// shown next to the form. Handlers map it to a 400 without losing the
// message.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func newCategoryMismatchError() *ValidationError {
	return &ValidationError{
		Kind:    KindCategoryMismatch,
		Message: "Selected skill does not belong to the selected category.",
	}
}

func newDuplicateOfferedError(skillName string) *ValidationError {
	return &ValidationError{
		Kind:    KindDuplicateSkill,
		Message: "You already offer " + skillName + ".",
	}
}

func newDuplicateDesiredError(skillName string) *ValidationError {
	return &ValidationError{
		Kind:    KindDuplicateSkill,
		Message: "You already want to learn " + skillName + ".",
	}
}
