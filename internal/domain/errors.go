package domain

// ConstraintError reports a field value that failed validation.
// Message is shown to the user as is.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }
