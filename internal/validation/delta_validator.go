package validation

// DeltaValidator provides validation for day-entry mutations
type DeltaValidator struct {
	validator *Validator
}

// NewDeltaValidator creates a new delta validator
func NewDeltaValidator() *DeltaValidator {
	return &DeltaValidator{
		validator: NewValidator(),
	}
}

// ValidateDelta validates a signed hour delta. Negligible deltas are
// rejected so they can surface as advisory notices instead of mutating
// state.
func (dv *DeltaValidator) ValidateDelta(delta float64) error {
	if !dv.validator.IsValidDelta(delta) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("delta", delta, "must be a finite non-zero number of hours")
		return validationError
	}
	return nil
}

// ValidateDay validates a day-of-month against the active month length
func (dv *DeltaValidator) ValidateDay(day int, daysInMonth int) error {
	if !dv.validator.IsValidDay(day, daysInMonth) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("day", day, "must fall within the active month")
		return validationError
	}
	return nil
}

// ValidateTarget validates the (day, categoryID) pair a delta applies to
func (dv *DeltaValidator) ValidateTarget(day int, daysInMonth int, categoryID string) error {
	validationError := NewValidationError()

	if !dv.validator.IsValidDay(day, daysInMonth) {
		validationError.AddInvalidRangeError("day", day, "must fall within the active month")
	}

	if !dv.validator.IsValidCategoryID(categoryID) {
		validationError.AddRequiredError("category_id")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
