package validation

// CategoryValidator provides validation for category operations
type CategoryValidator struct {
	validator *Validator
}

// NewCategoryValidator creates a new category validator
func NewCategoryValidator() *CategoryValidator {
	return &CategoryValidator{
		validator: NewValidator(),
	}
}

// ValidateName validates a category name for creation or update
func (cv *CategoryValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmedName := cv.validator.TrimAndValidateString(name)

	if !cv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("name")
		return validationError
	}

	if !cv.validator.IsValidNameLength(trimmedName) {
		validationError.AddInvalidRangeError("name", trimmedName, "name is too long")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRate validates an hourly rate
func (cv *CategoryValidator) ValidateRate(rate float64) error {
	if !cv.validator.IsValidRate(rate) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("rate", rate, "must be a finite positive number")
		return validationError
	}
	return nil
}

// ValidateForUpsert validates the (name, rate) pair shared by the add
// and edit operations.
func (cv *CategoryValidator) ValidateForUpsert(name string, rate float64) error {
	validationError := NewValidationError()

	if nameErr := cv.ValidateName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if rateErr := cv.ValidateRate(rate); rateErr != nil {
		if rateValidationErr, ok := rateErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, rateValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateID validates a category id
func (cv *CategoryValidator) ValidateID(id string) error {
	if !cv.validator.IsValidCategoryID(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("category_id")
		return validationError
	}
	return nil
}

// GetValidName returns a cleaned category name if valid
func (cv *CategoryValidator) GetValidName(name string) (string, error) {
	if err := cv.ValidateName(name); err != nil {
		return "", err
	}
	return cv.validator.TrimAndValidateString(name), nil
}
