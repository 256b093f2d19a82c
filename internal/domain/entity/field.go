package entity

// MaxFieldBytes bounds every free-text field. Fields are opaque byte
// sequences; only presence and length are enforced.
const MaxFieldBytes = 255

// ValidateField rejects empty or over-length text with ErrInvalidData.
func ValidateField(s string) error {
	if len(s) == 0 || len(s) > MaxFieldBytes {
		return ErrInvalidData
	}
	return nil
}

// ValidateFields applies ValidateField to each value, failing on the first
// invalid one.
func ValidateFields(values ...string) error {
	for _, v := range values {
		if err := ValidateField(v); err != nil {
			return err
		}
	}
	return nil
}
