package form

import "errors"

// EmailDirectory is the slice of the user store the email validators need.
// Matching is exact and case-insensitive; uniqueness is still enforced by the
// database index, these checks only exist to report a friendly field error
// before submission.
type EmailDirectory interface {
	EmailExists(email string) (bool, error)
}

// ValidateEmailAvailable fails when the given email is already registered.
func ValidateEmailAvailable(dir EmailDirectory) Validator {
	return func(value string) error {
		exists, err := dir.EmailExists(value)
		if err != nil {
			return errors.New("Unable to verify this email right now")
		}
		if exists {
			return errors.New("This email is already registered")
		}
		return nil
	}
}

// ValidateEmailExists fails when the given email is not registered.
func ValidateEmailExists(dir EmailDirectory) Validator {
	return func(value string) error {
		exists, err := dir.EmailExists(value)
		if err != nil {
			return errors.New("Unable to verify this email right now")
		}
		if !exists {
			return errors.New("This email does not exist")
		}
		return nil
	}
}
