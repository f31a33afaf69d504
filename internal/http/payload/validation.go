package payload

import (
	"errors"
	"fmt"

	"github.com/jellydator/validation"
)

var ErrInvalidPayload error = errors.New("invalid request payload")

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}
