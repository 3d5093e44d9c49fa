package journal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return Mood(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks the business rules enforced before an entry is persisted.
func Validate(e Entry) error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return strings.ToLower(fe.Field()) + " is required"
	case "mood":
		return fmt.Sprintf("%q is not a known mood", fe.Value())
	case "max":
		return fmt.Sprintf("at most %s secondary moods allowed", fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
