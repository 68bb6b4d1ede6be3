package dims

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidSpan indicates a span whose lower bound exceeds its upper bound.
var ErrInvalidSpan = errors.New("span min must not exceed max")

// Validate checks that the dimension fields form a usable value.
// The name must work as a lookup key: non-empty, no surrounding
// whitespace, no newlines or commas.
func (d Dimension) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.By(validName)),
		validation.Field(&d.Step, validation.Min(0.0)),
	)
	if err != nil {
		return err
	}
	if d.Range != nil && d.Range.Min > d.Range.Max {
		return ErrInvalidSpan
	}
	if d.SoftRange != nil && d.SoftRange.Min > d.SoftRange.Max {
		return ErrInvalidSpan
	}
	return nil
}

func validName(value any) error {
	name, _ := value.(string)
	if strings.TrimSpace(name) == "" {
		return validation.NewError("dims.name_blank", "name must not be blank")
	}
	if strings.TrimSpace(name) != name {
		return validation.NewError("dims.name_padded", "name must not have surrounding whitespace")
	}
	if strings.ContainsAny(name, "\n,") {
		return validation.NewError("dims.name_unusable", "name must not contain newlines or commas")
	}
	return nil
}
