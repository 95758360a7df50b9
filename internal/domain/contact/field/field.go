package field

import (
	"regexp"

	"github.com/kailas-cloud/addressbook/internal/domain"
)

// Kind is the label of a contact field.
type Kind string

// Field kind constants.
const (
	Name  Kind = "name"
	Phone Kind = "phone"
)

var phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)

// validators holds the per-kind rule applied by New. Kinds without an entry accept any value.
var validators = map[Kind]func(value string) error{
	Phone: validatePhone,
}

func validatePhone(value string) error {
	if !phoneRegex.MatchString(value) {
		return domain.NewValidationError(string(Phone), value, "phone number must be 10 digits")
	}
	return nil
}

// Field is an immutable labeled value of a contact record.
type Field struct {
	kind  Kind
	value string
}

// New validates value against the rule of kind and creates a Field.
func New(kind Kind, value string) (Field, error) {
	if validate, ok := validators[kind]; ok {
		if err := validate(value); err != nil {
			return Field{}, err
		}
	}
	return Field{kind: kind, value: value}, nil
}

// NewName creates a name field. Names carry no validation rule.
func NewName(value string) Field {
	return Field{kind: Name, value: value}
}

// NewPhone creates a phone field.
// Value must be exactly 10 ASCII digits; no separators or country codes are stripped.
func NewPhone(value string) (Field, error) {
	return New(Phone, value)
}

// Reconstruct creates a Field without validation (config hydration, tests).
func Reconstruct(kind Kind, value string) Field {
	return Field{kind: kind, value: value}
}

// Kind returns the field label.
func (f Field) Kind() Kind { return f.kind }

// Value returns the stored value.
func (f Field) Value() string { return f.value }

func (f Field) String() string { return f.value }
