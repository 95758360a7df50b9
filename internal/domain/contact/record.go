package contact

import (
	"strings"

	"github.com/kailas-cloud/addressbook/internal/domain/contact/field"
)

// Record is a single contact: one name plus an ordered list of phones.
// Phones may repeat; lookups and removals act on the first match.
type Record struct {
	name   field.Field
	phones []field.Field
}

// New creates an empty record for the given name.
func New(name string) *Record {
	return &Record{name: field.NewName(name)}
}

// Name returns the name field.
func (r *Record) Name() field.Field { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []field.Field {
	out := make([]field.Field, len(r.phones))
	copy(out, r.phones)
	return out
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	return &Record{name: r.name, phones: r.Phones()}
}

// AddPhone validates value and appends it. Duplicates are accepted.
func (r *Record) AddPhone(value string) error {
	p, err := field.NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value and reports whether one was found.
func (r *Record) RemovePhone(value string) bool {
	i := r.indexOf(value)
	if i < 0 {
		return false
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return true
}

// EditPhone replaces the first phone equal to oldValue with newValue, keeping its position.
// Returns false with no mutation when oldValue is absent.
// The edit is not atomic: if newValue fails validation the old phone is
// already gone, and the result is (true, validation error).
func (r *Record) EditPhone(oldValue, newValue string) (bool, error) {
	i := r.indexOf(oldValue)
	if i < 0 {
		return false, nil
	}
	p, err := field.NewPhone(newValue)
	if err != nil {
		r.phones = append(r.phones[:i], r.phones[i+1:]...)
		return true, err
	}
	r.phones[i] = p
	return true, nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (field.Field, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return field.Field{}, false
	}
	return r.phones[i], true
}

// String renders "Contact name: <name>, phones: <p1>, <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value()
	}
	return "Contact name: " + r.name.Value() + ", phones: " + strings.Join(values, ", ")
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.Value() == value {
			return i
		}
	}
	return -1
}
