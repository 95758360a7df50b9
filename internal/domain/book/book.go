package book

import "github.com/kailas-cloud/addressbook/internal/domain/contact"

// AddressBook maps contact names to records. At most one record exists per name.
// Records iterate in the order their name was first added.
type AddressBook struct {
	entries map[string]*contact.Record
	order   []string
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{entries: make(map[string]*contact.Record)}
}

// AddRecord stores r under its name value, replacing any existing record with that name.
// A replaced name keeps its original position.
func (b *AddressBook) AddRecord(r *contact.Record) {
	key := r.Name().Value()
	if _, ok := b.entries[key]; !ok {
		b.order = append(b.order, key)
	}
	b.entries[key] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*contact.Record, bool) {
	r, ok := b.entries[name]
	return r, ok
}

// Delete removes the record stored under name. Missing names are ignored.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.entries[name]; !ok {
		return
	}
	delete(b.entries, name)
	for i, k := range b.order {
		if k == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.entries[k])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.entries) }
