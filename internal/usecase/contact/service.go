package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/addressbook/internal/config"
	"github.com/kailas-cloud/addressbook/internal/domain"
	"github.com/kailas-cloud/addressbook/internal/domain/book"
	domcontact "github.com/kailas-cloud/addressbook/internal/domain/contact"
	"github.com/kailas-cloud/addressbook/internal/domain/contact/field"
	"github.com/kailas-cloud/addressbook/internal/logger"
	"github.com/kailas-cloud/addressbook/internal/metrics"
)

// Operation names used for metrics and logs.
const (
	OpCreate      = "create"
	OpGet         = "get"
	OpDelete      = "delete"
	OpAddPhone    = "add_phone"
	OpRemovePhone = "remove_phone"
	OpEditPhone   = "edit_phone"
	OpFindPhone   = "find_phone"
)

// Service serializes access to a single address book.
// All methods are safe for concurrent use. Records returned by Create, Get and
// List are snapshots; changes go through the service.
type Service struct {
	mu       sync.Mutex
	book     *book.AddressBook
	recorder Recorder
}

// New creates a contact service over b.
func New(b *book.AddressBook) *Service {
	return &Service{book: b, recorder: nopRecorder{}}
}

// WithRecorder sets the metrics recorder.
func (s *Service) WithRecorder(r Recorder) *Service {
	if r != nil {
		s.recorder = r
	}
	s.mu.Lock()
	s.updateSizeLocked()
	s.mu.Unlock()
	return s
}

// Create builds a record with the given phones and stores it, replacing any contact
// with the same name. Nothing is stored if a phone is invalid.
func (s *Service) Create(ctx context.Context, name string, phones ...string) (*domcontact.Record, error) {
	r := domcontact.New(name)
	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			s.recorder.ObserveOperation(OpCreate, metrics.ResultInvalid)
			logger.ForContact(ctx, name).Warn("Rejected contact", zap.Error(err))
			return nil, fmt.Errorf("create contact %s: %w", name, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.book.AddRecord(r)
	s.updateSizeLocked()
	s.recorder.ObserveOperation(OpCreate, metrics.ResultOK)
	logger.ForContact(ctx, name).Debug("Contact stored", zap.Int("phones", len(phones)))
	return r.Clone(), nil
}

// Seed loads contacts from configuration.
func (s *Service) Seed(ctx context.Context, seeds []config.ContactSeed) error {
	for _, c := range seeds {
		if _, err := s.Create(ctx, c.Name, c.Phones...); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	logger.FromContext(ctx).Info("Address book seeded", zap.Int("contacts", len(seeds)))
	return nil
}

// Get returns the contact stored under name.
func (s *Service) Get(ctx context.Context, name string) (*domcontact.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.findLocked(ctx, OpGet, name)
	if err != nil {
		return nil, err
	}
	s.recorder.ObserveOperation(OpGet, metrics.ResultOK)
	return r.Clone(), nil
}

// List returns all contacts in insertion order.
func (s *Service) List(_ context.Context) []*domcontact.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.book.Records()
	for i, r := range records {
		records[i] = r.Clone()
	}
	return records
}

// Delete removes the contact stored under name. Missing contacts are ignored.
func (s *Service) Delete(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := metrics.ResultOK
	if _, ok := s.book.Find(name); !ok {
		result = metrics.ResultNotFound
	}
	s.book.Delete(name)
	s.updateSizeLocked()
	s.recorder.ObserveOperation(OpDelete, result)
	logger.ForContact(ctx, name).Debug("Contact deleted", zap.String("result", result))
}

// AddPhone appends a phone to the named contact.
func (s *Service) AddPhone(ctx context.Context, name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.findLocked(ctx, OpAddPhone, name)
	if err != nil {
		return err
	}
	if err := r.AddPhone(phone); err != nil {
		s.recorder.ObserveOperation(OpAddPhone, metrics.ResultInvalid)
		logger.ForContact(ctx, name).Warn("Rejected phone", zap.Error(err))
		return fmt.Errorf("add phone: %w", err)
	}
	s.updateSizeLocked()
	s.recorder.ObserveOperation(OpAddPhone, metrics.ResultOK)
	return nil
}

// RemovePhone removes the first matching phone from the named contact.
func (s *Service) RemovePhone(ctx context.Context, name, phone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.findLocked(ctx, OpRemovePhone, name)
	if err != nil {
		return false, err
	}
	found := r.RemovePhone(phone)
	s.updateSizeLocked()
	s.recorder.ObserveOperation(OpRemovePhone, resultOf(found))
	return found, nil
}

// EditPhone replaces a phone of the named contact in place.
// When newPhone is invalid the old phone is still removed (see Record.EditPhone).
func (s *Service) EditPhone(ctx context.Context, name, oldPhone, newPhone string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.findLocked(ctx, OpEditPhone, name)
	if err != nil {
		return false, err
	}
	found, err := r.EditPhone(oldPhone, newPhone)
	s.updateSizeLocked()
	if err != nil {
		s.recorder.ObserveOperation(OpEditPhone, metrics.ResultInvalid)
		logger.ForContact(ctx, name).Warn("Phone removed but replacement rejected",
			zap.String("old", oldPhone),
			zap.Error(err),
		)
		return found, fmt.Errorf("edit phone: %w", err)
	}
	s.recorder.ObserveOperation(OpEditPhone, resultOf(found))
	return found, nil
}

// FindPhone looks up a phone of the named contact.
func (s *Service) FindPhone(ctx context.Context, name, phone string) (field.Field, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.findLocked(ctx, OpFindPhone, name)
	if err != nil {
		return field.Field{}, false, err
	}
	p, ok := r.FindPhone(phone)
	s.recorder.ObserveOperation(OpFindPhone, resultOf(ok))
	return p, ok, nil
}

// Len returns the number of contacts.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Len()
}

func (s *Service) findLocked(ctx context.Context, op, name string) (*domcontact.Record, error) {
	r, ok := s.book.Find(name)
	if !ok {
		s.recorder.ObserveOperation(op, metrics.ResultNotFound)
		logger.ForContact(ctx, name).Debug("Contact not found", zap.String("operation", op))
		return nil, fmt.Errorf("%s %s: %w", op, name, domain.ErrNotFound)
	}
	return r, nil
}

func (s *Service) updateSizeLocked() {
	phones := 0
	for _, r := range s.book.Records() {
		phones += len(r.Phones())
	}
	s.recorder.SetSize(s.book.Len(), phones)
}

func resultOf(found bool) string {
	if found {
		return metrics.ResultOK
	}
	return metrics.ResultNotFound
}

// IsNotFound reports whether err signals a missing contact.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
