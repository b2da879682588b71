// Package memory provides an in-memory datasource and repository
// implementations for development and testing.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clinicdesk/internal/clinic/domain/entities"
)

// Store is an explicitly constructed in-memory datasource. It owns the
// authoritative records, assigns sequential ids, and is safe for concurrent
// use. A fresh store starts with the seed dataset.
type Store struct {
	mu            sync.RWMutex
	latency       time.Duration
	patients      []*entities.Patient
	staff         []*entities.Staff
	nextPatientID int64
	nextStaffID   int64
}

// Option configures a Store.
type Option func(*Store)

// WithLatency makes every operation wait the given duration before resolving,
// approximating network round trips in mock deployments.
func WithLatency(d time.Duration) Option {
	return func(s *Store) {
		s.latency = d
	}
}

// NewStore creates a store populated with the seed dataset.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	s.seed()
	return s
}

// Reset restores the seed dataset, discarding all mutations.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed()
}

func (s *Store) seed() {
	aliceAppointment := "2025-11-20T09:00:00Z"
	bobAppointment := "2025-11-21T10:30:00Z"

	s.patients = []*entities.Patient{
		{
			PatientID:       1,
			NameSurname:     "Alice Tan",
			PhoneNumber:     "0812345678",
			Birthday:        "1988-04-12",
			Gender:          "Female",
			AppointmentDate: &aliceAppointment,
			CourseCount:     3,
			FirstVisitDate:  "2024-01-15",
		},
		{
			PatientID:       2,
			NameSurname:     "Bob Cruz",
			PhoneNumber:     "0823456789",
			Birthday:        "1975-11-02",
			Gender:          "Male",
			AppointmentDate: &bobAppointment,
			CourseCount:     5,
			FirstVisitDate:  "2023-12-10",
		},
	}

	s.staff = []*entities.Staff{
		{
			StaffID:      1,
			Username:     "admin",
			PasswordHash: mustHash("admin123"),
			NameSurname:  "Dr. Lee",
			PhoneNumber:  "0834567890",
			Birthday:     "1980-05-20",
			Gender:       "Male",
			Email:        "dr.lee@clinic.com",
			Role:         "Manager",
		},
		{
			StaffID:      2,
			Username:     "nurse.joy",
			PasswordHash: mustHash("nurse123"),
			NameSurname:  "Nurse Joy",
			PhoneNumber:  "0845678901",
			Birthday:     "1990-08-15",
			Gender:       "Female",
			Email:        "nurse.joy@clinic.com",
			Role:         "Nurse",
		},
	}

	s.nextPatientID = 3
	s.nextStaffID = 3
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("hashing seed credential: %v", err))
	}
	return string(hash)
}

// wait simulates the configured latency, honoring context cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("store operation canceled: %w", ctx.Err())
	}
}

func clonePatient(p *entities.Patient) *entities.Patient {
	cp := *p
	if p.AppointmentDate != nil {
		date := *p.AppointmentDate
		cp.AppointmentDate = &date
	}
	return &cp
}

func cloneStaff(s *entities.Staff) *entities.Staff {
	cp := *s
	return &cp
}
