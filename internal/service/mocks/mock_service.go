package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"opatija/backend/internal/i18n"
	"opatija/backend/internal/models"
	"opatija/backend/internal/queue"
	"opatija/backend/internal/service"
)

// MockContacts is a mock implementation of service.Contacts.
type MockContacts struct {
	mock.Mock
}

func (m *MockContacts) Submit(ctx context.Context, input service.SubmitInput) (models.ContactSubmission, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.ContactSubmission), args.Error(1)
}

func (m *MockContacts) List(ctx context.Context) ([]models.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactSubmission), args.Error(1)
}

func (m *MockContacts) Get(ctx context.Context, id string) (models.ContactSubmission, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactSubmission), args.Error(1)
}

func (m *MockContacts) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContacts) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFlights is a mock implementation of service.Flights.
type MockFlights struct {
	mock.Mock
}

func (m *MockFlights) PublicList(ctx context.Context, locale i18n.Locale) ([]service.PublicFlight, error) {
	args := m.Called(ctx, locale)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PublicFlight), args.Error(1)
}

func (m *MockFlights) List(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlights) Create(ctx context.Context, input service.FlightInput) (models.Flight, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(models.Flight), args.Error(1)
}

func (m *MockFlights) Update(ctx context.Context, id string, input service.FlightInput) (models.Flight, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(models.Flight), args.Error(1)
}

func (m *MockFlights) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContactStore is a mock implementation of service.ContactStore.
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) Create(ctx context.Context, sub models.ContactSubmission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockContactStore) GetByID(ctx context.Context, id string) (models.ContactSubmission, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ContactSubmission), args.Error(1)
}

func (m *MockContactStore) List(ctx context.Context) ([]models.ContactSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactSubmission), args.Error(1)
}

func (m *MockContactStore) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContactStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFlightStore is a mock implementation of service.FlightStore.
type MockFlightStore struct {
	mock.Mock
}

func (m *MockFlightStore) Create(ctx context.Context, flight models.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightStore) Update(ctx context.Context, flight models.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightStore) GetByID(ctx context.Context, id string) (models.Flight, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Flight), args.Error(1)
}

func (m *MockFlightStore) List(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightStore) ListActiveUpcoming(ctx context.Context) ([]models.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Flight), args.Error(1)
}

func (m *MockFlightStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEnqueuer is a mock implementation of service.TaskEnqueuer.
type MockEnqueuer struct {
	mock.Mock
}

func (m *MockEnqueuer) Enqueue(ctx context.Context, payload queue.TaskPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockFlightCache is a mock implementation of service.FlightCache.
type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) Get(ctx context.Context, key string, dest any) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockFlightCache) Set(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockFlightCache) Invalidate(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}
