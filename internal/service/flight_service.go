package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"opatija/backend/internal/cache"
	"opatija/backend/internal/i18n"
	"opatija/backend/internal/ids"
	"opatija/backend/internal/models"
)

// FlightStore is the persistence surface the flight service needs.
// *repository.FlightRepository satisfies it.
type FlightStore interface {
	Create(ctx context.Context, flight models.Flight) error
	Update(ctx context.Context, flight models.Flight) error
	GetByID(ctx context.Context, id string) (models.Flight, error)
	List(ctx context.Context) ([]models.Flight, error)
	ListActiveUpcoming(ctx context.Context) ([]models.Flight, error)
	Delete(ctx context.Context, id string) error
}

// FlightCache is the query-result cache. *cache.Store satisfies it.
type FlightCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Flights manages the admin CRUD surface and the cached public listing.
type Flights interface {
	PublicList(ctx context.Context, locale i18n.Locale) ([]PublicFlight, error)
	List(ctx context.Context) ([]models.Flight, error)
	Create(ctx context.Context, input FlightInput) (models.Flight, error)
	Update(ctx context.Context, id string, input FlightInput) (models.Flight, error)
	Delete(ctx context.Context, id string) error
}

// FlightInput carries the editable fields of a flight. Updates are a full
// replace of these fields.
type FlightInput struct {
	DepartureCity   string
	DepartureCityHe string
	ArrivalCity     string
	ArrivalCityHe   string
	DepartureDate   string
	DepartureTime   string
	AircraftType    string
	AircraftTypeHe  string
	AvailableSeats  int
	PriceFrom       string
	Notes           string
	NotesHe         string
	IsActive        *bool
}

// PublicFlight is the localized public view of an active flight.
type PublicFlight struct {
	ID             string `json:"id"`
	DepartureCity  string `json:"departureCity"`
	ArrivalCity    string `json:"arrivalCity"`
	DepartureDate  string `json:"departureDate"`
	DepartureTime  string `json:"departureTime,omitempty"`
	AircraftType   string `json:"aircraftType"`
	AvailableSeats int    `json:"availableSeats"`
	PriceFrom      string `json:"priceFrom,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type flightService struct {
	store FlightStore
	cache FlightCache
	log   zerolog.Logger
}

func NewFlightService(store FlightStore, cache FlightCache, log zerolog.Logger) Flights {
	return &flightService{store: store, cache: cache, log: log}
}

func (s *flightService) PublicList(ctx context.Context, locale i18n.Locale) ([]PublicFlight, error) {
	key := cache.KeyFlightsPublic(string(locale))

	var cached []PublicFlight
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	flights, err := s.store.ListActiveUpcoming(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]PublicFlight, 0, len(flights))
	for _, f := range flights {
		public = append(public, localizeFlight(f, locale))
	}

	if err := s.cache.Set(ctx, key, public); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache public flights failed")
	}
	return public, nil
}

func localizeFlight(f models.Flight, locale i18n.Locale) PublicFlight {
	pick := func(base string, he *string) string {
		if locale == i18n.LocaleHebrew && he != nil && *he != "" {
			return *he
		}
		return base
	}

	pf := PublicFlight{
		ID:             f.ID,
		DepartureCity:  pick(f.DepartureCity, f.DepartureCityHe),
		ArrivalCity:    pick(f.ArrivalCity, f.ArrivalCityHe),
		DepartureDate:  f.DepartureDate,
		AircraftType:   pick(f.AircraftType, f.AircraftTypeHe),
		AvailableSeats: f.AvailableSeats,
	}
	if f.DepartureTime != nil {
		pf.DepartureTime = *f.DepartureTime
	}
	if f.PriceFrom != nil {
		pf.PriceFrom = *f.PriceFrom
	}
	if locale == i18n.LocaleHebrew && f.NotesHe != nil && *f.NotesHe != "" {
		pf.Notes = *f.NotesHe
	} else if f.Notes != nil {
		pf.Notes = *f.Notes
	}
	return pf
}

func (s *flightService) List(ctx context.Context) ([]models.Flight, error) {
	key := cache.KeyFlightsAdmin()

	var cached []models.Flight
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	flights, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, flights); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache admin flights failed")
	}
	return flights, nil
}

func (s *flightService) Create(ctx context.Context, input FlightInput) (models.Flight, error) {
	flight, err := buildFlight(ids.New(), input)
	if err != nil {
		return models.Flight{}, err
	}

	if err := s.store.Create(ctx, flight); err != nil {
		return models.Flight{}, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *flightService) Update(ctx context.Context, id string, input FlightInput) (models.Flight, error) {
	flight, err := buildFlight(id, input)
	if err != nil {
		return models.Flight{}, err
	}

	if err := s.store.Update(ctx, flight); err != nil {
		return models.Flight{}, err
	}
	s.invalidate(ctx)
	return flight, nil
}

func (s *flightService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate drops the admin and every public-locale listing so the public
// page reflects the mutation on its next fetch.
func (s *flightService) invalidate(ctx context.Context) {
	keys := []string{cache.KeyFlightsAdmin()}
	for _, locale := range i18n.Locales() {
		keys = append(keys, cache.KeyFlightsPublic(string(locale)))
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn().Err(err).Msg("invalidate flight caches failed")
	}
}

func buildFlight(id string, input FlightInput) (models.Flight, error) {
	departureCity := strings.TrimSpace(input.DepartureCity)
	arrivalCity := strings.TrimSpace(input.ArrivalCity)
	aircraftType := strings.TrimSpace(input.AircraftType)
	if departureCity == "" || arrivalCity == "" || aircraftType == "" {
		return models.Flight{}, fmt.Errorf("%w: departure city, arrival city and aircraft type are required", ErrInvalidInput)
	}
	if _, err := time.Parse(models.DateLayout, input.DepartureDate); err != nil {
		return models.Flight{}, fmt.Errorf("%w: departure date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if input.AvailableSeats < 1 {
		return models.Flight{}, fmt.Errorf("%w: available seats must be at least 1", ErrInvalidInput)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return models.Flight{
		ID:              id,
		DepartureCity:   departureCity,
		DepartureCityHe: optional(input.DepartureCityHe),
		ArrivalCity:     arrivalCity,
		ArrivalCityHe:   optional(input.ArrivalCityHe),
		DepartureDate:   input.DepartureDate,
		DepartureTime:   optional(input.DepartureTime),
		AircraftType:    aircraftType,
		AircraftTypeHe:  optional(input.AircraftTypeHe),
		AvailableSeats:  input.AvailableSeats,
		PriceFrom:       optional(input.PriceFrom),
		Notes:           optional(input.Notes),
		NotesHe:         optional(input.NotesHe),
		IsActive:        isActive,
	}, nil
}
