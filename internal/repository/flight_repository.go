package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opatija/backend/internal/models"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightRepository struct {
	pool *pgxpool.Pool
}

func NewFlightRepository(pool *pgxpool.Pool) *FlightRepository {
	return &FlightRepository{pool: pool}
}

const flightColumns = `
	id, departure_city, departure_city_he, arrival_city, arrival_city_he,
	departure_date::text, departure_time, aircraft_type, aircraft_type_he,
	available_seats, price_from, notes, notes_he, is_active, created_at, updated_at
`

func (r *FlightRepository) Create(ctx context.Context, flight models.Flight) error {
	const query = `
		INSERT INTO available_flights (
			id, departure_city, departure_city_he, arrival_city, arrival_city_he,
			departure_date, departure_time, aircraft_type, aircraft_type_he,
			available_seats, price_from, notes, notes_he, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6::date, $7, $8, $9,
			$10, $11, $12, $13, $14, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		flight.ID,
		flight.DepartureCity,
		flight.DepartureCityHe,
		flight.ArrivalCity,
		flight.ArrivalCityHe,
		flight.DepartureDate,
		flight.DepartureTime,
		flight.AircraftType,
		flight.AircraftTypeHe,
		flight.AvailableSeats,
		flight.PriceFrom,
		flight.Notes,
		flight.NotesHe,
		flight.IsActive,
	)
	return err
}

// Update replaces every editable field of an existing flight.
func (r *FlightRepository) Update(ctx context.Context, flight models.Flight) error {
	const query = `
		UPDATE available_flights SET
			departure_city = $2,
			departure_city_he = $3,
			arrival_city = $4,
			arrival_city_he = $5,
			departure_date = $6::date,
			departure_time = $7,
			aircraft_type = $8,
			aircraft_type_he = $9,
			available_seats = $10,
			price_from = $11,
			notes = $12,
			notes_he = $13,
			is_active = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := r.pool.Exec(ctx, query,
		flight.ID,
		flight.DepartureCity,
		flight.DepartureCityHe,
		flight.ArrivalCity,
		flight.ArrivalCityHe,
		flight.DepartureDate,
		flight.DepartureTime,
		flight.AircraftType,
		flight.AircraftTypeHe,
		flight.AvailableSeats,
		flight.PriceFrom,
		flight.Notes,
		flight.NotesHe,
		flight.IsActive,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrFlightNotFound
	}
	return nil
}

func (r *FlightRepository) GetByID(ctx context.Context, id string) (models.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM available_flights WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// List returns every flight, active or not, ordered by departure date.
func (r *FlightRepository) List(ctx context.Context) ([]models.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM available_flights ORDER BY departure_date ASC`
	return r.list(ctx, query)
}

// ListActiveUpcoming returns the publicly visible flights: active and not
// yet departed, ordered by departure date.
func (r *FlightRepository) ListActiveUpcoming(ctx context.Context) ([]models.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM available_flights
		WHERE is_active = TRUE AND departure_date >= CURRENT_DATE
		ORDER BY departure_date ASC
	`
	return r.list(ctx, query)
}

func (r *FlightRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM available_flights WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrFlightNotFound
	}
	return nil
}

// DeactivateDeparted clears the active flag on flights whose departure date
// has passed. Returns the number of flights deactivated.
func (r *FlightRepository) DeactivateDeparted(ctx context.Context) (int64, error) {
	const query = `
		UPDATE available_flights
		SET is_active = FALSE, updated_at = NOW()
		WHERE is_active = TRUE AND departure_date < CURRENT_DATE
	`
	cmd, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *FlightRepository) list(ctx context.Context, query string) ([]models.Flight, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]models.Flight, 0)
	for rows.Next() {
		flight, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}
	return flights, rows.Err()
}

func (r *FlightRepository) scanOne(row pgx.Row) (models.Flight, error) {
	var flight models.Flight
	if err := row.Scan(
		&flight.ID,
		&flight.DepartureCity,
		&flight.DepartureCityHe,
		&flight.ArrivalCity,
		&flight.ArrivalCityHe,
		&flight.DepartureDate,
		&flight.DepartureTime,
		&flight.AircraftType,
		&flight.AircraftTypeHe,
		&flight.AvailableSeats,
		&flight.PriceFrom,
		&flight.Notes,
		&flight.NotesHe,
		&flight.IsActive,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Flight{}, ErrFlightNotFound
		}
		return models.Flight{}, err
	}
	return flight, nil
}
