package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opatija/backend/internal/models"
)

var ErrSubmissionNotFound = errors.New("submission not found")

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

const contactColumns = `
	id, full_name, email, phone, country, destination, num_travelers,
	travel_dates, budget, traveler_types, experience_types,
	additional_requests, status, created_at, updated_at
`

func (r *ContactRepository) Create(ctx context.Context, sub models.ContactSubmission) error {
	const query = `
		INSERT INTO contact_submissions (
			id, full_name, email, phone, country, destination, num_travelers,
			travel_dates, budget, traveler_types, experience_types,
			additional_requests, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		sub.ID,
		sub.FullName,
		sub.Email,
		sub.Phone,
		sub.Country,
		sub.Destination,
		sub.NumTravelers,
		sub.TravelDates,
		sub.Budget,
		sub.TravelerTypes,
		sub.ExperienceTypes,
		sub.AdditionalRequests,
		sub.Status,
	)
	return err
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (models.ContactSubmission, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_submissions WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// List returns every submission, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactSubmission, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_submissions ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]models.ContactSubmission, 0)
	for rows.Next() {
		sub, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error {
	const query = `
		UPDATE contact_submissions SET status = $2, updated_at = NOW() WHERE id = $1
	`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM contact_submissions WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

func (r *ContactRepository) scanOne(row pgx.Row) (models.ContactSubmission, error) {
	var sub models.ContactSubmission
	if err := row.Scan(
		&sub.ID,
		&sub.FullName,
		&sub.Email,
		&sub.Phone,
		&sub.Country,
		&sub.Destination,
		&sub.NumTravelers,
		&sub.TravelDates,
		&sub.Budget,
		&sub.TravelerTypes,
		&sub.ExperienceTypes,
		&sub.AdditionalRequests,
		&sub.Status,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ContactSubmission{}, ErrSubmissionNotFound
		}
		return models.ContactSubmission{}, err
	}
	if sub.TravelerTypes == nil {
		sub.TravelerTypes = []string{}
	}
	if sub.ExperienceTypes == nil {
		sub.ExperienceTypes = []string{}
	}
	return sub, nil
}
