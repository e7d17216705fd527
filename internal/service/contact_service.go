package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"opatija/backend/internal/ids"
	"opatija/backend/internal/models"
	"opatija/backend/internal/queue"
)

// ErrInvalidInput marks a request rejected by boundary validation; handlers
// map it to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

// ContactStore is the persistence surface the contact service needs.
// *repository.ContactRepository satisfies it.
type ContactStore interface {
	Create(ctx context.Context, sub models.ContactSubmission) error
	GetByID(ctx context.Context, id string) (models.ContactSubmission, error)
	List(ctx context.Context) ([]models.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error
	Delete(ctx context.Context, id string) error
}

// TaskEnqueuer queues background work. *queue.Producer satisfies it.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, payload queue.TaskPayload) error
}

// Contacts manages trip inquiries: public submission plus the admin
// read/update/delete surface.
type Contacts interface {
	Submit(ctx context.Context, input SubmitInput) (models.ContactSubmission, error)
	List(ctx context.Context) ([]models.ContactSubmission, error)
	Get(ctx context.Context, id string) (models.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error
	Delete(ctx context.Context, id string) error
}

type SubmitInput struct {
	FullName           string
	Email              string
	Phone              string
	Country            string
	Destination        string
	NumTravelers       *int
	TravelDates        string
	Budget             string
	TravelerTypes      []string
	ExperienceTypes    []string
	AdditionalRequests string
}

type contactService struct {
	store ContactStore
	tasks TaskEnqueuer
	log   zerolog.Logger
}

func NewContactService(store ContactStore, tasks TaskEnqueuer, log zerolog.Logger) Contacts {
	return &contactService{store: store, tasks: tasks, log: log}
}

func (s *contactService) Submit(ctx context.Context, input SubmitInput) (models.ContactSubmission, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" {
		return models.ContactSubmission{}, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.ContactSubmission{}, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if input.NumTravelers != nil && *input.NumTravelers < 1 {
		return models.ContactSubmission{}, fmt.Errorf("%w: number of travelers must be positive", ErrInvalidInput)
	}

	sub := models.ContactSubmission{
		ID:                 ids.New(),
		FullName:           fullName,
		Email:              email,
		Phone:              optional(input.Phone),
		Country:            optional(input.Country),
		Destination:        optional(input.Destination),
		NumTravelers:       input.NumTravelers,
		TravelDates:        optional(input.TravelDates),
		Budget:             optional(input.Budget),
		TravelerTypes:      nonNil(input.TravelerTypes),
		ExperienceTypes:    nonNil(input.ExperienceTypes),
		AdditionalRequests: optional(input.AdditionalRequests),
		Status:             models.SubmissionStatusNew,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return models.ContactSubmission{}, fmt.Errorf("persist submission: %w", err)
	}

	// Email is best-effort from here on: the submission is saved, so enqueue
	// failures are logged and never surfaced to the submitter.
	s.enqueueMail(ctx, sub.ID, queue.TemplateConfirmation)
	s.enqueueMail(ctx, sub.ID, queue.TemplateOperator)

	return sub, nil
}

func (s *contactService) enqueueMail(ctx context.Context, submissionID, template string) {
	err := s.tasks.Enqueue(ctx, queue.TaskPayload{
		Type:         queue.TaskMailSend,
		SubmissionID: submissionID,
		Template:     template,
	})
	if err != nil {
		s.log.Error().
			Err(err).
			Str("submission_id", submissionID).
			Str("template", template).
			Msg("enqueue mail task failed")
	}
}

func (s *contactService) List(ctx context.Context) ([]models.ContactSubmission, error) {
	return s.store.List(ctx)
}

func (s *contactService) Get(ctx context.Context, id string) (models.ContactSubmission, error) {
	return s.store.GetByID(ctx, id)
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, status models.SubmissionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.store.UpdateStatus(ctx, id, status)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
