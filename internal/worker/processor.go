package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"opatija/backend/internal/cache"
	"opatija/backend/internal/i18n"
	"opatija/backend/internal/mail"
	"opatija/backend/internal/queue"
	"opatija/backend/internal/repository"
)

// Processor executes queued tasks: inquiry mail delivery and the nightly
// flight-expiry sweep.
type Processor struct {
	contacts        *repository.ContactRepository
	flights         *repository.FlightRepository
	store           *cache.Store
	mailer          *mail.Client
	operatorAddress string
	logger          zerolog.Logger
}

func NewProcessor(
	contacts *repository.ContactRepository,
	flights *repository.FlightRepository,
	store *cache.Store,
	mailer *mail.Client,
	operatorAddress string,
	logger zerolog.Logger,
) *Processor {
	return &Processor{
		contacts:        contacts,
		flights:         flights,
		store:           store,
		mailer:          mailer,
		operatorAddress: operatorAddress,
		logger:          logger,
	}
}

func (p *Processor) Handle(ctx context.Context, msg redis.XMessage) error {
	var payload queue.TaskPayload
	if err := decodePayload(msg.Values, &payload); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	switch payload.Type {
	case queue.TaskMailSend:
		return p.handleMailSend(ctx, payload)
	case queue.TaskFlightsExpire:
		return p.handleFlightExpiry(ctx)
	default:
		p.logger.Warn().Str("type", payload.Type).Msg("unknown task type")
		return nil
	}
}

func decodePayload(values map[string]interface{}, out *queue.TaskPayload) error {
	bytes, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, out)
}

// handleMailSend delivers one inquiry email. Delivery is best effort: a
// missing submission, an unconfigured mailer, or a Resend failure is logged
// and the task is acked, never retried.
func (p *Processor) handleMailSend(ctx context.Context, payload queue.TaskPayload) error {
	if !p.mailer.Enabled() {
		p.logger.Warn().
			Str("submission_id", payload.SubmissionID).
			Msg("mail delivery skipped, no api key configured")
		return nil
	}

	submission, err := p.contacts.GetByID(ctx, payload.SubmissionID)
	if err != nil {
		p.logger.Error().Err(err).
			Str("submission_id", payload.SubmissionID).
			Msg("load submission for mail failed")
		return nil
	}

	var msg mail.Message
	switch payload.Template {
	case queue.TemplateConfirmation:
		msg = mail.ConfirmationMessage(submission)
	case queue.TemplateOperator:
		msg = mail.OperatorMessage(p.operatorAddress, submission)
	default:
		p.logger.Warn().Str("template", payload.Template).Msg("unknown mail template")
		return nil
	}

	if err := p.mailer.Send(ctx, msg); err != nil {
		p.logger.Error().Err(err).
			Str("submission_id", submission.ID).
			Str("template", payload.Template).
			Msg("mail delivery failed")
		return nil
	}

	p.logger.Info().
		Str("submission_id", submission.ID).
		Str("template", payload.Template).
		Msg("mail delivered")
	return nil
}

func (p *Processor) handleFlightExpiry(ctx context.Context) error {
	deactivated, err := p.flights.DeactivateDeparted(ctx)
	if err != nil {
		return fmt.Errorf("deactivate departed flights: %w", err)
	}

	if deactivated > 0 {
		keys := []string{cache.KeyFlightsAdmin()}
		for _, locale := range i18n.Locales() {
			keys = append(keys, cache.KeyFlightsPublic(string(locale)))
		}
		if err := p.store.Invalidate(ctx, keys...); err != nil {
			p.logger.Warn().Err(err).Msg("flight cache invalidation failed")
		}
	}

	p.logger.Info().Int64("deactivated", deactivated).Msg("flight expiry sweep complete")
	return nil
}
