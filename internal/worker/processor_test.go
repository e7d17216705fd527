package worker

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opatija/backend/internal/config"
	"opatija/backend/internal/mail"
	"opatija/backend/internal/queue"
)

func TestHandleSkipsMailWhenUnconfigured(t *testing.T) {
	mailer := mail.NewClient(config.MailConfig{}, zerolog.Nop())
	p := NewProcessor(nil, nil, nil, mailer, "", zerolog.Nop())

	err := p.Handle(context.Background(), redis.XMessage{
		ID: "1-0",
		Values: map[string]interface{}{
			"type":         queue.TaskMailSend,
			"submissionId": "sub-1",
			"template":     queue.TemplateConfirmation,
		},
	})

	assert.NoError(t, err, "no api key means the task is acked without touching the database")
}

func TestHandleIgnoresUnknownTaskType(t *testing.T) {
	p := NewProcessor(nil, nil, nil, mail.NewClient(config.MailConfig{}, zerolog.Nop()), "", zerolog.Nop())

	err := p.Handle(context.Background(), redis.XMessage{
		ID:     "1-0",
		Values: map[string]interface{}{"type": "definitely-not-a-task"},
	})

	assert.NoError(t, err)
}

func TestDecodePayload(t *testing.T) {
	var payload queue.TaskPayload
	err := decodePayload(map[string]interface{}{
		"type":         queue.TaskMailSend,
		"submissionId": "sub-9",
		"template":     queue.TemplateOperator,
	}, &payload)

	require.NoError(t, err)
	assert.Equal(t, queue.TaskMailSend, payload.Type)
	assert.Equal(t, "sub-9", payload.SubmissionID)
	assert.Equal(t, queue.TemplateOperator, payload.Template)
}
