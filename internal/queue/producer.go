// Package queue carries background tasks between the api and worker
// processes over a redis stream with a consumer group.
package queue

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Task types understood by the worker.
const (
	TaskMailSend      = "mail:send"
	TaskFlightsExpire = "flights:expire"
)

// Mail templates for TaskMailSend.
const (
	TemplateConfirmation = "confirmation"
	TemplateOperator     = "operator"
)

// TaskPayload is the wire shape of a queued task.
type TaskPayload struct {
	Type         string `json:"type"`
	SubmissionID string `json:"submissionId,omitempty"`
	Template     string `json:"template,omitempty"`
}

type Producer struct {
	client *redis.Client
	stream string
}

func NewProducer(client *redis.Client, stream string) *Producer {
	return &Producer{client: client, stream: stream}
}

func (p *Producer) Enqueue(ctx context.Context, payload TaskPayload) error {
	values := map[string]any{"type": payload.Type}
	if payload.SubmissionID != "" {
		values["submissionId"] = payload.SubmissionID
	}
	if payload.Template != "" {
		values["template"] = payload.Template
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err()
}
