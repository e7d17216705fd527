package service_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"opatija/backend/internal/models"
	"opatija/backend/internal/queue"
	"opatija/backend/internal/service"
	"opatija/backend/internal/service/mocks"
)

func TestContactService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		input   service.SubmitInput
		wantErr bool
	}{
		{
			name:    "missing name",
			input:   service.SubmitInput{Email: "guest@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			input:   service.SubmitInput{FullName: "Dana Levi"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			input:   service.SubmitInput{FullName: "Dana Levi", Email: "not-an-address"},
			wantErr: true,
		},
		{
			name: "zero travelers",
			input: service.SubmitInput{
				FullName:     "Dana Levi",
				Email:        "dana@example.com",
				NumTravelers: intPtr(0),
			},
			wantErr: true,
		},
		{
			name: "minimal valid",
			input: service.SubmitInput{
				FullName: "  Dana Levi  ",
				Email:    "dana@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.MockContactStore)
			tasks := new(mocks.MockEnqueuer)
			svc := service.NewContactService(store, tasks, zerolog.Nop())

			if !tt.wantErr {
				store.On("Create", mock.Anything, mock.Anything).Return(nil)
				tasks.On("Enqueue", mock.Anything, mock.Anything).Return(nil).Twice()
			}

			sub, err := svc.Submit(context.Background(), tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, service.ErrInvalidInput)
				store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				tasks.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, sub.ID)
			assert.Equal(t, "Dana Levi", sub.FullName)
			assert.Equal(t, models.SubmissionStatusNew, sub.Status)
			store.AssertExpectations(t)
			tasks.AssertExpectations(t)
		})
	}
}

func TestContactService_Submit_NormalizesOptionals(t *testing.T) {
	store := new(mocks.MockContactStore)
	tasks := new(mocks.MockEnqueuer)
	svc := service.NewContactService(store, tasks, zerolog.Nop())

	var stored models.ContactSubmission
	store.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(models.ContactSubmission)
		}).
		Return(nil)
	tasks.On("Enqueue", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Submit(context.Background(), service.SubmitInput{
		FullName: "Dana Levi",
		Email:    "dana@example.com",
		Phone:    "   ",
		Country:  "Israel",
	})
	require.NoError(t, err)

	assert.Nil(t, stored.Phone, "blank optionals stored as NULL")
	require.NotNil(t, stored.Country)
	assert.Equal(t, "Israel", *stored.Country)
	assert.NotNil(t, stored.TravelerTypes)
	assert.Empty(t, stored.TravelerTypes)
	assert.NotNil(t, stored.ExperienceTypes)
	assert.Empty(t, stored.ExperienceTypes)
}

func TestContactService_Submit_EnqueueFailureIsBestEffort(t *testing.T) {
	store := new(mocks.MockContactStore)
	tasks := new(mocks.MockEnqueuer)
	svc := service.NewContactService(store, tasks, zerolog.Nop())

	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	tasks.On("Enqueue", mock.Anything, mock.Anything).Return(assert.AnError)

	sub, err := svc.Submit(context.Background(), service.SubmitInput{
		FullName: "Dana Levi",
		Email:    "dana@example.com",
	})

	require.NoError(t, err, "enqueue failures never surface to the submitter")
	assert.NotEmpty(t, sub.ID)
	tasks.AssertNumberOfCalls(t, "Enqueue", 2)
}

func TestContactService_Submit_EnqueuesBothTemplates(t *testing.T) {
	store := new(mocks.MockContactStore)
	tasks := new(mocks.MockEnqueuer)
	svc := service.NewContactService(store, tasks, zerolog.Nop())

	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	var templates []string
	tasks.On("Enqueue", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			payload := args.Get(1).(queue.TaskPayload)
			assert.Equal(t, queue.TaskMailSend, payload.Type)
			templates = append(templates, payload.Template)
		}).
		Return(nil)

	sub, err := svc.Submit(context.Background(), service.SubmitInput{
		FullName: "Dana Levi",
		Email:    "dana@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{queue.TemplateConfirmation, queue.TemplateOperator}, templates)
	assert.NotEmpty(t, sub.ID)
}

func TestContactService_UpdateStatus(t *testing.T) {
	store := new(mocks.MockContactStore)
	tasks := new(mocks.MockEnqueuer)
	svc := service.NewContactService(store, tasks, zerolog.Nop())

	err := svc.UpdateStatus(context.Background(), "sub-1", models.SubmissionStatus("bogus"))
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	store.On("UpdateStatus", mock.Anything, "sub-1", models.SubmissionStatusContacted).Return(nil)
	require.NoError(t, svc.UpdateStatus(context.Background(), "sub-1", models.SubmissionStatusContacted))
	store.AssertExpectations(t)
}

func intPtr(v int) *int {
	return &v
}
