package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twoloom/internal/domain/inquiry"
	"twoloom/internal/shared/errors"
)

func validCommand() SubmitInquiryCommand {
	return SubmitInquiryCommand{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "We would like to discuss a project.",
	}
}

func TestSubmitInquiryUseCase_Execute_Success(t *testing.T) {
	notified := make(chan InquiryNotification, 1)
	acked := make(chan InquiryNotification, 1)

	mockRepo := &mockInquiryRepository{
		SaveFunc: func(ctx context.Context, i *inquiry.Inquiry) error {
			return i.SetID(7)
		},
	}
	notifier := &mockNotifier{
		NotifyOperatorFunc: func(ctx context.Context, n InquiryNotification) error {
			notified <- n
			return nil
		},
		AcknowledgeRequesterFunc: func(ctx context.Context, n InquiryNotification) error {
			acked <- n
			return nil
		},
	}

	useCase := NewSubmitInquiryUseCase(mockRepo, notifier, &mockLogger{}, 0, 0)
	result, err := useCase.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.InquiryID)

	select {
	case n := <-notified:
		assert.Equal(t, uint(7), n.InquiryID)
		assert.Equal(t, "jane@example.com", n.Email)
	case <-time.After(time.Second):
		t.Fatal("operator notification was not dispatched")
	}

	select {
	case n := <-acked:
		assert.Equal(t, "jane@example.com", n.Email)
	case <-time.After(time.Second):
		t.Fatal("requester acknowledgment was not dispatched")
	}
}

func TestSubmitInquiryUseCase_Execute_RateLimited(t *testing.T) {
	tests := []struct {
		name        string
		recentCount int64
		wantLimited bool
	}{
		{name: "below threshold", recentCount: 2, wantLimited: false},
		{name: "at threshold", recentCount: 3, wantLimited: true},
		{name: "above threshold", recentCount: 5, wantLimited: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved := false
			mockRepo := &mockInquiryRepository{
				CountRecentByEmailFunc: func(ctx context.Context, email string, since time.Time) (int64, error) {
					assert.Equal(t, "jane@example.com", email)
					// Window lower bound sits about five minutes in the past.
					assert.WithinDuration(t, time.Now().Add(-5*time.Minute), since, 5*time.Second)
					return tt.recentCount, nil
				},
				SaveFunc: func(ctx context.Context, i *inquiry.Inquiry) error {
					saved = true
					return i.SetID(1)
				},
			}

			useCase := NewSubmitInquiryUseCase(mockRepo, &mockNotifier{}, &mockLogger{}, 0, 0)
			result, err := useCase.Execute(context.Background(), validCommand())

			if tt.wantLimited {
				assert.Nil(t, result)
				assert.True(t, errors.IsRateLimitedError(err))
				assert.False(t, saved)
			} else {
				require.NoError(t, err)
				assert.True(t, saved)
			}
		})
	}
}

func TestSubmitInquiryUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cmd *SubmitInquiryCommand)
	}{
		{
			name:   "missing name",
			mutate: func(cmd *SubmitInquiryCommand) { cmd.Name = "" },
		},
		{
			name:   "bad email",
			mutate: func(cmd *SubmitInquiryCommand) { cmd.Email = "nope" },
		},
		{
			name:   "message too short",
			mutate: func(cmd *SubmitInquiryCommand) { cmd.Message = "hi" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counted := false
			mockRepo := &mockInquiryRepository{
				CountRecentByEmailFunc: func(ctx context.Context, email string, since time.Time) (int64, error) {
					counted = true
					return 0, nil
				},
			}

			cmd := validCommand()
			tt.mutate(&cmd)

			useCase := NewSubmitInquiryUseCase(mockRepo, &mockNotifier{}, &mockLogger{}, 0, 0)
			result, err := useCase.Execute(context.Background(), cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			// Validation rejects before the throttle or store is touched.
			assert.False(t, counted)
		})
	}
}

func TestSubmitInquiryUseCase_Execute_NotifierFailureIsNonFatal(t *testing.T) {
	done := make(chan struct{}, 1)

	mockRepo := &mockInquiryRepository{
		SaveFunc: func(ctx context.Context, i *inquiry.Inquiry) error {
			return i.SetID(1)
		},
	}
	notifier := &mockNotifier{
		NotifyOperatorFunc: func(ctx context.Context, n InquiryNotification) error {
			return fmt.Errorf("smtp connection refused")
		},
		AcknowledgeRequesterFunc: func(ctx context.Context, n InquiryNotification) error {
			done <- struct{}{}
			return nil
		},
	}

	useCase := NewSubmitInquiryUseCase(mockRepo, notifier, &mockLogger{}, 0, 0)
	result, err := useCase.Execute(context.Background(), validCommand())

	require.NoError(t, err)
	require.NotNil(t, result)

	// The second message is still attempted after the first one fails.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("requester acknowledgment was not attempted")
	}
}
