package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/internal/usecase"
	"testimonial-wall-backend/pkg/apperror"
	"testimonial-wall-backend/pkg/email"
	"testimonial-wall-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailer) SendContactNotification(data email.ContactEmailData) error {
	return m.Called(data).Error(0)
}

func (m *MockMailer) SendContactConfirmation(data email.ContactEmailData) error {
	return m.Called(data).Error(0)
}

func validContact() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "I love the product!",
	}
}

func TestContactValidation(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecase.NewContactUsecase(mailer)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.ContactRequest)
	}{
		{"blank name", func(r *domain.ContactRequest) { r.Name = "   " }},
		{"blank email", func(r *domain.ContactRequest) { r.Email = "" }},
		{"blank message", func(r *domain.ContactRequest) { r.Message = "\n\t" }},
		{"invalid email format", func(r *domain.ContactRequest) { r.Email = "not-an-email" }},
		{"email without tld", func(r *domain.ContactRequest) { r.Email = "jane@example" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validContact()
			tc.mutate(req)

			err := uc.SendContactMessage(ctx, req)

			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			// No email of any kind may be sent for invalid input
			mailer.AssertNotCalled(t, "SendContactNotification", mock.Anything)
			mailer.AssertNotCalled(t, "SendContactConfirmation", mock.Anything)
		})
	}
}

func TestContactUnconfiguredMailer(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("IsConfigured").Return(false)
	uc := usecase.NewContactUsecase(mailer)

	err := uc.SendContactMessage(context.Background(), validContact())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	mailer.AssertNotCalled(t, "SendContactNotification", mock.Anything)
}

func TestContactPrimaryFailureIsFatal(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactNotification", mock.Anything).Return(errors.New("smtp: connection refused"))
	uc := usecase.NewContactUsecase(mailer)

	err := uc.SendContactMessage(context.Background(), validContact())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	// The confirmation must never be attempted after a failed notification
	mailer.AssertNotCalled(t, "SendContactConfirmation", mock.Anything)
}

func TestContactConfirmationFailureIsTolerated(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactNotification", mock.Anything).Return(nil)
	mailer.On("SendContactConfirmation", mock.Anything).Return(errors.New("mailbox full"))
	uc := usecase.NewContactUsecase(mailer)

	// The operator already has the message, so this is still a success
	err := uc.SendContactMessage(context.Background(), validContact())
	assert.NoError(t, err)
	mailer.AssertCalled(t, "SendContactConfirmation", mock.Anything)
}

func TestContactSendsBothEmailsInOrder(t *testing.T) {
	mailer := new(MockMailer)
	var order []string
	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactNotification", mock.Anything).Run(func(mock.Arguments) {
		order = append(order, "notification")
	}).Return(nil)
	mailer.On("SendContactConfirmation", mock.Anything).Run(func(mock.Arguments) {
		order = append(order, "confirmation")
	}).Return(nil)
	uc := usecase.NewContactUsecase(mailer)

	err := uc.SendContactMessage(context.Background(), validContact())
	assert.NoError(t, err)
	assert.Equal(t, []string{"notification", "confirmation"}, order)
}

func TestContactTrimsFields(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("IsConfigured").Return(true)
	var got email.ContactEmailData
	mailer.On("SendContactNotification", mock.Anything).Run(func(args mock.Arguments) {
		got = args.Get(0).(email.ContactEmailData)
	}).Return(nil)
	mailer.On("SendContactConfirmation", mock.Anything).Return(nil)
	uc := usecase.NewContactUsecase(mailer)

	err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:    "  Jane  ",
		Email:   " jane@example.com ",
		Message: "  hello  ",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Jane", got.SenderName)
	assert.Equal(t, "jane@example.com", got.SenderEmail)
	assert.Equal(t, "hello", got.Message)
}
